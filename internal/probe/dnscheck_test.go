package probe

import (
	"context"
	"testing"
)

func TestCheckDNS_InvalidName(t *testing.T) {
	for _, in := range []string{"", "  ", "http://example.com"} {
		if got := CheckDNS(context.Background(), in).Class; got != DNSInvalidName {
			t.Fatalf("CheckDNS(%q) class=%s want %s", in, got, DNSInvalidName)
		}
	}
}

func TestCheckDNS_IPLiteral(t *testing.T) {
	s := CheckDNS(context.Background(), "127.0.0.1")
	if s.Class != DNSResolves || !s.HasAOrAAAA {
		t.Fatalf("ip literal should resolve, got %+v", s)
	}
}

func TestHost(t *testing.T) {
	cases := []struct{ in, want string }{
		{"https://example.com/p?q=1", "example.com"},
		{"http://127.0.0.1:8080/", "127.0.0.1"},
		{"not a url", "not a url"},
	}
	for _, c := range cases {
		if got := Host(c.in); got != c.want {
			t.Fatalf("Host(%q)=%q want %q", c.in, got, c.want)
		}
	}
}
