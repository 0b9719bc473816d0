package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// fatal run errors were already printed by the command
		if !errors.Is(err, errFatal) {
			fmt.Fprintln(os.Stderr, "resourcemonitor:", err)
		}
		os.Exit(1)
	}
}
