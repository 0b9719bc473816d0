package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hamed0406/resourcemonitor/internal/config"
	"github.com/hamed0406/resourcemonitor/internal/httpapi"
	"github.com/hamed0406/resourcemonitor/internal/logging"
	"github.com/hamed0406/resourcemonitor/internal/monitor"
)

var version = "dev"

// errFatal marks an error that was already printed for the operator.
var errFatal = errors.New("run aborted")

func newRootCmd() *cobra.Command {
	v := config.NewViper()

	root := &cobra.Command{
		Use:   "resourcemonitor",
		Short: "Check that web resources answer with their expected HTTP status",
		Long: `resourcemonitor issues one GET per configured resource and reports whether
each answered with its expected status code. Failures can be forwarded to a
webhook (Slack-style {"text": ...} payload).

Resources are read from RESOURCE_MONITOR_RESOURCES as a JSON list:
  [{"url": "http://example.com", "expectedCode": 200}]`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("notification-url", "", "webhook receiving failure notifications (env RESOURCE_MONITOR_NOTIFICATION_URL)")
	root.PersistentFlags().String("log-dir", "", "directory for rotated JSON logs (env RESOURCE_MONITOR_LOG_DIR)")
	root.PersistentFlags().String("log-level", "info", "debug, info, warn or error (env RESOURCE_MONITOR_LOG_LEVEL)")
	root.PersistentFlags().String("user-agent", config.DefaultUserAgent, "User-Agent sent with every check")
	root.PersistentFlags().Bool("dns-diagnostics", false, "log a DNS classification for transport failures")
	mustBind(v, config.KeyNotificationURL, root.PersistentFlags().Lookup("notification-url"))
	mustBind(v, config.KeyLogDir, root.PersistentFlags().Lookup("log-dir"))
	mustBind(v, config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))
	mustBind(v, config.KeyUserAgent, root.PersistentFlags().Lookup("user-agent"))
	mustBind(v, config.KeyDNSDiagnostics, root.PersistentFlags().Lookup("dns-diagnostics"))

	root.AddCommand(newCheckCmd(v), newServeCmd(v))
	return root
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check every configured resource once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(v)
			logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runCheck(cmd, cfg, logger, cmd.OutOrStdout())
		},
	}
	cmd.Flags().String("resources", "", "JSON resource list (env RESOURCE_MONITOR_RESOURCES)")
	mustBind(v, config.KeyResources, cmd.Flags().Lookup("resources"))
	return cmd
}

func runCheck(cmd *cobra.Command, cfg config.Config, logger *zap.Logger, out io.Writer) error {
	runner := monitor.NewRunner(cfg, logger, out)
	if _, err := runner.RunConfigured(cmd.Context(), cfg); err != nil {
		logger.Error("run_aborted", zap.Error(err))
		fmt.Fprintln(out, monitor.Describe(err))
		return errFatal
	}
	return nil
}

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an HTTP API that triggers runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load(v)
			logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			api := httpapi.NewServer(logger, monitor.NewRunner(cfg, logger, os.Stdout), cfg)
			logger.Info("api_listen", zap.String("addr", cfg.Addr), zap.Bool("auth", len(cfg.APIKeys) > 0))
			return http.ListenAndServe(cfg.Addr, api.Router())
		},
	}
	cmd.Flags().String("addr", "127.0.0.1:8080", "bind address (env RESOURCE_MONITOR_ADDR)")
	mustBind(v, config.KeyAddr, cmd.Flags().Lookup("addr"))
	return cmd
}

func mustBind(v *viper.Viper, key string, f *pflag.Flag) {
	if err := v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}
