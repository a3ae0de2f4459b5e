package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"primerd/config"
	"primerd/internal/server"
)

var (
	serveAddr    string
	serveVerbose bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve primer design as HTTP tools for agent callers",
	Long: `Serve the design_primers and troubleshoot_primers tools over HTTP.

POST /v1/tools/design_primers       single search with optional overrides
POST /v1/tools/troubleshoot_primers escalating search, protocol defaults
GET  /healthz`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := config.New()
		if err != nil {
			return err
		}

		logConfig := zap.NewProductionConfig()
		if serveVerbose {
			logConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err := logConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logger.Sync()

		return server.New(conf, conf.Oracle(), logger).Run(serveAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", ":8053", "address to listen on")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "log at debug level")
}
