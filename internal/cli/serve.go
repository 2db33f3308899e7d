package cli

import (
	"github.com/spf13/cobra"

	"github.com/tutu-network/mathsheet/internal/config"
)

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to listen on (overrides config)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().BoolVar(&serveMetrics, "metrics", false, "Expose Prometheus metrics at /metrics")
	rootCmd.AddCommand(serveCmd)
}

var (
	serveHost    string
	servePort    int
	serveMetrics bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the mathsheet HTTP API",
	Long: `Start the HTTP API. Worksheets are streamed as PDF:
  GET /api/worksheets/{seed}/task.pdf
  GET /api/worksheets/{seed}/solution.pdf`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := newService(func(cfg *config.Config) {
		// Override config from flags
		if serveHost != "" {
			cfg.Server.Host = serveHost
		}
		if servePort > 0 {
			cfg.Server.Port = servePort
		}
		if serveMetrics {
			cfg.Server.Metrics = true
		}
	})
	if err != nil {
		return err
	}
	defer s.Close()
	s.SetOutput(cmd.OutOrStdout())

	return s.Serve(cmd.Context())
}
