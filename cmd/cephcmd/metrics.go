package main

import (
	"github.com/spf13/cobra"

	"github.com/cuemby/cephcmd/pkg/log"
	"github.com/cuemby/cephcmd/pkg/metrics"
)

var flagMetricsAddr string

var metricsServerCmd = &cobra.Command{
	Use:   "metrics-server",
	Short: "Expose dispatch metrics for Prometheus scraping",
	Long: `Serve the /metrics endpoint. Useful when cephcmd runs as a
long-lived automation sidecar rather than a one-shot CLI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Logger.Info().Str("addr", flagMetricsAddr).Msg("serving metrics")
		return metrics.Serve(flagMetricsAddr)
	},
}

func init() {
	metricsServerCmd.Flags().StringVar(&flagMetricsAddr, "addr", ":9128", "listen address for the metrics endpoint")
}
