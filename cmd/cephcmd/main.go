package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/cephcmd/pkg/catalog"
	"github.com/cuemby/cephcmd/pkg/log"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

var (
	flagConf       string
	flagGeneration string
	flagLogLevel   string
	flagJSONLogs   bool
	flagHistoryDB  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cephcmd",
	Short: "cephcmd - validated Ceph admin commands from the terminal",
	Long: `cephcmd builds, validates and submits Ceph administrative commands
against a chosen release generation's command catalog (firefly, hammer,
infernalis or jewel). Arguments are checked locally against the
catalog's declared field types before anything touches the cluster.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.Init(log.Config{
			Level:      log.Level(flagLogLevel),
			JSONOutput: flagJSONLogs,
			Output:     os.Stderr,
		})
	},
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"cephcmd version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.PersistentFlags().StringVar(&flagConf, "conf", "", "path to ceph.conf (empty uses the default search path)")
	rootCmd.PersistentFlags().StringVar(&flagGeneration, "generation", string(catalog.Jewel), "command catalog generation (firefly|hammer|infernalis|jewel)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().BoolVar(&flagJSONLogs, "json-logs", false, "emit JSON logs instead of console output")
	rootCmd.PersistentFlags().StringVar(&flagHistoryDB, "history-db", defaultHistoryPath(), "path to the command history database")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(metricsServerCmd)
}

func loadCatalog() (*catalog.Catalog, error) {
	g, err := catalog.ParseGeneration(flagGeneration)
	if err != nil {
		return nil, err
	}
	return catalog.Load(g)
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".cephcmd-history.db"
	}
	return home + "/.cephcmd/history.db"
}
