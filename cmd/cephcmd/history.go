package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cuemby/cephcmd/pkg/history"
)

var flagHistoryCount int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently submitted commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Open(flagHistoryDB)
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Recent(flagHistoryCount)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("no history")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "TIME\tGENERATION\tPREFIX\tARGS\tRESULT")
		for _, e := range entries {
			result := "ok"
			if e.Error != "" {
				result = e.Error
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.Time.Format("2006-01-02 15:04:05"), e.Generation, e.Prefix, e.Command, result)
		}
		return w.Flush()
	},
}

func init() {
	historyCmd.Flags().IntVarP(&flagHistoryCount, "count", "n", 20, "number of entries to show")
}
