package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print the record count and projects per city",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print JSON instead of a table")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	svc, _, err := loadService(cmd.Context(), newLogger())
	if err != nil {
		return err
	}

	stats := svc.Stats()
	if statsJSON {
		return printJSON(cmd.OutOrStdout(), stats)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Records:\t%d\n\n", stats.Rows)
	fmt.Fprintln(w, "CITY\tPROJECTS")
	for _, c := range stats.Cities {
		fmt.Fprintf(w, "%s\t%d\n", c.City, c.Count)
	}
	return w.Flush()
}
