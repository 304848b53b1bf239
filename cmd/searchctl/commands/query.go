package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

var queryMax int

var queryCmd = &cobra.Command{
	Use:   "query <text>",
	Short: "Run a free-text search and print the response as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQuery,
}

func init() {
	queryCmd.Flags().IntVarP(&queryMax, "max", "n", 0, "maximum number of result cards (default SEARCH_DEFAULT_MAX_RESULTS, capped at SEARCH_MAX_RESULTS_LIMIT)")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	log := newLogger()
	svc, cfg, err := loadService(cmd.Context(), log)
	if err != nil {
		return err
	}

	resp := svc.Search(cmd.Context(), strings.Join(args, " "), cfg.Search.Limit(queryMax))
	return printJSON(cmd.OutOrStdout(), resp)
}
