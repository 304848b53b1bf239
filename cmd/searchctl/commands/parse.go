package commands

import (
	"strings"

	"chatsearch/internal/model"
	"chatsearch/internal/service"

	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Print the structured filter extracted from a query",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// No dataset needed
		query := strings.Join(args, " ")
		return printJSON(cmd.OutOrStdout(), model.ParseResponse{
			Query:  query,
			Parsed: service.NewQueryParser().Parse(query),
		})
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
