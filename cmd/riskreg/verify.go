package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adnsv/riskreg/internal/inspect"
)

var verifyCmd = &cobra.Command{
	Use:   "verify WORKBOOK.xlsx",
	Short: "Open a workbook with an independent reader and summarize it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := inspect.File(args[0])
		if err != nil {
			return err
		}
		log.Info().
			Str("sheet", s.Sheet).
			Int("columns", len(s.Header)).
			Int("rows", s.DataRows).
			Int("frozen", s.FrozenRows).
			Msg("workbook ok")
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows [%s]\n", s.Sheet, s.DataRows, strings.Join(s.Header, ", "))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
