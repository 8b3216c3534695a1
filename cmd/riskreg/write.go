package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adnsv/riskreg/register"
	"github.com/adnsv/riskreg/xl"
)

var (
	outputPath  string
	unpackedDir string
)

var writeCmd = &cobra.Command{
	Use:   "write FINDINGS.yaml",
	Short: "Write a Risk Register workbook from a findings file",
	Args:  cobra.ExactArgs(1),
	RunE:  runWrite,
}

func init() {
	writeCmd.Flags().StringVarP(&outputPath, "output", "o", "", "workbook path (overrides config)")
	writeCmd.Flags().StringVar(&unpackedDir, "unpacked", "", "also write the package parts to this directory")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	if outputPath != "" {
		cfg.Output = outputPath
	}

	findings, err := register.LoadFile(args[0])
	if err != nil {
		return err
	}
	log.Debug().Int("findings", len(findings)).Str("input", args[0]).Msg("loaded findings")

	t, err := register.Table(cfg.SheetName, findings)
	if err != nil {
		return err
	}
	if t.HeaderStyle, err = cfg.Style(); err != nil {
		return err
	}
	if unknown := cfg.ApplyWidths(t); len(unknown) > 0 {
		log.Warn().Strs("columns", unknown).Msg("config sets widths for columns not in the register")
	}

	if unpackedDir != "" {
		if err := xl.NewWriter(xl.NewDirStorage(unpackedDir)).Write(t); err != nil {
			return fmt.Errorf("unpacked parts: %w", err)
		}
		log.Info().Str("dir", unpackedDir).Msg("wrote package parts")
	}

	res, err := xl.Save(cfg.Output, t)
	if err != nil {
		return err
	}
	if res.Outcome == xl.WrittenAtFallbackPath {
		log.Warn().
			Str("requested", cfg.Output).
			Str("written", res.Path).
			AnErr("reason", res.Reason).
			Msg("target is locked, wrote workbook to fallback path")
	}
	log.Info().Str("path", res.Path).Int("rows", len(t.Rows)).Msg("risk register written")
	fmt.Fprintln(cmd.OutOrStdout(), res.Path)
	return nil
}
