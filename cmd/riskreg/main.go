// Command riskreg renders triaged security findings as a Risk Register
// workbook.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/adnsv/riskreg/internal/config"
)

var version = "dev"

var (
	configPath string
	envFile    string

	cfg config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "riskreg",
	Short:         "Risk Register workbook generator",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath, envFile)
		if err != nil {
			return err
		}
		log = newLogger(cfg.LogLevel)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with RISKREG_* overrides")
	rootCmd.AddCommand(versionCmd)
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}

func main() {
	log = newLogger("info")
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("riskreg failed")
		os.Exit(1)
	}
}
