// Command pycalc evaluates arithmetic and logical expressions, either once
// from the command line or interactively.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/chekart/pycalc"
	"github.com/chekart/pycalc/internal/config"
)

// Set via -ldflags at build time.
var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "pycalc [expression]",
		Short:        "Evaluate arithmetic and logical expressions",
		Long:         "With an expression argument, pycalc prints its value and exits.\nWithout one, it reads expressions line by line until interrupted.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		Version:      version,
		RunE:         run,
	}
	cmd.Flags().String("config", "", "YAML config file (default ~/"+config.DefaultFile+")")
	cmd.Flags().String("format", "", "result formatting verb (default %v, env PYCALC_FORMAT)")
	cmd.Flags().String("prompt", "", "interactive prompt (env PYCALC_PROMPT)")
	cmd.Flags().String("history", "", "interactive history file, empty to disable (env PYCALC_HISTORY)")
	cmd.Flags().BoolP("verbose", "v", false, "log why expressions fail in interactive mode")
	return cmd
}

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := settings(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		r, err := pycalc.Compute(args[0])
		if err != nil {
			return fmt.Errorf("invalid expression: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), cfg.ResultFormat+"\n", r)
		return nil
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	return interactive(cmd.OutOrStdout(), cfg, verbose)
}

// settings loads the config file and applies flag overrides.
func settings(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("format"); v != "" {
		cfg.ResultFormat = v
	}
	if v, _ := cmd.Flags().GetString("prompt"); v != "" {
		cfg.Prompt = v
	}
	if cmd.Flags().Changed("history") {
		cfg.HistoryFile, _ = cmd.Flags().GetString("history")
	}
	return cfg, nil
}
