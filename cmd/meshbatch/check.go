package main

import (
	"github.com/spf13/cobra"

	"github.com/simforge/meshbatch/internal/check"
	"github.com/simforge/meshbatch/internal/logging"
	"github.com/simforge/meshbatch/internal/term"
)

// checkCmd runs the informational system diagnostics and exits.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the external converter and show active parameters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if err := cfg.Validate(true); err != nil {
			return err
		}

		term.Configure(cfg.ColorMode)
		log, err := logging.NewLogger(&cfg)
		if err != nil {
			return err
		}
		defer log.Close()

		check.RunCheck(&cfg, log)
		return nil
	},
}
