package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"rngrename/internal/config"
)

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long:  "Write a commented config file with the default settings. Without a path, the file goes to $RNG_RENAME_CONFIG or the user config directory.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}

			abs, err := filepath.Abs(path)
			if err != nil {
				return err
			}
			if err := config.WriteDefault(abs, force); err != nil {
				return fmt.Errorf("write config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", abs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}
