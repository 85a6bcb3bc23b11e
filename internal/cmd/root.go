package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"rngrename/internal/config"
)

// NewRootCmd creates the root cobra command with all subcommands.
func NewRootCmd() *cobra.Command {
	opts := defaultRenameOpts(config.Default())

	rootCmd := &cobra.Command{
		Use:   "rng-rename [flags] FILES...",
		Short: "Rename files to random names",
		Long: `rng-rename gives every file a unique random name built from a character set,
keeping it in its directory. Names are drawn so that no two files collide and
existing files are never overwritten.

If a file name starts with a hyphen, put all flags first and separate the
files with "--", e.g. rng-rename -l 5 -- -file-1 -file-2.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, args, opts)
		},
	}

	opts.register(rootCmd.Flags())
	rootCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		if name == "charset" {
			name = "char-set"
		}
		return pflag.NormalizedName(name)
	})

	rootCmd.AddCommand(
		newVersionCmd(),
		newInitCmd(),
		newCharsetsCmd(),
	)

	return rootCmd
}
