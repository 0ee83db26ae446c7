package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/doeshing/buildconsole/internal/app"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose    bool
	ConfigPath string
	ProjectDir string
}

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "buildconsole",
		Short: "Interactive build and run console for min-terminal",
		Long: "buildconsole drives compiling, running and testing min-terminal " +
			"through single-key commands typed at its prompt.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd, opts)
			if err != nil {
				return err
			}
			defer container.Logger.Sync()
			return container.Console.Run(cmd.Context())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetContext(ctx)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ConfigPath, "config", opts.ConfigPath, "Config file (default ./buildconsole.yaml, or $BUILDCONSOLE_CONFIG)")
	flags.StringVarP(&opts.ProjectDir, "dir", "C", opts.ProjectDir, "Project directory the commands run in")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Write debug logs to stderr")

	// Subcommands read opts through the pointer so flag values are seen.
	root.AddCommand(newDoCommand(&opts))
	root.AddCommand(newCommandsCommand())
	root.AddCommand(newConfigCommand(&opts))
	root.AddCommand(newDoctorCommand(&opts))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func buildContainer(cmd *cobra.Command, opts Options) (*app.Container, error) {
	return app.BuildContainer(cmd.Context(), app.Options{
		ConfigPath: opts.ConfigPath,
		ProjectDir: opts.ProjectDir,
		Verbose:    opts.Verbose,
		In:         cmd.InOrStdin(),
		Out:        cmd.OutOrStdout(),
		Err:        cmd.ErrOrStderr(),
	})
}
