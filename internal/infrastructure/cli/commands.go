package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/buildconsole/internal/app"
	appconfig "github.com/doeshing/buildconsole/internal/application/config"
	"github.com/doeshing/buildconsole/internal/application/console"
	"github.com/doeshing/buildconsole/internal/application/doctor"
	"github.com/doeshing/buildconsole/internal/domain"
	"github.com/doeshing/buildconsole/internal/infrastructure/config"
	"github.com/doeshing/buildconsole/internal/version"
)

func newDoCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "do <key>...",
		Short: "Dispatch console commands without the interactive prompt",
		Long: "Dispatch each key in order, exactly as if it had been typed at the prompt.\n" +
			"Quote keys containing spaces, e.g. buildconsole do \"get esctest\" esctest.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := buildContainer(cmd, *opts)
			if err != nil {
				return err
			}
			defer container.Logger.Sync()
			for _, key := range args {
				if container.Console.Dispatch(cmd.Context(), key) == console.StateTerminated {
					break
				}
			}
			return nil
		},
	}
}

func newCommandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List the console's command keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			console.RenderMenu(cmd.OutOrStdout(), console.DefaultRegistry())
			return nil
		},
	}
}

func newDoctorCommand(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the toolchain and target are available",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := &doctor.Service{
				ConfigProvider: loaderFor(opts),
				ProjectDir:     opts.ProjectDir,
			}
			report, err := svc.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if report.Failed() {
				return fmt.Errorf("doctor found blocking problems")
			}
			return nil
		},
	}
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
}

func newConfigCommand(opts *Options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect buildconsole configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd, opts)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the resolved config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), loaderFor(opts).Path())
			return nil
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := loaderFor(opts).Init(force)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loaderFor(opts).Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := appconfig.Validate(cfg); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")
			return nil
		},
	}

	configCmd.AddCommand(showCmd, pathCmd, initCmd, validateCmd)
	return configCmd
}

func runConfigShow(cmd *cobra.Command, opts *Options) error {
	cfg, err := loaderFor(opts).Load(cmd.Context())
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func loaderFor(opts *Options) *config.FileLoader {
	return app.NewConfigLoader(app.Options{ConfigPath: opts.ConfigPath, ProjectDir: opts.ProjectDir})
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show buildconsole version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			displayVersionInformation(cmd.OutOrStdout())
			return nil
		},
	}
}

func displayVersionInformation(out io.Writer) {
	fmt.Fprintf(out, "buildconsole version %s\n", version.Version)
	if version.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", version.Commit)
	}
	if version.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", version.BuildDate)
	}
	fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
}
