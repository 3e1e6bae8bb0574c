package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	projectFlag = models.ArgProject
	rootFlag    = "root"
	verboseFlag = "verbose"

	envPrefix = "PROJECTCTX"
)

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	rootCmd := &cobra.Command{
		Use:   "projectctx",
		Short: "Resolve the Ionic project for the current directory",
		Long: `Resolves the project context of a workspace: whether it holds a single app
or several, which app is active, and which project type applies.

The active app of a multi-app workspace is taken from --project, then from
the app whose root contains the working directory, then from defaultProject.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(v, cmd.Flags())
		},
	}

	rootCmd.PersistentFlags().String(projectFlag, "", "Select an app of a multi-app workspace (env: PROJECTCTX_PROJECT)")
	rootCmd.PersistentFlags().String(rootFlag, "", "Workspace root; defaults to the nearest directory containing the config (env: PROJECTCTX_ROOT)")
	rootCmd.PersistentFlags().BoolP(verboseFlag, "v", false, "Log resolution steps to stderr")

	// Add subcommands
	rootCmd.AddCommand(NewInfoCommand(fs, v))
	rootCmd.AddCommand(NewIntegrationsCommand(fs, v))
	rootCmd.AddCommand(NewRunnersCommand(fs, v))
	rootCmd.AddCommand(NewPersonalizeCommand(fs, v))

	return rootCmd
}

// bindFlags makes every flag of the running command readable through v, so
// that an unset flag falls back to its PROJECTCTX_* environment variable.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// newLogger builds the command logger; resolution steps are logged at debug.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
