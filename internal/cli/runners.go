package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/project"
	"github.com/jakoblorz/go-projectctx/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunnersCommand handles the runners command
type RunnersCommand struct {
	fs filesystem.FileSystem
	v  *viper.Viper
}

// RunnerInfo describes the runner selected for one capability
type RunnerInfo struct {
	Capability string   `json:"capability" yaml:"capability"`
	Supported  bool     `json:"supported" yaml:"supported"`
	Program    string   `json:"program,omitempty" yaml:"program,omitempty"`
	Args       []string `json:"args,omitempty" yaml:"args,omitempty"`
	Directory  string   `json:"directory,omitempty" yaml:"directory,omitempty"`
}

// NewRunnersCommand creates a new runners command
func NewRunnersCommand(fs filesystem.FileSystem, v *viper.Viper) *cobra.Command {
	cmd := &RunnersCommand{fs: fs, v: v}

	cobraCmd := &cobra.Command{
		Use:   "runners [build|serve|generate]",
		Short: "Show which runner the project type selects per capability",
		Long: `Shows the command each capability delegates to for the resolved project.
Nothing is executed.

With a capability, fails if the project type does not support it.`,
		Example: `  # All capabilities
  projectctx runners

  # The serve command only, for scripting
  projectctx runners serve --format '{{ .Program }} {{ join " " .Args }}'`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"build", "serve", "generate"},
		RunE:      cmd.Run,
	}

	cobraCmd.Flags().String("format", formatText, formatFlagUsage)

	return cobraCmd
}

// Run executes the runners command
func (c *RunnersCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	p, err := projectFromCmd(cmd, c.fs, c.v)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		runner, err := requireRunner(p, project.Capability(args[0]))
		if err != nil {
			return err
		}
		info := runnerInfo(project.Capability(args[0]), runner)
		return render(cmd.OutOrStdout(), format, info, func(w io.Writer) error {
			return writeRunnersText(w, []RunnerInfo{info})
		})
	}

	infos := make([]RunnerInfo, 0, len(project.Capabilities))
	for _, capability := range project.Capabilities {
		runner, err := project.RunnerFor(p, capability)
		if err != nil {
			return fmt.Errorf("failed to select %s runner: %w", capability, err)
		}
		infos = append(infos, runnerInfo(capability, runner))
	}

	return render(cmd.OutOrStdout(), format, infos, func(w io.Writer) error {
		return writeRunnersText(w, infos)
	})
}

func requireRunner(p project.Project, capability project.Capability) (project.Runner, error) {
	switch capability {
	case project.CapabilityBuild:
		return p.RequireBuildRunner()
	case project.CapabilityServe:
		return p.RequireServeRunner()
	case project.CapabilityGenerate:
		return p.RequireGenerateRunner()
	default:
		return nil, fmt.Errorf("unknown capability %q: expected build, serve or generate", capability)
	}
}

func runnerInfo(capability project.Capability, runner project.Runner) RunnerInfo {
	info := RunnerInfo{Capability: string(capability)}
	if runner == nil {
		return info
	}

	info.Supported = true
	info.Program, info.Args = runner.Command()
	info.Directory = runner.Directory()
	return info
}

func writeRunnersText(w io.Writer, infos []RunnerInfo) error {
	for _, info := range infos {
		value := tui.SubtleStyle.Render("not supported")
		if info.Supported {
			command := strings.Join(append([]string{info.Program}, info.Args...), " ")
			value = tui.SuccessStyle.Render(command) + "  (in " + info.Directory + ")"
		}
		if _, err := fmt.Fprintln(w, tui.KeyValue(info.Capability, len("generate"), value)); err != nil {
			return err
		}
	}
	return nil
}
