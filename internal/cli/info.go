package cli

import (
	"fmt"
	"io"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/project"
	"github.com/jakoblorz/go-projectctx/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// InfoCommand handles the info command
type InfoCommand struct {
	fs filesystem.FileSystem
	v  *viper.Viper
}

// InfoOutput is the data rendered by the info command
type InfoOutput struct {
	Result  *models.ResolutionResult `json:"result" yaml:"result"`
	Project []project.InfoItem       `json:"project,omitempty" yaml:"project,omitempty"`
}

// NewInfoCommand creates a new info command
func NewInfoCommand(fs filesystem.FileSystem, v *viper.Viper) *cobra.Command {
	cmd := &InfoCommand{fs: fs, v: v}

	cobraCmd := &cobra.Command{
		Use:   "info",
		Short: "Show the resolved project context",
		Long: `Resolves the workspace and prints its context, the selected app, the project
type and any diagnostics. When resolution succeeds, project metadata is
printed as well.

Exits non-zero if the project cannot be used.`,
		Example: `  # Human-readable summary
  projectctx info

  # Resolve a specific app of a multi-app workspace as JSON
  projectctx info --project admin --format json

  # Print only the project type
  projectctx info --format '{{ .Result.Type }}'`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", formatText, formatFlagUsage)

	return cobraCmd
}

// Run executes the info command
func (c *InfoCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	details, err := projectDetailsFromCmd(cmd, c.fs, c.v)
	if err != nil {
		return err
	}

	out := InfoOutput{Result: details.Result()}

	p, resolveErr := details.Project()
	if resolveErr == nil {
		if out.Project, err = p.Info(); err != nil {
			return fmt.Errorf("failed to collect project info: %w", err)
		}
	}

	if err := render(cmd.OutOrStdout(), format, out, func(w io.Writer) error {
		return writeInfoText(w, out)
	}); err != nil {
		return err
	}

	return resolveErr
}

func writeInfoText(w io.Writer, out InfoOutput) error {
	const width = 12

	result := out.Result
	lines := []string{
		tui.TitleStyle.Render("Workspace"),
		tui.KeyValue("context", width, string(result.Context)),
		tui.KeyValue("config", width, result.ConfigPath),
	}
	if result.Name != "" {
		lines = append(lines, tui.KeyValue("app", width, result.Name))
	}
	if result.Type != "" {
		lines = append(lines, tui.KeyValue("type", width, string(result.Type)))
	}

	if len(result.Errors) > 0 {
		lines = append(lines, "", tui.TitleStyle.Render("Diagnostics"))
		for _, diag := range result.Errors {
			lines = append(lines, tui.ErrorStyle.Render(string(diag.Code))+"  "+diag.Message)
		}
	}

	if len(out.Project) > 0 {
		lines = append(lines, "", tui.TitleStyle.Render("Project"))
		for _, item := range out.Project {
			lines = append(lines, tui.KeyValue(item.Key, width, item.Value))
		}
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
