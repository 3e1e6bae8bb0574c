package cli

import (
	"fmt"
	"io"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// IntegrationsCommand handles the integrations command
type IntegrationsCommand struct {
	fs filesystem.FileSystem
	v  *viper.Viper
}

// NewIntegrationsCommand creates a new integrations command
func NewIntegrationsCommand(fs filesystem.FileSystem, v *viper.Viper) *cobra.Command {
	cmd := &IntegrationsCommand{fs: fs, v: v}

	cobraCmd := &cobra.Command{
		Use:   "integrations [name]",
		Short: "List the integrations configured for the project",
		Long: `Lists the integrations of the resolved project in the order they are
declared, including disabled ones.

With a name, prints only that integration and fails if it is missing or
disabled.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("format", formatText, formatFlagUsage)

	return cobraCmd
}

// Run executes the integrations command
func (c *IntegrationsCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	p, err := projectFromCmd(cmd, c.fs, c.v)
	if err != nil {
		return err
	}

	var descriptors []models.IntegrationDescriptor
	if len(args) == 1 {
		d, err := p.RequireIntegration(args[0])
		if err != nil {
			return err
		}
		descriptors = append(descriptors, d)
	} else {
		if descriptors, err = p.IntegrationDescriptors(); err != nil {
			return err
		}
	}

	return render(cmd.OutOrStdout(), format, descriptors, func(w io.Writer) error {
		return writeIntegrationsText(w, descriptors)
	})
}

func writeIntegrationsText(w io.Writer, descriptors []models.IntegrationDescriptor) error {
	if len(descriptors) == 0 {
		_, err := fmt.Fprintln(w, tui.SubtleStyle.Render("no integrations configured"))
		return err
	}

	width := 0
	for _, d := range descriptors {
		width = max(width, len(d.Name))
	}

	for _, d := range descriptors {
		state := tui.SuccessStyle.Render("enabled ")
		if !d.Enabled {
			state = tui.SubtleStyle.Render("disabled")
		}
		if _, err := fmt.Fprintln(w, tui.KeyValue(d.Name, width, state+"  "+d.Root)); err != nil {
			return err
		}
	}
	return nil
}
