package cli

import (
	"fmt"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// PersonalizeCommand handles the personalize command
type PersonalizeCommand struct {
	fs filesystem.FileSystem
	v  *viper.Viper
}

// NewPersonalizeCommand creates a new personalize command
func NewPersonalizeCommand(fs filesystem.FileSystem, v *viper.Viper) *cobra.Command {
	cmd := &PersonalizeCommand{fs: fs, v: v}

	cobraCmd := &cobra.Command{
		Use:   "personalize",
		Short: "Apply an app identity to the project",
		Long: `Writes the display name to the project config, the package id, version and
description to package.json, and hands the same details to every enabled
integration (e.g. capacitor.config.json, config.xml).`,
		Example: `  projectctx personalize --name "My App" --project-id my-app --package-id com.example.myapp`,
		Args:    cobra.NoArgs,
		RunE:    cmd.Run,
	}

	cobraCmd.Flags().String("name", "", "Display name of the app")
	cobraCmd.Flags().String("project-id", "", "Slug written to package.json name")
	cobraCmd.Flags().String("package-id", "", "Bundle identifier, e.g. com.example.myapp")
	cobraCmd.Flags().String("app-version", "", "Version written to package.json (default 0.0.1)")
	cobraCmd.Flags().String("description", "", "Description written to package.json")
	_ = cobraCmd.MarkFlagRequired("name")

	return cobraCmd
}

// Run executes the personalize command
func (c *PersonalizeCommand) Run(cmd *cobra.Command, args []string) error {
	details := models.PersonalizationDetails{}
	details.Name, _ = cmd.Flags().GetString("name")
	details.ProjectID, _ = cmd.Flags().GetString("project-id")
	details.PackageID, _ = cmd.Flags().GetString("package-id")
	details.Version, _ = cmd.Flags().GetString("app-version")
	details.Description, _ = cmd.Flags().GetString("description")

	p, err := projectFromCmd(cmd, c.fs, c.v)
	if err != nil {
		return err
	}

	if err := p.Personalize(cmd.Context(), details); err != nil {
		return fmt.Errorf("failed to personalize project: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Personalized %s project in %s\n", p.Type().PrettyName(), p.Directory())
	return nil
}
