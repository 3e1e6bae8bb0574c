package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/project"
	"github.com/jakoblorz/go-projectctx/internal/workspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// argsFromViper builds the argument map handed to resolution. Flags win over
// PROJECTCTX_* environment variables.
func argsFromViper(v *viper.Viper) models.Args {
	args := models.Args{}
	if name := v.GetString(projectFlag); name != "" {
		args[models.ArgProject] = name
	}
	return args
}

// rootDirectory returns --root if set, otherwise the nearest directory
// holding the config file, otherwise the working directory (resolution then
// reports the missing config).
func rootDirectory(fs filesystem.FileSystem, v *viper.Viper) (string, error) {
	if root := v.GetString(rootFlag); root != "" {
		if filepath.IsAbs(root) {
			return filepath.Clean(root), nil
		}
		cwd, err := fs.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		return filepath.Join(cwd, root), nil
	}

	root, err := workspace.FindRoot(fs, "")
	if errors.Is(err, workspace.ErrWorkspaceNotFound) {
		return fs.Getwd()
	}
	return root, err
}

func projectDetailsFromCmd(cmd *cobra.Command, fs filesystem.FileSystem, v *viper.Viper) (*workspace.ProjectDetails, error) {
	root, err := rootDirectory(fs, v)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cmd.ErrOrStderr(), v.GetBool(verboseFlag))
	return workspace.NewProjectDetails(fs, root, argsFromViper(v), workspace.WithLogger(logger)), nil
}

func projectFromCmd(cmd *cobra.Command, fs filesystem.FileSystem, v *viper.Viper) (project.Project, error) {
	details, err := projectDetailsFromCmd(cmd, fs, v)
	if err != nil {
		return nil, err
	}
	return details.Project()
}
