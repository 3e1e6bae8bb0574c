package e2e_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/workspace"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// setupWorkspace lays out a multi-app workspace on disk: an Angular app, a
// legacy Ionic 1 app and a custom app without a root.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	writeFile(t, filepath.Join(root, config.FileName), `{
  // apps of this workspace
  "projects": {
    "web": {
      "name": "web",
      "root": "apps/web",
      "app_id": "abc123",
      "integrations": { "capacitor": {}, "cordova": { "enabled": false } },
    },
    "legacy": { "name": "legacy", "root": "apps/legacy" },
    "tools": { "name": "tools", "type": "custom" },
  },
  "defaultProject": "tools",
}`)
	writeFile(t, filepath.Join(root, "apps/web/package.json"), `{"name":"web","dependencies":{"@ionic/angular":"^7.0.0"}}`)
	writeFile(t, filepath.Join(root, "apps/web/capacitor.config.json"), `{"appId":"io.ionic.starter","appName":"web"}`)
	writeFile(t, filepath.Join(root, "apps/legacy/bower.json"), `{"name":"legacy","devDependencies":{"ionic":"1.3.5"}}`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "apps/web/src/app"), 0755))

	return root
}

func TestFullWorkflow(t *testing.T) {
	root := setupWorkspace(t)
	fs := filesystem.NewOSFileSystem()
	ctx := context.Background()

	// The workspace root is found from deep inside an app
	found, err := workspace.FindRoot(fs, filepath.Join(root, "apps/web/src/app"))
	require.NoError(t, err)
	require.Equal(t, root, found)

	// The working directory selects the app, detection picks its type
	p, result, err := workspace.Load(fs, found, nil,
		workspace.WithWorkingDirectory(filepath.Join(root, "apps/web/src/app")))
	require.NoError(t, err)
	require.Equal(t, models.ContextMultiApp, result.Context)
	require.Equal(t, "web", result.Name)
	require.Equal(t, models.ProjectTypeAngular, result.Type)
	require.Empty(t, result.Errors)

	// Resolution itself never migrates the legacy key
	raw, err := os.ReadFile(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	require.Equal(t, "abc123", gjson.GetBytes(raw, "projects.web.app_id").String())

	// The first read through the project does, once
	require.Equal(t, filepath.Join(root, "apps/web"), p.Directory())
	proID, err := p.RequireProID()
	require.NoError(t, err)
	require.Equal(t, "abc123", proID)

	raw, err = os.ReadFile(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	require.Equal(t, "abc123", gjson.GetBytes(raw, "projects.web.pro_id").String())
	require.False(t, gjson.GetBytes(raw, "projects.web.app_id").Exists())

	runner, err := p.RequireServeRunner()
	require.NoError(t, err)
	program, args := runner.Command()
	require.Equal(t, "ng", program)
	require.Equal(t, []string{"serve"}, args)

	descriptors, err := p.IntegrationDescriptors()
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	require.Equal(t, "capacitor", descriptors[0].Name)
	require.False(t, descriptors[1].Enabled)

	err = p.Personalize(ctx, models.PersonalizationDetails{
		Name:      "Field Notes",
		ProjectID: "field-notes",
		PackageID: "com.example.fieldnotes",
		Version:   "1.2.0",
	})
	require.NoError(t, err)

	raw, err = os.ReadFile(filepath.Join(root, config.FileName))
	require.NoError(t, err)
	require.Equal(t, "Field Notes", gjson.GetBytes(raw, "projects.web.name").String())
	require.Equal(t, "legacy", gjson.GetBytes(raw, "projects.legacy.name").String())

	pkg, err := os.ReadFile(filepath.Join(root, "apps/web/package.json"))
	require.NoError(t, err)
	require.Equal(t, "field-notes", gjson.GetBytes(pkg, "name").String())
	require.Equal(t, "1.2.0", gjson.GetBytes(pkg, "version").String())

	capacitor, err := os.ReadFile(filepath.Join(root, "apps/web/capacitor.config.json"))
	require.NoError(t, err)
	require.Equal(t, "com.example.fieldnotes", gjson.GetBytes(capacitor, "appId").String())
	require.Equal(t, "Field Notes", gjson.GetBytes(capacitor, "appName").String())
}

func TestWorkflow_OtherApps(t *testing.T) {
	root := setupWorkspace(t)
	fs := filesystem.NewOSFileSystem()

	t.Run("explicit project detects ionic1 from bower.json", func(t *testing.T) {
		p, result, err := workspace.Load(fs, root, models.Args{models.ArgProject: "legacy"},
			workspace.WithWorkingDirectory(root))
		require.NoError(t, err)
		require.Equal(t, models.ProjectTypeIonic1, result.Type)

		_, err = p.RequireGenerateRunner()
		require.Error(t, err)
	})

	t.Run("default project outside any app root", func(t *testing.T) {
		p, result, err := workspace.Load(fs, root, nil, workspace.WithWorkingDirectory(root))
		require.NoError(t, err)
		require.Equal(t, "tools", result.Name)
		require.Equal(t, models.ProjectTypeCustom, result.Type)
		require.Equal(t, root, p.Directory())
	})

	t.Run("unknown app is reported, not built", func(t *testing.T) {
		p, result, err := workspace.Load(fs, root, models.Args{models.ArgProject: "mobile"},
			workspace.WithWorkingDirectory(root))
		require.Nil(t, p)

		var failure *workspace.ResolutionFailure
		require.ErrorAs(t, err, &failure)
		require.Equal(t, []models.ErrorCode{models.ErrMultiMissingConfig}, result.ErrorCodes())
	})
}

func TestWorkflow_NoConfig(t *testing.T) {
	dir := t.TempDir()
	fs := filesystem.NewOSFileSystem()

	_, err := workspace.FindRoot(fs, dir)
	require.ErrorIs(t, err, workspace.ErrWorkspaceNotFound)

	_, result, err := workspace.Load(fs, dir, nil, workspace.WithWorkingDirectory(dir))
	require.Error(t, err)
	require.Equal(t, models.ContextUnknown, result.Context)
	require.True(t, result.HasError(models.ErrInvalidProjectFile))
}
