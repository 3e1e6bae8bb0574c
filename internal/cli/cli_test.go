package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/jakoblorz/go-projectctx/internal/models"
	"github.com/jakoblorz/go-projectctx/internal/project"
	"github.com/jakoblorz/go-projectctx/internal/workspace"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

const testWorkspaceRoot = "/test-workspace"

func buildWorkspace(t *testing.T, setup func(*workspace.WorkspaceBuilder)) *filesystem.MockFileSystem {
	t.Helper()

	wb := workspace.NewWorkspaceBuilder(testWorkspaceRoot)
	if setup != nil {
		setup(wb)
	}
	return wb.Build()
}

func multiApp(wb *workspace.WorkspaceBuilder) {
	wb.AddProject("web", "apps/web").
		AddProject("legacy", "apps/legacy").
		SetProjectType("legacy", "ionic1").
		SetDefaultProject("web").
		AddPackageJSON("apps/web", "web", "@ionic/angular").
		SetRaw(config.Path(config.KeyProjects, "web", config.KeyIntegrations), `{"capacitor":{},"cordova":{"enabled":false}}`)
}

func execute(t *testing.T, fs filesystem.FileSystem, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(fs)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func TestInfo_JSON(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	out, err := execute(t, fs, "info", "--format", "json")
	require.NoError(t, err)

	require.Equal(t, "multiapp", gjson.Get(out, "result.context").String())
	require.Equal(t, "web", gjson.Get(out, "result.name").String())
	require.Equal(t, "angular", gjson.Get(out, "result.type").String())
	require.Equal(t, "/test-workspace/ionic.config.json", gjson.Get(out, "result.configPath").String())
	require.Equal(t, "type", gjson.Get(out, "project.0.key").String())
	require.Equal(t, "Ionic Angular", gjson.Get(out, "project.0.value").String())

	snaps.MatchSnapshot(t, out)
}

func TestInfo_ProjectFlagAndWorkingDirectory(t *testing.T) {
	fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
		multiApp(wb)
		wb.SetWorkingDirectory("apps/web/src")
	})

	out, err := execute(t, fs, "info", "--format", "{{ .Result.Name }}")
	require.NoError(t, err)
	require.Equal(t, "web\n", out)

	out, err = execute(t, fs, "info", "--project", "legacy", "--format", "{{ upper .Result.Name }}:{{ .Result.Type }}")
	require.NoError(t, err)
	require.Equal(t, "LEGACY:ionic1\n", out)
}

func TestInfo_ProjectFromEnv(t *testing.T) {
	fs := buildWorkspace(t, multiApp)
	t.Setenv("PROJECTCTX_PROJECT", "legacy")

	out, err := execute(t, fs, "info", "--format", "{{ .Result.Name }}")
	require.NoError(t, err)
	require.Equal(t, "legacy\n", out)

	out, err = execute(t, fs, "info", "--project", "web", "--format", "{{ .Result.Name }}")
	require.NoError(t, err)
	require.Equal(t, "web\n", out)
}

func TestInfo_DiagnosticsAreReported(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	out, err := execute(t, fs, "info", "--project", "missing", "--format", "yaml")

	var failure *workspace.ResolutionFailure
	require.ErrorAs(t, err, &failure)

	var decoded struct {
		Result struct {
			Context string `yaml:"context"`
			Name    string `yaml:"name"`
			Errors  []struct {
				Code string `yaml:"code"`
			} `yaml:"errors"`
		} `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))
	require.Equal(t, "multiapp", decoded.Result.Context)
	require.Equal(t, "missing", decoded.Result.Name)
	require.Len(t, decoded.Result.Errors, 1)
	require.Equal(t, string(models.ErrMultiMissingConfig), decoded.Result.Errors[0].Code)
}

func TestInfo_Text(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	out, err := execute(t, fs, "info")
	require.NoError(t, err)
	require.Contains(t, out, "multiapp")
	require.Contains(t, out, "capacitor, cordova (disabled)")

	snaps.MatchSnapshot(t, out)
}

func TestInfo_MissingConfig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/nowhere")
	fs.SetCurrentDir("/nowhere")

	out, err := execute(t, fs, "info")
	require.Error(t, err)
	require.Contains(t, err.Error(), string(models.ErrInvalidProjectFile))
	require.Contains(t, out, string(models.ErrInvalidProjectFile))
	require.Contains(t, out, "/nowhere/ionic.config.json")
}

func TestInfo_RootFlag(t *testing.T) {
	fs := buildWorkspace(t, func(wb *workspace.WorkspaceBuilder) {
		wb.Set(config.KeyName, "app").Set(config.KeyType, "custom")
	})
	fs.SetCurrentDir("/")

	out, err := execute(t, fs, "info", "--root", testWorkspaceRoot, "--format", "{{ .Result.Type }}")
	require.NoError(t, err)
	require.Equal(t, "custom\n", out)
}

func TestInfo_UnknownFormat(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	_, err := execute(t, fs, "info", "--format", "xml")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestIntegrations(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	out, err := execute(t, fs, "integrations", "--format", "json")
	require.NoError(t, err)

	var descriptors []models.IntegrationDescriptor
	require.NoError(t, json.Unmarshal([]byte(out), &descriptors))
	require.Equal(t, []models.IntegrationDescriptor{
		{Name: "capacitor", Enabled: true, Root: "/test-workspace/apps/web"},
		{Name: "cordova", Enabled: false, Root: "/test-workspace/apps/web"},
	}, descriptors)

	_, err = execute(t, fs, "integrations", "cordova")
	require.ErrorIs(t, err, project.ErrIntegrationDisabled)

	_, err = execute(t, fs, "integrations", "enterprise")
	require.ErrorIs(t, err, project.ErrIntegrationNotFound)
}

func TestRunners(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	out, err := execute(t, fs, "runners", "--project", "legacy", "--format", "json")
	require.NoError(t, err)

	var infos []RunnerInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Equal(t, []RunnerInfo{
		{Capability: "build", Supported: true, Program: "ionic-v1", Args: []string{"build"}, Directory: "/test-workspace/apps/legacy"},
		{Capability: "serve", Supported: true, Program: "ionic-v1", Args: []string{"serve"}, Directory: "/test-workspace/apps/legacy"},
		{Capability: "generate"},
	}, infos)

	_, err = execute(t, fs, "runners", "generate", "--project", "legacy")
	require.ErrorIs(t, err, project.ErrRunnerNotFound)

	out, err = execute(t, fs, "runners", "serve", "--format", `{{ .Program }} {{ join " " .Args }}`)
	require.NoError(t, err)
	require.Equal(t, "ng serve\n", out)
}

func TestPersonalize(t *testing.T) {
	fs := buildWorkspace(t, multiApp)
	fs.AddFile("/test-workspace/apps/web/capacitor.config.json", []byte(`{"appId":"io.ionic.starter","appName":"web"}`))

	out, err := execute(t, fs, "personalize",
		"--name", "My App",
		"--project-id", "my-app",
		"--package-id", "com.example.myapp",
		"--app-version", "1.0.0",
	)
	require.NoError(t, err)
	require.Equal(t, "Personalized Ionic Angular project in /test-workspace/apps/web\n", out)

	cfg := fs.Content("/test-workspace/ionic.config.json")
	require.Equal(t, "My App", gjson.GetBytes(cfg, "projects.web.name").String())
	require.Equal(t, "legacy", gjson.GetBytes(cfg, "projects.legacy.name").String())

	pkg := fs.Content("/test-workspace/apps/web/package.json")
	require.Equal(t, "my-app", gjson.GetBytes(pkg, "name").String())
	require.Equal(t, "1.0.0", gjson.GetBytes(pkg, "version").String())

	capacitor := fs.Content("/test-workspace/apps/web/capacitor.config.json")
	require.Equal(t, "com.example.myapp", gjson.GetBytes(capacitor, "appId").String())
}

func TestPersonalize_RequiresName(t *testing.T) {
	fs := buildWorkspace(t, multiApp)

	_, err := execute(t, fs, "personalize")
	require.Error(t, err)
	require.Contains(t, err.Error(), `required flag(s) "name" not set`)
}
