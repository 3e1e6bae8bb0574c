package workspace

import (
	"path/filepath"

	"github.com/jakoblorz/go-projectctx/internal/config"
	"github.com/jakoblorz/go-projectctx/internal/filesystem"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// WorkspaceBuilder helps create test workspaces
type WorkspaceBuilder struct {
	fs     *filesystem.MockFileSystem
	root   string
	config []byte
}

// NewWorkspaceBuilder creates a new WorkspaceBuilder with an empty config
// object at root. The working directory is set to root.
func NewWorkspaceBuilder(root string) *WorkspaceBuilder {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir(root)
	fs.SetCurrentDir(root)

	return &WorkspaceBuilder{
		fs:     fs,
		root:   root,
		config: []byte(`{}`),
	}
}

// Set sets a config value at a path built with config.Path.
func (wb *WorkspaceBuilder) Set(path string, value interface{}) *WorkspaceBuilder {
	out, err := sjson.SetBytes(wb.config, path, value)
	if err != nil {
		panic(err)
	}
	wb.config = out
	return wb
}

// SetRaw sets raw JSON at a path built with config.Path.
func (wb *WorkspaceBuilder) SetRaw(path, raw string) *WorkspaceBuilder {
	out, err := sjson.SetRawBytes(wb.config, path, []byte(raw))
	if err != nil {
		panic(err)
	}
	wb.config = out
	return wb
}

// AddProject adds a sub-project to a multi-app config. An empty root leaves
// the project without a root override.
func (wb *WorkspaceBuilder) AddProject(name, root string) *WorkspaceBuilder {
	wb.SetRaw(config.ProjectPrefix(name), `{}`)
	wb.Set(config.Path(config.KeyProjects, name, config.KeyName), name)
	if root != "" {
		wb.Set(config.Path(config.KeyProjects, name, config.KeyRoot), root)
		wb.fs.AddDir(filepath.Join(wb.root, root))
	}
	return wb
}

// SetProjectType declares the type of a sub-project.
func (wb *WorkspaceBuilder) SetProjectType(name, projectType string) *WorkspaceBuilder {
	return wb.Set(config.Path(config.KeyProjects, name, config.KeyType), projectType)
}

// SetDefaultProject sets defaultProject.
func (wb *WorkspaceBuilder) SetDefaultProject(name string) *WorkspaceBuilder {
	return wb.Set(config.KeyDefaultProject, name)
}

// AddPackageJSON writes a package.json in dir (relative to root) listing deps.
func (wb *WorkspaceBuilder) AddPackageJSON(dir, name string, deps ...string) *WorkspaceBuilder {
	return wb.addManifest(dir, "package.json", name, deps)
}

// AddBowerJSON writes a legacy bower.json in dir (relative to root) listing deps.
func (wb *WorkspaceBuilder) AddBowerJSON(dir, name string, deps ...string) *WorkspaceBuilder {
	return wb.addManifest(dir, "bower.json", name, deps)
}

func (wb *WorkspaceBuilder) addManifest(dir, file, name string, deps []string) *WorkspaceBuilder {
	manifest := []byte(`{"dependencies":{}}`)
	manifest, _ = sjson.SetBytes(manifest, "name", name)
	for _, dep := range deps {
		manifest, _ = sjson.SetBytes(manifest, "dependencies."+config.Path(dep), "*")
	}
	wb.fs.AddFile(filepath.Join(wb.root, dir, file), pretty.Pretty(manifest))
	return wb
}

// SetWorkingDirectory sets the working directory, relative to root.
func (wb *WorkspaceBuilder) SetWorkingDirectory(dir string) *WorkspaceBuilder {
	wb.fs.SetCurrentDir(filepath.Join(wb.root, dir))
	return wb
}

// Build writes the config file and returns the filesystem
func (wb *WorkspaceBuilder) Build() *filesystem.MockFileSystem {
	wb.fs.AddFile(filepath.Join(wb.root, config.FileName), pretty.Pretty(wb.config))
	return wb.fs
}

// ConfigPath returns the path Build writes the config file to.
func (wb *WorkspaceBuilder) ConfigPath() string {
	return filepath.Join(wb.root, config.FileName)
}

// FileSystem returns the mock filesystem
func (wb *WorkspaceBuilder) FileSystem() *filesystem.MockFileSystem {
	return wb.fs
}
