package project

import (
	"errors"
	"fmt"

	"github.com/jakoblorz/go-projectctx/internal/models"
)

// ErrRunnerNotFound is returned by the Require*Runner methods when the
// project type does not support a capability.
var ErrRunnerNotFound = errors.New("runner not found")

// Capability names a runner kind.
type Capability string

const (
	CapabilityBuild    Capability = "build"
	CapabilityServe    Capability = "serve"
	CapabilityGenerate Capability = "generate"
)

// Capabilities lists every capability in display order.
var Capabilities = []Capability{CapabilityBuild, CapabilityServe, CapabilityGenerate}

// Runner is a capability object selected for a project. The engine only
// selects runners; executing them belongs to the calling command.
type Runner interface {
	Capability() Capability
	ProjectType() models.ProjectType

	// Directory is where the command runs.
	Directory() string

	// Command is the program and arguments the runner delegates to.
	Command() (string, []string)
}

type commandRunner struct {
	capability  Capability
	projectType models.ProjectType
	directory   string
	program     string
	args        []string
}

func (r *commandRunner) Capability() Capability          { return r.capability }
func (r *commandRunner) ProjectType() models.ProjectType { return r.projectType }
func (r *commandRunner) Directory() string               { return r.directory }

func (r *commandRunner) Command() (string, []string) {
	return r.program, append([]string(nil), r.args...)
}

func (b *base) newRunner(capability Capability, program string, args ...string) Runner {
	return &commandRunner{
		capability:  capability,
		projectType: b.self.Type(),
		directory:   b.Directory(),
		program:     program,
		args:        args,
	}
}

func (b *base) runnerNotFound(capability Capability) error {
	return fmt.Errorf("%w: %s projects do not support %s", ErrRunnerNotFound, b.self.Type().PrettyName(), capability)
}

// The base rejects every capability; variants override what they support.

func (b *base) RequireBuildRunner() (Runner, error) {
	return nil, b.runnerNotFound(CapabilityBuild)
}

func (b *base) RequireServeRunner() (Runner, error) {
	return nil, b.runnerNotFound(CapabilityServe)
}

func (b *base) RequireGenerateRunner() (Runner, error) {
	return nil, b.runnerNotFound(CapabilityGenerate)
}

func (b *base) BuildRunner() (Runner, error) {
	return optionalRunner(b.self.RequireBuildRunner())
}

func (b *base) ServeRunner() (Runner, error) {
	return optionalRunner(b.self.RequireServeRunner())
}

func (b *base) GenerateRunner() (Runner, error) {
	return optionalRunner(b.self.RequireGenerateRunner())
}

// optionalRunner turns ErrRunnerNotFound into an absent runner and passes
// every other error through.
func optionalRunner(r Runner, err error) (Runner, error) {
	if errors.Is(err, ErrRunnerNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// RunnerFor returns the optional runner for capability.
func RunnerFor(p Project, capability Capability) (Runner, error) {
	switch capability {
	case CapabilityBuild:
		return p.BuildRunner()
	case CapabilityServe:
		return p.ServeRunner()
	case CapabilityGenerate:
		return p.GenerateRunner()
	default:
		return nil, fmt.Errorf("unknown capability: %s", capability)
	}
}
