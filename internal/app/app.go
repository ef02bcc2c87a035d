// Package app implements the application layer for blazerun.
package app

import (
	"context"
	"fmt"
	"runtime"

	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/blazerun/internal/core/ports"
	"go.trai.ch/blazerun/internal/engine/command"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Collaborators are the per-project inputs of command construction.
type Collaborators struct {
	Resolver ports.TargetResolver
	Flags    ports.FlagSource
	Locator  ports.ToolLocator
}

// CollaboratorFactory builds the collaborators for a loaded project.
// cliFlags are appended after every other flag provider.
type CollaboratorFactory func(project *domain.Project, cliFlags []string) (Collaborators, error)

// App represents the main application logic.
type App struct {
	configLoader  ports.ConfigLoader
	builder       *command.Builder
	logger        ports.Logger
	collaborators CollaboratorFactory
	concurrency   int
}

// New creates a new App instance using the default collaborators.
func New(loader ports.ConfigLoader, builder *command.Builder, log ports.Logger) *App {
	return &App{
		configLoader:  loader,
		builder:       builder,
		logger:        log,
		collaborators: DefaultCollaborators,
		concurrency:   runtime.GOMAXPROCS(0),
	}
}

// WithCollaborators replaces the collaborator factory.
// This is primarily used for testing.
func (a *App) WithCollaborators(f CollaboratorFactory) *App {
	a.collaborators = f
	return a
}

// WithConcurrency bounds how many targets are resolved at once.
func (a *App) WithConcurrency(n int) *App {
	if n > 0 {
		a.concurrency = n
	}
	return a
}

// CommandOptions configures the Command method.
type CommandOptions struct {
	// Dir is where the config search starts. Empty means ".".
	Dir string
	// Verb overrides the project and per-kind default verb.
	Verb string
	// Mode selects run or debug.
	Mode domain.ExecutionMode
	// Flags are appended after project and environment flags.
	Flags []string
	// ExtraArgs are passed to every target after the separator.
	ExtraArgs []string
}

// Invocation is the argument vector built for one target.
type Invocation struct {
	Target domain.Label
	Kind   domain.Kind
	Argv   domain.ArgumentVector
}

// Request is the project-independent description of a Plan call.
type Request struct {
	Targets   []domain.Label
	Verb      string
	Mode      domain.ExecutionMode
	ExtraArgs []string
}

// Command loads the project and builds one argument vector per label,
// in the order the labels were given.
func (a *App) Command(ctx context.Context, labels []string, opts CommandOptions) ([]Invocation, error) {
	if len(labels) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	project, err := a.configLoader.Load(dir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	collab, err := a.collaborators(project, opts.Flags)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to prepare collaborators")
	}

	verb := opts.Verb
	if verb == "" {
		verb = project.Verb
	}

	builder := a.builder
	if len(project.Kinds) > 0 {
		builder = builder.With(command.WithKinds(project.Kinds))
	}

	return a.plan(ctx, builder, collab, Request{
		Targets:   domain.NewLabels(labels),
		Verb:      verb,
		Mode:      opts.Mode,
		ExtraArgs: opts.ExtraArgs,
	})
}

// Plan builds one argument vector per requested target using explicit
// collaborators. Tool path and base flags are fetched once and shared by
// every target.
func (a *App) Plan(ctx context.Context, collab Collaborators, req Request) ([]Invocation, error) {
	return a.plan(ctx, a.builder, collab, req)
}

func (a *App) plan(ctx context.Context, builder *command.Builder, collab Collaborators, req Request) ([]Invocation, error) {
	if len(req.Targets) == 0 {
		return nil, domain.ErrNoTargetsSpecified
	}

	toolPath, err := collab.Locator.ToolPath()
	if err != nil {
		return nil, err
	}

	baseFlags, err := collab.Flags.CurrentFlags(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Invocation, len(req.Targets))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.concurrency)
	for i, target := range req.Targets {
		g.Go(func() error {
			kind, err := collab.Resolver.Resolve(gctx, target)
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to resolve target kind"), "target", target.String())
			}

			if req.Mode == domain.ModeDebug && !builder.SupportsDebug(kind) {
				a.logger.Warn(fmt.Sprintf("%s (kind %s) has no debug support, building a plain run command", target, kind))
			}

			verb := req.Verb
			if verb == "" {
				verb = builder.DefaultVerb(kind)
			}

			argv, err := builder.Build(domain.CommandSpec{
				ToolPath:  toolPath,
				Verb:      verb,
				BaseFlags: baseFlags,
				Target:    target,
				Kind:      kind,
				Mode:      req.Mode,
				ExtraArgs: req.ExtraArgs,
			})
			if err != nil {
				return zerr.With(zerr.Wrap(err, "failed to build command"), "target", target.String())
			}

			out[i] = Invocation{Target: target, Kind: kind, Argv: argv}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
