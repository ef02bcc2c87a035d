package app

import (
	"go.trai.ch/blazerun/internal/adapters/env"      //nolint:depguard // Wired in app layer
	"go.trai.ch/blazerun/internal/adapters/flags"    //nolint:depguard // Wired in app layer
	"go.trai.ch/blazerun/internal/adapters/locator"  //nolint:depguard // Wired in app layer
	"go.trai.ch/blazerun/internal/adapters/resolver" //nolint:depguard // Wired in app layer
	"go.trai.ch/blazerun/internal/core/domain"
)

// DefaultCollaborators wires the config-backed resolver, the layered flag
// source and the tool locator for project.
//
// Flags are ordered: project flags, then BLAZERUN_FLAGS, then cliFlags.
func DefaultCollaborators(project *domain.Project, cliFlags []string) (Collaborators, error) {
	lookup, err := env.Load(project.Root)
	if err != nil {
		return Collaborators{}, err
	}

	res, err := resolver.NewCaching(resolver.NewStatic(project.Targets), resolver.DefaultCacheSize)
	if err != nil {
		return Collaborators{}, err
	}

	return Collaborators{
		Resolver: res,
		Flags: flags.NewSource(
			flags.Project(project),
			flags.FromEnv(lookup, env.FlagsVar),
			flags.Static(cliFlags...),
		),
		Locator: locator.New(project.ToolPath, lookup, nil),
	}, nil
}
