// Package locator finds the build tool executable.
package locator

import (
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/blazerun/internal/adapters/env"
	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultCandidates are searched on PATH when nothing is configured.
var DefaultCandidates = []string{"blaze", "bazel", "bazelisk"}

// LookPathFunc resolves a bare executable name, like exec.LookPath.
type LookPathFunc func(file string) (string, error)

// Locator implements ports.ToolLocator.
//
// Precedence: BLAZERUN_BINARY, then the configured binary, then the first
// default candidate found on PATH. Paths are returned as given; only bare
// names are resolved through PATH.
type Locator struct {
	configured string
	lookup     env.Lookup
	lookPath   LookPathFunc
}

// New creates a Locator. A nil lookPath means exec.LookPath.
func New(configured string, lookup env.Lookup, lookPath LookPathFunc) *Locator {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if lookup == nil {
		lookup = env.FromMap(nil)
	}
	return &Locator{configured: configured, lookup: lookup, lookPath: lookPath}
}

// ToolPath returns the build tool executable path.
func (l *Locator) ToolPath() (string, error) {
	if v, ok := l.lookup(env.BinaryVar); ok && strings.TrimSpace(v) != "" {
		return l.resolve(strings.TrimSpace(v), env.BinaryVar)
	}
	if l.configured != "" {
		return l.resolve(l.configured, "config")
	}

	for _, name := range DefaultCandidates {
		if p, err := l.lookPath(name); err == nil {
			return p, nil
		}
	}
	err := zerr.Wrap(domain.ErrToolNotFound, "no build tool on PATH")
	return "", zerr.With(err, "searched", strings.Join(DefaultCandidates, ","))
}

func (l *Locator) resolve(tool, source string) (string, error) {
	if strings.ContainsRune(tool, filepath.Separator) {
		return tool, nil
	}
	p, lookErr := l.lookPath(tool)
	if lookErr != nil {
		err := zerr.With(zerr.Wrap(domain.ErrToolNotFound, "configured build tool not on PATH"), "tool", tool)
		err = zerr.With(err, "source", source)
		return "", zerr.With(err, "lookup", lookErr.Error())
	}
	return p, nil
}
