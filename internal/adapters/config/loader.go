// Package config provides the configuration loader for blazerun.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/blazerun/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only config schema version understood by the loader.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds the nearest blazerun.yaml at or above cwd and converts it to a
// domain.Project. When no file exists the project is empty and rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	absCwd, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	configPath, found := findConfiguration(absCwd)
	if !found {
		return domain.NewProject(absCwd), nil
	}

	var file Configfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn("unsupported config version " + file.Version + " in " + configPath + ", reading as version " + SupportedVersion)
	}

	project := domain.NewProject(filepath.Dir(configPath))
	project.ToolPath = resolveBinary(project.Root, file.Binary)
	project.Verb = strings.TrimSpace(file.Command)
	project.Flags = append(project.Flags, file.Flags...)

	for name, class := range file.Kinds {
		c, err := domain.ParseKindClass(class)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "invalid kinds entry"), "kind", name)
			return nil, zerr.With(err, "class", class)
		}
		project.Kinds[domain.Kind(name)] = c
	}

	for label, kind := range file.Targets {
		project.Targets[domain.NewLabel(label)] = domain.Kind(kind)
	}

	return project, nil
}

// findConfiguration walks up from dir until it finds a config file or reaches
// the filesystem root.
func findConfiguration(dir string) (string, bool) {
	current := dir
	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// resolveBinary makes relative paths containing a separator relative to the
// project root. Bare names like "bazel" are left for PATH lookup.
func resolveBinary(root, binary string) string {
	binary = strings.TrimSpace(binary)
	if binary == "" || filepath.IsAbs(binary) || !strings.ContainsRune(binary, filepath.Separator) {
		return binary
	}
	return filepath.Join(root, binary)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered by walking up from the working directory
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
