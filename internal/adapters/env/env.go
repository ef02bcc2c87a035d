// Package env layers the process environment over an optional project .env file.
package env

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Variables read by blazerun.
const (
	// BinaryVar overrides the configured build tool path.
	BinaryVar = "BLAZERUN_BINARY"
	// FlagsVar holds whitespace-separated base flags appended after project flags.
	FlagsVar = "BLAZERUN_FLAGS"
)

// Lookup reads a variable, reporting whether it is set.
type Lookup func(key string) (string, bool)

// Load returns a Lookup that consults the process environment first and the
// .env file in root second. The process environment is never modified.
// A missing .env file is not an error.
func Load(root string) (Lookup, error) {
	path := filepath.Join(root, domain.EnvFileName)

	file, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.LookupEnv, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrEnvFileLoadFailed.Error()), "path", path)
	}

	return Layered(os.LookupEnv, FromMap(file)), nil
}

// FromMap returns a Lookup backed by m.
func FromMap(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// Layered returns a Lookup that tries each layer in order.
func Layered(layers ...Lookup) Lookup {
	return func(key string) (string, bool) {
		for _, l := range layers {
			if v, ok := l(key); ok {
				return v, true
			}
		}
		return "", false
	}
}
