package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/blazerun/internal/adapters/config"
	"go.trai.ch/blazerun/internal/core/domain"
	"go.trai.ch/blazerun/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestLoad_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
binary: tools/blaze
command: test
flags: ["--flag1", "--flag2", "--flag1"]
kinds:
  my_custom_test: test
  my_app: binary
targets:
  "//label:rule": java_test
  "//label:java_binary_rule": java_binary
`)

	project, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, rootDir, project.Root)
	assert.Equal(t, filepath.Join(rootDir, "tools", "blaze"), project.ToolPath)
	assert.Equal(t, "test", project.Verb)
	assert.Equal(t, []string{"--flag1", "--flag2", "--flag1"}, project.Flags)
	assert.Equal(t, map[domain.Kind]domain.KindClass{
		"my_custom_test": domain.ClassTest,
		"my_app":         domain.ClassBinary,
	}, project.Kinds)
	assert.Equal(t, domain.KindJavaTest, project.Targets[domain.NewLabel("//label:rule")])
	assert.Equal(t, domain.KindJavaBinary, project.Targets[domain.NewLabel("//label:java_binary_rule")])
}

func TestLoad_WalksUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `
binary: /usr/bin/blaze
`)
	nested := filepath.Join(rootDir, "java", "com", "example")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := config.NewLoader(mockLogger).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, rootDir, project.Root)
	assert.Equal(t, "/usr/bin/blaze", project.ToolPath)
}

func TestLoad_NoConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	project, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, rootDir, project.Root)
	assert.Empty(t, project.ToolPath)
	assert.Empty(t, project.Flags)
	assert.Empty(t, project.Targets)
}

func TestLoad_BareBinaryNameIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `binary: bazel`)

	project, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, "bazel", project.ToolPath)
}

func TestLoad_UnsupportedVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, `version: "2"`)

	_, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		errContains string
		errIs       error
	}{
		{
			name:        "Invalid YAML",
			content:     "flags: [unclosed",
			errContains: domain.ErrConfigParseFailed.Error(),
		},
		{
			name: "Invalid kind class",
			content: `
kinds:
  my_lib: library
`,
			errIs: domain.ErrInvalidKindClass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			rootDir := t.TempDir()
			createFile(t, rootDir, domain.ConfigFileName, tt.content)

			project, err := config.NewLoader(mockLogger).Load(rootDir)
			require.Error(t, err)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				require.ErrorContains(t, err, tt.errContains)
			}
			assert.Nil(t, project)
		})
	}
}

func TestLoad_UnreadableConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	rootDir := t.TempDir()
	// A directory named like the config file is skipped, not read.
	require.NoError(t, os.Mkdir(filepath.Join(rootDir, domain.ConfigFileName), 0o750))

	project, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
	assert.Equal(t, rootDir, project.Root)
}

// Helpers.

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
