package config

// Configfile represents the structure of the blazerun.yaml configuration file.
type Configfile struct {
	Version string            `yaml:"version"`
	Binary  string            `yaml:"binary"`
	Command string            `yaml:"command"`
	Flags   []string          `yaml:"flags"`
	Kinds   map[string]string `yaml:"kinds"`
	Targets map[string]string `yaml:"targets"`
}
