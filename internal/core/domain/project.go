package domain

// ConfigFileName is the name of the project configuration file.
const ConfigFileName = "blazerun.yaml"

// EnvFileName is the optional dotenv file loaded from the project root.
const EnvFileName = ".env"

// Project is the loaded project configuration.
type Project struct {
	// Root is the directory containing the config file.
	Root string
	// ToolPath is the configured build tool executable, if any.
	ToolPath string
	// Verb is the default command verb (e.g. "test").
	Verb string
	// Flags are project-level base flags, in declaration order.
	Flags []string
	// Kinds registers additional kinds and their launch class.
	Kinds map[Kind]KindClass
	// Targets maps labels to their declared kind.
	Targets map[Label]Kind
}

// NewProject returns an empty project rooted at root.
func NewProject(root string) *Project {
	return &Project{
		Root:    root,
		Kinds:   make(map[Kind]KindClass),
		Targets: make(map[Label]Kind),
	}
}
