package config

// projectDTO mirrors the on-disk shape of a coyote build description.
// JSON is the documented format; the same schema is accepted from YAML.
type projectDTO struct {
	ProjectName string            `json:"project_name" yaml:"project_name"`
	Variables   map[string]string `json:"variables" yaml:"variables"`
	Executables []executableDTO   `json:"executables" yaml:"executables"`
}

type executableDTO struct {
	Target   string       `json:"target" yaml:"target"`
	Commands []commandDTO `json:"commands" yaml:"commands"`
}

type commandDTO struct {
	Command   string   `json:"command" yaml:"command"`
	Arguments []string `json:"arguments" yaml:"arguments"`
	RunIf     []string `json:"run_if" yaml:"run_if"`
}
