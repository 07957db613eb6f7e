// Package config loads coyote build descriptions.
package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"

	"github.com/Pougher/coyote/internal/core/domain"
)

// DefaultFile is the build description read when no recipe is named.
const DefaultFile = "coyote.json"

const recipePrefix = "coyote-"

// PathFor returns the build description path for a recipe name. An empty
// recipe selects the default file; a recipe R selects coyote-R.json.
func PathFor(dir, recipe string) string {
	if recipe == "" {
		return filepath.Join(dir, DefaultFile)
	}
	return filepath.Join(dir, recipePrefix+recipe+".json")
}

// FileLoader implements ports.ConfigLoader for JSON and YAML files.
type FileLoader struct{}

// Load reads the build description at path and maps it onto the domain
// model. If the JSON file does not exist but a .yaml sibling does, the
// YAML file is read instead.
func (l *FileLoader) Load(path string) (*domain.Project, error) {
	data, path, err := readConfig(path)
	if err != nil {
		return nil, err
	}

	var dto projectDTO
	if strings.HasSuffix(path, ".yaml") {
		err = yaml.Unmarshal(data, &dto)
	} else {
		err = json.Unmarshal(data, &dto)
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "malformed build description"), "path", path)
	}

	project, err := mapProject(&dto)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return project, nil
}

func readConfig(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err == nil {
		return data, path, nil
	}

	if errors.Is(err, fs.ErrNotExist) && strings.HasSuffix(path, ".json") {
		alt := strings.TrimSuffix(path, ".json") + ".yaml"
		if altData, altErr := os.ReadFile(alt); altErr == nil { //nolint:gosec // derived from user path
			return altData, alt, nil
		}
	}

	return nil, "", zerr.With(zerr.Wrap(err, "failed to read build description"), "path", path)
}

// mapProject validates the raw DTO once, at load time, so the engine never
// re-checks shape during execution. Duplicate variable keys collapse
// last-write-wins in the decoder; duplicate target labels are tolerated.
func mapProject(dto *projectDTO) (*domain.Project, error) {
	project := &domain.Project{
		Name:      dto.ProjectName,
		Variables: dto.Variables,
		Targets:   make([]domain.Target, len(dto.Executables)),
	}
	if project.Variables == nil {
		project.Variables = map[string]string{}
	}

	for ti, exe := range dto.Executables {
		target := domain.Target{
			Name:     exe.Target,
			Commands: make([]domain.Command, len(exe.Commands)),
		}
		for ci, cmd := range exe.Commands {
			condition, err := mapCondition(cmd.RunIf, exe.Target)
			if err != nil {
				return nil, err
			}
			target.Commands[ci] = domain.Command{
				Command:   cmd.Command,
				Arguments: cmd.Arguments,
				RunIf:     condition,
			}
		}
		project.Targets[ti] = target
	}

	return project, nil
}

func mapCondition(runIf []string, target string) (*domain.Condition, error) {
	if runIf == nil {
		return nil, nil
	}
	if len(runIf) == 0 {
		return nil, zerr.With(zerr.New("no condition specifier for run_if"), "target", target)
	}

	kind := domain.ConditionKind(runIf[0])
	if kind != domain.KindModified {
		return nil, zerr.With(zerr.With(domain.ErrUnknownCondition, "condition", runIf[0]), "target", target)
	}
	if len(runIf) != 2 {
		return nil, zerr.With(zerr.New("condition 'modified' takes exactly one operand: <path>"), "target", target)
	}

	return &domain.Condition{Kind: kind, Operands: runIf[1:]}, nil
}
