// Package resolver builds the fully expanded variable table for a project
// and pre-expands every string the execution engine will consume.
//
// Variables may reference each other by name, in any declaration order.
// Resolution is dependency-driven: each variable is a node, and a reference
// {b} inside a's raw value is an edge a -> b. A depth-first walk with
// memoization resolves dependencies before dependents and reports cycles
// with their full path. Declaration order never affects results; sorted
// order is used only for deterministic diagnostics and enumeration.
package resolver

import (
	"context"
	"sort"
	"strings"

	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/engine/template"
)

// CaptureFunc runs a command and returns its captured stdout. The resolver
// uses it for backtick command substitution inside variable values.
type CaptureFunc func(ctx context.Context, name string, args []string) (string, error)

// Resolver expands a project's variables and raw strings.
type Resolver struct {
	capture CaptureFunc
}

// New creates a Resolver. capture may be nil, in which case command
// substitution fails with a malformed template error.
func New(capture CaptureFunc) *Resolver {
	return &Resolver{capture: capture}
}

// Table is the fully resolved variable table.
type Table struct {
	values map[string]string
	names  []string
}

// Lookup returns the resolved value of a variable.
func (t *Table) Lookup(name string) (string, bool) {
	v, ok := t.values[name]
	return v, ok
}

// Names returns the variable names in lexicographically ascending order.
func (t *Table) Names() []string {
	return t.names
}

// Map returns the resolved table as a plain mapping for the template engine.
func (t *Table) Map() map[string]string {
	return t.values
}

const (
	unvisited = iota
	visiting
	resolved
)

// Resolve expands every variable in raw. It fails with a VariableCycle
// error on mutual or self reference, and with an UnresolvedVariable error
// when a value references an undeclared name.
func (r *Resolver) Resolve(ctx context.Context, raw map[string]string) (*Table, error) {
	t := &Table{
		values: make(map[string]string, len(raw)),
		names:  sortedKeys(raw),
	}
	state := make(map[string]int, len(raw))
	var path []string

	var visit func(name string) error
	visit = func(name string) error {
		state[name] = visiting
		path = append(path, name)

		value := raw[name]
		refs, err := template.Refs(value)
		if err != nil {
			return zerr.With(err, "variable", name)
		}

		for _, ref := range refs {
			switch state[ref] {
			case visiting:
				return cycleError(path, ref)
			case resolved:
				continue
			}
			if _, declared := raw[ref]; !declared {
				return undeclaredError(name, ref, value, t.names)
			}
			if err := visit(ref); err != nil {
				return err
			}
		}

		expanded, err := r.expandValue(ctx, value, t.values)
		if err != nil {
			return zerr.With(err, "variable", name)
		}

		t.values[name] = expanded
		state[name] = resolved
		path = path[:len(path)-1]
		return nil
	}

	// Sorted roots keep diagnostics stable regardless of map iteration.
	for _, name := range t.names {
		if state[name] == unvisited {
			if err := visit(name); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

// ExpandProject returns a copy of project with every command, argument, and
// condition operand expanded against the resolved table. Nothing has been
// spawned yet when this runs, so any failure aborts before the first
// command.
func (r *Resolver) ExpandProject(project *domain.Project, t *Table) (*domain.Project, error) {
	out := &domain.Project{
		Name:      project.Name,
		Variables: t.Map(),
		Targets:   make([]domain.Target, len(project.Targets)),
	}

	for ti, target := range project.Targets {
		rt := domain.Target{
			Name:     target.Name,
			Commands: make([]domain.Command, len(target.Commands)),
		}
		for ci, cmd := range target.Commands {
			expanded, err := r.expandCommand(&cmd, t)
			if err != nil {
				return nil, zerr.With(err, "target", target.Name)
			}
			rt.Commands[ci] = *expanded
		}
		out.Targets[ti] = rt
	}

	return out, nil
}

func (r *Resolver) expandCommand(cmd *domain.Command, t *Table) (*domain.Command, error) {
	name, err := template.Expand(cmd.Command, t.Map())
	if err != nil {
		return nil, err
	}

	args := make([]string, len(cmd.Arguments))
	for i, arg := range cmd.Arguments {
		if args[i], err = template.Expand(arg, t.Map()); err != nil {
			return nil, err
		}
	}

	out := &domain.Command{Command: name, Arguments: args}
	if cmd.RunIf != nil {
		operands := make([]string, len(cmd.RunIf.Operands))
		for i, op := range cmd.RunIf.Operands {
			if operands[i], err = template.Expand(op, t.Map()); err != nil {
				return nil, err
			}
		}
		out.RunIf = &domain.Condition{Kind: cmd.RunIf.Kind, Operands: operands}
	}

	return out, nil
}

func cycleError(path []string, ref string) error {
	start := 0
	for i, node := range path {
		if node == ref {
			start = i
			break
		}
	}
	cycle := strings.Join(append(path[start:len(path):len(path)], ref), " -> ")
	return zerr.With(domain.ErrVariableCycle, "cycle", cycle)
}

func undeclaredError(name, ref, raw string, declared []string) error {
	err := zerr.With(zerr.With(zerr.With(
		domain.ErrUnresolvedVariable,
		"variable", ref),
		"raw", raw),
		"referenced_by", name)
	if suggestion := template.Suggest(ref, declared); suggestion != "" {
		err = zerr.With(err, "suggestion", suggestion)
	}
	return err
}

func sortedKeys(m map[string]string) []string {
	ks := make([]string, 0, len(m))
	for k := range m {
		ks = append(ks, k)
	}
	sort.Strings(ks)
	return ks
}
