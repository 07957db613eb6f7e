// Package domain contains the core model for a coyote build: a project
// with variables, targets, and the gated commands that build them.
package domain

import "strings"

// ConditionKind enumerates the predicate kinds a command can be gated on.
type ConditionKind string

// KindModified gates a command on whether its operand file changed since
// the last successful build that checked it.
const KindModified ConditionKind = "modified"

// Condition is a predicate that decides whether a command executes.
// Operands are raw strings and are template-expanded before evaluation.
type Condition struct {
	Kind     ConditionKind
	Operands []string
}

// Path returns the file-path operand of a modified condition.
func (c *Condition) Path() string {
	return c.Operands[0]
}

// Command is a single process invocation within a target. Command and
// Arguments hold raw values until the resolver expands them.
type Command struct {
	Command   string
	Arguments []string
	RunIf     *Condition
}

// Line renders the command roughly the way a shell prompt would show it.
func (c *Command) Line() string {
	if len(c.Arguments) == 0 {
		return c.Command
	}
	return c.Command + " " + strings.Join(c.Arguments, " ")
}

// Target is a named, ordered list of commands built as one unit.
// Target names need not be unique within a project.
type Target struct {
	Name     string
	Commands []Command
}

// Project is one fully loaded build description. It is immutable after
// loading; the resolver produces an expanded copy rather than mutating it.
type Project struct {
	Name      string
	Variables map[string]string
	Targets   []Target
}
