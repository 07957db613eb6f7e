package resolver_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/engine/resolver"
)

func noCapture(_ context.Context, _ string, _ []string) (string, error) {
	return "", zerr.New("no substitution expected in this test")
}

func TestResolve_ForwardReference(t *testing.T) {
	// "a" references "b" even though "a" sorts first; dependency order must
	// win over name order.
	table, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"a": "{b}X",
		"b": "Y",
	})
	require.NoError(t, err)

	a, ok := table.Lookup("a")
	require.True(t, ok)
	assert.Equal(t, "YX", a)
}

func TestResolve_Chain(t *testing.T) {
	table, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"bin":     "build/{name}",
		"name":    "{project}-cli",
		"flags":   "-o {bin}",
		"project": "coyote",
	})
	require.NoError(t, err)

	flags, _ := table.Lookup("flags")
	assert.Equal(t, "-o build/coyote-cli", flags)
}

func TestResolve_Names_Sorted(t *testing.T) {
	table, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"zeta":  "1",
		"alpha": "2",
		"mid":   "3",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, table.Names())
}

func TestResolve_Cycle(t *testing.T) {
	_, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"a": "{b}",
		"b": "{a}",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrVariableCycle)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)
	assert.Equal(t, "a -> b -> a", zErr.Metadata()["cycle"])
}

func TestResolve_SelfCycle(t *testing.T) {
	_, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"a": "prefix {a}",
	})
	require.ErrorIs(t, err, domain.ErrVariableCycle)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "a -> a", zErr.Metadata()["cycle"])
}

func TestResolve_Undeclared(t *testing.T) {
	_, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"a": "{missing}",
	})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnresolvedVariable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	meta := zErr.Metadata()
	assert.Equal(t, "missing", meta["variable"])
	assert.Equal(t, "a", meta["referenced_by"])
}

func TestResolve_UndeclaredSuggestion(t *testing.T) {
	_, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"target": "hello",
		"out":    "-o{tagret}",
	})
	require.ErrorIs(t, err, domain.ErrUnresolvedVariable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "target", zErr.Metadata()["suggestion"])
}

func TestResolve_Substitution(t *testing.T) {
	var gotName string
	var gotArgs []string
	capture := func(_ context.Context, name string, args []string) (string, error) {
		gotName = name
		gotArgs = args
		return "abc123\n", nil
	}

	table, err := resolver.New(capture).Resolve(t.Context(), map[string]string{
		"rev": "prefix `git rev-parse --short HEAD` suffix",
	})
	require.NoError(t, err)

	rev, _ := table.Lookup("rev")
	assert.Equal(t, "prefix abc123 suffix", rev)
	assert.Equal(t, "git", gotName)
	assert.Equal(t, []string{"rev-parse", "--short", "HEAD"}, gotArgs)
}

func TestResolve_SubstitutionSeesVariables(t *testing.T) {
	capture := func(_ context.Context, name string, args []string) (string, error) {
		return name + " " + strings.Join(args, " "), nil
	}

	table, err := resolver.New(capture).Resolve(t.Context(), map[string]string{
		"file": "notes.txt",
		"head": "`cat {file}`",
	})
	require.NoError(t, err)

	head, _ := table.Lookup("head")
	assert.Equal(t, "cat notes.txt", head)
}

func TestResolve_SplicedBacktickIsLiteral(t *testing.T) {
	// Captured output containing a backtick must come through verbatim
	// when a dependent variable references it, not get re-run.
	var calls int
	capture := func(_ context.Context, _ string, _ []string) (string, error) {
		calls++
		return "tick`tock\n", nil
	}

	table, err := resolver.New(capture).Resolve(t.Context(), map[string]string{
		"raw":  "`emit`",
		"line": "<{raw}>",
	})
	require.NoError(t, err)

	line, _ := table.Lookup("line")
	assert.Equal(t, "<tick`tock>", line)
	assert.Equal(t, 1, calls)
}

func TestResolve_SplicedBracesAreLiteral(t *testing.T) {
	table, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"glob":    "{{a,b}",
		"pattern": "src/{glob}.c",
	})
	require.NoError(t, err)

	pattern, _ := table.Lookup("pattern")
	assert.Equal(t, "src/{a,b}.c", pattern)
}

func TestResolve_SubstitutionFailure(t *testing.T) {
	capture := func(_ context.Context, _ string, _ []string) (string, error) {
		return "", zerr.With(domain.ErrCommandFailed, "exit_code", 2)
	}

	_, err := resolver.New(capture).Resolve(t.Context(), map[string]string{
		"v": "`false`",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCommandFailed)
}

func TestResolve_UnterminatedSubstitution(t *testing.T) {
	_, err := resolver.New(noCapture).Resolve(t.Context(), map[string]string{
		"v": "open `echo never closed",
	})
	assert.ErrorIs(t, err, domain.ErrMalformedTemplate)
}

func TestExpandProject(t *testing.T) {
	project := &domain.Project{
		Name:      "hello",
		Variables: map[string]string{"target": "hello"},
		Targets: []domain.Target{{
			Name: "main",
			Commands: []domain.Command{{
				Command:   "gcc",
				Arguments: []string{"hello.c", "-o{target}"},
				RunIf:     &domain.Condition{Kind: domain.KindModified, Operands: []string{"{target}.c"}},
			}},
		}},
	}

	res := resolver.New(noCapture)
	table, err := res.Resolve(t.Context(), project.Variables)
	require.NoError(t, err)

	expanded, err := res.ExpandProject(project, table)
	require.NoError(t, err)

	cmd := expanded.Targets[0].Commands[0]
	assert.Equal(t, "gcc", cmd.Command)
	assert.Equal(t, []string{"hello.c", "-ohello"}, cmd.Arguments)
	require.NotNil(t, cmd.RunIf)
	assert.Equal(t, "hello.c", cmd.RunIf.Path())

	// The input project is left untouched.
	assert.Equal(t, []string{"hello.c", "-o{target}"}, project.Targets[0].Commands[0].Arguments)
}

func TestExpandProject_UnresolvedArgument(t *testing.T) {
	project := &domain.Project{
		Name:      "p",
		Variables: map[string]string{},
		Targets: []domain.Target{{
			Name:     "broken",
			Commands: []domain.Command{{Command: "true", Arguments: []string{"{nope}"}}},
		}},
	}

	res := resolver.New(noCapture)
	table, err := res.Resolve(t.Context(), project.Variables)
	require.NoError(t, err)

	_, err = res.ExpandProject(project, table)
	require.ErrorIs(t, err, domain.ErrUnresolvedVariable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "broken", zErr.Metadata()["target"])
}
