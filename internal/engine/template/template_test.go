package template_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/engine/template"
)

func TestExpand(t *testing.T) {
	table := map[string]string{
		"target": "hello",
		"cc":     "gcc",
		"empty":  "",
	}

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "no placeholders", raw: "plain string", want: "plain string"},
		{name: "single placeholder", raw: "-o{target}", want: "-ohello"},
		{name: "placeholder only", raw: "{cc}", want: "gcc"},
		{name: "adjacent placeholders", raw: "{cc}{target}", want: "gcchello"},
		{name: "empty value", raw: "a{empty}b", want: "ab"},
		{name: "escaped brace", raw: "{{target}", want: "{target}"},
		{name: "double escape", raw: "{{{{", want: "{{"},
		{name: "escape then placeholder", raw: "{{{cc}", want: "{gcc"},
		{name: "closing brace literal", raw: "a}b", want: "a}b"},
		{name: "empty string", raw: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := template.Expand(tt.raw, table)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Expansion of a placeholder-free string is the identity, for any table.
func TestExpand_Idempotence(t *testing.T) {
	tables := []map[string]string{
		nil,
		{},
		{"a": "1", "b": "2"},
	}
	for _, table := range tables {
		got, err := template.Expand("no placeholders here }", table)
		require.NoError(t, err)
		assert.Equal(t, "no placeholders here }", got)
	}
}

// A string with every "{" doubled expands to the original with no lookups.
func TestExpand_EscapedNeverLooksUp(t *testing.T) {
	got, err := template.Expand("{{a}} and {{b}}", nil)
	require.NoError(t, err)
	assert.Equal(t, "{a} and {b}", got)
}

func TestExpand_UnresolvedVariable(t *testing.T) {
	_, err := template.Expand("build/{missing}", map[string]string{"present": "x"})
	require.Error(t, err)
	require.ErrorIs(t, err, domain.ErrUnresolvedVariable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok, "expected *zerr.Error, got %T", err)

	meta := zErr.Metadata()
	assert.Equal(t, "missing", meta["variable"])
	assert.Equal(t, "build/{missing}", meta["raw"])
}

func TestExpand_Suggestion(t *testing.T) {
	_, err := template.Expand("{tagret}", map[string]string{"target": "hello"})
	require.ErrorIs(t, err, domain.ErrUnresolvedVariable)

	zErr, ok := err.(*zerr.Error)
	require.True(t, ok)
	assert.Equal(t, "target", zErr.Metadata()["suggestion"])
}

func TestExpand_MalformedTemplate(t *testing.T) {
	for _, raw := range []string{"{", "{unclosed", "ok {a} then {"} {
		_, err := template.Expand(raw, map[string]string{"a": "1"})
		require.Error(t, err, "raw %q", raw)
		assert.True(t, errors.Is(err, domain.ErrMalformedTemplate), "raw %q", raw)
	}
}

func TestRefs(t *testing.T) {
	refs, err := template.Refs("{a}/{b} {{not}} {a}")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, refs)

	refs, err = template.Refs("nothing here")
	require.NoError(t, err)
	assert.Empty(t, refs)

	_, err = template.Refs("{open")
	assert.ErrorIs(t, err, domain.ErrMalformedTemplate)
}
