// Package template implements placeholder expansion for raw configuration
// strings. The grammar is a single left-to-right scan: "{name}" substitutes
// the resolved variable "name", "{{" emits a literal "{", and "}" outside a
// placeholder passes through unchanged.
package template

import (
	"strings"

	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
)

// Expand rewrites raw using the resolved variable table. It is a pure
// string rewrite: identical inputs always produce identical output.
func Expand(raw string, table map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		if ch != '{' {
			b.WriteByte(ch)
			continue
		}
		if i+1 < len(raw) && raw[i+1] == '{' {
			b.WriteByte('{')
			i++
			continue
		}

		end := strings.IndexByte(raw[i+1:], '}')
		if end < 0 {
			return "", zerr.With(domain.ErrMalformedTemplate, "raw", raw)
		}

		name := raw[i+1 : i+1+end]
		value, ok := table[name]
		if !ok {
			return "", unresolvedError(name, raw, keys(table))
		}
		b.WriteString(value)
		i += end + 1
	}

	return b.String(), nil
}

// Refs returns the placeholder names referenced by raw, in order of first
// appearance, without expanding anything. It reports the same
// MalformedTemplate errors Expand would.
func Refs(raw string) ([]string, error) {
	var refs []string
	seen := make(map[string]bool)

	for i := 0; i < len(raw); i++ {
		if raw[i] != '{' {
			continue
		}
		if i+1 < len(raw) && raw[i+1] == '{' {
			i++
			continue
		}

		end := strings.IndexByte(raw[i+1:], '}')
		if end < 0 {
			return nil, zerr.With(domain.ErrMalformedTemplate, "raw", raw)
		}

		name := raw[i+1 : i+1+end]
		if !seen[name] {
			seen[name] = true
			refs = append(refs, name)
		}
		i += end + 1
	}

	return refs, nil
}

func unresolvedError(name, raw string, declared []string) error {
	err := zerr.With(zerr.With(domain.ErrUnresolvedVariable, "variable", name), "raw", raw)
	if suggestion := Suggest(name, declared); suggestion != "" {
		err = zerr.With(err, "suggestion", suggestion)
	}
	return err
}

func keys(table map[string]string) []string {
	ks := make([]string, 0, len(table))
	for k := range table {
		ks = append(ks, k)
	}
	return ks
}
