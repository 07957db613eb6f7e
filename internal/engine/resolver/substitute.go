package resolver

import (
	"context"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.trai.ch/zerr"

	"github.com/Pougher/coyote/internal/core/domain"
	"github.com/Pougher/coyote/internal/engine/template"
)

// expandValue expands one raw variable value: literal segments are
// template-expanded, and every `cmd args` segment is replaced with the
// captured stdout of the command, trailing newlines stripped. Backticks
// are recognized in the raw value only; text spliced in by expansion or
// capture is never re-scanned, so a resolved value may safely contain
// backticks or braces.
func (r *Resolver) expandValue(ctx context.Context, raw string, table map[string]string) (string, error) {
	var b strings.Builder
	rest := raw
	for {
		open := strings.IndexByte(rest, '`')
		if open < 0 {
			expanded, err := template.Expand(rest, table)
			if err != nil {
				return "", err
			}
			b.WriteString(expanded)
			return b.String(), nil
		}

		expanded, err := template.Expand(rest[:open], table)
		if err != nil {
			return "", err
		}
		b.WriteString(expanded)

		tail := rest[open+1:]
		closing := strings.IndexByte(tail, '`')
		if closing < 0 {
			return "", zerr.With(domain.ErrMalformedTemplate, "raw", raw)
		}

		command, err := template.Expand(strings.TrimSpace(tail[:closing]), table)
		if err != nil {
			return "", err
		}
		out, err := r.run(ctx, command, raw)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
		rest = tail[closing+1:]
	}
}

func (r *Resolver) run(ctx context.Context, command, raw string) (string, error) {
	if r.capture == nil || command == "" {
		return "", zerr.With(zerr.With(domain.ErrMalformedTemplate, "raw", raw), "command", command)
	}

	words, err := shellquote.Split(command)
	if err != nil || len(words) == 0 {
		return "", zerr.With(zerr.With(domain.ErrMalformedTemplate, "raw", raw), "command", command)
	}

	out, err := r.capture(ctx, words[0], words[1:])
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "command substitution failed"), "command", command)
	}

	return strings.TrimRight(out, "\n"), nil
}
