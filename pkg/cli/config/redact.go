package config

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// signedURLPattern matches URLs carrying a query string, such as pre-signed asset links
var signedURLPattern = regexp.MustCompile(`^https?://[^?\s]+\?\S+`)

func newRedactor() func(groups []string, a slog.Attr) slog.Attr {
	return masq.New(masq.WithRegex(signedURLPattern))
}

// redactHandler applies a ReplaceAttr function to every attribute, including
// attributes nested in groups and values resolved from slog.LogValuer.
// clog has no ReplaceAttr hook of its own, so the console handler is wrapped.
type redactHandler struct {
	next    slog.Handler
	replace func(groups []string, a slog.Attr) slog.Attr
	groups  []string
}

func newRedactHandler(next slog.Handler, replace func(groups []string, a slog.Attr) slog.Attr) *redactHandler {
	return &redactHandler{next: next, replace: replace}
}

func (h *redactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *redactHandler) Handle(ctx context.Context, r slog.Record) error {
	nr := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		nr.AddAttrs(h.redact(h.groups, a))
		return true
	})
	return h.next.Handle(ctx, nr)
}

func (h *redactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	redacted := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		redacted[i] = h.redact(h.groups, a)
	}
	return &redactHandler{
		next:    h.next.WithAttrs(redacted),
		replace: h.replace,
		groups:  h.groups,
	}
}

func (h *redactHandler) WithGroup(name string) slog.Handler {
	return &redactHandler{
		next:    h.next.WithGroup(name),
		replace: h.replace,
		groups:  append(append([]string(nil), h.groups...), name),
	}
}

func (h *redactHandler) redact(groups []string, a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()
	if a.Value.Kind() == slog.KindGroup {
		members := a.Value.Group()
		out := make([]slog.Attr, len(members))
		sub := append(append([]string(nil), groups...), a.Key)
		for i, m := range members {
			out[i] = h.redact(sub, m)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(out...)}
	}
	return h.replace(groups, a)
}
