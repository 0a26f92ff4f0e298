package sloghandler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/philipp01105/nlogfacade/core"
	"github.com/philipp01105/nlogfacade/handler"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// handler.Handler, so code written against log/slog can log through any
// nlogfacade backend.
//
// The record message and its attributes become a deferred message: they
// are rendered as "msg key=value ..." only if the backend asks for the
// text.
type SlogHandler struct {
	handler  handler.Handler
	dispatch handler.DispatchFunc
	attrs    []slog.Attr
	group    string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h handler.Handler) *SlogHandler {
	return &SlogHandler{
		handler:  h,
		dispatch: handler.Bind(h),
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.handler.Enabled(FromSlog(level))
}

// Handle passes the record to the wrapped handler. An attribute holding
// an error becomes the entry error.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	r := record.Clone()
	var entryErr error
	r.Attrs(func(a slog.Attr) bool {
		if err, ok := a.Value.Resolve().Any().(error); ok && entryErr == nil {
			entryErr = err
		}
		return true
	})

	attrs, group := s.attrs, s.group
	msg := core.NewCallbackMessage(func() string {
		var b strings.Builder
		b.WriteString(r.Message)
		for _, a := range attrs {
			appendAttr(&b, "", a)
		}
		r.Attrs(func(a slog.Attr) bool {
			appendAttr(&b, group, a)
			return true
		})
		return b.String()
	})

	s.dispatch(FromSlog(r.Level), msg, entryErr)
	return nil
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return s
	}
	newAttrs := make([]slog.Attr, len(s.attrs), len(s.attrs)+len(attrs))
	copy(newAttrs, s.attrs)
	for _, a := range attrs {
		if s.group != "" {
			a.Key = s.group + "." + a.Key
		}
		newAttrs = append(newAttrs, a)
	}
	return &SlogHandler{
		handler:  s.handler,
		dispatch: s.dispatch,
		attrs:    newAttrs,
		group:    s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler:  s.handler,
		dispatch: s.dispatch,
		attrs:    s.attrs,
		group:    newGroup,
	}
}

// appendAttr writes " key=value", flattening groups with a dot prefix.
func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	} else if key == "" {
		key = prefix
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
		return
	}

	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	fmt.Fprint(b, a.Value.Any())
}
