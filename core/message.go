package core

import (
	"go.uber.org/atomic"
)

// Kind tells how a Message produces its text.
type Kind uint8

const (
	// KindCallback messages call a func() string.
	KindCallback Kind = iota + 1
	// KindTemplate messages render a composite template with arguments.
	KindTemplate
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindCallback:
		return "callback"
	case KindTemplate:
		return "template"
	default:
		return "unknown"
	}
}

// Message is log text whose computation is deferred until a handler asks
// for it, and memoized afterwards.
//
// A Message is created by the Logger for one accepted call and is never
// reused. It may be read from any number of goroutines. The first
// computed value that is published wins; every later Text call returns
// that same string. Goroutines racing on the first read may each run the
// computation, so callbacks and template arguments must be deterministic.
//
// Message must not be copied after first use.
type Message struct {
	kind    Kind
	fn      func() string
	tmpl    string
	culture Culture
	args    []any

	text atomic.Pointer[string]
}

// NewCallbackMessage returns a Message whose text is fn(). fn is not
// called until the first Text call.
func NewCallbackMessage(fn func() string) *Message {
	return &Message{kind: KindCallback, fn: fn}
}

// NewTemplateMessage returns a Message rendering tmpl with args under
// culture (nil means Invariant). args is retained, not copied; callers
// must not mutate it afterwards.
func NewTemplateMessage(culture Culture, tmpl string, args []any) *Message {
	return &Message{kind: KindTemplate, tmpl: tmpl, culture: culture, args: args}
}

// Kind reports how the message produces its text.
func (m *Message) Kind() Kind {
	return m.kind
}

// Text returns the message text, computing it on first use.
//
// A malformed template panics with a *FormatError and a panicking
// callback propagates its panic; in both cases nothing is cached and the
// next call tries again. Use Materialize to receive these as errors.
func (m *Message) Text() string {
	if p := m.text.Load(); p != nil {
		return *p
	}

	s := m.compute()
	if m.text.CompareAndSwap(nil, &s) {
		return s
	}
	// Lost the race: return the published value, not our own copy.
	return *m.text.Load()
}

// String implements fmt.Stringer, so fmt-based sinks render the message
// lazily.
func (m *Message) String() string {
	return m.Text()
}

func (m *Message) compute() string {
	switch m.kind {
	case KindCallback:
		return m.fn()
	case KindTemplate:
		// Nothing to substitute: the template is the text.
		if m.culture == nil && len(m.args) == 0 {
			return m.tmpl
		}
		s, err := FormatTemplate(m.culture, m.tmpl, m.args)
		if err != nil {
			panic(err)
		}
		return s
	default:
		return ""
	}
}
