package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// FormatError reports a template that could not be rendered.
type FormatError struct {
	Template string
	// Offset is the byte offset in Template where the problem was found.
	Offset int
	Reason string
	// Err is the culture error for value formatting failures, nil otherwise.
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("core: format %q at offset %d: %s: %v", e.Template, e.Offset, e.Reason, e.Err)
	}
	return fmt.Sprintf("core: format %q at offset %d: %s", e.Template, e.Offset, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// FormatTemplate renders a composite template such as "hello {0}" with
// positional args. Placeholders take the form {index[,alignment][:format]};
// "{{" and "}}" produce literal braces. A nil culture means Invariant.
//
// Placeholders referring to a missing argument are an error. Arguments
// that no placeholder references are ignored.
func FormatTemplate(c Culture, tmpl string, args []any) (string, error) {
	if c == nil {
		c = Invariant
	}

	var b strings.Builder
	b.Grow(len(tmpl) + 16*len(args))

	for i := 0; i < len(tmpl); {
		ch := tmpl[i]
		switch ch {
		case '{':
			if i+1 < len(tmpl) && tmpl[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(tmpl[i+1:], '}')
			if end < 0 {
				return "", &FormatError{Template: tmpl, Offset: i, Reason: "unclosed placeholder"}
			}
			end += i + 1
			if err := writeHole(&b, c, tmpl, i, tmpl[i+1:end], args); err != nil {
				return "", err
			}
			i = end + 1
		case '}':
			if i+1 < len(tmpl) && tmpl[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", &FormatError{Template: tmpl, Offset: i, Reason: "unmatched '}'"}
		default:
			next := strings.IndexAny(tmpl[i:], "{}")
			if next < 0 {
				b.WriteString(tmpl[i:])
				i = len(tmpl)
				continue
			}
			b.WriteString(tmpl[i : i+next])
			i += next
		}
	}
	return b.String(), nil
}

// maxAlignment bounds the padding width of a placeholder.
const maxAlignment = 1_000_000

// writeHole renders one placeholder body ("0,-5:N2") into b.
func writeHole(b *strings.Builder, c Culture, tmpl string, offset int, hole string, args []any) error {
	spec := ""
	if k := strings.IndexByte(hole, ':'); k >= 0 {
		hole, spec = hole[:k], hole[k+1:]
	}
	align := 0
	if k := strings.IndexByte(hole, ','); k >= 0 {
		a, err := strconv.Atoi(strings.TrimSpace(hole[k+1:]))
		if err != nil {
			return &FormatError{Template: tmpl, Offset: offset, Reason: "invalid alignment"}
		}
		if a <= -maxAlignment || a >= maxAlignment {
			return &FormatError{Template: tmpl, Offset: offset, Reason: "alignment out of range"}
		}
		hole, align = hole[:k], a
	}

	idx, err := strconv.Atoi(strings.TrimSpace(hole))
	if err != nil || idx < 0 {
		return &FormatError{Template: tmpl, Offset: offset, Reason: "invalid placeholder index"}
	}
	if idx >= len(args) {
		return &FormatError{
			Template: tmpl,
			Offset:   offset,
			Reason:   fmt.Sprintf("placeholder {%d} has no argument (got %d)", idx, len(args)),
		}
	}

	s, err := c.FormatValue(args[idx], spec)
	if err != nil {
		return &FormatError{Template: tmpl, Offset: offset, Reason: "cannot format argument " + strconv.Itoa(idx), Err: err}
	}

	pad := abs(align) - utf8.RuneCountInString(s)
	if pad > 0 && align > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteString(s)
	if pad > 0 && align < 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	return nil
}

func abs(i int) int {
	if i < 0 {
		return -i
	}
	return i
}
