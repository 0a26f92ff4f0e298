package core

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Culture renders a single placeholder value of a message template.
//
// spec is the format string that followed ':' inside the placeholder
// ("N2" for "{0:N2}"), empty when the placeholder had none. An error
// returned here surfaces from Message.Text as a *FormatError.
type Culture interface {
	FormatValue(v any, spec string) (string, error)
}

// CultureFunc adapts a function to the Culture interface.
type CultureFunc func(v any, spec string) (string, error)

// FormatValue calls f(v, spec).
func (f CultureFunc) FormatValue(v any, spec string) (string, error) {
	return f(v, spec)
}

// Invariant is the locale-neutral default culture.
//
// Supported numeric specs (case-insensitive letter, optional precision):
// D (integer, zero padded), F (fixed point), N (fixed point with ','
// grouping), E (exponent), G (shortest), X (hex, case follows the letter)
// and P (percent). time.Time values treat any spec as a Go layout.
// Other values ignore the format string and render with fmt.
var Invariant Culture = invariantCulture{}

type invariantCulture struct{}

func (invariantCulture) FormatValue(v any, spec string) (string, error) {
	if v == nil {
		return "", nil
	}
	if spec == "" {
		return fmt.Sprint(v), nil
	}
	if t, ok := v.(time.Time); ok {
		return t.Format(spec), nil
	}
	if !isNumber(v) {
		return fmt.Sprint(v), nil
	}

	letter, prec, err := parseNumericSpec(spec)
	if err != nil {
		return "", err
	}

	switch letter {
	case 'D', 'd':
		i, ok := toInt64(v)
		if !ok {
			return "", fmt.Errorf("spec %q requires an integer, got %T", spec, v)
		}
		s := strconv.FormatInt(abs64(i), 10)
		if prec > len(s) {
			s = strings.Repeat("0", prec-len(s)) + s
		}
		if i < 0 {
			s = "-" + s
		}
		return s, nil
	case 'X', 'x':
		i, ok := toInt64(v)
		if !ok {
			return "", fmt.Errorf("spec %q requires an integer, got %T", spec, v)
		}
		s := strconv.FormatUint(uint64(i), 16)
		if letter == 'X' {
			s = strings.ToUpper(s)
		}
		if prec > len(s) {
			s = strings.Repeat("0", prec-len(s)) + s
		}
		return s, nil
	case 'F', 'f':
		return strconv.FormatFloat(toFloat64(v), 'f', precOr(prec, 2), 64), nil
	case 'N', 'n':
		return groupThousands(strconv.FormatFloat(toFloat64(v), 'f', precOr(prec, 2), 64)), nil
	case 'E', 'e':
		s := strconv.FormatFloat(toFloat64(v), 'e', precOr(prec, 6), 64)
		if letter == 'E' {
			s = strings.ToUpper(s)
		}
		return s, nil
	case 'G', 'g':
		return strconv.FormatFloat(toFloat64(v), 'g', precOr(prec, -1), 64), nil
	case 'P', 'p':
		return strconv.FormatFloat(toFloat64(v)*100, 'f', precOr(prec, 2), 64) + "%", nil
	default:
		return "", fmt.Errorf("unsupported numeric format %q", spec)
	}
}

// localeCulture formats numbers with the conventions of a language tag.
type localeCulture struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCulture returns a Culture applying the number conventions (digit
// grouping, decimal separator) of tag. Specs it does not localize fall
// back to Invariant.
func NewCulture(tag language.Tag) Culture {
	return &localeCulture{tag: tag, printer: message.NewPrinter(tag)}
}

// ParseCulture parses a BCP 47 tag such as "de-CH" into a Culture.
// The empty string and "invariant" return Invariant.
func ParseCulture(s string) (Culture, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "invariant":
		return Invariant, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("core: invalid culture %q: %w", s, err)
	}
	return NewCulture(tag), nil
}

// String returns the language tag of the culture.
func (c *localeCulture) String() string {
	return c.tag.String()
}

func (c *localeCulture) FormatValue(v any, spec string) (string, error) {
	if v == nil || !isNumber(v) {
		return Invariant.FormatValue(v, spec)
	}
	if spec == "" {
		return c.printer.Sprint(number.Decimal(v, number.NoSeparator())), nil
	}

	letter, prec, err := parseNumericSpec(spec)
	if err != nil {
		return "", err
	}

	switch letter {
	case 'N', 'n':
		p := precOr(prec, 2)
		return c.printer.Sprint(number.Decimal(v, number.MinFractionDigits(p), number.MaxFractionDigits(p))), nil
	case 'F', 'f':
		p := precOr(prec, 2)
		return c.printer.Sprint(number.Decimal(v, number.NoSeparator(), number.MinFractionDigits(p), number.MaxFractionDigits(p))), nil
	case 'P', 'p':
		p := precOr(prec, 2)
		return c.printer.Sprint(number.Percent(v, number.MinFractionDigits(p), number.MaxFractionDigits(p))), nil
	case 'E', 'e':
		return c.printer.Sprint(number.Scientific(v, number.MaxFractionDigits(precOr(prec, 6)))), nil
	default:
		return Invariant.FormatValue(v, spec)
	}
}

// parseNumericSpec splits "N2" into ('N', 2). A missing precision is -1.
func parseNumericSpec(spec string) (byte, int, error) {
	letter := spec[0]
	if len(spec) == 1 {
		return letter, -1, nil
	}
	prec, err := strconv.Atoi(spec[1:])
	if err != nil || prec < 0 || prec > 99 {
		return 0, 0, fmt.Errorf("invalid precision in format %q", spec)
	}
	return letter, prec, nil
}

func precOr(prec, def int) int {
	if prec < 0 {
		return def
	}
	return prec
}

func isNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return true
	}
	return false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uintptr:
		return int64(n), true
	}
	return 0, false
}

func toFloat64(v any) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	}
	i, _ := toInt64(v)
	return float64(i)
}

func abs64(i int64) int64 {
	if i < 0 {
		return -i
	}
	return i
}

// groupThousands inserts ',' every three digits of the integer part.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	var b strings.Builder
	b.Grow(len(s) + len(intPart)/3 + 1)
	b.WriteString(sign)
	head := len(intPart) % 3
	if head > 0 {
		b.WriteString(intPart[:head])
	}
	for i := head; i < len(intPart); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
