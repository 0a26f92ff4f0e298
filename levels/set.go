package levels

import (
	"fmt"
	"strings"

	"go.uber.org/atomic"

	"github.com/philipp01105/nlogfacade/core"
)

const allMask = uint32(1)<<(uint(core.FatalLevel)+1) - 1

func bit(l core.Level) uint32 {
	return 1 << uint(l)
}

// Set is a mutable set of enabled levels, safe for concurrent use.
//
// Every level is a separate bit: enabling Warn says nothing about Debug
// or Error. Reads are a single atomic load, so a Set can back
// handler.Enabler on the logging hot path while another goroutine
// reconfigures it.
type Set struct {
	mask atomic.Uint32
}

// New returns a Set with exactly the given levels enabled.
func New(ls ...core.Level) *Set {
	s := &Set{}
	s.mask.Store(maskOf(ls))
	return s
}

// AtLeast returns a Set with min and every level above it enabled.
func AtLeast(min core.Level) *Set {
	s := &Set{}
	s.mask.Store(atLeastMask(min))
	return s
}

// All returns a Set with every level enabled.
func All() *Set {
	return FromMask(allMask)
}

// None returns a Set with every level disabled.
func None() *Set {
	return &Set{}
}

// FromMask returns a Set from a bit mask where bit n is core.Level(n).
// Bits outside the defined levels are ignored.
func FromMask(mask uint32) *Set {
	s := &Set{}
	s.mask.Store(mask & allMask)
	return s
}

// Enabled reports whether l is enabled. A nil Set enables nothing.
func (s *Set) Enabled(l core.Level) bool {
	if s == nil || !l.Valid() {
		return false
	}
	return s.mask.Load()&bit(l) != 0
}

// Enable turns the given levels on, leaving the others untouched.
func (s *Set) Enable(ls ...core.Level) {
	add := maskOf(ls)
	for {
		old := s.mask.Load()
		if s.mask.CompareAndSwap(old, old|add) {
			return
		}
	}
}

// Disable turns the given levels off, leaving the others untouched.
func (s *Set) Disable(ls ...core.Level) {
	del := maskOf(ls)
	for {
		old := s.mask.Load()
		if s.mask.CompareAndSwap(old, old&^del) {
			return
		}
	}
}

// Mask returns the current bit mask.
func (s *Set) Mask() uint32 {
	return s.mask.Load()
}

// Store replaces the whole set with mask in one atomic step.
func (s *Set) Store(mask uint32) {
	s.mask.Store(mask & allMask)
}

// Replace copies the levels of other into s in one atomic step.
func (s *Set) Replace(other *Set) {
	s.mask.Store(other.Mask())
}

// Levels returns the enabled levels in ascending order.
func (s *Set) Levels() []core.Level {
	mask := s.mask.Load()
	out := make([]core.Level, 0, 6)
	for _, l := range core.Levels() {
		if mask&bit(l) != 0 {
			out = append(out, l)
		}
	}
	return out
}

// String returns the enabled levels as a comma separated list, "off"
// when empty and "all" when full.
func (s *Set) String() string {
	switch s.mask.Load() {
	case 0:
		return "off"
	case allMask:
		return "all"
	}
	ls := s.Levels()
	names := make([]string, len(ls))
	for i, l := range ls {
		names[i] = strings.ToLower(l.String())
	}
	return strings.Join(names, ",")
}

// MarshalText implements encoding.TextMarshaler.
func (s *Set) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseMask.
func (s *Set) UnmarshalText(data []byte) error {
	mask, err := ParseMask(string(data))
	if err != nil {
		return err
	}
	s.Store(mask)
	return nil
}

// Parse builds a Set from its text form. See ParseMask.
func Parse(text string) (*Set, error) {
	mask, err := ParseMask(text)
	if err != nil {
		return nil, err
	}
	return FromMask(mask), nil
}

// ParseMask parses a comma separated list of level tokens:
//
//	warn,error   exactly WARN and ERROR
//	info+        INFO and every level above it
//	all          every level
//	off, none    nothing (also the empty string)
func ParseMask(text string) (uint32, error) {
	var mask uint32
	for _, tok := range strings.Split(text, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		switch tok {
		case "", "off", "none":
			continue
		case "all":
			mask |= allMask
			continue
		}

		above := strings.HasSuffix(tok, "+")
		l, err := core.ParseLevel(strings.TrimSuffix(tok, "+"))
		if err != nil {
			return 0, fmt.Errorf("levels: invalid token %q: %w", tok, err)
		}
		if above {
			mask |= atLeastMask(l)
		} else {
			mask |= bit(l)
		}
	}
	return mask, nil
}

func maskOf(ls []core.Level) uint32 {
	var mask uint32
	for _, l := range ls {
		if l.Valid() {
			mask |= bit(l)
		}
	}
	return mask
}

func atLeastMask(min core.Level) uint32 {
	var mask uint32
	for _, l := range core.Levels() {
		if l >= min {
			mask |= bit(l)
		}
	}
	return mask
}
