package core

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrMaterialize wraps a panic raised while producing a message text.
var ErrMaterialize = errors.New("core: message text panicked")

// Entry is a log event as a handler keeps it: the facade only hands over
// the level, payload and error; the time is taken by the handler.
type Entry struct {
	Time  time.Time
	Level Level
	// Msg is a raw value or a *Message.
	Msg any
	Err error
}

// Text materializes the entry payload. See Materialize.
func (e *Entry) Text() (string, error) {
	return Materialize(e.Msg)
}

// entryPool is a pool of Entry objects to reduce allocations
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{}
	},
}

// GetEntry retrieves an Entry from the pool
func GetEntry() *Entry {
	return entryPool.Get().(*Entry)
}

// NewEntry retrieves a pooled Entry filled with the given values.
func NewEntry(t time.Time, level Level, msg any, err error) *Entry {
	e := GetEntry()
	e.Time = t
	e.Level = level
	e.Msg = msg
	e.Err = err
	return e
}

// PutEntry returns an Entry to the pool
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	// Drop references so pooled entries don't pin payloads
	*e = Entry{}
	entryPool.Put(e)
}

// Materialize turns a payload into text for a handler.
//
// Strings are returned as is, a *Message is asked for its text,
// fmt.Stringer and error values use their methods and anything else is
// rendered with fmt.Sprint. A panic during text production is returned
// as an error: a *FormatError unchanged, anything else wrapped in
// ErrMaterialize.
func Materialize(msg any) (s string, err error) {
	switch v := msg.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	}

	defer func() {
		if r := recover(); r != nil {
			s = ""
			if fe, ok := r.(*FormatError); ok {
				err = fe
				return
			}
			err = fmt.Errorf("%w: %v", ErrMaterialize, r)
		}
	}()

	switch v := msg.(type) {
	case *Message:
		return v.Text(), nil
	case fmt.Stringer:
		return v.String(), nil
	case error:
		return v.Error(), nil
	default:
		return fmt.Sprint(v), nil
	}
}
