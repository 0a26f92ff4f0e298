// Package multihandler provides a fan-out handler that dispatches log
// entries to multiple child handlers.
//
// A level is enabled when any child enables it, and each entry reaches
// only the children that enable its level. The payload is passed to
// every child unchanged, so a deferred message is computed once however
// many children format it.
package multihandler
