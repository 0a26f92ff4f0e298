// Package logger is the public API of nlogfacade. Most users only need
// to import this package and one handler package.
//
// A Logger is immutable after construction. It holds exactly two
// things: the handler it asks for enablement and the dispatch function
// bound by the Builder. Every logging method funnels into one gated
// operation that first asks Handler.Enabled(level); for a disabled level
// nothing else happens, not even argument capture.
//
// Each level has the same set of methods:
//
//	log.Info("ready")                           // raw payload
//	log.InfoErr("flush failed", err)            // payload + error
//	log.Infof("user {0} logged in", name)       // deferred template
//	log.InfofIn(de, "total {0:N2}", amount)     // template with a culture
//	log.InfoFunc(func() string { return dump() }) // deferred callback
//
// Templates and callbacks become a *core.Message whose text is computed
// only when a handler asks for it, at most once, and may be read from
// any goroutine afterwards.
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    Build()
//
// Enablement is queried on every call and is not assumed to be
// monotonic: a handler may enable Warn and disable Error. Fatal is an
// ordinary level and never exits the process.
//
// The package-level functions (Info, Errorf, ...) use the default
// Logger, which is a no-op until SetDefault is called.
package logger
