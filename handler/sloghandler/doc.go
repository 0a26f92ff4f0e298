// Package sloghandler connects nlogfacade and log/slog in both
// directions.
//
// Handler is a backend that writes entries into any slog.Handler. Trace
// and Fatal, which slog has no names for, map to LevelTrace and
// LevelFatal.
//
// SlogHandler is a slog.Handler that forwards records to any
// nlogfacade handler, so slog.New(sloghandler.NewSlogHandler(h)) logs
// through the same backend as a Logger.
package sloghandler
