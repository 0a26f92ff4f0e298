// Package config builds a Logger from a YAML or JSON file.
//
// A file names the enabled levels, an optional culture and the handlers
// to write to:
//
//	levels: info+
//	culture: de-DE
//	handlers:
//	  - type: console
//	    format: text
//	  - type: file
//	    filename: /var/log/app/app.log
//	    format: json
//	    async: true
//	    max_size_mb: 50
//	    max_backups: 3
//
// Handler types are console, file, zap, logrus, zerolog and slog. All
// handlers built from one Config share a single *levels.Set, returned
// by Build. Watch keeps that set in step with the file; only the levels
// are reloaded, handler changes need a new Build.
//
// Files are parsed with koanf. Levels may be written as a string
// ("warn,error") or as a list. An empty or missing levels key means
// "info+"; use "off" to disable everything.
package config
