// Package config loads runtime configuration for the voice notes app.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-m string   media directory
//	-e string   export directory (empty disables sharing)
//	-t int      capture counter tick interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be
// either strings like "1s" or integer nanoseconds:
//
//	{
//	  "database_path": "notes.db",
//	  "media_dir": "media",
//	  "export_dir": "export",
//	  "tick_interval": "1s"
//	}
package config
