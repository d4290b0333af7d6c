// Package config loads runtime configuration for the SiteKeeper console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or -config; .yaml/.yml files
//     are read as YAML, everything else as JSON.
//  3. Environment variables (SITEKEEPER_*, API_KEY, MAPS_API_KEY).
//  4. Command-line flags -d, -l and -t.
//
// # File schema
//
// Durations are strings like "30s" or integer nanoseconds:
//
//	{
//	  "data_dir": "/var/lib/sitekeeper",
//	  "db_file": "sitekeeper.db",
//	  "log_level": "debug",
//	  "log_backend": "zap",
//	  "genai_api_key": "...",
//	  "maps_api_key": "...",
//	  "latitude": 25.61,
//	  "longitude": 85.14,
//	  "request_timeout": "45s"
//	}
package config
