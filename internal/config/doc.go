// Package config loads, normalizes, and validates whynosound configuration.
//
// It supplies repository defaults, reads the optional TOML file at
// ~/.config/whynosound/config.toml (or ./whynosound.toml), and validates the
// handful of knobs the CLI honours: output format and color, per-command
// timeout, tool binary overrides, and logging. Flags override file values;
// obtain settings through this package so commands see sanitized data.
package config
