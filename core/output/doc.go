// Package output prints command results as a table, JSON or YAML.
//
// Results that implement Tabler render as a table; anything else falls back
// to indented JSON in table mode. DetectFormat picks a table for terminals
// and JSON when stdout is piped.
package output
