// Package utils provides small conversion helpers shared by the CLI and the
// HTTP handlers: query/flag parsing and optional cppStandard values.
package utils
