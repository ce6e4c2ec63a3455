package project

import "errors"

var (
	// ErrWorkspaceFileNotFound is returned when no .code-workspace file can be located.
	ErrWorkspaceFileNotFound = errors.New("code-workspace file not found")
	// ErrPropertiesNotFound is returned when a workspace has no c_cpp_properties.json.
	ErrPropertiesNotFound = errors.New("c_cpp_properties.json not found")
	// ErrInvalidJSON is returned when a file is not valid JSON even after stripping comments.
	ErrInvalidJSON = errors.New("invalid json")
	// ErrNoConfigurations is returned when c_cpp_properties.json lacks a configurations array.
	ErrNoConfigurations = errors.New("no configurations array")
)
