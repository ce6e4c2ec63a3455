package reconcile

import "ue-intellisense/core/project"

// Project is the view of the project model the reconciler needs.
// *project.Project implements it.
type Project interface {
	// ExtensionCppStandard returns this tool's own cppStandard setting.
	// The boolean is false when the setting is not configured at all;
	// an empty string with true means "defer to cpptools".
	ExtensionCppStandard() (string, bool)

	// IsSpecialWorkspaceActive reports whether the UE5 folder is open.
	IsSpecialWorkspaceActive() bool

	// WorkspaceKeys returns the well-known workspaces in processing order.
	WorkspaceKeys() []string

	// BuildConfigurations returns the c_cpp_properties.json configurations of
	// a workspace, or false when they cannot be resolved.
	BuildConfigurations(key string) ([]*project.Configuration, bool)

	// ToolingStandard returns cpptools' C_Cpp.default.cppStandard for a workspace.
	ToolingStandard(key string) (string, bool)
}

// Diagnostics receives the reconciler's messages.
// Neither method may fail or stop the run.
type Diagnostics interface {
	// Log emits an informational message.
	Log(msg string)
	// Error emits a warning or error that does not abort the run.
	Error(msg string)
}

// Config holds configuration for the reconciler.
type Config struct {
	// ExpectedStandard is the cppStandard UE5 expects.
	ExpectedStandard string `mapstructure:"expected_standard" default:"c++17"`
}

// Level classifies a recorded diagnostic.
type Level string

const (
	// LevelInfo marks messages sent through Log.
	LevelInfo Level = "info"
	// LevelError marks messages sent through Error.
	LevelError Level = "error"
)

// Entry is one recorded diagnostic.
type Entry struct {
	Level   Level  `json:"level" yaml:"level"`
	Message string `json:"message" yaml:"message"`
}

// workspaceConfigs pairs a workspace key with its resolved configurations.
type workspaceConfigs struct {
	key     string
	configs []*project.Configuration
}
