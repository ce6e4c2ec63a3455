package project

// Config holds configuration for locating and classifying the project workspace.
type Config struct {
	// Root is the directory containing the .code-workspace file.
	Root string `mapstructure:"root" default:"."`
	// WorkspaceFile selects a specific .code-workspace file (relative to Root).
	// When empty the first *.code-workspace in Root is used.
	WorkspaceFile string `mapstructure:"workspace_file" default:""`
	// EngineFolders lists workspace folder names that denote the engine sources.
	EngineFolders []string `mapstructure:"engine_folders" default:"UE4,UE5"`
	// SpecialWorkspace is the folder name whose presence marks a UE5 project.
	SpecialWorkspace string `mapstructure:"special_workspace" default:"UE5"`
	// Section is the settings section holding this tool's own cppStandard.
	Section string `mapstructure:"section" default:"ueIntellisense"`
	// CppStandard forces the override. Nil means "not configured here".
	CppStandard *string `mapstructure:"cpp_standard" default:"-"`
}

func (c Config) engineNames() []string {
	if len(c.EngineFolders) == 0 {
		return []string{"UE4", "UE5"}
	}
	return c.EngineFolders
}

func (c Config) specialWorkspace() string {
	if c.SpecialWorkspace == "" {
		return "UE5"
	}
	return c.SpecialWorkspace
}

func (c Config) overrideKey() string {
	section := c.Section
	if section == "" {
		section = "ueIntellisense"
	}
	return section + "." + OverrideSettingName
}
