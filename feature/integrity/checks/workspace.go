package checks

import (
	"fmt"

	"ue-intellisense/core/project"
)

// WorkspaceIssue is one problem found in the project layout.
type WorkspaceIssue struct {
	Workspace     string `json:"workspace"`
	Configuration string `json:"configuration,omitempty"`
	Problem       string `json:"problem"`
}

// WorkspaceReport strictly types the result of a workspace integrity check.
type WorkspaceReport struct {
	File            string           `json:"file"`
	MainWorkspace   string           `json:"main_workspace"`
	EngineWorkspace string           `json:"engine_workspace"`
	Special         bool             `json:"special"`
	Healthy         bool             `json:"healthy"`
	Issues          []WorkspaceIssue `json:"issues"`
}

// CheckWorkspace verifies that both well-known folders exist, that their
// c_cpp_properties.json files are readable, and that every configuration
// ends up with some cppStandard. Nothing is fixed: these need a human.
func CheckWorkspace(cfg project.Config) (*WorkspaceReport, error) {
	p, err := project.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}

	report := &WorkspaceReport{
		File:            p.File(),
		MainWorkspace:   p.MainWorkspaceKey(),
		EngineWorkspace: p.EngineWorkspaceKey(),
		Special:         p.IsSpecialWorkspaceActive(),
		Issues:          []WorkspaceIssue{},
	}

	override, _ := p.ExtensionCppStandard()

	for _, key := range p.WorkspaceKeys() {
		ws, ok := p.Workspace(key)
		if !ok {
			report.Issues = append(report.Issues, WorkspaceIssue{
				Workspace: key,
				Problem:   "folder is not part of the .code-workspace file",
			})
			continue
		}
		if ws.SettingsErr != nil {
			report.Issues = append(report.Issues, WorkspaceIssue{
				Workspace: key,
				Problem:   fmt.Sprintf("settings.json is unreadable: %v", ws.SettingsErr),
			})
		}
		if ws.PropertiesErr != nil {
			report.Issues = append(report.Issues, WorkspaceIssue{
				Workspace: key,
				Problem:   ws.PropertiesErr.Error(),
			})
			continue
		}

		tooling, _ := p.ToolingStandard(key)
		for _, c := range ws.Properties.Configurations {
			if override != "" || tooling != "" || (c.CppStandard != nil && *c.CppStandard != "") {
				continue
			}
			report.Issues = append(report.Issues, WorkspaceIssue{
				Workspace:     key,
				Configuration: c.Name,
				Problem:       "no cppStandard from c_cpp_properties.json, cpptools or this tool",
			})
		}
	}

	report.Healthy = len(report.Issues) == 0
	return report, nil
}
