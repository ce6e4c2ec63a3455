package cppstandard

import (
	"ue-intellisense/core/output"
	"ue-intellisense/core/project"
	"ue-intellisense/core/reconcile"
	"ue-intellisense/core/utils"
)

// Report is the outcome of one reconciliation, applied or not.
type Report struct {
	RunID           string            `json:"run_id" yaml:"run_id"`
	Project         string            `json:"project" yaml:"project"`
	Root            string            `json:"root" yaml:"root"`
	MainWorkspace   string            `json:"main_workspace" yaml:"main_workspace"`
	EngineWorkspace string            `json:"engine_workspace" yaml:"engine_workspace"`
	Override        *string           `json:"override" yaml:"override"`
	Special         bool              `json:"special" yaml:"special"`
	Workspaces      []WorkspaceReport `json:"workspaces" yaml:"workspaces"`
	Diagnostics     []reconcile.Entry `json:"diagnostics" yaml:"diagnostics"`
	Changes         []project.Change  `json:"changes" yaml:"changes"`
	Applied         bool              `json:"applied" yaml:"applied"`
	Saved           []string          `json:"saved,omitempty" yaml:"saved,omitempty"`
	Backups         []string          `json:"backups,omitempty" yaml:"backups,omitempty"`
}

// WorkspaceReport summarizes one well-known workspace.
type WorkspaceReport struct {
	Key            string                `json:"key" yaml:"key"`
	Path           string                `json:"path" yaml:"path"`
	Tooling        *string               `json:"tooling" yaml:"tooling"`
	Resolved       bool                  `json:"resolved" yaml:"resolved"`
	Error          string                `json:"error,omitempty" yaml:"error,omitempty"`
	Configurations []ConfigurationReport `json:"configurations" yaml:"configurations"`
}

// ConfigurationReport is one c_cpp_properties.json configuration.
type ConfigurationReport struct {
	Name   string  `json:"name" yaml:"name"`
	Before *string `json:"before" yaml:"before"`
	After  *string `json:"after" yaml:"after"`
}

// Warnings returns the diagnostics reported as problems.
func (r *Report) Warnings() []string {
	var out []string
	for _, e := range r.Diagnostics {
		if e.Level == reconcile.LevelError {
			out = append(out, e.Message)
		}
	}
	return out
}

// TableData implements output.Tabler.
func (r *Report) TableData() output.Data {
	data := output.Data{
		Headers: []string{"Workspace", "Configuration", "Current", "Target", "cpptools"},
	}
	for _, ws := range r.Workspaces {
		if !ws.Resolved {
			data.Rows = append(data.Rows, []string{ws.Key, "-", "-", "-", utils.DisplayStandard(ws.Tooling)})
			continue
		}
		for _, c := range ws.Configurations {
			data.Rows = append(data.Rows, []string{
				ws.Key,
				c.Name,
				utils.DisplayStandard(c.Before),
				utils.DisplayStandard(c.After),
				utils.DisplayStandard(ws.Tooling),
			})
		}
	}
	return data
}

func buildReport(runID string, p *project.Project, override *string, rec *reconcile.Recorder) *Report {
	r := &Report{
		RunID:           runID,
		Project:         p.Name(),
		Root:            p.Root(),
		MainWorkspace:   p.MainWorkspaceKey(),
		EngineWorkspace: p.EngineWorkspaceKey(),
		Override:        override,
		Special:         p.IsSpecialWorkspaceActive(),
		Diagnostics:     rec.Entries(),
		Changes:         p.Changes(),
	}

	for _, key := range p.WorkspaceKeys() {
		wr := WorkspaceReport{Key: key}
		if v, ok := p.ToolingStandard(key); ok {
			wr.Tooling = utils.Ptr(v)
		}

		ws, ok := p.Workspace(key)
		if !ok {
			wr.Error = "folder is not part of the workspace"
			r.Workspaces = append(r.Workspaces, wr)
			continue
		}
		wr.Path = ws.Path
		if ws.PropertiesErr != nil {
			wr.Error = ws.PropertiesErr.Error()
		}

		if configs, ok := p.BuildConfigurations(key); ok {
			wr.Resolved = true
			for _, c := range configs {
				wr.Configurations = append(wr.Configurations, ConfigurationReport{
					Name:   c.Name,
					Before: c.Loaded(),
					After:  c.CppStandard,
				})
			}
		}
		r.Workspaces = append(r.Workspaces, wr)
	}
	return r
}
