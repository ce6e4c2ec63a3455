package reconcile

import (
	"fmt"

	"ue-intellisense/core/project"
)

const defaultExpectedStandard = "c++17"

const (
	msgStart            = "Checking cppStandard across c_cpp_properties.json and cpptools settings"
	msgUE4Default       = "UE4 defaults to c++14 (c++17 needs extra engine configuration)"
	fmtUE5Default       = "UE5 expects %s"
	msgOverrideMissing  = "cppStandard is not configured for this tool, cpptools' cppStandard will be used instead"
	msgOverrideEmpty    = "cppStandard for this tool is an empty string, IntelliSense will use cpptools' cppStandard"
	fmtOverrideMismatch = "UE5 expects %s but this tool forces cppStandard %s"
	fmtUnresolved       = "Could not read the %s c_cpp_properties.json configurations"
	msgAborted          = "Could not resolve the project workspaces, cppStandard will not be changed"
	fmtTooling          = "cpptools cppStandard for %s is %q (may be blank)"
	fmtNoStandard       = "No cppStandard is set for %s configuration %q, force one in this tool's settings"
	fmtConfigMismatch   = "UE5 expects %s but %s c_cpp_properties.json uses %s"
	fmtCurrent          = "%s c_cpp_properties.json cppStandard for %q is %s (overrides cpptools when defined)"
	fmtSet              = "Set %s c_cpp_properties.json cppStandard for %q to %s"
	fmtAlreadySet       = "%s c_cpp_properties.json cppStandard for %q is already set"
	fmtToolingMismatch  = "UE5 expects %s but %s cpptools settings use %s, force a cppStandard in this tool's settings"
)

// StandardReconciler aligns the cppStandard of every c_cpp_properties.json
// configuration with the override set in this tool's settings, and reports
// values that disagree with what UE5 expects.
type StandardReconciler struct {
	expected string
	diag     Diagnostics
}

// NewStandardReconciler creates a reconciler reporting to diag.
func NewStandardReconciler(cfg Config, diag Diagnostics) *StandardReconciler {
	expected := cfg.ExpectedStandard
	if expected == "" {
		expected = defaultExpectedStandard
	}
	return &StandardReconciler{expected: expected, diag: diag}
}

// Reconcile overwrites CppStandard on the configurations reachable from p
// when an override is configured. It never persists anything and never fails:
// problems are reported through Diagnostics. If any well-known workspace
// cannot be resolved nothing is modified.
func (r *StandardReconciler) Reconcile(p Project) {
	r.diag.Log(msgStart)
	r.diag.Log(msgUE4Default)
	r.diag.Log(fmt.Sprintf(fmtUE5Default, r.expected))

	override, present := p.ExtensionCppStandard()
	if !present {
		override = ""
		r.diag.Error(msgOverrideMissing)
	} else if override == "" {
		r.diag.Log(msgOverrideEmpty)
	}
	isOverride := override != ""

	// warned latches after the first UE5 mismatch warning of this run.
	warned := false
	if p.IsSpecialWorkspaceActive() && isOverride && override != r.expected {
		r.diag.Error(fmt.Sprintf(fmtOverrideMismatch, r.expected, override))
		warned = true
	}

	workspaces, ok := r.resolve(p)
	if !ok {
		r.diag.Error(msgAborted)
		return
	}

	for _, ws := range workspaces {
		warned = r.reconcileWorkspace(p, ws, override, isOverride, warned)
	}
}

// resolve fetches every workspace's configurations up front so that a
// missing one aborts before anything is written.
func (r *StandardReconciler) resolve(p Project) ([]workspaceConfigs, bool) {
	keys := p.WorkspaceKeys()
	resolved := make([]workspaceConfigs, 0, len(keys))
	for _, key := range keys {
		configs, ok := p.BuildConfigurations(key)
		if !ok {
			r.diag.Error(fmt.Sprintf(fmtUnresolved, key))
			return nil, false
		}
		resolved = append(resolved, workspaceConfigs{key: key, configs: configs})
	}
	return resolved, true
}

func (r *StandardReconciler) reconcileWorkspace(p Project, ws workspaceConfigs, override string, isOverride, warned bool) bool {
	tooling, hasTooling := p.ToolingStandard(ws.key)
	if hasTooling {
		r.diag.Log(fmt.Sprintf(fmtTooling, ws.key, tooling))
	}

	for _, cfg := range ws.configs {
		current := ""
		if cfg.CppStandard != nil {
			current = *cfg.CppStandard
		}

		// Blank and undefined are treated alike on every source.
		if current == "" && tooling == "" && override == "" {
			r.diag.Error(fmt.Sprintf(fmtNoStandard, ws.key, cfg.Name))
		}

		if !warned && current != "" && current != r.expected {
			r.diag.Error(fmt.Sprintf(fmtConfigMismatch, r.expected, ws.key, current))
			warned = true
		}

		r.diag.Log(fmt.Sprintf(fmtCurrent, ws.key, cfg.Name, display(cfg.CppStandard)))

		if !isOverride {
			continue
		}
		if cfg.CppStandard == nil || *cfg.CppStandard != override {
			value := override
			cfg.CppStandard = &value
			r.diag.Log(fmt.Sprintf(fmtSet, ws.key, cfg.Name, override))
		} else {
			r.diag.Log(fmt.Sprintf(fmtAlreadySet, ws.key, cfg.Name))
		}
	}

	if !warned && tooling != "" && tooling != r.expected {
		r.diag.Error(fmt.Sprintf(fmtToolingMismatch, r.expected, ws.key, tooling))
		warned = true
	}

	return warned
}

func display(s *string) string {
	if s == nil {
		return "undefined"
	}
	return fmt.Sprintf("%q", *s)
}

var _ Project = (*project.Project)(nil)
