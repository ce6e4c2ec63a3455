package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

// DefaultMainKey labels the main workspace when the .code-workspace has no
// non-engine folder.
const DefaultMainKey = "Main"

// Workspace is one folder of the .code-workspace file.
type Workspace struct {
	// Key is the folder name as shown by VS Code.
	Key string
	// Path is the absolute folder location.
	Path string
	// Settings is the folder's .vscode/settings.json.
	Settings Settings
	// SettingsErr is set when settings.json exists but could not be read.
	SettingsErr error
	// Properties is the folder's .vscode/c_cpp_properties.json, nil when unavailable.
	Properties *Properties
	// PropertiesErr explains why Properties is nil.
	PropertiesErr error
}

// PropertiesPath returns where the folder's c_cpp_properties.json lives.
func (w *Workspace) PropertiesPath() string {
	return filepath.Join(w.Path, ".vscode", "c_cpp_properties.json")
}

// Change describes one cppStandard modification pending or applied.
type Change struct {
	Workspace     string  `json:"workspace" yaml:"workspace"`
	Configuration string  `json:"configuration" yaml:"configuration"`
	Before        *string `json:"before" yaml:"before"`
	After         *string `json:"after" yaml:"after"`
}

// PendingWrite is a properties file whose content will change on Save.
type PendingWrite struct {
	Workspace string
	Path      string
	Original  []byte
	Updated   []byte
}

// Project is the in-memory model of an Unreal project opened in VS Code.
// It answers the reconciler's questions and persists its edits on Save.
type Project struct {
	cfg        Config
	file       string
	settings   Settings
	folders    []string
	workspaces map[string]*Workspace
	mainKey    string
	engineKey  string
}

// Open locates the .code-workspace file and loads every folder's settings
// and c_cpp_properties.json. Missing properties files do not fail Open; they
// surface as unresolvable workspaces.
func Open(cfg Config) (*Project, error) {
	file, err := findWorkspaceFile(cfg)
	if err != nil {
		return nil, err
	}

	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	data := jsonc.ToJSON(src)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: %w", file, ErrInvalidJSON)
	}

	p := &Project{
		cfg:        cfg,
		file:       file,
		workspaces: make(map[string]*Workspace),
	}

	if block := gjson.GetBytes(data, "settings"); block.IsObject() {
		p.settings = Settings{data: []byte(block.Raw)}
	}

	dir := filepath.Dir(file)
	for _, folder := range gjson.GetBytes(data, "folders").Array() {
		path := folder.Get("path").String()
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		name := folder.Get("name").String()
		if name == "" {
			name = filepath.Base(path)
		}
		if _, dup := p.workspaces[name]; dup {
			continue
		}

		ws := &Workspace{Key: name, Path: path}
		ws.Settings, ws.SettingsErr = loadSettings(filepath.Join(path, ".vscode", "settings.json"))
		ws.Properties, ws.PropertiesErr = LoadProperties(ws.PropertiesPath())

		p.folders = append(p.folders, name)
		p.workspaces[name] = ws
	}

	p.classify()
	return p, nil
}

func findWorkspaceFile(cfg Config) (string, error) {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve project root: %w", err)
	}

	if cfg.WorkspaceFile != "" {
		file := cfg.WorkspaceFile
		if !filepath.IsAbs(file) {
			file = filepath.Join(root, file)
		}
		if _, err := os.Stat(file); err != nil {
			return "", fmt.Errorf("%s: %w", file, ErrWorkspaceFileNotFound)
		}
		return file, nil
	}

	matches, err := filepath.Glob(filepath.Join(root, "*.code-workspace"))
	if err != nil {
		return "", fmt.Errorf("failed to search %s: %w", root, err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("%s: %w", root, ErrWorkspaceFileNotFound)
	}
	return matches[0], nil
}

// classify picks the main and engine folders.
func (p *Project) classify() {
	engines := make(map[string]bool)
	for _, name := range p.cfg.engineNames() {
		engines[name] = true
	}

	for _, name := range p.folders {
		if engines[name] {
			if p.engineKey == "" {
				p.engineKey = name
			}
			continue
		}
		if p.mainKey == "" {
			p.mainKey = name
		}
	}

	if p.mainKey == "" {
		p.mainKey = DefaultMainKey
	}
	if p.engineKey == "" {
		names := p.cfg.engineNames()
		p.engineKey = names[len(names)-1]
	}
}

// File returns the .code-workspace path.
func (p *Project) File() string {
	return p.file
}

// Root returns the directory holding the .code-workspace file.
func (p *Project) Root() string {
	return filepath.Dir(p.file)
}

// Name returns the project name derived from the .code-workspace file name.
func (p *Project) Name() string {
	base := filepath.Base(p.file)
	return base[:len(base)-len(filepath.Ext(base))]
}

// MainWorkspaceKey returns the game project's folder name.
func (p *Project) MainWorkspaceKey() string {
	return p.mainKey
}

// EngineWorkspaceKey returns the engine folder name.
func (p *Project) EngineWorkspaceKey() string {
	return p.engineKey
}

// Workspace returns the folder registered under key.
func (p *Project) Workspace(key string) (*Workspace, bool) {
	ws, ok := p.workspaces[key]
	return ws, ok
}

// WorkspaceKeys returns the well-known workspaces in reconciliation order.
func (p *Project) WorkspaceKeys() []string {
	return []string{p.mainKey, p.engineKey}
}

// ExtensionCppStandard resolves this tool's own cppStandard setting. The
// configured value wins, then the main folder's settings.json, then the
// .code-workspace settings. The boolean is false when none defines it.
func (p *Project) ExtensionCppStandard() (string, bool) {
	if p.cfg.CppStandard != nil {
		return *p.cfg.CppStandard, true
	}

	key := p.cfg.overrideKey()
	if ws, ok := p.workspaces[p.mainKey]; ok {
		if v, ok := ws.Settings.Lookup(key); ok {
			return v, true
		}
	}
	return p.settings.Lookup(key)
}

// IsSpecialWorkspaceActive reports whether a UE5 folder is part of the workspace.
func (p *Project) IsSpecialWorkspaceActive() bool {
	_, ok := p.workspaces[p.cfg.specialWorkspace()]
	return ok
}

// BuildConfigurations returns the c_cpp_properties.json configurations of a workspace.
func (p *Project) BuildConfigurations(key string) ([]*Configuration, bool) {
	ws, ok := p.workspaces[key]
	if !ok || ws.Properties == nil {
		return nil, false
	}
	return ws.Properties.Configurations, true
}

// ToolingStandard returns cpptools' C_Cpp.default.cppStandard as seen by the
// folder: its own settings.json first, then the .code-workspace settings.
func (p *Project) ToolingStandard(key string) (string, bool) {
	if ws, ok := p.workspaces[key]; ok {
		if v, ok := ws.Settings.Lookup(ToolingStandardKey); ok {
			return v, true
		}
	}
	return p.settings.Lookup(ToolingStandardKey)
}

// Changes lists every configuration whose cppStandard differs from disk.
func (p *Project) Changes() []Change {
	var changes []Change
	for _, key := range p.WorkspaceKeys() {
		configs, ok := p.BuildConfigurations(key)
		if !ok {
			continue
		}
		for _, c := range configs {
			if !c.Changed() {
				continue
			}
			changes = append(changes, Change{
				Workspace:     key,
				Configuration: c.Name,
				Before:        c.Loaded(),
				After:         cloneString(c.CppStandard),
			})
		}
	}
	return changes
}

// Pending renders every properties file that Save would write.
func (p *Project) Pending() ([]PendingWrite, error) {
	var pending []PendingWrite
	for _, key := range p.WorkspaceKeys() {
		ws, ok := p.workspaces[key]
		if !ok || ws.Properties == nil || !ws.Properties.Changed() {
			continue
		}

		updated, err := ws.Properties.Render()
		if err != nil {
			return nil, err
		}
		pending = append(pending, PendingWrite{
			Workspace: key,
			Path:      ws.Properties.Path,
			Original:  ws.Properties.Original(),
			Updated:   updated,
		})
	}
	return pending, nil
}

// Save persists modified c_cpp_properties.json files and returns their paths.
func (p *Project) Save() ([]string, error) {
	var saved []string
	for _, key := range p.WorkspaceKeys() {
		ws, ok := p.workspaces[key]
		if !ok || ws.Properties == nil || !ws.Properties.Changed() {
			continue
		}
		if err := ws.Properties.Save(); err != nil {
			return saved, err
		}
		saved = append(saved, ws.Properties.Path)
	}
	return saved, nil
}
