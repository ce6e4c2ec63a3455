package main

import (
	"fmt"
	"log"
	"os"

	"ue-intellisense/core/config"
	"ue-intellisense/core/project"
	"ue-intellisense/core/utils"

	"github.com/goccy/go-yaml"
)

// Dumps how the project model resolves the workspace files of the current
// directory (or PROJECT_ROOT) without running any reconciliation.
func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	p, err := project.Open(cfg.Project)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Workspace File ===")
	fmt.Printf("File: %s\n", p.File())
	fmt.Printf("Name: %s\n", p.Name())
	fmt.Printf("Main: %s\n", p.MainWorkspaceKey())
	fmt.Printf("Engine: %s (UE5 active: %t)\n", p.EngineWorkspaceKey(), p.IsSpecialWorkspaceActive())

	override, ok := p.ExtensionCppStandard()
	if ok {
		fmt.Printf("Override: %s\n", utils.DisplayStandard(&override))
	} else {
		fmt.Println("Override: not configured")
	}

	for _, key := range p.WorkspaceKeys() {
		fmt.Printf("\n=== Workspace %s ===\n", key)
		ws, ok := p.Workspace(key)
		if !ok {
			fmt.Println("NOT FOUND in .code-workspace")
			continue
		}
		fmt.Printf("Path: %s\n", ws.Path)
		if ws.SettingsErr != nil {
			fmt.Printf("settings.json error: %v\n", ws.SettingsErr)
		}
		if tooling, ok := p.ToolingStandard(key); ok {
			fmt.Printf("cpptools cppStandard: %s\n", utils.DisplayStandard(&tooling))
		}
		if ws.PropertiesErr != nil {
			fmt.Printf("c_cpp_properties.json error: %v\n", ws.PropertiesErr)
			continue
		}

		configs, _ := p.BuildConfigurations(key)
		out, err := yaml.Marshal(configs)
		if err != nil {
			log.Fatal(err)
		}
		os.Stdout.Write(out)
	}
}
