package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const workspaceUE5 = `{
	// generated by UnrealBuildTool
	"folders": [
		{ "name": "MyGame", "path": "." },
		{ "name": "UE5", "path": "Engine" },
	],
	"settings": {
		"C_Cpp.default.cppStandard": "c++17"
	}
}`

const propertiesTwoConfigs = `{
	"configurations": [
		{
			"name": "MyGameEditor Editor Win64 Development",
			"includePath": ["${workspaceFolder}/**"],
			"cppStandard": "c++14"
		},
		{
			"name": "MyGame Win64 Shipping",
			"includePath": ["${workspaceFolder}/**"]
		}
	],
	"version": 4
}`

// writeFiles lays out files relative to a fresh temp dir and returns it.
func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func ue5Project(t *testing.T) string {
	return writeFiles(t, map[string]string{
		"MyGame.code-workspace":                workspaceUE5,
		".vscode/c_cpp_properties.json":        propertiesTwoConfigs,
		"Engine/.vscode/c_cpp_properties.json": `{"configurations":[{"name":"UE5","cppStandard":"c++17"}],"version":4}`,
		"Engine/.vscode/settings.json":         `{"C_Cpp.default.cppStandard": "c++20"}`,
	})
}
