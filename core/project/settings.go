package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
)

const (
	// ToolingStandardKey is the cpptools setting consulted per workspace folder.
	ToolingStandardKey = "C_Cpp.default.cppStandard"
	// OverrideSettingName is the name of this tool's own setting inside its section.
	OverrideSettingName = "cppStandard"
)

// Settings is a parsed VS Code settings document: a folder's settings.json or
// the "settings" block of a .code-workspace file.
type Settings struct {
	data []byte
}

// ParseSettings parses JSONC settings. Empty input yields empty settings.
func ParseSettings(src []byte) (Settings, error) {
	data := jsonc.ToJSON(src)
	if len(bytes.TrimSpace(data)) == 0 {
		return Settings{}, nil
	}
	if !gjson.ValidBytes(data) {
		return Settings{}, ErrInvalidJSON
	}
	return Settings{data: data}, nil
}

// Lookup returns the value stored under a dotted VS Code key such as
// "C_Cpp.default.cppStandard". The flat form is tried first, then the nested
// object form. A JSON null counts as absent.
func (s Settings) Lookup(key string) (string, bool) {
	if len(s.data) == 0 {
		return "", false
	}

	r := gjson.GetBytes(s.data, escapePath(key))
	if !r.Exists() {
		r = gjson.GetBytes(s.data, key)
	}
	if !r.Exists() || r.Type == gjson.Null {
		return "", false
	}
	return r.String(), true
}

// IsEmpty reports whether the document carried no settings at all.
func (s Settings) IsEmpty() bool {
	return len(s.data) == 0
}

func loadSettings(path string) (Settings, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Settings{}, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s, err := ParseSettings(src)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// escapePath turns a literal key into a gjson path component.
func escapePath(key string) string {
	r := strings.NewReplacer(".", `\.`, "*", `\*`, "?", `\?`)
	return r.Replace(key)
}
