package project

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/sjson"
)

// Configuration is one entry of the "configurations" array in c_cpp_properties.json.
// Only the fields the reconciler cares about are modeled; everything else in
// the file is preserved verbatim when it is written back.
type Configuration struct {
	// Name is the configuration's "name" field.
	Name string `json:"name"`
	// CppStandard is the "cppStandard" field. Nil means the field is absent.
	CppStandard *string `json:"cppStandard,omitempty"`

	index  int
	loaded *string
}

// Changed reports whether CppStandard differs from the value loaded from disk.
func (c *Configuration) Changed() bool {
	return !sameStandard(c.CppStandard, c.loaded)
}

// Loaded returns the value CppStandard had when the file was read.
func (c *Configuration) Loaded() *string {
	return cloneString(c.loaded)
}

// Properties is a parsed c_cpp_properties.json file.
type Properties struct {
	// Path is the file location on disk.
	Path string
	// Configurations holds the modeled entries in file order.
	Configurations []*Configuration

	original []byte
	base     []byte
}

// LoadProperties reads and parses the c_cpp_properties.json at path.
func LoadProperties(path string) (*Properties, error) {
	src, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrPropertiesNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseProperties(path, src)
}

// ParseProperties parses c_cpp_properties.json content. Comments and trailing
// commas are accepted.
func ParseProperties(path string, src []byte) (*Properties, error) {
	base := src
	if !gjson.ValidBytes(base) {
		base = jsonc.ToJSON(src)
		if !gjson.ValidBytes(base) {
			return nil, fmt.Errorf("%s: %w", path, ErrInvalidJSON)
		}
	}

	list := gjson.GetBytes(base, "configurations")
	if !list.IsArray() {
		return nil, fmt.Errorf("%s: %w", path, ErrNoConfigurations)
	}

	p := &Properties{
		Path:     path,
		original: append([]byte(nil), src...),
		base:     append([]byte(nil), base...),
	}

	for i, entry := range list.Array() {
		cfg := &Configuration{
			Name:  entry.Get("name").String(),
			index: i,
		}
		if std := entry.Get("cppStandard"); std.Exists() && std.Type != gjson.Null {
			value := std.String()
			cfg.CppStandard = &value
			cfg.loaded = cloneString(&value)
		}
		p.Configurations = append(p.Configurations, cfg)
	}

	return p, nil
}

// Changed reports whether any configuration was modified since loading.
func (p *Properties) Changed() bool {
	for _, c := range p.Configurations {
		if c.Changed() {
			return true
		}
	}
	return false
}

// Original returns the bytes that were read from disk.
func (p *Properties) Original() []byte {
	return p.original
}

// Render produces the file content with every modified cppStandard applied.
// Untouched content keeps its layout. Files that contained comments are
// rewritten without them.
func (p *Properties) Render() ([]byte, error) {
	if !p.Changed() {
		return p.original, nil
	}

	out := append([]byte(nil), p.base...)
	for _, c := range p.Configurations {
		if !c.Changed() {
			continue
		}

		path := fmt.Sprintf("configurations.%d.cppStandard", c.index)
		var err error
		if c.CppStandard == nil {
			out, err = sjson.DeleteBytes(out, path)
		} else {
			out, err = sjson.SetBytes(out, path, *c.CppStandard)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to update %s in %s: %w", path, p.Path, err)
		}
	}
	return out, nil
}

// Save writes pending modifications to disk and makes them the new baseline.
// It is a no-op when nothing changed.
func (p *Properties) Save() error {
	if !p.Changed() {
		return nil
	}

	data, err := p.Render()
	if err != nil {
		return err
	}
	if err := os.WriteFile(p.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", p.Path, err)
	}

	p.original = data
	p.base = data
	for _, c := range p.Configurations {
		c.loaded = cloneString(c.CppStandard)
	}
	return nil
}

func sameStandard(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
