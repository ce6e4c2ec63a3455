package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestParseProperties(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
		wantLen int
	}{
		{"Plain", propertiesTwoConfigs, nil, 2},
		{"Comments", "{\n// c\n\"configurations\":[{\"name\":\"a\",},],}", nil, 1},
		{"NullStandard", `{"configurations":[{"name":"a","cppStandard":null}]}`, nil, 1},
		{"Invalid", `{"configurations":[`, ErrInvalidJSON, 0},
		{"NoConfigurations", `{"version":4}`, ErrNoConfigurations, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseProperties("c_cpp_properties.json", []byte(tt.src))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, p.Configurations, tt.wantLen)
		})
	}
}

func TestParseProperties_NullIsAbsent(t *testing.T) {
	p, err := ParseProperties("x", []byte(`{"configurations":[{"name":"a","cppStandard":null}]}`))
	require.NoError(t, err)
	assert.Nil(t, p.Configurations[0].CppStandard)
}

func TestProperties_Render(t *testing.T) {
	t.Run("UnchangedReturnsOriginal", func(t *testing.T) {
		p, err := ParseProperties("x", []byte(propertiesTwoConfigs))
		require.NoError(t, err)

		out, err := p.Render()
		require.NoError(t, err)
		assert.Equal(t, propertiesTwoConfigs, string(out))
	})

	t.Run("SetKeepsOtherFields", func(t *testing.T) {
		p, err := ParseProperties("x", []byte(propertiesTwoConfigs))
		require.NoError(t, err)

		v := "c++17"
		p.Configurations[0].CppStandard = &v

		out, err := p.Render()
		require.NoError(t, err)
		assert.Equal(t, "c++17", gjson.GetBytes(out, "configurations.0.cppStandard").String())
		assert.False(t, gjson.GetBytes(out, "configurations.1.cppStandard").Exists())
		assert.Equal(t, "MyGame Win64 Shipping", gjson.GetBytes(out, "configurations.1.name").String())
	})

	t.Run("DeleteWhenCleared", func(t *testing.T) {
		p, err := ParseProperties("x", []byte(propertiesTwoConfigs))
		require.NoError(t, err)

		p.Configurations[0].CppStandard = nil

		out, err := p.Render()
		require.NoError(t, err)
		assert.False(t, gjson.GetBytes(out, "configurations.0.cppStandard").Exists())
	})

	t.Run("CommentedSource", func(t *testing.T) {
		src := "{\n  // keep me valid\n  \"configurations\": [{\"name\": \"a\", \"cppStandard\": \"c++14\"}]\n}"
		p, err := ParseProperties("x", []byte(src))
		require.NoError(t, err)

		v := "c++20"
		p.Configurations[0].CppStandard = &v

		out, err := p.Render()
		require.NoError(t, err)
		assert.True(t, gjson.ValidBytes(out))
		assert.Equal(t, "c++20", gjson.GetBytes(out, "configurations.0.cppStandard").String())
	})
}

func TestConfiguration_Changed(t *testing.T) {
	a, b := "c++17", "c++17"
	c := &Configuration{CppStandard: &a, loaded: &b}
	assert.False(t, c.Changed())

	other := "c++20"
	c.CppStandard = &other
	assert.True(t, c.Changed())

	c = &Configuration{}
	assert.False(t, c.Changed())
	c.CppStandard = &a
	assert.True(t, c.Changed())
}

func TestSettings_Lookup(t *testing.T) {
	s, err := ParseSettings([]byte(`{"C_Cpp.default.cppStandard": "", "a": {"b": "nested"}, "n": null}`))
	require.NoError(t, err)

	v, ok := s.Lookup(ToolingStandardKey)
	assert.True(t, ok, "explicit empty string is present")
	assert.Equal(t, "", v)

	v, ok = s.Lookup("a.b")
	assert.True(t, ok)
	assert.Equal(t, "nested", v)

	_, ok = s.Lookup("n")
	assert.False(t, ok)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)

	empty, err := ParseSettings(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = ParseSettings([]byte(`{`))
	assert.ErrorIs(t, err, ErrInvalidJSON)
}
