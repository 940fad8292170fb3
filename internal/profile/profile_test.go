package profile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func fullProfile() *Profile {
	return &Profile{
		Type:  TypeInt,
		Prec:  ptr(int64(3)),
		Avg:   ptr(int64(5)),
		Delim: ptr(","),
		Quiet: ptr(true),
		Time:  ptr(true),
		Fill: &Fill{
			Rand:      ptr(int64(1000)),
			RandLower: ptr(-500.0),
			RandUpper: ptr(500.0),
		},
		Algorithms: &Algorithms{
			All:    true,
			Except: []string{"bogosort", "permutation-sort"},
		},
	}
}

func TestLoad_YAMLAndCUEAgree(t *testing.T) {
	for _, name := range []string{"full.yaml", "full.cue"} {
		t.Run(name, func(t *testing.T) {
			p, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, fullProfile(), p)
			assert.True(t, p.HasFill())
			assert.True(t, p.HasAlgorithms())
		})
	}
}

func TestLoad_ListAndEnable(t *testing.T) {
	p, err := Load(filepath.Join("testdata", "list.yml"))
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1.5, -2}, p.List)
	assert.Equal(t, []string{"quick-sort", "merge-sort"}, p.Algorithms.Enable)
	assert.Empty(t, p.Type)
	assert.Nil(t, p.Avg)
	assert.Nil(t, p.Fill)
	assert.True(t, p.HasFill())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		file    string
		wantErr string
	}{
		{"typo.yaml", "failed to parse YAML"},
		{"typo.cue", "profile does not match schema"},
		{"wrong_kind.cue", "profile does not match schema"},
		{"profile.toml", "unsupported profile extension"},
		{"missing.yaml", "failed to read profile"},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", tt.file))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseYAML_Empty(t *testing.T) {
	p, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.False(t, p.HasFill())
	assert.False(t, p.HasAlgorithms())
}

func TestParseYAML_InvalidType(t *testing.T) {
	_, err := ParseYAML([]byte("type: double\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `type must be "float" or "int"`)
}

func TestParseYAML_ExceptWithEnable(t *testing.T) {
	_, err := ParseYAML([]byte("algorithms:\n  except: [bogosort]\n  enable: [quick-sort]\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "algorithms.except cannot be combined")
}

func TestParseCUE_InvalidTypeRejectedBySchema(t *testing.T) {
	_, err := ParseCUE("inline.cue", []byte(`type: "double"`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile does not match schema")
}

func TestParseCUE_Empty(t *testing.T) {
	p, err := ParseCUE("empty.cue", nil)
	require.NoError(t, err)
	assert.Equal(t, &Profile{}, p)
}
