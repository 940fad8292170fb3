package profile

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Element types a profile may name.
const (
	TypeFloat = "float"
	TypeInt   = "int"
)

// Profile mirrors the run options. Nil pointers and empty slices are unset.
type Profile struct {
	Type  string    `yaml:"type,omitempty" json:"type,omitempty"`
	Prec  *int64    `yaml:"prec,omitempty" json:"prec,omitempty"`
	Avg   *int64    `yaml:"avg,omitempty" json:"avg,omitempty"`
	Delim *string   `yaml:"delim,omitempty" json:"delim,omitempty"`
	Quiet *bool     `yaml:"quiet,omitempty" json:"quiet,omitempty"`
	Time  *bool     `yaml:"time,omitempty" json:"time,omitempty"`
	List  []float64 `yaml:"list,omitempty" json:"list,omitempty"`

	Fill       *Fill       `yaml:"fill,omitempty" json:"fill,omitempty"`
	Algorithms *Algorithms `yaml:"algorithms,omitempty" json:"algorithms,omitempty"`
}

// Fill selects how the input list is generated.
type Fill struct {
	Rand      *int64   `yaml:"rand,omitempty" json:"rand,omitempty"`
	RandLower *float64 `yaml:"rand_lower,omitempty" json:"rand_lower,omitempty"`
	RandUpper *float64 `yaml:"rand_upper,omitempty" json:"rand_upper,omitempty"`
	Forward   *int64   `yaml:"forward,omitempty" json:"forward,omitempty"`
	Backward  *int64   `yaml:"backward,omitempty" json:"backward,omitempty"`
	Increment *float64 `yaml:"increment,omitempty" json:"increment,omitempty"`
}

// Algorithms selects which sorts run.
type Algorithms struct {
	All    bool     `yaml:"all,omitempty" json:"all,omitempty"`
	Except []string `yaml:"except,omitempty" json:"except,omitempty"`
	Enable []string `yaml:"enable,omitempty" json:"enable,omitempty"`
}

// HasFill reports whether the profile chooses an input source.
func (p *Profile) HasFill() bool {
	if len(p.List) > 0 {
		return true
	}
	f := p.Fill
	return f != nil && (f.Rand != nil || f.RandLower != nil || f.RandUpper != nil ||
		f.Forward != nil || f.Backward != nil || f.Increment != nil)
}

// HasAlgorithms reports whether the profile selects algorithms.
func (p *Profile) HasAlgorithms() bool {
	a := p.Algorithms
	return a != nil && (a.All || len(a.Except) > 0 || len(a.Enable) > 0)
}

// Load reads the profile at path, choosing the decoder by extension.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var p *Profile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		p, err = ParseYAML(data)
	case ".cue":
		p, err = ParseCUE(filepath.Base(path), data)
	default:
		return nil, fmt.Errorf("unsupported profile extension %q (want .yaml, .yml or .cue)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ParseYAML decodes a YAML profile, rejecting unknown fields.
func ParseYAML(data []byte) (*Profile, error) {
	var p Profile
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// ParseCUE compiles a CUE profile, unifies it with #Profile and decodes it.
// filename is used in error positions only.
func ParseCUE(filename string, data []byte) (*Profile, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling profile schema: %w", err)
	}

	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("compiling CUE: %w", err)
	}

	unified := schema.LookupPath(cue.ParsePath("#Profile")).Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("profile does not match schema: %w", err)
	}

	var p Profile
	if err := unified.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding CUE: %w", err)
	}

	if err := validate(&p); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// validate checks what the decoders cannot. Range checks are left to the
// benchmark configuration so profiles and flags report the same errors.
func validate(p *Profile) error {
	switch p.Type {
	case "", TypeFloat, TypeInt:
	default:
		return fmt.Errorf("type must be %q or %q, got %q", TypeFloat, TypeInt, p.Type)
	}

	if a := p.Algorithms; a != nil && len(a.Except) > 0 && len(a.Enable) > 0 {
		return errors.New("algorithms.except cannot be combined with algorithms.enable")
	}
	return nil
}
