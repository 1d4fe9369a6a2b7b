package runner

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/signadot/praat-format/ir"

	"github.com/goccy/go-yaml"
)

// FormantParams are the arguments of Praat's "To Formant (burg)".
type FormantParams struct {
	TimeStep     float64 `yaml:"time_step"`
	MaxFormants  float64 `yaml:"formant_max"`
	MaxHertz     float64 `yaml:"hertz_max"`
	WindowLength float64 `yaml:"window_length"`
	PreEmphasis  float64 `yaml:"pre_emphasis"`
}

func DefaultFormantParams() FormantParams {
	return FormantParams{
		TimeStep:     0,
		MaxFormants:  5,
		MaxHertz:     5000,
		WindowLength: 0.025,
		PreEmphasis:  50,
	}
}

// UnmarshalYAML fills the fields missing from d with their defaults.
func (p *FormantParams) UnmarshalYAML(d []byte) error {
	type plain FormantParams
	v := plain(DefaultFormantParams())
	if err := yaml.Unmarshal(d, &v); err != nil {
		return err
	}
	*p = FormantParams(v)
	return nil
}

func (p FormantParams) args() []string {
	return floatArgs(p.TimeStep, p.MaxFormants, p.MaxHertz, p.WindowLength, p.PreEmphasis)
}

// PitchParams are the arguments of Praat's "To Pitch".
type PitchParams struct {
	TimeStep float64 `yaml:"time_step"`
	PitchMin float64 `yaml:"pitch_min"`
	PitchMax float64 `yaml:"pitch_max"`
}

func DefaultPitchParams() PitchParams {
	return PitchParams{TimeStep: 0.01, PitchMin: 75, PitchMax: 600}
}

func (p PitchParams) args() []string {
	return floatArgs(p.TimeStep, p.PitchMin, p.PitchMax)
}

func floatArgs(fs ...float64) []string {
	res := make([]string, len(fs))
	for i, f := range fs {
		res[i] = ir.FormatFloat(f)
	}
	return res
}

// DefaultKey names the parameters used when no specific ones exist.
const DefaultKey = "default"

// ParamSet holds formant parameters by key, for example one set per
// vowel.
type ParamSet map[string]FormantParams

// LoadParamSet reads a ParamSet from YAML mapping keys to parameters.
// Parameters not given take their default values.
func LoadParamSet(r io.Reader) (ParamSet, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ps := ParamSet{}
	if err := yaml.Unmarshal(d, &ps); err != nil {
		return nil, fmt.Errorf("parameter set: %w", err)
	}
	return ps, nil
}

// Keys returns the keys of ps with DefaultKey added, sorted.
func (ps ParamSet) Keys() []string {
	keys := slices.Collect(maps.Keys(ps))
	if _, ok := ps[DefaultKey]; !ok {
		keys = append(keys, DefaultKey)
	}
	slices.Sort(keys)
	return keys
}

// Get returns the parameters for key. DefaultKey always has parameters.
func (ps ParamSet) Get(key string) (FormantParams, error) {
	if p, ok := ps[key]; ok {
		return p, nil
	}
	if key == DefaultKey {
		return DefaultFormantParams(), nil
	}
	return FormantParams{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}
