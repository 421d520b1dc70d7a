// Package profile loads indicator run profiles from YAML. A profile is the
// external textual layer on top of the indicator protocol: it names a
// registered indicator variant and carries untyped key/value parameters that
// are applied through the configuration's dynamic Set mechanism.
package profile

import (
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/tide/internal/version"
	"github.com/rxtech-lab/tide/pkg/errors"
	"github.com/rxtech-lab/tide/pkg/indicator"
	"github.com/rxtech-lab/tide/pkg/ohlcv"
	"gopkg.in/yaml.v3"
)

// Profile describes one indicator run.
type Profile struct {
	// Indicator is the registered name of the indicator variant to run.
	Indicator string `yaml:"indicator" json:"indicator" jsonschema:"title=Indicator,description=Registered name of the indicator variant to run (e.g. rsi or moving_average),required" validate:"required"`
	// Params are untyped parameter overrides applied via the dynamic
	// by-name setter, e.g. period: "14".
	Params map[string]string `yaml:"params" json:"params,omitempty" jsonschema:"title=Parameters,description=Parameter overrides applied by name"`
	// Data is the path of the candle CSV file to evaluate.
	Data string `yaml:"data" json:"data,omitempty" jsonschema:"title=Data,description=Path of the candle CSV file"`
	// Output is the path the result CSV is written to.
	Output string `yaml:"output" json:"output,omitempty" jsonschema:"title=Output,description=Path the result CSV is written to"`
	// EngineVersion optionally pins the engine version the profile was
	// written for; major and minor must match the running engine.
	EngineVersion string `yaml:"engine_version" json:"engineVersion,omitempty" jsonschema:"title=Engine Version,description=Engine version the profile was written for"`
}

// LoadProfile reads and validates a profile from a YAML file.
func LoadProfile(path string) (*Profile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrCodeProfileReadFailed, err, "failed to read profile %q", path)
	}

	return ParseProfile(content)
}

// ParseProfile parses and validates a profile from YAML content.
func ParseProfile(content []byte) (*Profile, error) {
	var profile Profile
	if err := yaml.Unmarshal(content, &profile); err != nil {
		return nil, errors.Wrap(errors.ErrCodeProfileInvalid, "failed to parse profile YAML", err)
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &profile, nil
}

// Validate checks the profile's structure and its engine version pin.
func (p *Profile) Validate() error {
	validate := validator.New()
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(errors.ErrCodeProfileInvalid, "invalid profile", err)
	}

	return version.CheckProfileCompatibility(version.GetVersion(), p.EngineVersion)
}

// BuildConfig looks up the profile's indicator in the registry and applies
// the parameter overrides through the dynamic setter. Parameters are applied
// in sorted name order so a faulty profile always fails on the same
// parameter.
func BuildConfig[T ohlcv.OHLCV](p *Profile, registry indicator.IndicatorRegistry[T]) (indicator.IndicatorConfig[T], error) {
	config, err := registry.GetIndicator(indicator.IndicatorType(p.Indicator))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(p.Params))
	for name := range p.Params {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		if err := config.Set(name, p.Params[name]); err != nil {
			return nil, err
		}
	}

	return config, nil
}
