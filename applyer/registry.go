package applyer

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/sonnes/transmute/core"
	"github.com/sonnes/transmute/redact"
)

// Spec describes an applyer in config: a type plus its parameters.
type Spec struct {
	Type  string `koanf:"type" json:"type" yaml:"type"`
	Value string `koanf:"value" json:"value,omitempty" yaml:"value,omitempty"`
	With  string `koanf:"with" json:"with,omitempty" yaml:"with,omitempty"`
}

var builders = map[string]func(Spec) (core.Applyer, error){
	"upper": func(Spec) (core.Applyer, error) { return &Upper{}, nil },
	"lower": func(Spec) (core.Applyer, error) { return &Lower{}, nil },
	"trim":  func(Spec) (core.Applyer, error) { return &Trim{}, nil },
	"prefix": func(s Spec) (core.Applyer, error) {
		return &Prefix{Value: s.Value}, nil
	},
	"suffix": func(s Spec) (core.Applyer, error) {
		return &Suffix{Value: s.Value}, nil
	},
	"replace": func(s Spec) (core.Applyer, error) {
		if s.Value == "" {
			return nil, fmt.Errorf("replace requires a value")
		}
		return &Replace{Old: s.Value, New: s.With}, nil
	},
	"base64_encode": func(Spec) (core.Applyer, error) { return &Base64Encode{}, nil },
	"base64_decode": func(Spec) (core.Applyer, error) { return &Base64Decode{}, nil },
	"strip_tags":    func(Spec) (core.Applyer, error) { return &StripTags{}, nil },
	"summary": func(s Spec) (core.Applyer, error) {
		return &Summary{Label: s.Value}, nil
	},
	"redact": buildRedactor,
}

// Build creates the Applyer described by spec.
func Build(spec Spec) (core.Applyer, error) {
	build, ok := builders[spec.Type]
	if !ok {
		return nil, fmt.Errorf("unknown applyer type %q", spec.Type)
	}
	return build(spec)
}

// Types returns the supported applyer types, sorted.
func Types() []string {
	return slices.Sorted(maps.Keys(builders))
}

// buildRedactor parses Value as a comma list of "secrets" and "pii". An empty
// value enables both.
func buildRedactor(s Spec) (core.Applyer, error) {
	cfg := redact.Config{}
	if strings.TrimSpace(s.Value) == "" {
		cfg.Secrets = true
		cfg.PII = true
	}
	for _, rule := range strings.Split(s.Value, ",") {
		switch strings.TrimSpace(rule) {
		case "":
		case "secrets":
			cfg.Secrets = true
		case "pii":
			cfg.PII = true
		default:
			return nil, fmt.Errorf("unknown redaction rule %q", strings.TrimSpace(rule))
		}
	}
	return redact.New(cfg), nil
}
