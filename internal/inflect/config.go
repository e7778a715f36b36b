// Package inflect provides the locale-bound word inflection rules used to derive
// relational names: pluralization, singularization and case conversion.
package inflect

// DefaultLocale is the locale used when none is configured.
const DefaultLocale = "en"

// Config holds inflection customization options
type Config struct {
	// Locale selects the pluralization rule table (BCP 47, e.g. "en", "en-US").
	Locale string `mapstructure:"locale"`

	// PluralOverrides maps singular -> custom plural
	// Example: {"person": "persons", "status": "statuses"}
	PluralOverrides map[string]string `mapstructure:"plural_overrides"`

	// SingularOverrides maps plural -> custom singular
	// Example: {"people": "person", "data": "datum"}
	SingularOverrides map[string]string `mapstructure:"singular_overrides"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Locale:            DefaultLocale,
		PluralOverrides:   make(map[string]string),
		SingularOverrides: make(map[string]string),
	}
}
