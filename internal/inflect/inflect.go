package inflect

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iancoleman/strcase"
	"github.com/jinzhu/inflection"
	"golang.org/x/text/language"
)

// ErrUnsupportedLocale is returned when no rule table exists for a locale.
var ErrUnsupportedLocale = errors.New("unsupported locale")

// supportedLanguages lists the base languages with a rule table.
var supportedLanguages = map[string]bool{
	"en": true,
}

var (
	acronymBoundary = regexp.MustCompile(`([A-Z\d]+)([A-Z][a-z])`)
	wordBoundary    = regexp.MustCompile(`([a-z\d])([A-Z])`)
)

// Inflector converts words between singular and plural forms and between
// CamelCase and snake_case. It is immutable after construction and safe
// for concurrent use.
type Inflector struct {
	locale    string
	plurals   map[string]string
	singulars map[string]string
}

// New creates an Inflector for the configured locale.
// An empty locale selects DefaultLocale.
func New(cfg Config) (*Inflector, error) {
	base, err := ParseLocale(cfg.Locale)
	if err != nil {
		return nil, err
	}
	return &Inflector{
		locale:    base,
		plurals:   copyOverrides(cfg.PluralOverrides),
		singulars: copyOverrides(cfg.SingularOverrides),
	}, nil
}

// ForLocale creates an Inflector for locale without overrides.
func ForLocale(locale string) (*Inflector, error) {
	cfg := DefaultConfig()
	cfg.Locale = locale
	return New(cfg)
}

// ParseLocale resolves a locale string to the base language of a supported
// rule table. Both "en-US" and "en_US" forms are accepted.
func ParseLocale(locale string) (string, error) {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrUnsupportedLocale, locale, err)
	}
	base, _ := tag.Base()
	if !supportedLanguages[base.String()] {
		return "", fmt.Errorf("%w %q", ErrUnsupportedLocale, locale)
	}
	return base.String(), nil
}

// Locale returns the base language the inflector is bound to.
func (i *Inflector) Locale() string {
	return i.locale
}

// Pluralize converts a singular word to its plural form.
// Checks custom overrides first, then falls back to the inflection library.
func (i *Inflector) Pluralize(word string) string {
	if override, ok := lookupOverride(i.plurals, word); ok {
		return override
	}
	plural := inflection.Plural(word)
	// The catch-all rule only matches a trailing letter.
	if plural == word && endsInDigit(word) {
		return word + "s"
	}
	return plural
}

// Singularize converts a plural word to its singular form.
// Checks custom overrides first, then falls back to the inflection library.
func (i *Inflector) Singularize(word string) string {
	if override, ok := lookupOverride(i.singulars, word); ok {
		return override
	}
	return inflection.Singular(word)
}

// Underscore converts a CamelCase or camelCase word to snake_case. An
// underscore goes before an uppercase letter that follows a lowercase letter
// or digit, and before the last capital of an acronym run. Digits never start
// a new word, so snake_case input is returned unchanged.
// Example: "OrderItems" -> "order_items", "HTMLParser" -> "html_parser", "ApiV2Key" -> "api_v2_key"
func (i *Inflector) Underscore(word string) string {
	word = acronymBoundary.ReplaceAllString(word, "${1}_${2}")
	word = wordBoundary.ReplaceAllString(word, "${1}_${2}")
	return strings.ToLower(strings.ReplaceAll(word, "-", "_"))
}

// Camelize converts a snake_case word to CamelCase.
// Example: "order_item" -> "OrderItem"
func (i *Inflector) Camelize(word string) string {
	return strcase.ToCamel(word)
}

// lookupOverride finds an override by exact key, then by lower-case key.
// A lower-case hit keeps the capitalization of the word's first letter so
// "Person" with {"person": "persons"} yields "Persons".
func lookupOverride(overrides map[string]string, word string) (string, bool) {
	if len(overrides) == 0 || word == "" {
		return "", false
	}
	if override, ok := overrides[word]; ok {
		return override, true
	}
	override, ok := overrides[strings.ToLower(word)]
	if !ok || override == "" {
		return "", false
	}
	first, _ := utf8.DecodeRuneInString(word)
	if unicode.IsUpper(first) {
		r, size := utf8.DecodeRuneInString(override)
		return string(unicode.ToUpper(r)) + override[size:], true
	}
	return override, true
}

func endsInDigit(word string) bool {
	r, _ := utf8.DecodeLastRuneInString(word)
	return unicode.IsDigit(r)
}

func copyOverrides(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
