package config

import (
	"fmt"
	"strings"

	"resource-naming/internal/inflect"
	"resource-naming/internal/sqlutil"
)

// ValidationError represents a configuration validation error with context.
type ValidationError struct {
	Field   string
	Message string
	Hint    string
}

func (e ValidationError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("%s: %s (hint: %s)", e.Field, e.Message, e.Hint)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Field   string
	Message string
	Hint    string
}

// ValidationResult contains the results of configuration validation.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationWarning
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a combined error message if there are validation errors.
func (r *ValidationResult) Error() string {
	if !r.HasErrors() {
		return ""
	}
	var msgs []string
	for _, e := range r.Errors {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks the configuration for errors and returns validation results.
// It returns both errors (fatal) and warnings (non-fatal issues).
func (c *Config) Validate() *ValidationResult {
	result := &ValidationResult{}

	validateNamingConfig(result, c.Naming)
	c.Output.validate(result)
	c.Logging.validate(result)

	return result
}

func validateNamingConfig(result *ValidationResult, cfg inflect.Config) {
	if _, err := inflect.ParseLocale(cfg.Locale); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "naming.locale",
			Message: err.Error(),
			Hint:    "supported locales: en",
		})
	}
	validateOverrides(result, "naming.plural_overrides", "singular", cfg.PluralOverrides)
	validateOverrides(result, "naming.singular_overrides", "plural", cfg.SingularOverrides)
}

func validateOverrides(result *ValidationResult, field, keyKind string, overrides map[string]string) {
	for word, replacement := range overrides {
		trimmedWord := strings.TrimSpace(word)
		if trimmedWord == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("%s word cannot be empty", keyKind),
			})
			continue
		}
		if strings.TrimSpace(replacement) == "" {
			result.Errors = append(result.Errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("override for %q cannot be empty", trimmedWord),
			})
			continue
		}
		if strings.ToLower(trimmedWord) != trimmedWord {
			result.Warnings = append(result.Warnings, ValidationWarning{
				Field:   field,
				Message: fmt.Sprintf("override key %q is not lower-case", trimmedWord),
				Hint:    "lower-case keys also match capitalized words",
			})
		}
	}
}

func (o *OutputConfig) validate(result *ValidationResult) {
	validFormats := map[string]bool{"json": true, "text": true}
	if !validFormats[o.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.format",
			Message: fmt.Sprintf("invalid output format %q", o.Format),
			Hint:    "valid values are: json, text",
		})
	}

	if _, err := sqlutil.ParseQuoteStyle(o.QuoteStyle); err != nil {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "output.quote_style",
			Message: err.Error(),
		})
	}
}

func (l *LoggingConfig) validate(result *ValidationResult) {
	// Log level validation
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[l.Level] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid log level %q", l.Level),
			Hint:    "valid values are: debug, info, warn, error",
		})
	}

	// Log format validation
	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[l.Format] {
		result.Errors = append(result.Errors, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("invalid log format %q", l.Format),
			Hint:    "valid values are: json, text",
		})
	}
}
