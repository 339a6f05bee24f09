package config

import (
	"fmt"
	"net/url"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	// Validate Source config
	if c.Source.URL == "" {
		errors = append(errors, ValidationError{
			Field:   "source.url",
			Message: "source URL is required",
		})
	} else {
		parsed, err := url.Parse(c.Source.URL)
		if err != nil || !strings.HasPrefix(parsed.Scheme, "http") {
			errors = append(errors, ValidationError{
				Field:   "source.url",
				Message: "source URL must be a valid http(s) URL",
			})
		}
	}

	if c.Source.TimeoutSeconds < 1 {
		errors = append(errors, ValidationError{
			Field:   "source.timeout_seconds",
			Message: "timeout_seconds must be positive",
		})
	}

	if c.Source.RateLimit <= 0 {
		errors = append(errors, ValidationError{
			Field:   "source.rate_limit",
			Message: "rate_limit must be positive",
		})
	}

	// Validate Roll config
	if c.Roll.DelayMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "roll.delay_ms",
			Message: "delay_ms must be non-negative",
		})
	}

	return errors
}
