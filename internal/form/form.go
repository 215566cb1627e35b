// Package form implements local validation for the user-facing forms. The
// first failing rule is reported; no outbound event may be sent on failure.
package form

import (
	"fmt"
	"regexp"
)

// Kind identifies a submittable form.
type Kind string

const (
	KindLogin    Kind = "login"
	KindRegister Kind = "register"
	KindGender   Kind = "gender-select"
	KindSpawn    Kind = "spawn-select"
)

// Fields holds user-entered values. Only the fields relevant to the form
// kind are examined.
type Fields struct {
	Username        string
	Password        string
	ConfirmPassword string
	Email           string
	Gender          int
	SpawnType       int
	AgreeTerms      *bool
}

// Rules holds the configurable validation limits. The login password minimum
// differed across historical screen variants (5 vs 6); it is a config knob
// rather than a constant.
type Rules struct {
	UsernameMin         int
	LoginPasswordMin    int
	RegisterPasswordMin int
	RegisterPasswordMax int
}

// DefaultRules returns the limits the original screens used most often.
func DefaultRules() Rules {
	return Rules{
		UsernameMin:         3,
		LoginPasswordMin:    5,
		RegisterPasswordMin: 5,
		RegisterPasswordMax: 20,
	}
}

// ValidationError reports the first failing rule. Field names the offending
// input; Reason is display-ready text.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	letterPattern   = regexp.MustCompile(`[a-zA-Z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
)

// Validate checks the fields against the rules for the given form kind and
// returns the first failing rule, or nil.
func Validate(kind Kind, f Fields, r Rules) *ValidationError {
	switch kind {
	case KindLogin:
		return validateLogin(f, r)
	case KindRegister:
		return validateRegister(f, r)
	case KindGender:
		return validateGender(f)
	case KindSpawn:
		return validateSpawn(f)
	default:
		return &ValidationError{Field: "form", Reason: fmt.Sprintf("unknown form kind %q", kind)}
	}
}

func validateLogin(f Fields, r Rules) *ValidationError {
	// The login flow carries the name from startup; a username field is
	// only validated when the variant includes one.
	if f.Username != "" && len(f.Username) < r.UsernameMin {
		return &ValidationError{Field: "username", Reason: fmt.Sprintf("must be at least %d characters", r.UsernameMin)}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if len(f.Password) < r.LoginPasswordMin {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", r.LoginPasswordMin)}
	}
	return nil
}

func validateRegister(f Fields, r Rules) *ValidationError {
	if f.Username == "" {
		return &ValidationError{Field: "username", Reason: "must not be empty"}
	}
	if len(f.Username) < r.UsernameMin {
		return &ValidationError{Field: "username", Reason: fmt.Sprintf("must be at least %d characters", r.UsernameMin)}
	}
	if !usernamePattern.MatchString(f.Username) {
		return &ValidationError{Field: "username", Reason: "may only contain letters, digits and underscores"}
	}
	if f.Password == "" {
		return &ValidationError{Field: "password", Reason: "must not be empty"}
	}
	if len(f.Password) < r.RegisterPasswordMin {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at least %d characters", r.RegisterPasswordMin)}
	}
	if len(f.Password) > r.RegisterPasswordMax {
		return &ValidationError{Field: "password", Reason: fmt.Sprintf("must be at most %d characters", r.RegisterPasswordMax)}
	}
	if !letterPattern.MatchString(f.Password) || !digitPattern.MatchString(f.Password) {
		return &ValidationError{Field: "password", Reason: "must contain at least one letter and one digit"}
	}
	if !emailPattern.MatchString(f.Email) {
		return &ValidationError{Field: "email", Reason: "must look like local@domain.tld"}
	}
	if f.ConfirmPassword != f.Password {
		return &ValidationError{Field: "confirmPassword", Reason: "must match the password"}
	}
	if f.AgreeTerms != nil && !*f.AgreeTerms {
		return &ValidationError{Field: "agreeTerms", Reason: "must accept the terms"}
	}
	return nil
}

func validateGender(f Fields) *ValidationError {
	if f.Gender != 1 && f.Gender != 2 {
		return &ValidationError{Field: "gender", Reason: "must be selected"}
	}
	return nil
}

func validateSpawn(f Fields) *ValidationError {
	if f.SpawnType < 0 || f.SpawnType > 3 {
		return &ValidationError{Field: "spawnType", Reason: "must be a valid spawn option"}
	}
	return nil
}
