package validation

import (
	"regexp"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
)

// Rule is one check on a field. Every rule except Required treats an empty
// value as passing, so optional fields only fail on what was actually typed.
type Rule struct {
	Message string
	check   func(value string, all Values) bool

	// dependsOn names the other field a cross-field rule reads.
	dependsOn string
}

func (r Rule) ok(value string, all Values) bool { return r.check(value, all) }

func optional(fn func(string, Values) bool) func(string, Values) bool {
	return func(v string, all Values) bool {
		if v == "" {
			return true
		}
		return fn(v, all)
	}
}

func Required(msg string) Rule {
	return Rule{Message: msg, check: func(v string, _ Values) bool { return v != "" }}
}

// MinLen counts runes, not bytes.
func MinLen(n int, msg string) Rule {
	return Rule{Message: msg, check: optional(func(v string, _ Values) bool {
		return utf8.RuneCountInString(v) >= n
	})}
}

func Pattern(re *regexp.Regexp, msg string) Rule {
	return Rule{Message: msg, check: optional(func(v string, _ Values) bool {
		return re.MatchString(v)
	})}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() { validate = validator.New() })
	return validate
}

// Email applies the validator package's "email" tag.
func Email(msg string) Rule {
	return Rule{Message: msg, check: optional(func(v string, _ Values) bool {
		return structValidator().Var(v, "email") == nil
	})}
}

func OneOf(msg string, allowed ...string) Rule {
	return Rule{Message: msg, check: optional(func(v string, _ Values) bool {
		return slices.Contains(allowed, v)
	})}
}

// Matches requires the value to equal another field's value.
func Matches(field, msg string) Rule {
	return Rule{Message: msg, dependsOn: field, check: func(v string, all Values) bool {
		return v == all[field]
	}}
}

// FileType sniffs the file at the given path and accepts it only if its
// detected MIME type is one of allowed. A missing file fails.
func FileType(msg string, allowed ...string) Rule {
	return Rule{Message: msg, check: optional(func(path string, _ Values) bool {
		mt, err := mimetype.DetectFile(path)
		if err != nil {
			return false
		}
		for _, a := range allowed {
			if mt.Is(a) {
				return true
			}
		}
		return false
	})}
}

func trimmed(s string) string { return strings.TrimSpace(s) }
