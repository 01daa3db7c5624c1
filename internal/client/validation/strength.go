package validation

import "unicode/utf8"

// PasswordStrength counts how many of these hold: at least 8 characters,
// an upper-case letter, a lower-case letter, a digit, a symbol. It drives the
// strength bar only; the schema decides whether a password is accepted.
// Character classes are the schema's, so the bar and the schema agree.
func PasswordStrength(pw string) int {
	score := 0
	for _, ok := range []bool{
		utf8.RuneCountInString(pw) >= 8,
		hasUpper.MatchString(pw),
		hasLower.MatchString(pw),
		hasDigit.MatchString(pw),
		hasSpecial.MatchString(pw),
	} {
		if ok {
			score++
		}
	}
	return score
}
