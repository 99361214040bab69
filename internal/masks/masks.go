// Package masks normalizes and validates the form fields used by the Savoia
// registration and login flows: CPF, Brazilian phone numbers, e-mail
// addresses, passwords and full names. Every function is pure and total;
// malformed input yields false or a truncated string, never an error.
package masks

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	reEmail         = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	reInnerSpaces   = regexp.MustCompile(`\s{2,}`)
	reLeadingSpaces = regexp.MustCompile(`^\s+`)
)

// OnlyDigits strips every character that is not a decimal digit.
func OnlyDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormSpaces collapses whitespace runs to single spaces and trims both ends.
func NormSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FormatCPF renders up to the first 11 digits of the input as a progressive
// ddd.ddd.ddd-dd mask. Separators only appear once the group they introduce
// has at least one digit, so partial input formats cleanly while typing.
func FormatCPF(s string) string {
	d := OnlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}

	var b strings.Builder
	b.WriteString(d[:min(3, len(d))])
	if len(d) > 3 {
		b.WriteByte('.')
		b.WriteString(d[3:min(6, len(d))])
	}
	if len(d) > 6 {
		b.WriteByte('.')
		b.WriteString(d[6:min(9, len(d))])
	}
	if len(d) > 9 {
		b.WriteByte('-')
		b.WriteString(d[9:])
	}
	return b.String()
}

// FormatPhone renders up to the first 11 digits as (dd) ddddd-dddd. The
// closing parenthesis appears only once the two-digit area code is complete
// and the hyphen only once the final group has at least one digit.
func FormatPhone(s string) string {
	d := OnlyDigits(s)
	if len(d) > 11 {
		d = d[:11]
	}
	if d == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(d[:min(2, len(d))])
	if len(d) >= 2 {
		b.WriteByte(')')
	}
	if len(d) > 2 {
		b.WriteByte(' ')
		b.WriteString(d[2:min(7, len(d))])
	}
	if len(d) > 7 {
		b.WriteByte('-')
		b.WriteString(d[7:])
	}
	return b.String()
}

func allIdentical(d string) bool {
	for i := 1; i < len(d); i++ {
		if d[i] != d[0] {
			return false
		}
	}
	return true
}

// IsValidCPF reports whether the input carries a valid CPF: exactly 11
// digits, not a single repeated digit, and both mod-11 check digits correct.
func IsValidCPF(s string) bool {
	d := OnlyDigits(s)
	if len(d) != 11 || allIdentical(d) {
		return false
	}

	dv := func(n int) int {
		sum := 0
		for i := 0; i < n; i++ {
			sum += int(d[i]-'0') * (n + 1 - i)
		}
		mod := (sum * 10) % 11
		if mod == 10 {
			return 0
		}
		return mod
	}

	return dv(9) == int(d[9]-'0') && dv(10) == int(d[10]-'0')
}

// IsValidPhoneBR accepts 10-digit landlines and 11-digit mobile numbers,
// rejecting single-repeated-digit sequences.
func IsValidPhoneBR(s string) bool {
	d := OnlyDigits(s)
	if len(d) != 10 && len(d) != 11 {
		return false
	}
	return !allIdentical(d)
}

// IsValidEmail runs a permissive structural check (something@something.tld),
// not full RFC validation.
func IsValidEmail(s string) bool {
	return reEmail.MatchString(strings.ToLower(strings.TrimSpace(s)))
}

// IsStrongPassword requires a minimum length of 6. No other complexity rule.
func IsStrongPassword(s string) bool {
	return len(s) >= 6
}

func filterNameRunes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '_' {
			continue
		}
		if unicode.IsLetter(r) || unicode.IsSpace(r) || r == '\'' || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeName keeps letters, whitespace, apostrophes, periods and hyphens,
// then collapses whitespace and trims.
func SanitizeName(s string) string {
	return NormSpaces(filterNameRunes(s))
}

// SanitizeNameLive is the editing-time variant of SanitizeName: it collapses
// internal whitespace runs and strips leading spaces, but preserves a single
// trailing space so typing the separator between first and last name is not
// swallowed mid-keystroke.
func SanitizeNameLive(s string) string {
	out := filterNameRunes(s)

	last, _ := utf8.DecodeLastRuneInString(out)
	hadTrailingSpace := out != "" && unicode.IsSpace(last)

	out = reInnerSpaces.ReplaceAllString(out, " ")
	out = reLeadingSpaces.ReplaceAllString(out, "")

	if hadTrailingSpace && !strings.HasSuffix(out, " ") {
		out += " "
	}
	return out
}

// IsValidFullName requires at least two sanitized parts, each with two or
// more runes and at least one letter.
func IsValidFullName(s string) bool {
	n := SanitizeName(s)
	if n == "" {
		return false
	}
	parts := strings.Split(n, " ")
	if len(parts) < 2 {
		return false
	}
	for _, p := range parts {
		if !partOK(p) {
			return false
		}
	}
	return true
}

func partOK(p string) bool {
	runes := 0
	hasLetter := false
	for _, r := range p {
		runes++
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return runes >= 2 && hasLetter
}
