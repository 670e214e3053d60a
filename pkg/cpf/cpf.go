// Package cpf validates and formats Brazilian CPF numbers
// (mod-11, two check digits).
package cpf

import "strings"

// Valid reports whether the input is a checksum-valid CPF. Formatting
// characters are ignored; the cleaned number must have exactly 11 digits.
// Sequences made of a single repeated digit (000..., 111..., ...) pass the
// checksum arithmetic but are invalid CPFs and are rejected unconditionally.
func Valid(raw string) bool {
	digits := onlyDigits(raw)
	if len(digits) != 11 {
		return false
	}
	if allSameDigit(digits) {
		return false
	}
	if checkDigit(digits, 9) != int(digits[9]-'0') {
		return false
	}
	if checkDigit(digits, 10) != int(digits[10]-'0') {
		return false
	}
	return true
}

// checkDigit computes the mod-11 check digit over the first n digits, with
// weights n+1 down to 2. Raw results of 10 and 11 map to 0.
func checkDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	d := 11 - (sum % 11)
	if d == 10 || d == 11 {
		return 0
	}
	return d
}

// Format renders the digits of the input in the display form NNN.NNN.NNN-NN.
// Partial inputs are formatted as far as they go; digits beyond the eleventh
// are dropped.
func Format(raw string) string {
	digits := onlyDigits(raw)
	if len(digits) > 11 {
		digits = digits[:11]
	}

	var b strings.Builder
	for i := 0; i < len(digits); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(digits[i])
	}
	return b.String()
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return true
}
