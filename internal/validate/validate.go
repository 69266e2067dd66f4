package validate

import "strings"

// rrnMultipliers is the weighted checksum cycle applied to the first 12
// digits of a resident registration number.
var rrnMultipliers = [12]int{2, 3, 4, 5, 6, 7, 8, 9, 2, 3, 4, 5}

// StripNonDigits removes every character outside 0-9.
func StripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, ch := range s {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Luhn reports whether s contains a payment-card number passing the mod-10
// check. Non-digit characters are stripped first; the remaining digit count
// must be between 13 and 19.
func Luhn(s string) bool {
	digits := StripNonDigits(s)
	if len(digits) < 13 || len(digits) > 19 {
		return false
	}
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// RRN reports whether s is a well-formed resident registration number
// (YYMMDD-GNNNNNN). The date block is checked loosely: month must be 1-12 and
// day 1-31 with no per-month length or leap-year handling, matching the
// upstream behavior. The gender/century digit must be 1-4 and the final digit
// must satisfy the weighted checksum.
func RRN(s string) bool {
	if strings.Count(s, "-") != 1 || len(s) != 14 {
		return false
	}
	digits := strings.ReplaceAll(s, "-", "")
	if len(digits) != 13 {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	month := int(digits[2]-'0')*10 + int(digits[3]-'0')
	day := int(digits[4]-'0')*10 + int(digits[5]-'0')
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}

	gender := int(digits[6] - '0')
	if gender < 1 || gender > 4 {
		return false
	}

	sum := 0
	for i, m := range rrnMultipliers {
		sum += int(digits[i]-'0') * m
	}
	check := (11 - sum%11) % 10
	return check == int(digits[12]-'0')
}
