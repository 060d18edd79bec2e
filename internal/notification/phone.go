package notification

import "strings"

// NormalizePhone keeps digits only and adds countryCode to bare national
// numbers (10 or 11 digits). Numbers already carrying the prefix and any
// other length pass through unchanged.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	switch {
	case digits == "":
		return ""
	case countryCode != "" && strings.HasPrefix(digits, countryCode):
		return digits
	case len(digits) == 10 || len(digits) == 11:
		return countryCode + digits
	}
	return digits
}
