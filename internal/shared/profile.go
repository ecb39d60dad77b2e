package shared

// ProfileConcerns lists the selectable skin concerns for a profile, in
// display order.
var ProfileConcerns = []string{
	"Acne", "Dark spots", "Fine lines", "Wrinkles", "Dry patches",
	"Oily T-zone", "Large pores", "Redness", "Sensitivity", "Dullness",
}

// AgeRanges lists the selectable age brackets, in display order.
var AgeRanges = []string{
	"Under 18", "18-25", "26-35", "36-45", "46-55", "55+",
}

// ValidAgeRange reports whether s is one of the selectable age brackets.
// The empty string means unset and is accepted.
func ValidAgeRange(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range AgeRanges {
		if r == s {
			return true
		}
	}
	return false
}
