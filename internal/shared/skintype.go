package shared

// Profile skin types form a closed enumeration. An empty string means the
// user has not set one, which is distinct from any enumerated value.
const (
	SkinTypeOily        = "oily"
	SkinTypeDry         = "dry"
	SkinTypeCombination = "combination"
	SkinTypeSensitive   = "sensitive"
	SkinTypeNormal      = "normal"
)

// SkinTypes lists the allowed profile skin types in display order.
var SkinTypes = []string{
	SkinTypeOily,
	SkinTypeDry,
	SkinTypeCombination,
	SkinTypeSensitive,
	SkinTypeNormal,
}

// ValidSkinType reports whether s is one of the enumerated skin types.
// The empty string is not valid here; "unset" is expressed by omitting
// the field, not by passing "".
func ValidSkinType(s string) bool {
	for _, t := range SkinTypes {
		if s == t {
			return true
		}
	}
	return false
}
