package catalog

import "strings"

// ProductFilter is a conjunction of shop filter criteria. Zero values mean
// "no constraint": an empty Search matches everything, an empty or "all"
// Category/SkinType matches everything, and a MaxPrice of zero leaves the
// price unbounded.
type ProductFilter struct {
	Search   string
	Category string
	SkinType string
	MaxPrice float64
}

// TutorialFilter is a conjunction of makeup guide filter criteria. Empty or
// "all" values match everything.
type TutorialFilter struct {
	Category   string
	SkinType   string
	Difficulty string
}

// DoctorFilter narrows the consultation listings. Empty or "all"
// Specialization matches everything; Search matches name or specialization.
type DoctorFilter struct {
	Search         string
	Specialization string
	OnlineOnly     bool
}

// FilterProducts returns the products matching every criterion in f. A
// filter that matches nothing yields an empty, non-nil slice.
func FilterProducts(products []Product, f ProductFilter) []Product {
	out := make([]Product, 0, len(products))
	search := strings.ToLower(f.Search)

	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Brand), search) {
			continue
		}
		if !matchesCategory(p.Category, f.Category) {
			continue
		}
		if !matchesSkinType(p.SkinTypes, f.SkinType) {
			continue
		}
		if f.MaxPrice > 0 && p.Price > f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out
}

// FilterTutorials returns the tutorials matching every criterion in f.
func FilterTutorials(tutorials []Tutorial, f TutorialFilter) []Tutorial {
	out := make([]Tutorial, 0, len(tutorials))

	for _, t := range tutorials {
		if !matchesCategory(t.Category, f.Category) {
			continue
		}
		if !matchesSkinType(t.SkinTypes, f.SkinType) {
			continue
		}
		if f.Difficulty != "" && f.Difficulty != WildcardAll && t.Difficulty != f.Difficulty {
			continue
		}
		out = append(out, t)
	}
	return out
}

// FilterDoctors returns the doctors matching every criterion in f.
func FilterDoctors(doctors []Doctor, f DoctorFilter) []Doctor {
	out := make([]Doctor, 0, len(doctors))
	search := strings.ToLower(f.Search)

	for _, d := range doctors {
		if search != "" &&
			!strings.Contains(strings.ToLower(d.Name), search) &&
			!strings.Contains(strings.ToLower(d.Specialization), search) {
			continue
		}
		if !matchesCategory(d.Specialization, f.Specialization) {
			continue
		}
		if f.OnlineOnly && !d.IsOnline {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesCategory(have, want string) bool {
	return want == "" || want == WildcardAll || have == want
}

// matchesSkinType applies the wildcard on both sides: an "all" filter
// matches any item, and an item tagged "all" matches any filter.
func matchesSkinType(have []string, want string) bool {
	if want == "" || want == WildcardAll {
		return true
	}
	for _, st := range have {
		if st == want || st == WildcardAll {
			return true
		}
	}
	return false
}
