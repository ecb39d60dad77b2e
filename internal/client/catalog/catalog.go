// Package catalog holds the static product, tutorial, and doctor listings
// together with the filter logic shared by the shop, makeup, and
// consultation views.
package catalog

// WildcardAll matches every category or skin type in a filter.
const WildcardAll = "all"

// Product is a shop listing. OriginalPrice is zero unless the item is on
// sale. SkinTypes may contain the "all" wildcard, which matches any
// requested skin type.
type Product struct {
	ID            string
	Name          string
	Brand         string
	Price         float64
	OriginalPrice float64
	Image         string
	Rating        float64
	Reviews       int
	Category      string
	SkinTypes     []string
	OnSale        bool
}

// Tutorial is a makeup guide listing.
type Tutorial struct {
	ID          string
	Title       string
	Description string
	Duration    string
	Difficulty  string
	SkinTypes   []string
	Thumbnail   string
	Rating      float64
	Views       int
	Category    string
}

// Doctor is a consultation specialist listing. AvailableSlots are the
// bookable times of day, already formatted for display.
type Doctor struct {
	ID             string
	Name           string
	Specialization string
	Experience     int
	Rating         float64
	Reviews        int
	Image          string
	Price          float64
	AvailableSlots []string
	Languages      []string
	IsOnline       bool
}

// ProductCategories lists the shop filter categories, wildcard first.
var ProductCategories = []string{
	WildcardAll, "cleanser", "moisturizer", "serum", "sunscreen", "treatment", "makeup",
}

// TutorialCategories lists the makeup guide filter categories, wildcard first.
var TutorialCategories = []string{
	WildcardAll, "everyday", "evening", "special-occasion", "natural", "glam",
}

// FilterSkinTypes lists the skin type filter options, wildcard first.
var FilterSkinTypes = []string{
	WildcardAll, "oily", "dry", "combination", "sensitive", "normal",
}

// Difficulties lists the tutorial difficulty filter options, wildcard first.
var Difficulties = []string{
	WildcardAll, "Beginner", "Intermediate", "Advanced",
}
