package catalog

// Products returns the shop listings. Callers get a fresh slice each call so
// the backing data cannot be mutated through a filter result.
func Products() []Product {
	return []Product{
		{
			ID: "1", Name: "Gentle Foaming Cleanser", Brand: "BeautyLab",
			Price: 24.99, OriginalPrice: 29.99,
			Image:  "https://images.pexels.com/photos/7428100/pexels-photo-7428100.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.8, Reviews: 245, Category: "cleanser",
			SkinTypes: []string{"all"}, OnSale: true,
		},
		{
			ID: "2", Name: "Niacinamide 10% Serum", Brand: "SkinScience",
			Price:  18.99,
			Image:  "https://images.pexels.com/photos/7428092/pexels-photo-7428092.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.6, Reviews: 189, Category: "serum",
			SkinTypes: []string{"oily", "combination"},
		},
		{
			ID: "3", Name: "Hyaluronic Acid Moisturizer", Brand: "HydraGlow",
			Price:  32.99,
			Image:  "https://images.pexels.com/photos/7428095/pexels-photo-7428095.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.9, Reviews: 312, Category: "moisturizer",
			SkinTypes: []string{"dry", "normal"},
		},
		{
			ID: "4", Name: "Vitamin C Brightening Serum", Brand: "GlowUp",
			Price: 45.99, OriginalPrice: 55.99,
			Image:  "https://images.pexels.com/photos/7428089/pexels-photo-7428089.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.7, Reviews: 156, Category: "serum",
			SkinTypes: []string{"all"}, OnSale: true,
		},
		{
			ID: "5", Name: "SPF 50 Mineral Sunscreen", Brand: "SunSafe",
			Price:  28.99,
			Image:  "https://images.pexels.com/photos/7428097/pexels-photo-7428097.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.5, Reviews: 203, Category: "sunscreen",
			SkinTypes: []string{"sensitive", "all"},
		},
		{
			ID: "6", Name: "Retinol Night Treatment", Brand: "AgeDefense",
			Price:  52.99,
			Image:  "https://images.pexels.com/photos/7428093/pexels-photo-7428093.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.4, Reviews: 89, Category: "treatment",
			SkinTypes: []string{"normal", "combination"},
		},
		{
			ID: "7", Name: "Illuminating Foundation", Brand: "PerfectBase",
			Price:  39.99,
			Image:  "https://images.pexels.com/photos/7428101/pexels-photo-7428101.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.6, Reviews: 167, Category: "makeup",
			SkinTypes: []string{"all"},
		},
		{
			ID: "8", Name: "Soothing Face Mask", Brand: "CalmSkin",
			Price: 15.99, OriginalPrice: 19.99,
			Image:  "https://images.pexels.com/photos/7428094/pexels-photo-7428094.jpeg?auto=compress&cs=tinysrgb&w=300",
			Rating: 4.8, Reviews: 298, Category: "treatment",
			SkinTypes: []string{"sensitive", "dry"}, OnSale: true,
		},
	}
}

// Tutorials returns the makeup guide listings.
func Tutorials() []Tutorial {
	return []Tutorial{
		{
			ID: "1", Title: "Everyday Natural Glow",
			Description: "Perfect for daily wear with minimal products",
			Duration:    "8 min", Difficulty: "Beginner",
			SkinTypes: []string{"all"},
			Thumbnail: "https://images.pexels.com/photos/3373736/pexels-photo-3373736.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:    4.8, Views: 1250, Category: "everyday",
		},
		{
			ID: "2", Title: "Smoky Eye for Oily Skin",
			Description: "Long-lasting smoky eye technique for oily skin types",
			Duration:    "15 min", Difficulty: "Intermediate",
			SkinTypes: []string{"oily", "combination"},
			Thumbnail: "https://images.pexels.com/photos/3373739/pexels-photo-3373739.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:    4.6, Views: 890, Category: "evening",
		},
		{
			ID: "3", Title: "Bridal Makeup Masterclass",
			Description: "Complete bridal look with contouring and highlighting",
			Duration:    "25 min", Difficulty: "Advanced",
			SkinTypes: []string{"all"},
			Thumbnail: "https://images.pexels.com/photos/3373738/pexels-photo-3373738.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:    4.9, Views: 2100, Category: "special-occasion",
		},
		{
			ID: "4", Title: "No-Makeup Makeup Look",
			Description: "Enhance natural beauty with subtle techniques",
			Duration:    "6 min", Difficulty: "Beginner",
			SkinTypes: []string{"all"},
			Thumbnail: "https://images.pexels.com/photos/3373740/pexels-photo-3373740.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:    4.7, Views: 1680, Category: "natural",
		},
		{
			ID: "5", Title: "Sensitive Skin Foundation",
			Description: "Gentle application techniques for sensitive skin",
			Duration:    "10 min", Difficulty: "Beginner",
			SkinTypes: []string{"sensitive"},
			Thumbnail: "https://images.pexels.com/photos/3373741/pexels-photo-3373741.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:    4.5, Views: 745, Category: "everyday",
		},
		{
			ID: "6", Title: "Glamorous Party Look",
			Description: "Bold and dramatic makeup for special events",
			Duration:    "20 min", Difficulty: "Advanced",
			SkinTypes: []string{"all"},
			Thumbnail: "https://images.pexels.com/photos/3373742/pexels-photo-3373742.jpeg?auto=compress&cs=tinysrgb&w=400",
			Rating:    4.8, Views: 1420, Category: "glam",
		},
	}
}

// Doctors returns the consultation specialist listings.
func Doctors() []Doctor {
	return []Doctor{
		{
			ID: "1", Name: "Dr. Sarah Johnson", Specialization: "Dermatologist",
			Experience: 8, Rating: 4.9, Reviews: 156,
			Image: "https://images.pexels.com/photos/5327585/pexels-photo-5327585.jpeg?auto=compress&cs=tinysrgb&w=300",
			Price: 85,
			AvailableSlots: []string{"9:00 AM", "10:30 AM", "2:00 PM", "4:30 PM"},
			Languages:      []string{"English", "Spanish"},
			IsOnline:       true,
		},
		{
			ID: "2", Name: "Dr. Michael Chen", Specialization: "Cosmetic Dermatologist",
			Experience: 12, Rating: 4.8, Reviews: 203,
			Image: "https://images.pexels.com/photos/5327656/pexels-photo-5327656.jpeg?auto=compress&cs=tinysrgb&w=300",
			Price: 120,
			AvailableSlots: []string{"11:00 AM", "1:00 PM", "3:30 PM", "5:00 PM"},
			Languages:      []string{"English", "Mandarin"},
		},
		{
			ID: "3", Name: "Dr. Emily Rodriguez", Specialization: "Aesthetic Medicine",
			Experience: 6, Rating: 4.7, Reviews: 89,
			Image: "https://images.pexels.com/photos/5327921/pexels-photo-5327921.jpeg?auto=compress&cs=tinysrgb&w=300",
			Price: 95,
			AvailableSlots: []string{"8:30 AM", "12:00 PM", "2:30 PM", "6:00 PM"},
			Languages:      []string{"English", "Spanish", "French"},
			IsOnline:       true,
		},
		{
			ID: "4", Name: "Dr. James Wilson", Specialization: "Dermatologist",
			Experience: 15, Rating: 4.9, Reviews: 298,
			Image: "https://images.pexels.com/photos/5327900/pexels-photo-5327900.jpeg?auto=compress&cs=tinysrgb&w=300",
			Price: 110,
			AvailableSlots: []string{"9:30 AM", "11:30 AM", "3:00 PM", "4:00 PM"},
			Languages:      []string{"English"},
			IsOnline:       true,
		},
	}
}

// DoctorByID looks up a doctor in the listings.
func DoctorByID(id string) (Doctor, bool) {
	for _, d := range Doctors() {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}

// ProductByID looks up a product in the listings.
func ProductByID(id string) (Product, bool) {
	for _, p := range Products() {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
