package catalog

const placeholderImage = "/api/placeholder/600/400"

// Default returns the demonstration catalog served when no other source is
// configured.
func Default() *Catalog {
	return mustNew([]Property{
		{
			ID:       1,
			Name:     "Student Haven",
			Location: "32 Kasselvlei, Cape Town",
			Price:    "4,000",
			Image:    placeholderImage,
			Tags: []Tag{
				{Label: "NSFAS Accredited", Variant: VariantDefault},
				{Label: "Available", Variant: VariantSecondary},
			},
			Amenities: []Amenity{
				{Icon: IconWifi, Label: "Free WiFi"},
				{Icon: IconShield, Label: "24/7 Security"},
				{Icon: IconCoffee, Label: "Study Areas"},
				{Icon: IconUsers, Label: "Common Room"},
			},
			Description: "Modern student accommodation with all essential amenities for comfortable living and studying. Features include high-speed WiFi, 24/7 security, and dedicated study spaces.",
		},
		{
			ID:       2,
			Name:     "Academia House",
			Location: "Fourie Street, Cape Town",
			Price:    "5,500",
			Image:    placeholderImage,
			Tags: []Tag{
				{Label: "NSFAS Accredited", Variant: VariantDefault},
				{Label: "Popular", Variant: VariantSecondary},
			},
			Amenities: []Amenity{
				{Icon: IconWifi, Label: "Free WiFi"},
				{Icon: IconShield, Label: "Security"},
				{Icon: IconClock, Label: "24/7 Access"},
				{Icon: IconCoffee, Label: "Study Areas"},
			},
			Description: "Premium student living space with en-suite bathrooms and modern facilities. Ideal location near major universities and transport routes.",
		},
	})
}
