package brochure

// Default returns the canonical seed document used when no prior data exists.
// Every scalar field has a non-empty default except optional image fields,
// which default to "" (no image).
func Default() Document {
	return Document{
		ProjectName: "The Meridian Heights",
		Tagline:     "Elevated living in the heart of the city",
		CoverImage:  "",
		LogoImage:   "",
		ReraNotice:  "RERA Registration No. PRM/KA/RERA/1251/446/PR/010101/000000\nProject details available at rera.karnataka.gov.in",

		IntroTitle:     "A new address for modern living",
		IntroPara1:     "The Meridian Heights brings together thoughtful architecture and generous open spaces in a residential community designed around everyday comfort.",
		IntroPara2:     "Each residence is planned for light, ventilation and privacy, with layouts that adapt to how families actually live.",
		IntroPara3:     "From the landscaped podium to the rooftop lounge, every shared space is an extension of your home.",
		IntroWatermark: "",

		DeveloperName:       "Meridian Developers",
		DeveloperDesc1:      "For over two decades, Meridian Developers has delivered residential and mixed-use projects known for build quality and on-time possession.",
		DeveloperDesc2:      "Our in-house design and construction teams stay with every project from first sketch to final handover.",
		DeveloperImage:      "",
		DeveloperLogo:       "",
		DeveloperDisclaimer: "Past performance of completed projects does not guarantee similar outcomes for ongoing projects.",

		LocationTitle: "Connected to everything that matters",
		LocationDesc1: "Situated on the arterial ring road, the project places business districts, schools and healthcare within a short drive.",
		LocationDesc2: "The upcoming metro extension adds direct rail access to the airport corridor.",
		KeyDistances: []string{
			"Central Business District - 4.5 km",
			"International Airport - 28 km",
			"Metro Station - 1.2 km",
			"City Hospital - 3 km",
		},
		MapImage:          "",
		MapDisclaimer:     "Map not to scale. Distances are approximate and sourced from public mapping services.",
		LocationWatermark: "",

		ConnectivityTitle: "Everything within reach",
		BusinessPoints: []string{
			"Business & Work",
			"Tech Park One - 10 min",
			"Financial District - 15 min",
		},
		HealthcarePoints: []string{
			"Healthcare",
			"City Hospital - 8 min",
			"Specialty Clinic - 12 min",
		},
		EducationPoints: []string{
			"Education",
			"International School - 7 min",
			"State University - 20 min",
		},
		LeisurePoints: []string{
			"Leisure & Retail",
			"Grand Mall - 9 min",
			"Lakefront Promenade - 14 min",
		},
		ConnectivityNote:      "Travel times indicative of off-peak traffic.",
		ConnectivityImage:     "",
		DistrictLabel:         "North District",
		ConnectivityWatermark: "",

		AmenitiesIntroTitle:     "Amenities for every pace of life",
		AmenitiesIntroPara1:     "Over 40 curated amenities spread across the podium, clubhouse and rooftop.",
		AmenitiesIntroPara2:     "Spaces for fitness, play and quiet retreat sit side by side, so every member of the family finds their corner.",
		AmenitiesIntroPara3:     "A dedicated facilities team keeps every amenity ready, every day.",
		AmenitiesIntroWatermark: "",

		AmenitiesListTitle:      "Wellness and recreation",
		AmenitiesListImage:      "",
		AmenitiesListDisclaimer: "Amenity images are artistic impressions.",
		WellnessAmenities: []string{
			"Heated lap pool",
			"Yoga and meditation deck",
			"Fully equipped gymnasium",
		},
		RecreationAmenities: []string{
			"Indoor games lounge",
			"Mini theatre",
			"Children's play area",
		},

		AmenitiesGridTitle: "Life at the club",
		AmenitiesGridItems: []GridItem{
			{ID: "grid-1", Image: "", Label: "Clubhouse"},
			{ID: "grid-2", Image: "", Label: "Swimming Pool"},
			{ID: "grid-3", Image: "", Label: "Gymnasium"},
			{ID: "grid-4", Image: "", Label: "Landscaped Gardens"},
		},
		AmenitiesGridDisclaimer: "Images are for representational purposes only.",

		SpecsTitle:      "Specifications",
		SpecsImage:      "",
		SpecsDisclaimer: "Specifications subject to change without notice.",
		SpecsInterior: []string{
			"Vitrified tile flooring in living and dining",
			"Laminated wooden flooring in bedrooms",
			"Modular kitchen provision with granite counter",
		},
		SpecsBuilding: []string{
			"Earthquake-resistant RCC frame structure",
			"High-speed passenger and service elevators",
			"100% power backup for common areas",
		},

		MasterPlanTitle:      "Master plan",
		MasterPlanImage:      "",
		MasterPlanDisclaimer: "Master plan is indicative and subject to approval.",
		MasterPlanDesc1:      "Three towers arranged around a central green, keeping vehicular movement to the periphery.",
		MasterPlanDesc2:      "Over 70% of the site is open space, landscaped in native, low-water planting.",

		FloorPlansTitle: "Floor plans",
		FloorPlans: []FloorPlan{
			{
				ID:   "plan-1",
				Name: "2 BHK Classic",
				Area: "1,180 sq.ft.",
				Features: []string{
					"Two bedrooms with attached baths",
					"Balcony off the living room",
				},
				Image: "",
			},
			{
				ID:   "plan-2",
				Name: "3 BHK Premier",
				Area: "1,640 sq.ft.",
				Features: []string{
					"Master suite with walk-in wardrobe",
					"Separate utility area",
					"Twin balconies",
				},
				Image: "",
			},
		},
		FloorPlansDisclaimer: "Areas are saleable areas inclusive of common area share.",

		BackCoverImage: "",
		BackCoverLogo:  "",
		CallToAction:   "Book a site visit today",
		ContactTitle:   "Sales Gallery",
		ContactPhone:   "+91 80 4000 0000",
		ContactEmail:   "sales@meridianheights.example.com",
		ContactWebsite: "www.meridianheights.example.com",
		ContactAddress: "Sales Gallery, Ring Road, North District",
		FullDisclaimer: "This brochure is purely conceptual and does not constitute a legal offer. All plans, specifications, images and other details are indicative and subject to the approval of the concerned authorities.",
		ReraDisclaimer: "RERA Registration No. PRM/KA/RERA/1251/446/PR/010101/000000\nProject details available at rera.karnataka.gov.in",
	}
}
