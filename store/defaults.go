package store

import "github.com/Montclaire-Parfums/montclaire-storefront-backend/models"

// Compiled-in default dataset, used when the substrate has no snapshot yet.
// The seed CLI writes the same data explicitly.

func ptr(v float64) *float64 { return &v }

func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:          "1",
			Name:        "Noir Éclat",
			Brand:       "MONTCL△IRÉ",
			Price:       245,
			Category:    "Unisex",
			StockStatus: models.StockInStock,
			Images:      []string{"https://images.unsplash.com/photo-1541605027-0b8493c9efac?auto=format&fit=crop&q=80&w=800"},
			Notes: models.FragranceNotes{
				Top:    []string{"Black Pepper", "Bergamot"},
				Middle: []string{"Night Jasmine", "Saffron"},
				Base:   []string{"Black Amber", "Oud"},
			},
			Description: "A shadow rendered in scent. Noir Éclat opens cold and closes molten, the house signature for after dark.",
			Reviews:     []models.Review{},
			Featured:    true,
			SEO: models.SEOMeta{
				Title:       "Noir Éclat — Eau de Parfum | MONTCL△IRÉ",
				Description: "The house signature for after dark. Black amber, oud, night jasmine.",
				Slug:        "noir-eclat",
			},
		},
		{
			ID:            "2",
			Name:          "Velours Doré",
			Brand:         "MONTCL△IRÉ",
			Price:         280,
			DiscountPrice: ptr(252),
			Category:      "Women",
			StockStatus:   models.StockInStock,
			Images:        []string{"https://images.unsplash.com/photo-1592945403244-b3fbafd7f539?auto=format&fit=crop&q=80&w=800"},
			Notes: models.FragranceNotes{
				Top:    []string{"Pear", "Pink Pepper"},
				Middle: []string{"Iris", "Turkish Rose"},
				Base:   []string{"Sandalwood", "Vanilla", "Musk"},
			},
			Description: "Gilded velvet against the skin. Powdery iris warmed by rose and a sandalwood embrace.",
			Reviews:     []models.Review{},
			Featured:    true,
			SEO: models.SEOMeta{
				Title:       "Velours Doré — Eau de Parfum | MONTCL△IRÉ",
				Description: "Powdery iris, Turkish rose, sandalwood. Feminine elegance, bottled.",
				Slug:        "velours-dore",
			},
		},
		{
			ID:          "3",
			Name:        "Cèdre Sauvage",
			Brand:       "MONTCL△IRÉ",
			Price:       195,
			Category:    "Men",
			StockStatus: models.StockLimited,
			Images:      []string{"https://images.unsplash.com/photo-1594035910387-fea47794261f?auto=format&fit=crop&q=80&w=800"},
			Notes: models.FragranceNotes{
				Top:    []string{"Bergamot", "Cardamom"},
				Middle: []string{"White Cedar", "Sage"},
				Base:   []string{"Vetiver", "Leather"},
			},
			Description: "A morning walk through fog-wet forest, finished in leather. Grounding, precise, quietly commanding.",
			Reviews:     []models.Review{},
			Featured:    true,
			SEO: models.SEOMeta{
				Title:       "Cèdre Sauvage — Eau de Parfum | MONTCL△IRÉ",
				Description: "White cedar, vetiver, leather. Masculine mastery in small batches.",
				Slug:        "cedre-sauvage",
			},
		},
		{
			ID:          "4",
			Name:        "Lumière d'Azur",
			Brand:       "MONTCL△IRÉ",
			Price:       165,
			Category:    "Unisex",
			StockStatus: models.StockInStock,
			Images:      []string{"https://images.unsplash.com/photo-1563170351-be82bc888bb4?auto=format&fit=crop&q=80&w=800"},
			Notes: models.FragranceNotes{
				Top:    []string{"Sea Salt", "Lemon Peel"},
				Middle: []string{"Sage", "Neroli"},
				Base:   []string{"Driftwood", "White Musk"},
			},
			Description: "Light refracted through water. A mineral, airy composition with a sophisticated saline finish.",
			Reviews:     []models.Review{},
			Featured:    false,
			SEO: models.SEOMeta{
				Title:       "Lumière d'Azur — Eau de Parfum | MONTCL△IRÉ",
				Description: "Sea salt, neroli, driftwood. Light and air in a bottle.",
				Slug:        "lumiere-dazur",
			},
		},
		{
			ID:          "5",
			Name:        "Oud Impérial",
			Brand:       "MONTCL△IRÉ",
			Price:       320,
			Category:    "Men",
			StockStatus: models.StockOutOfStk,
			Images:      []string{"https://images.unsplash.com/photo-1583445013765-48c2201c8062?auto=format&fit=crop&q=80&w=800"},
			Notes: models.FragranceNotes{
				Top:    []string{"Saffron", "Raspberry"},
				Middle: []string{"Agarwood", "Rose"},
				Base:   []string{"Amber", "Patchouli"},
			},
			Description: "The crown jewel. Smoked agarwood balanced against rose, for an impression that outlasts the evening.",
			Reviews:     []models.Review{},
			Featured:    false,
			SEO: models.SEOMeta{
				Title:       "Oud Impérial — Eau de Parfum | MONTCL△IRÉ",
				Description: "Agarwood, saffron, amber. The crown jewel of the collection.",
				Slug:        "oud-imperial",
			},
		},
		{
			ID:          "6",
			Name:        "Jardin de Minuit",
			Brand:       "MONTCL△IRÉ",
			Price:       210,
			Category:    "Women",
			StockStatus: models.StockInStock,
			Images:      []string{"https://images.unsplash.com/photo-1512568433530-5531a9976706?auto=format&fit=crop&q=80&w=800"},
			Notes: models.FragranceNotes{
				Top:    []string{"Fig Leaf", "Mandarin"},
				Middle: []string{"Tuberose", "Jasmine Sambac"},
				Base:   []string{"Tonka Bean", "Moss"},
			},
			Description: "A garden that blooms only at midnight. White florals over damp moss, mysterious and magnetic.",
			Reviews:     []models.Review{},
			Featured:    false,
			SEO: models.SEOMeta{
				Title:       "Jardin de Minuit — Eau de Parfum | MONTCL△IRÉ",
				Description: "Tuberose, jasmine sambac, moss. A garden that blooms at midnight.",
				Slug:        "jardin-de-minuit",
			},
		},
	}
}

func DefaultSettings() models.SiteSettings {
	return models.SiteSettings{
		Contact: models.ContactInfo{
			Email:   "atelier@montclaire.com",
			Address: "12 Rue de la Paix, Paris",
			Phone:   "+33 1 42 00 00 00",
		},
		Social: models.SocialLinks{
			Instagram: "https://instagram.com/montclaire.parfums",
			Pinterest: "https://pinterest.com/montclaireparfums",
			WhatsApp:  "https://wa.me/33142000000",
			TikTok:    "https://tiktok.com/@montclaire.parfums",
		},
		Newsletter: models.NewsletterSettings{
			Title:          "Join the Maison",
			SuccessMessage: "Welcome. Your first discovery set awaits.",
		},
	}
}

func DefaultPolicies() []models.PolicyPage {
	return []models.PolicyPage{
		{
			ID:          "shipping",
			Title:       "Shipping & Delivery",
			Content:     "Every order ships with a tracked courier in sustainable luxury packaging. Delivery within 3-7 business days.",
			LastUpdated: "2025-01-15",
			Enabled:     true,
			SEO:         models.SEOMeta{Title: "Shipping & Delivery | MONTCL△IRÉ", Slug: "shipping"},
		},
		{
			ID:          "returns",
			Title:       "Returns & Exchanges",
			Content:     "Unopened bottles may be returned within 14 days of delivery. Opened fragrances are exchanged at the maison's discretion.",
			LastUpdated: "2025-01-15",
			Enabled:     true,
			SEO:         models.SEOMeta{Title: "Returns & Exchanges | MONTCL△IRÉ", Slug: "returns"},
		},
		{
			ID:          "privacy",
			Title:       "Privacy Policy",
			Content:     "We collect only what an order requires and share it with no one beyond the courier.",
			LastUpdated: "2025-01-15",
			Enabled:     true,
			SEO:         models.SEOMeta{Title: "Privacy Policy | MONTCL△IRÉ", Slug: "privacy"},
		},
		{
			ID:          "terms",
			Title:       "Terms of Service",
			Content:     "All purchases are subject to availability. Prices are shown in USD and include applicable taxes.",
			LastUpdated: "2025-01-15",
			Enabled:     false,
			SEO:         models.SEOMeta{Title: "Terms of Service | MONTCL△IRÉ", Slug: "terms"},
		},
	}
}
