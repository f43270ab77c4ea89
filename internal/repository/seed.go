package repository

import "bellehair/internal/domain"

// SeedProducts returns the demo catalog. Order matters: list endpoints
// promise storage order, which is the order below.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Perruque Lace Front Brésilienne",
			Price:       149.99,
			Description: "Perruque lace front de qualité supérieure, cheveux brésiliens 100% naturels. Densité 150%, longueur 18 pouces.",
			Category:    domain.CategoryPerruque,
			Stock:       15,
			Images:      []string{"/images/perruque1.jpg", "/images/perruque1-2.jpg", "/images/perruque1-3.jpg"},
			Specifications: []string{
				"Densité: 150%", "Longueur: 18 pouces", "Type: Lace Front", "Origine: Brésil", "Couleur: Noir naturel",
			},
			Featured: true,
			Stars:    4.7,
			Reviews: []domain.Review{
				{
					ID:       "r1",
					UserID:   "u2",
					UserName: "Marie L.",
					Rating:   5,
					Comment:  "Qualité exceptionnelle, je suis très satisfaite de mon achat!",
					Date:     "2023-09-15",
				},
				{
					ID:       "r2",
					UserID:   "u3",
					UserName: "Sophia K.",
					Rating:   4,
					Comment:  "Très belle perruque, mais la livraison a pris plus de temps que prévu.",
					Date:     "2023-08-30",
				},
			},
		},
		{
			ID:          "p2",
			Name:        "Tissage Ondulé Péruvien",
			Price:       89.99,
			Description: "Tissage ondulé de cheveux péruviens, texture douce et naturelle. Longueur 20 pouces.",
			Category:    domain.CategoryTissage,
			Stock:       20,
			Images:      []string{"/images/tissage1.jpg", "/images/tissage1-2.jpg"},
			Specifications: []string{
				"Longueur: 20 pouces", "Texture: Ondulée", "Origine: Pérou", "Poids: 100g/paquet", "Qualité: Premium",
			},
			Featured: true,
			Stars:    4.5,
			Reviews: []domain.Review{
				{
					ID:       "r3",
					UserID:   "u4",
					UserName: "Carine T.",
					Rating:   5,
					Comment:  "Ce tissage est incroyable, tellement naturel!",
					Date:     "2023-09-20",
				},
			},
		},
		{
			ID:          "p3",
			Name:        "Peigne Chauffant Céramique Pro",
			Price:       59.99,
			Description: "Peigne chauffant professionnel avec plaques en céramique, réglage de température précis et affichage digital.",
			Category:    domain.CategoryPeigne,
			Stock:       8,
			Images:      []string{"/images/peigne1.jpg", "/images/peigne1-2.jpg"},
			Specifications: []string{
				"Matériau: Céramique", "Température max: 230°C", "Affichage: Digital LCD", "Puissance: 45W", "Cordon: 2.5m pivotant",
			},
			Featured: false,
			Stars:    4.2,
			Reviews: []domain.Review{
				{
					ID:       "r4",
					UserID:   "u1",
					UserName: "Laura M.",
					Rating:   4,
					Comment:  "Bon produit, chauffe rapidement. Pratique pour les retouches rapides.",
					Date:     "2023-08-05",
				},
			},
		},
		{
			ID:          "p4",
			Name:        "Queue de Cheval Clip-in Lisse",
			Price:       39.99,
			Description: "Queue de cheval à clip facile à installer, cheveux synthétiques haute qualité, longueur 22 pouces.",
			Category:    domain.CategoryQueueDeCheval,
			Stock:       25,
			Images:      []string{"/images/queue1.jpg", "/images/queue1-2.jpg"},
			Specifications: []string{
				"Longueur: 22 pouces", "Type: Clip-in", "Matériau: Synthétique haute qualité", "Poids: 120g", "Style: Lisse",
			},
			Featured: true,
			Stars:    4.0,
			Reviews: []domain.Review{
				{
					ID:       "r5",
					UserID:   "u5",
					UserName: "Julie D.",
					Rating:   4,
					Comment:  "Vraiment pratique pour les jours où je n'ai pas le temps de me coiffer!",
					Date:     "2023-09-10",
				},
			},
		},
		{
			ID:          "p5",
			Name:        "Perruque Bob Court",
			Price:       129.99,
			Description: "Perruque bob court élégante, cheveux humains, coupe stylée et moderne.",
			Category:    domain.CategoryPerruque,
			Stock:       10,
			Images:      []string{"/images/perruque2.jpg", "/images/perruque2-2.jpg"},
			Specifications: []string{
				"Longueur: 12 pouces", "Type: Full Lace", "Origine: Malaisie", "Densité: 130%", "Style: Bob",
			},
			Featured: false,
			Stars:    4.8,
		},
		{
			ID:          "p6",
			Name:        "Tissage Brésilien Lisse",
			Price:       79.99,
			Description: "Tissage lisse de cheveux brésiliens, qualité premium, longueur 24 pouces.",
			Category:    domain.CategoryTissage,
			Stock:       15,
			Images:      []string{"/images/tissage2.jpg", "/images/tissage2-2.jpg"},
			Specifications: []string{
				"Longueur: 24 pouces", "Texture: Lisse", "Origine: Brésil", "Poids: 100g/paquet", "Qualité: Premium",
			},
			Featured: false,
			Stars:    4.6,
		},
		{
			ID:          "p7",
			Name:        "Perruque Longue Ondulée",
			Price:       169.99,
			Description: "Perruque longue ondulée en cheveux naturels, aspect naturel et confortable à porter.",
			Category:    domain.CategoryPerruque,
			Stock:       7,
			Images:      []string{"/images/perruque3.jpg"},
			Specifications: []string{
				"Longueur: 24 pouces", "Type: Full Lace", "Origine: Brésil", "Densité: 150%", "Style: Ondulé",
			},
			Featured: true,
			Stars:    4.9,
		},
		{
			ID:          "p8",
			Name:        "Perruque Courte Afro",
			Price:       119.99,
			Description: "Perruque courte style afro, volume naturel et texture authentique.",
			Category:    domain.CategoryPerruque,
			Stock:       12,
			Images:      []string{"/images/perruque4.jpg"},
			Specifications: []string{
				"Longueur: 6 pouces", "Type: Full Cap", "Origine: Afrique", "Densité: 150%", "Style: Afro",
			},
			Featured: false,
			Stars:    4.5,
		},
		{
			ID:          "p9",
			Name:        "Perruque Lisse Extra Longue",
			Price:       189.99,
			Description: "Perruque extra longue et lisse, finition brillante et mouvement naturel.",
			Category:    domain.CategoryPerruque,
			Stock:       5,
			Images:      []string{"/images/perruque5.jpg"},
			Specifications: []string{
				"Longueur: 30 pouces", "Type: Lace Front", "Origine: Inde", "Densité: 130%", "Style: Lisse",
			},
			Featured: false,
			Stars:    4.7,
		},
		{
			ID:          "p10",
			Name:        "Tissage Bouclé Premium",
			Price:       99.99,
			Description: "Tissage bouclé premium, cheveux traités pour une tenue optimale des boucles.",
			Category:    domain.CategoryTissage,
			Stock:       18,
			Images:      []string{"/images/tissage3.jpg"},
			Specifications: []string{
				"Longueur: 18 pouces", "Texture: Bouclée", "Origine: Malaisie", "Poids: 100g/paquet", "Qualité: Premium",
			},
			Featured: true,
			Stars:    4.8,
		},
		{
			ID:          "p11",
			Name:        "Tissage Naturel Court",
			Price:       69.99,
			Description: "Tissage court naturel, facile à coiffer et à entretenir.",
			Category:    domain.CategoryTissage,
			Stock:       22,
			Images:      []string{"/images/tissage4.jpg"},
			Specifications: []string{
				"Longueur: 10 pouces", "Texture: Naturelle", "Origine: Inde", "Poids: 100g/paquet", "Qualité: Standard",
			},
			Featured: false,
			Stars:    4.3,
		},
		{
			ID:          "p12",
			Name:        "Tissage Ombré Spécial",
			Price:       109.99,
			Description: "Tissage avec effet ombré, transition naturelle de couleurs.",
			Category:    domain.CategoryTissage,
			Stock:       9,
			Images:      []string{"/images/tissage5.jpg"},
			Specifications: []string{
				"Longueur: 22 pouces", "Texture: Lisse", "Origine: Brésil", "Poids: 120g/paquet", "Style: Ombré",
			},
			Featured: false,
			Stars:    4.6,
		},
		{
			ID:          "p13",
			Name:        "Peigne Chauffant Professionnel",
			Price:       79.99,
			Description: "Peigne chauffant professionnel avec tourmaline pour éviter les frisottis.",
			Category:    domain.CategoryPeigne,
			Stock:       14,
			Images:      []string{"/images/peigne2.jpg"},
			Specifications: []string{
				"Matériau: Tourmaline", "Température max: 210°C", "Affichage: LED", "Puissance: 50W", "Fonction: Anti-frisottis",
			},
			Featured: true,
			Stars:    4.5,
		},
		{
			ID:          "p14",
			Name:        "Peigne Chauffant Compact",
			Price:       49.99,
			Description: "Peigne chauffant compact idéal pour les voyages et retouches rapides.",
			Category:    domain.CategoryPeigne,
			Stock:       20,
			Images:      []string{"/images/peigne3.jpg"},
			Specifications: []string{
				"Matériau: Céramique", "Température max: 180°C", "Format: Compact", "Puissance: 30W", "Longueur: 20cm",
			},
			Featured: false,
			Stars:    4.0,
		},
		{
			ID:          "p15",
			Name:        "Peigne Chauffant Ionique",
			Price:       89.99,
			Description: "Peigne chauffant avec technologie ionique pour des cheveux brillants et sans électricité statique.",
			Category:    domain.CategoryPeigne,
			Stock:       6,
			Images:      []string{"/images/peigne4.jpg"},
			Specifications: []string{
				"Matériau: Titane", "Température max: 230°C", "Technologie: Ionique", "Puissance: 55W", "Cordon: 3m pivotant",
			},
			Featured: false,
			Stars:    4.7,
		},
		{
			ID:          "p16",
			Name:        "Peigne Chauffant Multifonction",
			Price:       99.99,
			Description: "Peigne chauffant multifonction avec différentes têtes pour varier les styles.",
			Category:    domain.CategoryPeigne,
			Stock:       11,
			Images:      []string{"/images/peigne5.jpg"},
			Specifications: []string{
				"Matériau: Céramique", "Température max: 220°C", "Accessoires: 3 têtes", "Puissance: 60W", "Arrêt auto: 60 min",
			},
			Featured: true,
			Stars:    4.9,
		},
		{
			ID:          "p17",
			Name:        "Queue de Cheval Volumineuse",
			Price:       49.99,
			Description: "Queue de cheval volumineuse à clip, apporte volume et longueur instantanément.",
			Category:    domain.CategoryQueueDeCheval,
			Stock:       17,
			Images:      []string{"/images/queue2.jpg"},
			Specifications: []string{
				"Longueur: 20 pouces", "Type: Clip-in", "Matériau: Synthétique premium", "Poids: 150g", "Style: Volumineux",
			},
			Featured: true,
			Stars:    4.6,
		},
		{
			ID:          "p18",
			Name:        "Queue de Cheval Bouclée",
			Price:       54.99,
			Description: "Queue de cheval bouclée naturelle, fixation solide et confortable.",
			Category:    domain.CategoryQueueDeCheval,
			Stock:       13,
			Images:      []string{"/images/queue3.jpg"},
			Specifications: []string{
				"Longueur: 18 pouces", "Type: Elastic band", "Matériau: Mélange naturel/synthétique", "Poids: 130g", "Style: Bouclé",
			},
			Featured: false,
			Stars:    4.4,
		},
		{
			ID:          "p19",
			Name:        "Queue de Cheval Extra Longue",
			Price:       59.99,
			Description: "Queue de cheval extra longue pour un look dramatique et élégant.",
			Category:    domain.CategoryQueueDeCheval,
			Stock:       9,
			Images:      []string{"/images/queue4.jpg"},
			Specifications: []string{
				"Longueur: 28 pouces", "Type: Wrap-around", "Matériau: Synthétique haute qualité", "Poids: 180g", "Style: Lisse",
			},
			Featured: false,
			Stars:    4.3,
		},
		{
			ID:          "p20",
			Name:        "Queue de Cheval Ombré",
			Price:       64.99,
			Description: "Queue de cheval avec effet ombré, transition de couleurs naturelle du brun au blond.",
			Category:    domain.CategoryQueueDeCheval,
			Stock:       7,
			Images:      []string{"/images/queue5.jpg"},
			Specifications: []string{
				"Longueur: 24 pouces", "Type: Clip-in", "Matériau: Synthétique haute qualité", "Poids: 160g", "Style: Ombré",
			},
			Featured: true,
			Stars:    4.7,
		},
	}
}

// SeedUsers returns the demo accounts. Favorites may point at ids outside
// the catalog; lookups treat those as absent, never as errors.
func SeedUsers() []domain.User {
	return []domain.User{
		{
			ID:        "u1",
			FirstName: "Laura",
			LastName:  "Martin",
			Email:     "laura.martin@example.com",
			Phone:     "0612345678",
			Address:   "123 Rue de Paris, 75001 Paris",
			IsAdmin:   true,
			Favorites: []string{"p1", "p4", "p7", "p13"},
		},
		{
			ID:        "u2",
			FirstName: "Marie",
			LastName:  "Laurent",
			Email:     "marie.laurent@example.com",
			Phone:     "0687654321",
			Address:   "45 Avenue des Fleurs, 69002 Lyon",
			IsAdmin:   false,
			Favorites: []string{"p2", "p10", "p17"},
		},
	}
}
