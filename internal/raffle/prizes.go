package raffle

// Prize and draw configuration per region. Static marketing data; the
// draw itself happens outside this service.

type Prize struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Value       string `json:"value"`
	Image       string `json:"image"`
}

type DrawConfig struct {
	Month    string `json:"month"`
	Prize    Prize  `json:"prize"`
	DrawDate string `json:"drawDate"`
}

var draws = map[string]DrawConfig{
	"MX": {
		Month: "Enero 2025",
		Prize: Prize{
			Title:       "Kit de Herramientas Profesionales",
			Description: "Incluye pistola de pintura profesional, rodillos premium, brochas de alta calidad y accesorios",
			Value:       "$15,000 MXN",
			Image:       "/professional-painting-tools.jpg",
		},
		DrawDate: "2025-01-31",
	},
	"HN": {
		Month: "Enero 2025",
		Prize: Prize{
			Title:       "Kit Completo de Pintura Profesional",
			Description: "Pistola de pintura, rodillos de alta calidad, brochas profesionales y todos los accesorios necesarios",
			Value:       "L. 3,500 HNL",
			Image:       "/professional-painting-tools.jpg",
		},
		DrawDate: "2025-01-31",
	},
	"SV": {
		Month: "Enero 2025",
		Prize: Prize{
			Title:       "Equipo Profesional de Pintura",
			Description: "Kit completo con pistola de pintura profesional, rodillos premium y herramientas de alta calidad",
			Value:       "$400 USD",
			Image:       "/professional-painting-tools.jpg",
		},
		DrawDate: "2025-01-31",
	},
	"BZ": {
		Month: "January 2025",
		Prize: Prize{
			Title:       "Professional Painting Tools Kit",
			Description: "Includes professional paint sprayer, premium rollers, high-quality brushes and accessories",
			Value:       "$400 BZD",
			Image:       "/professional-painting-tools.jpg",
		},
		DrawDate: "2025-01-31",
	},
}

// DrawForRegion returns the raffle configuration for the region, falling
// back to MX for unknown or missing codes.
func DrawForRegion(regionCode string) DrawConfig {
	if cfg, ok := draws[regionCode]; ok {
		return cfg
	}
	return draws["MX"]
}
