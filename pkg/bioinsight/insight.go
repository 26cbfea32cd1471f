package bioinsight

// Insight is the daily wardrobe and nutrition advice for a phase and weather reading.
type Insight struct {
	Wardrobe  Wardrobe  `json:"wardrobe"`
	Nutrition Nutrition `json:"nutrition"`
}

type Wardrobe struct {
	Summary    string   `json:"summary"`
	Details    string   `json:"details"`
	OutfitTags []string `json:"outfitTags"`
}

type Nutrition struct {
	Focus            string   `json:"focus"`
	Details          string   `json:"details"`
	PowerIngredients []string `json:"powerIngredients"`
}

// RainTag is appended to the outfit tags on rainy days.
const RainTag = "Water-Resistant Layer"

// Generate selects advice by phase, modulated by the weather thresholds.
// A phase outside the enumeration gets the neutral default record.
func Generate(phase Phase, weather Weather) Insight {
	insight := Insight{
		Wardrobe:  wardrobeFor(phase, weather),
		Nutrition: nutritionFor(phase),
	}
	if weather.IsRainy() {
		insight.Wardrobe.OutfitTags = append(insight.Wardrobe.OutfitTags, RainTag)
	}
	return insight
}

func wardrobeFor(phase Phase, w Weather) Wardrobe {
	switch phase {
	case PhaseMenstrual:
		details := "Bloating is likely. Choose A-line silhouettes or untucked structured shirts to maintain polish without constriction."
		if w.IsCold() {
			details = "Core temperature is dropping. Opt for warm, non-restrictive layers like cashmere wraps or high-waisted trousers with stretch."
		}
		return Wardrobe{
			Summary:    "Maximum Comfort Structure",
			Details:    details,
			OutfitTags: []string{"Elastic Waist", "Soft Fabrics", "Dark Colors"},
		}

	case PhaseFollicular:
		return Wardrobe{
			Summary:    "Creative & Bold",
			Details:    "Estrogen is rising, boosting skin glow. It's a great time for bolder colors or experimenting with new accessories.",
			OutfitTags: []string{"Statement Piece", "Lighter Fabrics", "Bold Colors"},
		}

	case PhaseOvulatory:
		details := "Confidence is at an all-time high. Fitted silhouettes and high heels will feel effortless today."
		if w.IsHot() {
			details = "You are at peak body temperature and magnetism. Wear breathable silks or sleeveless cuts that highlight your high energy."
		}
		return Wardrobe{
			Summary:    "Power Dressing",
			Details:    details,
			OutfitTags: []string{"Fitted", "Heels", "Silk"},
		}

	case PhaseLuteal:
		details := "You may feel sensitive to sensory input. Choose soft textures against the skin and avoid heavy, scratchy wools."
		if w.IsHot() {
			details = "Basal body temperature is elevated (~0.5°C). Avoid synthetic blends; stick to linen or breathable cotton to prevent overheating."
		}
		return Wardrobe{
			Summary:    "Temperature Regulation",
			Details:    details,
			OutfitTags: []string{"Breathable", "Layers", "Comfort Shoes"},
		}
	}

	return Wardrobe{
		Summary:    "Standard Professional",
		Details:    "Wear what makes you feel confident.",
		OutfitTags: []string{"Professional", "Comfort"},
	}
}

func nutritionFor(phase Phase) Nutrition {
	switch phase {
	case PhaseMenstrual:
		return Nutrition{
			Focus:            "Replenish & Warm",
			Details:          "Focus on iron-rich foods to replenish blood loss and warm, cooked meals for easier digestion.",
			PowerIngredients: []string{"Steak", "Lentils", "Dark Chocolate"},
		}
	case PhaseFollicular:
		return Nutrition{
			Focus:            "Fresh & Light",
			Details:          "Energy is building. Your metabolism handles carbs well right now. Opt for fresh salads and ancient grains.",
			PowerIngredients: []string{"Quinoa", "Citrus", "Avocado"},
		}
	case PhaseOvulatory:
		return Nutrition{
			Focus:            "Sustain High Energy",
			Details:          "You are burning energy fast. Hydration is critical. Eat cooling foods like cucumber and berries.",
			PowerIngredients: []string{"Berries", "Cucumber", "Salmon"},
		}
	case PhaseLuteal:
		return Nutrition{
			Focus:            "Stabilize Blood Sugar",
			Details:          "Progesterone increases appetite. Combat cravings and the afternoon crash with complex carbs and root vegetables.",
			PowerIngredients: []string{"Sweet Potato", "Walnuts", "Brown Rice"},
		}
	}

	return Nutrition{
		Focus:            "Balanced Energy",
		Details:          "Focus on whole foods and hydration.",
		PowerIngredients: []string{"Water", "Greens"},
	}
}
