package external

import (
	"context"
	"net/url"

	"github.com/lunahq/luna/pkg/bioinsight"
)

// Meal is a cycle-synced recipe suggestion from TheMealDB.
type Meal struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	Category  string `json:"category"`
	SourceURL string `json:"sourceUrl"`
}

var FallbackMeal = Meal{
	ID:        "52959",
	Name:      "Roasted Asparagus",
	Thumbnail: "https://www.themealdb.com/images/media/meals/1548772327.jpg",
	Category:  "Vegetarian",
	SourceURL: "https://www.bbcgoodfood.com/recipes/roasted-asparagus",
}

// MealCategory maps a phase to a TheMealDB category.
// Unknown phases get Chicken.
func MealCategory(phase bioinsight.Phase) string {
	switch phase {
	case bioinsight.PhaseMenstrual:
		return "Vegetarian"
	case bioinsight.PhaseFollicular:
		return "Seafood"
	case bioinsight.PhaseOvulatory:
		return "Pasta"
	case bioinsight.PhaseLuteal:
		return "Dessert"
	default:
		return "Chicken"
	}
}

type mealDBResponse struct {
	Meals []struct {
		ID    string `json:"idMeal"`
		Name  string `json:"strMeal"`
		Thumb string `json:"strMealThumb"`
	} `json:"meals"`
}

// Meal returns a random recipe from the category matching phase.
func (c *Client) Meal(ctx context.Context, phase bioinsight.Phase) Result[Meal] {
	category := MealCategory(phase)
	return cachedDaily(ctx, c, ProviderMeal, ProviderMeal+":"+category, func(ctx context.Context) Result[Meal] {
		return c.fetchMeal(ctx, category)
	})
}

func (c *Client) fetchMeal(ctx context.Context, category string) Result[Meal] {
	var resp mealDBResponse
	if err := c.getJSON(ctx, c.endpoints.Meal+"/api/json/v1/1/filter.php?c="+url.QueryEscape(category), &resp); err != nil {
		return fallback(FallbackMeal, err)
	}
	if len(resp.Meals) == 0 {
		return fallback(FallbackMeal, ErrEmptyResponse)
	}

	m := resp.Meals[c.intn(len(resp.Meals))]
	return live(Meal{
		ID:        m.ID,
		Name:      m.Name,
		Thumbnail: m.Thumb,
		Category:  category,
		SourceURL: c.endpoints.Meal + "/meal/" + m.ID,
	})
}
