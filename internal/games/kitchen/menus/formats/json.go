package formats

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

// ParseJSON parses a JSON menu file. The keys are the same as in the YAML
// format.
func ParseJSON(data []byte) (Menu, error) {
	if !gjson.ValidBytes(data) {
		return Menu{}, fmt.Errorf("invalid json")
	}
	doc := gjson.ParseBytes(data)

	m := Menu{
		ID:          doc.Get("id").String(),
		Name:        doc.Get("name").String(),
		Description: doc.Get("description").String(),
		Threshold:   int(doc.Get("cook_threshold").Int()),
	}
	if fb := doc.Get("fallback_dish"); fb.Exists() {
		m.Fallback = fb.String()
		m.HasFallback = true
	}

	if cook := doc.Get("cook"); cook.IsObject() {
		m.Cook = make(map[string]string)
		cook.ForEach(func(k, v gjson.Result) bool {
			m.Cook[k.String()] = v.String()
			return true
		})
	}

	doc.Get("recipes").ForEach(func(_, v gjson.Result) bool {
		var ingredients []string
		v.Get("ingredients").ForEach(func(_, i gjson.Result) bool {
			ingredients = append(ingredients, i.String())
			return true
		})
		m.Recipes = append(m.Recipes, core.Recipe{
			Dish:        v.Get("dish").String(),
			Ingredients: ingredients,
			Points:      int(v.Get("points").Int()),
		})
		return true
	})

	return validate(m)
}
