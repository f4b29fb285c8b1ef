package formats_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus/formats"
)

const yamlMenu = `
id: test
name: Test Menu
cook_threshold: 2
fallback_dish: slop
cook:
  tomato: soup
recipes:
  - dish: soup
    ingredients: [soup]
    points: 7
  - dish: salad
    ingredients: [lettuce_chopped, tomato_chopped]
    points: 9
`

const jsonMenu = `{
  "id": "test",
  "name": "Test Menu",
  "cook_threshold": 2,
  "fallback_dish": "slop",
  "cook": {"tomato": "soup"},
  "recipes": [
    {"dish": "soup", "ingredients": ["soup"], "points": 7},
    {"dish": "salad", "ingredients": ["lettuce_chopped", "tomato_chopped"], "points": 9}
  ]
}`

func TestYAMLAndJSONAgree(t *testing.T) {
	y, err := formats.ParseYAML([]byte(yamlMenu))
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	j, err := formats.ParseJSON([]byte(jsonMenu))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if !reflect.DeepEqual(y, j) {
		t.Errorf("formats disagree:\nyaml %+v\njson %+v", y, j)
	}

	want := formats.Menu{
		ID:          "test",
		Name:        "Test Menu",
		Threshold:   2,
		Fallback:    "slop",
		HasFallback: true,
		Cook:        map[string]string{"tomato": "soup"},
		Recipes: []core.Recipe{
			{Dish: "soup", Ingredients: []string{"soup"}, Points: 7},
			{Dish: "salad", Ingredients: []string{"lettuce_chopped", "tomato_chopped"}, Points: 9},
		},
	}
	if !reflect.DeepEqual(y, want) {
		t.Errorf("unexpected menu %+v", y)
	}
}

func TestMenuOptions(t *testing.T) {
	m, err := formats.ParseYAML([]byte(yamlMenu))
	if err != nil {
		t.Fatal(err)
	}
	cat, err := core.NewCatalog(m.Recipes, m.Options()...)
	if err != nil {
		t.Fatal(err)
	}
	if cat.CookThreshold() != 2 || cat.FallbackDish() != "slop" || cat.Name() != "test" {
		t.Errorf("options not applied: %d %q %q", cat.CookThreshold(), cat.FallbackDish(), cat.Name())
	}
	if dish, ok := cat.CookResult([]string{"tomato", "tomato"}); !ok || dish != "soup" {
		t.Errorf("expected soup from two tomatoes, got %q %v", dish, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		ext  string
	}{
		{"bad yaml", "id: [", ".yaml"},
		{"bad json", "{", ".json"},
		{"no id", "recipes: [{dish: a, ingredients: [b]}]", ".yml"},
		{"no recipes", `{"id": "x"}`, ".json"},
		{"unknown extension", "id: x", ".toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := formats.Parse([]byte(tt.data), tt.ext); err == nil {
				t.Error("expected an error")
			}
		})
	}

	_, err := formats.ParseJSON([]byte(`{"id": "x", "recipes": []}`))
	if !errors.Is(err, core.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
}
