package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

func TestCatalogMatch(t *testing.T) {
	cat := core.DefaultCatalog()

	tests := []struct {
		name     string
		contents []string
		want     string
		ok       bool
	}{
		{"soup", []string{"tomato_soup"}, "tomato_soup", true},
		{"salad", []string{"lettuce_chopped"}, "lettuce_salad", true},
		{"two-part salad", []string{"lettuce_chopped", "tomato_chopped"}, "tomato_lettuce_salad", true},
		{"two-part salad reversed", []string{"tomato_chopped", "lettuce_chopped"}, "tomato_lettuce_salad", true},
		{"delux any order", []string{"cucamber_chopped", "lettuce_chopped", "tomato_chopped"}, "delux_salad", true},
		{"delux other order", []string{"tomato_chopped", "cucamber_chopped", "lettuce_chopped"}, "delux_salad", true},
		{"empty", nil, "", false},
		{"raw", []string{"lettuce"}, "", false},
		{"subset", []string{"cucamber_chopped", "lettuce_chopped"}, "", false},
		{"superset", []string{"lettuce_chopped", "tomato_chopped", "cucamber_chopped", "tomato_soup"}, "", false},
		{"duplicate", []string{"lettuce_chopped", "lettuce_chopped"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cat.Match(tt.contents)
			if got != tt.want || ok != tt.ok {
				t.Errorf("Match(%v) = %q, %v; want %q, %v", tt.contents, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCatalogPermutations(t *testing.T) {
	cat := core.DefaultCatalog()
	items := []string{"tomato_chopped", "lettuce_chopped", "cucamber_chopped"}
	perms := [][]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, p := range perms {
		contents := []string{items[p[0]], items[p[1]], items[p[2]]}
		if dish, ok := cat.Match(contents); !ok || dish != "delux_salad" {
			t.Errorf("Match(%v) = %q, %v", contents, dish, ok)
		}
	}
}

func TestCatalogPoints(t *testing.T) {
	cat := core.DefaultCatalog()
	want := map[string]int{
		"tomato_soup":          20,
		"lettuce_salad":        10,
		"tomato_lettuce_salad": 15,
		"delux_salad":          25,
		"mystery_stew":         0,
	}
	for dish, pts := range want {
		if got := cat.Points(dish); got != pts {
			t.Errorf("Points(%q) = %d, want %d", dish, got, pts)
		}
	}

	dishes := []string{"delux_salad", "lettuce_salad", "tomato_lettuce_salad", "tomato_soup"}
	if got := cat.Dishes(); !reflect.DeepEqual(got, dishes) {
		t.Errorf("Dishes() = %v, want %v", got, dishes)
	}
}

func TestRequiresChopped(t *testing.T) {
	cat := core.DefaultCatalog()
	tests := []struct {
		key  string
		want bool
	}{
		{"tomato", true},
		{"lettuce", true},
		{"cucamber", true},
		{"tomato_chopped", false},
		{"tomato_soup", false},
		{"onion", false},
	}
	for _, tt := range tests {
		if got := cat.RequiresChopped(tt.key); got != tt.want {
			t.Errorf("RequiresChopped(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestCookResult(t *testing.T) {
	cat := core.DefaultCatalog()
	tests := []struct {
		name     string
		contents []string
		want     string
		ok       bool
	}{
		{"two tomatoes", []string{"tomato", "tomato"}, "", false},
		{"three tomatoes", []string{"tomato", "tomato", "tomato"}, "tomato_soup", true},
		{"chopped count as base", []string{"tomato_chopped", "tomato", "tomato_chopped"}, "tomato_soup", true},
		{"mixed", []string{"tomato", "lettuce", "tomato"}, "mystery_stew", true},
		{"soup wins over fallback", []string{"lettuce", "tomato", "tomato", "tomato"}, "tomato_soup", true},
		{"empty", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cat.CookResult(tt.contents)
			if got != tt.want || ok != tt.ok {
				t.Errorf("CookResult(%v) = %q, %v; want %q, %v", tt.contents, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNewCatalogErrors(t *testing.T) {
	tests := []struct {
		name    string
		recipes []core.Recipe
		want    error
	}{
		{"empty", nil, core.ErrEmptyCatalog},
		{"no dish", []core.Recipe{{Ingredients: []string{"a"}}}, core.ErrInvalidRecipe},
		{"no ingredients", []core.Recipe{{Dish: "a"}}, core.ErrInvalidRecipe},
		{"negative points", []core.Recipe{{Dish: "a", Ingredients: []string{"b"}, Points: -1}}, core.ErrInvalidRecipe},
		{"duplicate", []core.Recipe{
			{Dish: "a", Ingredients: []string{"b"}},
			{Dish: "a", Ingredients: []string{"c"}},
		}, core.ErrDuplicateDish},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := core.NewCatalog(tt.recipes); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestIngredientKeys(t *testing.T) {
	raw := core.Raw("tomato")
	chopped, ok := raw.Chopped()
	if !ok || chopped.Key() != "tomato_chopped" {
		t.Fatalf("expected tomato_chopped, got %q (%v)", chopped.Key(), ok)
	}
	if _, ok := chopped.Chopped(); ok {
		t.Error("chopping twice should fail")
	}
	if _, ok := core.Cooked("tomato_soup").Chopped(); ok {
		t.Error("cooked dishes cannot be chopped")
	}
	if got := core.ParseKey("lettuce_chopped"); got != (core.Ingredient{Name: "lettuce", Stage: core.StageChopped}) {
		t.Errorf("ParseKey = %+v", got)
	}
	if got := chopped.String(); got != "chopped tomato" {
		t.Errorf("String() = %q", got)
	}
}
