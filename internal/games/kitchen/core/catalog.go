package core

import (
	"fmt"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Stage is how far an ingredient has been processed. Stages only move
// forward: raw to chopped on the board, or raw to cooked through the pot.
type Stage int

const (
	StageRaw Stage = iota
	StageChopped
	StageCooked
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageRaw:
		return "raw"
	case StageChopped:
		return "chopped"
	case StageCooked:
		return "cooked"
	default:
		return "unknown"
	}
}

// ChoppedSuffix marks the chopped form of an ingredient identifier.
const ChoppedSuffix = "_chopped"

// Ingredient is a single thing that can be carried, placed, chopped, cooked or
// put on a plate. Cooked dishes taken out of the pot are ingredients too.
type Ingredient struct {
	Name  string // Base identifier, e.g. "tomato" or "tomato_soup"
	Stage Stage
}

// Raw returns an unprocessed ingredient.
func Raw(name string) Ingredient {
	return Ingredient{Name: name, Stage: StageRaw}
}

// Cooked returns a finished pot dish.
func Cooked(dish string) Ingredient {
	return Ingredient{Name: dish, Stage: StageCooked}
}

// ParseKey turns a matching key back into an ingredient.
func ParseKey(key string) Ingredient {
	if base, ok := strings.CutSuffix(key, ChoppedSuffix); ok {
		return Ingredient{Name: base, Stage: StageChopped}
	}
	return Raw(key)
}

// Key is the identifier used for recipe matching and asset names.
func (i Ingredient) Key() string {
	if i.Stage == StageChopped {
		return i.Name + ChoppedSuffix
	}
	return i.Name
}

// Chopped returns the chopped form. Only raw ingredients can be chopped.
func (i Ingredient) Chopped() (Ingredient, bool) {
	if i.Stage != StageRaw {
		return i, false
	}
	i.Stage = StageChopped
	return i, true
}

// String returns a display name such as "chopped tomato".
func (i Ingredient) String() string {
	name := strings.ReplaceAll(i.Name, "_", " ")
	if i.Stage == StageChopped {
		return "chopped " + name
	}
	return name
}

// BaseName strips the chopped suffix from a key.
func BaseName(key string) string {
	return strings.TrimSuffix(key, ChoppedSuffix)
}

// Recipe maps an exact multiset of ingredient keys to a dish.
type Recipe struct {
	Dish        string
	Ingredients []string
	Points      int
}

// DefaultCookThreshold is how many items the pot needs before it cooks.
const DefaultCookThreshold = 3

// Catalog is the static recipe table: ingredient multisets to dishes, dishes
// to points, and what the pot turns its contents into.
type Catalog struct {
	name       string
	recipes    []Recipe
	points     map[string]int
	dishes     []string
	dishSet    mapset.Set[string]
	vocabulary mapset.Set[string]
	cook       map[string]string
	fallback   string
	threshold  int
}

// CatalogOption configures a Catalog.
type CatalogOption func(*Catalog)

// WithCatalogName names the catalog (e.g. the menu pack id).
func WithCatalogName(name string) CatalogOption {
	return func(c *Catalog) {
		c.name = name
	}
}

// WithCookMapping makes the pot turn a pile of base ingredients into dish.
func WithCookMapping(base, dish string) CatalogOption {
	return func(c *Catalog) {
		c.cook[base] = dish
	}
}

// WithFallbackDish sets what a full pot of mixed items cooks into.
// An empty dish disables the fallback.
func WithFallbackDish(dish string) CatalogOption {
	return func(c *Catalog) {
		c.fallback = dish
	}
}

// WithCookThreshold sets how many items the pot needs before it cooks.
func WithCookThreshold(n int) CatalogOption {
	return func(c *Catalog) {
		if n > 0 {
			c.threshold = n
		}
	}
}

// NewCatalog validates the recipes and builds the lookup tables.
func NewCatalog(recipes []Recipe, opts ...CatalogOption) (*Catalog, error) {
	if len(recipes) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		points:     make(map[string]int, len(recipes)),
		dishSet:    mapset.New[string](),
		vocabulary: mapset.New[string](),
		cook:       make(map[string]string),
		threshold:  DefaultCookThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}

	for i, r := range recipes {
		if r.Dish == "" || len(r.Ingredients) == 0 || r.Points < 0 {
			return nil, fmt.Errorf("%w: entry %d (%q)", ErrInvalidRecipe, i, r.Dish)
		}
		if c.dishSet.Has(r.Dish) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDish, r.Dish)
		}

		items := slices.Clone(r.Ingredients)
		slices.Sort(items)
		c.recipes = append(c.recipes, Recipe{Dish: r.Dish, Ingredients: items, Points: r.Points})
		c.points[r.Dish] = r.Points
		c.dishSet.Put(r.Dish)
		for _, key := range items {
			c.vocabulary.Put(key)
		}
		c.dishes = append(c.dishes, r.Dish)
	}
	slices.Sort(c.dishes)

	return c, nil
}

// DefaultCatalog returns the classic four-dish menu.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Recipe{
		{Dish: "tomato_soup", Ingredients: []string{"tomato_soup"}, Points: 20},
		{Dish: "lettuce_salad", Ingredients: []string{"lettuce_chopped"}, Points: 10},
		{Dish: "tomato_lettuce_salad", Ingredients: []string{"tomato_chopped", "lettuce_chopped"}, Points: 15},
		{Dish: "delux_salad", Ingredients: []string{"tomato_chopped", "lettuce_chopped", "cucamber_chopped"}, Points: 25},
	},
		WithCatalogName("classic"),
		WithCookMapping("tomato", "tomato_soup"),
		WithFallbackDish("mystery_stew"),
	)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the catalog name.
func (c *Catalog) Name() string {
	return c.name
}

// Match finds the recipe whose ingredients equal contents as a multiset.
// Acquisition order never matters; subsets and supersets never match.
func (c *Catalog) Match(contents []string) (string, bool) {
	if len(contents) == 0 {
		return "", false
	}
	items := slices.Clone(contents)
	slices.Sort(items)
	for _, r := range c.recipes {
		if slices.Equal(r.Ingredients, items) {
			return r.Dish, true
		}
	}
	return "", false
}

// Points returns the score for serving dish, or 0 for unknown dishes.
func (c *Catalog) Points(dish string) int {
	return c.points[dish]
}

// Dishes returns every dish identifier in sorted order.
func (c *Catalog) Dishes() []string {
	return slices.Clone(c.dishes)
}

// IsDish reports whether id is a dish of this catalog.
func (c *Catalog) IsDish(id string) bool {
	return c.dishSet.Has(id)
}

// Recipes returns a copy of the recipe table in declaration order.
func (c *Catalog) Recipes() []Recipe {
	out := make([]Recipe, len(c.recipes))
	for i, r := range c.recipes {
		out[i] = Recipe{Dish: r.Dish, Ingredients: slices.Clone(r.Ingredients), Points: r.Points}
	}
	return out
}

// Vocabulary returns every ingredient key used by some recipe, sorted.
func (c *Catalog) Vocabulary() []string {
	keys := make([]string, 0, c.vocabulary.Size())
	c.vocabulary.Each(func(k string) {
		keys = append(keys, k)
	})
	slices.Sort(keys)
	return keys
}

// RequiresChopped reports whether recipes only ever use the chopped form of key.
func (c *Catalog) RequiresChopped(key string) bool {
	if strings.HasSuffix(key, ChoppedSuffix) {
		return false
	}
	return c.vocabulary.Has(key+ChoppedSuffix) && !c.vocabulary.Has(key)
}

// CookThreshold returns how many items the pot needs before it cooks.
func (c *Catalog) CookThreshold() int {
	return c.threshold
}

// FallbackDish returns what a full pot of mixed items cooks into, if anything.
func (c *Catalog) FallbackDish() string {
	return c.fallback
}

// CookMappings returns the base ingredient to dish table.
func (c *Catalog) CookMappings() map[string]string {
	out := make(map[string]string, len(c.cook))
	for k, v := range c.cook {
		out[k] = v
	}
	return out
}

// CookResult decides what the pot contents turn into. A base ingredient
// reaching the threshold cooks into its mapped dish. Failing that, a pot
// holding at least threshold items cooks into the fallback dish.
func (c *Catalog) CookResult(contents []string) (string, bool) {
	counts := make(map[string]int)
	for _, key := range contents {
		counts[BaseName(key)]++
	}

	bases := make([]string, 0, len(counts))
	for base := range counts {
		bases = append(bases, base)
	}
	slices.Sort(bases)

	for _, base := range bases {
		if counts[base] < c.threshold {
			continue
		}
		if dish, ok := c.cook[base]; ok {
			return dish, true
		}
	}

	if len(contents) >= c.threshold && c.fallback != "" {
		return c.fallback, true
	}
	return "", false
}
