package core

import (
	"io/fs"
	"path"
	"slices"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// FallbackPlateImage is drawn for any plate without a composite image.
const FallbackPlateImage = "plate.png"

// IngredientImage is the image of a loose ingredient.
func IngredientImage(key string) string {
	return key + ".png"
}

// IconImage is the small icon stacked above a plate or pot.
func IconImage(key string) string {
	return key + "_icon.png"
}

// PlateImage is the composite image of a plate holding exactly items.
func PlateImage(items []string) string {
	sorted := slices.Clone(items)
	slices.Sort(sorted)
	return "plate_" + strings.Join(sorted, "_") + ".png"
}

// OrderImage is the ticket shown for an order.
func OrderImage(dish string) string {
	return "order_" + dish + ".png"
}

// Assets answers whether a named image exists.
type Assets interface {
	Has(name string) bool
}

// AssetSet is a fixed manifest of image names.
type AssetSet struct {
	names mapset.Set[string]
}

// NewAssetSet builds a manifest from names.
func NewAssetSet(names ...string) *AssetSet {
	s := &AssetSet{names: mapset.New[string]()}
	for _, n := range names {
		s.names.Put(n)
	}
	return s
}

// Has reports whether name is in the manifest.
func (s *AssetSet) Has(name string) bool {
	if s == nil {
		return false
	}
	return s.names.Has(name)
}

// Len returns the number of names.
func (s *AssetSet) Len() int {
	return s.names.Size()
}

// Names returns the manifest sorted.
func (s *AssetSet) Names() []string {
	out := make([]string, 0, s.names.Size())
	s.names.Each(func(n string) {
		out = append(out, n)
	})
	slices.Sort(out)
	return out
}

// AssetsFromFS indexes every .png file under fsys by base name.
func AssetsFromFS(fsys fs.FS) (*AssetSet, error) {
	s := NewAssetSet()
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(path.Ext(p), ".png") {
			s.names.Put(path.Base(p))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ManifestFor lists the images a complete art set for cat would contain:
// every ingredient and its icon, a composite per recipe, and an order ticket
// per dish.
func ManifestFor(cat *Catalog) *AssetSet {
	s := NewAssetSet(FallbackPlateImage)
	for _, key := range cat.Vocabulary() {
		s.names.Put(IngredientImage(BaseName(key)))
		s.names.Put(IconImage(key))
	}
	for _, r := range cat.Recipes() {
		s.names.Put(PlateImage(r.Ingredients))
		s.names.Put(OrderImage(r.Dish))
	}
	for base, dish := range cat.CookMappings() {
		s.names.Put(IngredientImage(base))
		s.names.Put(IconImage(base))
		s.names.Put(IconImage(dish))
	}
	return s
}
