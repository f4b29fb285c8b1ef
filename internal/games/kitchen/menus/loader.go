// Package menus loads recipe packs ("menus") for the kitchen.
// This package depends on core but core does not depend on menus.
package menus

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/menus/formats"
)

// DefaultID is the menu used when none is chosen.
const DefaultID = "classic"

//go:embed builtin/*
var builtinFS embed.FS

// Menu represents a complete menu definition.
type Menu struct {
	ID          string
	Name        string
	Description string
	FilePath    string

	parsed formats.Menu
}

// Recipes returns the menu's recipes in file order.
func (m *Menu) Recipes() []core.Recipe {
	return m.parsed.Recipes
}

// Catalog builds the recipe table for this menu.
func (m *Menu) Catalog() (*core.Catalog, error) {
	cat, err := core.NewCatalog(m.parsed.Recipes, m.parsed.Options()...)
	if err != nil {
		return nil, fmt.Errorf("menus: %s: %w", m.ID, err)
	}
	return cat, nil
}

// Loader handles loading menus from a file system.
type Loader struct {
	fsys fs.FS
	name string
}

// NewLoader creates a loader over fsys. name is used in error messages.
func NewLoader(fsys fs.FS, name string) *Loader {
	return &Loader{fsys: fsys, name: name}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(root string) *Loader {
	return NewLoader(os.DirFS(root), root)
}

// Builtin returns a loader over the menus shipped with the game.
func Builtin() *Loader {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		panic(err)
	}
	return NewLoader(sub, "builtin")
}

// UserDir returns the directory for user menus (~/.kitchen/menus).
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kitchen", "menus")
}

// LoadAll recursively scans and loads all menu files.
// Returns menus sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Menu, error) {
	var menus []Menu

	err := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		menu, err := l.LoadFile(p)
		if err != nil {
			// Skip invalid files
			return nil
		}

		menus = append(menus, menu)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("menus: walking %s: %w", l.name, err)
	}

	// Sort by ID for determinism
	sort.Slice(menus, func(i, j int) bool {
		return menus[i].ID < menus[j].ID
	})

	return menus, nil
}

// LoadFile loads a single menu file.
func (l *Loader) LoadFile(p string) (Menu, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Menu{}, fmt.Errorf("menus: reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	parsed, err := formats.Parse(data, ext)
	if err != nil {
		return Menu{}, fmt.Errorf("menus: parsing file %s: %w", p, err)
	}

	// A menu that cannot build a catalog is as good as unparseable.
	if _, err := core.NewCatalog(parsed.Recipes, parsed.Options()...); err != nil {
		return Menu{}, fmt.Errorf("menus: parsing file %s: %w", p, err)
	}

	return Menu{
		ID:          parsed.ID,
		Name:        parsed.Name,
		Description: parsed.Description,
		FilePath:    p,
		parsed:      parsed,
	}, nil
}

// LoadByID loads a specific menu by ID.
func (l *Loader) LoadByID(id string) (Menu, error) {
	menus, err := l.LoadAll()
	if err != nil {
		return Menu{}, err
	}

	for _, m := range menus {
		if m.ID == id {
			return m, nil
		}
	}

	return Menu{}, fmt.Errorf("menus: menu not found: %s", id)
}

// ListIDs returns all menu IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	menus, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(menus))
	for i, m := range menus {
		ids[i] = m.ID
	}
	return ids, nil
}

// Find looks a menu up in the user directory first, then among the built-in
// menus. An empty id means DefaultID.
func Find(id string) (Menu, error) {
	if id == "" {
		id = DefaultID
	}
	if dir := UserDir(); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			if m, err := NewDirLoader(dir).LoadByID(id); err == nil {
				return m, nil
			}
		}
	}
	return Builtin().LoadByID(id)
}

// Available lists every menu id, built-in and user, without duplicates.
func Available() []string {
	seen := make(map[string]bool)
	var ids []string
	collect := func(l *Loader) {
		found, err := l.ListIDs()
		if err != nil {
			return
		}
		for _, id := range found {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	collect(Builtin())
	if dir := UserDir(); dir != "" {
		if _, err := os.Stat(dir); err == nil {
			collect(NewDirLoader(dir))
		}
	}
	sort.Strings(ids)
	return ids
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
