package kitchen

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/vovakirdan/kitchen-rush/internal/config"
	"github.com/vovakirdan/kitchen-rush/internal/core"
	kcore "github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

// SettingsFromConfig converts a loaded config into simulation settings.
// Unknown station names and proximity metrics are errors.
func SettingsFromConfig(cfg config.KitchenConfig) (kcore.Settings, error) {
	s := kcore.Settings{
		TicksPerSecond: cfg.Session.TicksPerSecond,
		SessionSeconds: max(cfg.Session.DurationSecs, 0),

		ChopTime:      seconds(cfg.Timings.ChopSecs),
		CookTime:      seconds(cfg.Timings.CookSecs),
		ToastDuration: time.Duration(cfg.Timings.ToastMs) * time.Millisecond,

		OrderCount:        cfg.Orders.Size,
		WrongOrderPenalty: max(cfg.Orders.WrongOrderPenalty, 0),

		Arena:     rect(cfg.Layout.Arena),
		ChefStart: core.NewRect(cfg.Chef.X, cfg.Chef.Y, cfg.Chef.W, cfg.Chef.H),
		Speed:     cfg.Chef.Speed,
	}

	for _, w := range cfg.Layout.Walls {
		s.Walls = append(s.Walls, rect(w))
	}

	// Map iteration order is random; keep the station list stable.
	names := make([]string, 0, len(cfg.Layout.Stations))
	for name := range cfg.Layout.Stations {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind, err := kcore.ParseStationKind(name)
		if err != nil {
			return kcore.Settings{}, fmt.Errorf("kitchen: layout: %w", err)
		}
		s.Stations = append(s.Stations, kcore.Station{Kind: kind, Box: rect(cfg.Layout.Stations[name])})
	}

	for _, sp := range cfg.Layout.Spawns {
		if sp.Name == "" {
			return kcore.Settings{}, fmt.Errorf("kitchen: layout: spawn without a name")
		}
		s.Spawns = append(s.Spawns, kcore.Spawn{Name: sp.Name, Box: rect(sp.RectConfig)})
	}

	reach, err := reachFromConfig(cfg.Reach)
	if err != nil {
		return kcore.Settings{}, err
	}
	s.Reach = reach

	return s, nil
}

func reachFromConfig(rc config.ReachConfig) (kcore.ReachTable, error) {
	var (
		table kcore.ReachTable
		err   error
	)
	entries := []struct {
		name      string
		threshold float64
		mode      string
		dst       *kcore.Reach
	}{
		{"pickup", rc.Pickup, rc.PickupMode, &table.Pickup},
		{"station", rc.Station, rc.StationMode, &table.Station},
		{"process", rc.Process, rc.ProcessMode, &table.Process},
		{"trash", rc.Trash, rc.TrashMode, &table.Trash},
		{"serve", rc.Serve, rc.ServeMode, &table.Serve},
		{"plate", rc.Plate, rc.PlateMode, &table.Plate},
		{"floor", rc.Floor, rc.FloorMode, &table.Floor},
	}
	for _, e := range entries {
		e.dst.Threshold = e.threshold
		if e.dst.Metric, err = kcore.ParseMetric(e.mode); err != nil {
			return kcore.ReachTable{}, fmt.Errorf("kitchen: reach %s: %w", e.name, err)
		}
	}
	return table, nil
}

// AssetsFromConfig resolves which images exist. A directory wins over an
// explicit manifest; with neither, every name the catalog can produce is
// assumed present.
func AssetsFromConfig(ac config.AssetsConfig, cat *kcore.Catalog) (kcore.Assets, error) {
	switch {
	case ac.Dir != "":
		set, err := kcore.AssetsFromFS(os.DirFS(ac.Dir))
		if err != nil {
			return nil, fmt.Errorf("kitchen: assets %s: %w", ac.Dir, err)
		}
		if set.Len() == 0 {
			return nil, fmt.Errorf("kitchen: assets %s: no .png images", ac.Dir)
		}
		return set, nil
	case len(ac.Manifest) > 0:
		return kcore.NewAssetSet(ac.Manifest...), nil
	default:
		return kcore.ManifestFor(cat), nil
	}
}

func rect(r config.RectConfig) core.Rect {
	return core.NewRect(r.X, r.Y, r.W, r.H)
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
