package config

import "sort"

var Presets = map[string]*Config{
	"tiny": {
		Algorithm: "bubble", Size: 5, IntervalMS: 400,
	},
	"classroom": {
		Algorithm: "insertion", Size: 12, IntervalMS: 250, Min: 1, Max: 20,
	},
	"stress": {
		Algorithm: "quick", Size: 100, IntervalMS: 10,
	},
	"slowmo": {
		Algorithm: "heap", Size: 15, IntervalMS: 500,
	},
	"fast": {
		Algorithm: "merge", Size: 60, IntervalMS: 20,
	},
}

// GetPreset returns a full configuration: defaults with the preset applied.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Merge(p)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
