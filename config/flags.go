package config

import "flag"

// Overrides are command-line flags layered over a loaded Config.
type Overrides struct {
	fs     *flag.FlagSet
	debug  *bool
	seed   *uint64
	ship   *string
	weapon *string
}

// RegisterFlags defines the override flags on fs.
func RegisterFlags(fs *flag.FlagSet) *Overrides {
	return &Overrides{
		fs:     fs,
		debug:  fs.Bool("debug", false, "enable debug mode"),
		seed:   fs.Uint64("seed", 0, "random seed (0 seeds from the clock)"),
		ship:   fs.String("ship", "", "ship prefab in prefabs/ (e.g. enemy_4.yaml)"),
		weapon: fs.String("weapon", "", "starting projectile type"),
	}
}

// Apply copies the flags that were given on the command line into cfg, so
// -debug=false can switch off a debug setting from the file.
func (o *Overrides) Apply(cfg *Config) {
	if o == nil || cfg == nil {
		return
	}
	o.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *o.debug
		case "seed":
			cfg.Seed = *o.seed
		case "ship":
			cfg.Ship = *o.ship
		case "weapon":
			cfg.Weapon = *o.weapon
		}
	})
}
