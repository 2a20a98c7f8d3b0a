// Package rconfig loads the resolver driver's configuration from the
// environment, the ambient-stack counterpart to the teacher
// (mna/nenuphar)'s internal/maincmd flag-tag struct — env-var tags here
// instead of mainer's flag tags, since a library-shaped ambient config has
// no command line to parse.
package rconfig

import "github.com/caarlos0/env/v6"

// Config is the resolver's environment-derived configuration: which
// language variant to assume, whether scopes get diagnostic names, and how
// many modules may be resolved concurrently by a batch driver.
type Config struct {
	// Variant selects the language variant: "oberon" or "oberon-2".
	Variant string `env:"OBERESOLVE_VARIANT" envDefault:"oberon-2"`

	// NameScopes corresponds to resolver.NameBlocks (diagnostic names for
	// the predefined and module scopes). Load only reads the setting; it
	// does not set any resolver mode itself.
	NameScopes bool `env:"OBERESOLVE_NAME_SCOPES" envDefault:"false"`

	// MaxConcurrentModules bounds how many independent modules a batch
	// driver resolves at once; module resolution itself is synchronous and
	// single-threaded (spec §5), this only governs a driver's own fan-out.
	MaxConcurrentModules int `env:"OBERESOLVE_MAX_CONCURRENT_MODULES" envDefault:"4"`
}

// Load reads a Config from the process environment.
func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
