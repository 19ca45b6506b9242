// internal/config/model.go
//
// Typed configuration model for Userdesk.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                        – dotenv values,
//   • optional `conf/global.yaml`                 – static file,
//   • `USERDESK_`-prefixed environment overrides  – highest precedence.
//
// A client tool has to run on defaults plus environment alone, so unlike a
// server deployment the YAML file may be absent entirely.  Defaults are
// applied after the overlay merge and before validation, which means the
// validator only ever sees a fully-populated tree.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// API section
//

// API holds everything the HTTP client needs to reach the user-record
// server.
type API struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	Timeout int    `koanf:"timeout"  validate:"gte=1"` // seconds, per request
}

//
// Diagnostics section
//

// Diag configures the local diagnostics endpoint (/metrics, /healthz) that
// console mode exposes.
type Diag struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Log section
//

// Log tunes the structured logger.  Dir overrides the default `<root>/logs`
// location; Console forces the colorized stdout tee even without a TTY.
type Log struct {
	Dir     string `koanf:"dir"`
	Console bool   `koanf:"console"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers `Root` (repo root or USERDESK_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // USERDESK_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	API   API   `koanf:"api"`
	Diag  Diag  `koanf:"diag"`
	Log   Log   `koanf:"log"`
	Paths Paths `koanf:"-"` // not loaded from config files
}

//
// Defaults
//

// applyDefaults fills every zero field that has a documented default.
func (c *Config) applyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:3000"
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = 30
	}
	if c.Diag.ListenAddr == "" {
		c.Diag.ListenAddr = ":9091"
	}
}
