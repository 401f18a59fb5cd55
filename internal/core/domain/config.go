package domain

import "time"

// Config is the externally supplied runtime configuration. Collaborator
// endpoints, trigger literals, and tuning knobs all live here rather
// than as embedded constants.
type Config struct {
	// Gateway configures the aggregated search service client.
	Gateway GatewayConfig `toml:"gateway"`

	// Converter configures the quark conversion microservice client.
	Converter ConverterConfig `toml:"converter"`

	// Triggers configures the inbound trigger literals.
	Triggers TriggerConfig `toml:"triggers"`

	// Session configures per-user search sessions.
	Session SessionConfig `toml:"session"`

	// Tracker configures the transfer task registry.
	Tracker TrackerConfig `toml:"tracker"`
}

// GatewayConfig holds search gateway client settings.
type GatewayConfig struct {
	// BaseURL is the gateway endpoint, e.g. "https://pansd.xyz".
	BaseURL string `toml:"base_url"`

	// Timeout bounds one search call.
	Timeout time.Duration `toml:"timeout"`

	// RequestsPerSecond is the sustained client-side rate limit.
	RequestsPerSecond float64 `toml:"requests_per_second"`

	// Burst is the rate limiter burst size.
	Burst int `toml:"burst"`
}

// ConverterConfig holds conversion service client settings.
type ConverterConfig struct {
	// BaseURL is the converter endpoint.
	BaseURL string `toml:"base_url"`

	// ShareTimeout bounds one share-by-path call.
	ShareTimeout time.Duration `toml:"share_timeout"`

	// TransferTimeout bounds one detached transfer call.
	TransferTimeout time.Duration `toml:"transfer_timeout"`
}

// TriggerConfig holds the inbound trigger literals. Exact literals are
// deployment configuration, not protocol: hosts localise them freely.
type TriggerConfig struct {
	// SearchPrefix starts a search command, e.g. "search dragon".
	SearchPrefix string `toml:"search_prefix"`

	// SelectPrefix optionally precedes a selection number. Bare
	// digits select as well.
	SelectPrefix string `toml:"select_prefix"`

	// NextPage is the literal advancing the page.
	NextPage string `toml:"next_page"`

	// PrevPage is the literal retreating the page.
	PrevPage string `toml:"prev_page"`
}

// SessionConfig holds per-user session settings.
type SessionConfig struct {
	// PageSize is the number of results per page.
	PageSize int `toml:"page_size"`
}

// TrackerConfig holds transfer registry settings.
type TrackerConfig struct {
	// TTL is how long completed and failed tasks are retained before
	// eviction.
	TTL time.Duration `toml:"ttl"`

	// MaxEntries caps the registry. Oldest terminal tasks are evicted
	// first when the cap is exceeded.
	MaxEntries int `toml:"max_entries"`

	// Journal enables the durable SQLite task journal in addition to
	// the in-memory registry.
	Journal bool `toml:"journal"`
}

// DefaultConfig returns the configuration used when no config file
// exists yet. Endpoints are left empty on purpose: they must be
// supplied by the operator.
func DefaultConfig() Config {
	return Config{
		Gateway: GatewayConfig{
			Timeout:           30 * time.Second,
			RequestsPerSecond: 2.0,
			Burst:             4,
		},
		Converter: ConverterConfig{
			ShareTimeout:    30 * time.Second,
			TransferTimeout: 300 * time.Second,
		},
		Triggers: TriggerConfig{
			SearchPrefix: "search",
			SelectPrefix: "pick",
			NextPage:     "next",
			PrevPage:     "prev",
		},
		Session: SessionConfig{
			PageSize: DefaultPageSize,
		},
		Tracker: TrackerConfig{
			TTL:        30 * time.Minute,
			MaxEntries: 1000,
		},
	}
}
