package config

import "time"

// Config holds runtime settings for the Beauty Ease CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the backend API, e.g. "http://127.0.0.1:8080".
//   - LocalDBPath: path of the local sqlite database.
//   - CameraSource: image file used as the camera input; empty means no
//     camera is available and scans fall back to file upload.
//   - OnlineCheckInterval: how often the client probes server reachability.
type Config struct {
	ServerBaseURL       string
	LocalDBPath         string
	CameraSource        string
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.LocalDBPath = "beautyease.db"
	c.OnlineCheckInterval = 3 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
