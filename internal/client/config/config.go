package config

import (
	"time"

	"github.com/dmitrijs2005/sitekeeper/internal/client/insight"
	"github.com/dmitrijs2005/sitekeeper/internal/common"
	"github.com/dmitrijs2005/sitekeeper/internal/filex"
	"github.com/dmitrijs2005/sitekeeper/internal/logging"
)

// Config holds runtime settings for the SiteKeeper console.
type Config struct {
	DataDir string
	DBFile  string

	LogLevel   string
	LogBackend string

	GenAIAPIKey string
	GenAIModel  string
	MapsAPIKey  string

	// LocatorURL, when set, is queried for the device position. Otherwise
	// Latitude/Longitude are reported if HasPosition is set.
	LocatorURL  string
	Latitude    float64
	Longitude   float64
	HasPosition bool

	RequestTimeout time.Duration
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "." + common.AppName
	c.DBFile = common.AppName + ".db"
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
	c.GenAIModel = insight.DefaultModel
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig applies defaults, then a config file, then the environment,
// then command-line flags. Later sources win. Invalid input panics.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// DBPath is the database file location, creating the data directory if
// needed. An absolute DBFile ignores DataDir.
func (c *Config) DBPath() (string, error) {
	return filex.DataFile(c.DataDir, c.DBFile)
}
