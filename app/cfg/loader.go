package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Source feed configuration
	FeedURL        string `long:"feed-url" env:"FEED_URL" description:"URL of the aggregated newsletter feed"`
	TimezoneOffset int    `long:"timezone-offset" env:"TIMEZONE_OFFSET" default:"0" description:"Hour offset from Eastern for in-text air times (0 disables conversion)"`
	ShiftPubDate   bool   `long:"shift-pubdate" env:"SHIFT_PUBDATE" description:"Also shift item publish timestamps by the timezone offset"`

	// Output configuration
	OutputDir string `long:"output-dir" env:"OUTPUT_DIR" default:"./feeds" description:"Directory for generated XML files"`
	BaseUrl   string `long:"base-url" env:"BASE_URL" description:"Public base URL for feed self-references (e.g., https://feeds.example.com)"`
	ShowsFile string `long:"shows-file" env:"SHOWS_FILE" description:"Optional YAML file seeding the show registry"`
	DBPath    string `long:"db-path" env:"DB_PATH" description:"Optional SQLite file persisting auto-registered shows across runs"`

	// Serve mode configuration
	Serve           bool   `long:"serve" env:"SERVE" description:"Serve generated feeds over HTTP instead of exiting after one run"`
	Port            string `long:"port" env:"PORT" default:"8080" description:"HTTP server port (serve mode)"`
	RefreshInterval int    `long:"refresh-interval" env:"REFRESH_INTERVAL" default:"3600" description:"Seconds between feed refreshes (serve mode)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"showsplit/1.0" description:"User agent string for HTTP requests"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		FeedURL:         raw.FeedURL,
		TimezoneOffset:  raw.TimezoneOffset,
		ShiftPubDate:    raw.ShiftPubDate,
		OutputDir:       raw.OutputDir,
		BaseUrl:         raw.BaseUrl,
		ShowsFile:       raw.ShowsFile,
		DBPath:          raw.DBPath,
		Serve:           raw.Serve,
		Port:            raw.Port,
		RefreshInterval: raw.RefreshInterval,
		UserAgent:       raw.UserAgent,
		Debug:           raw.Debug,
		Version:         GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
