package cfg

import (
	"testing"
)

func TestGetVersion(t *testing.T) {
	// Test default version
	if GetVersion() == "" {
		t.Error("GetVersion should never return empty string")
	}

	version := GetVersion()
	if version != "dev" && version != "unknown" {
		// This is fine, version could be set at build time
		t.Logf("Version: %s", version)
	}
}

func TestConfigFields(t *testing.T) {
	cfg := &Cfg{
		FeedURL:         "https://kill-the-newsletter.com/feeds/abc.xml",
		TimezoneOffset:  15,
		ShiftPubDate:    true,
		OutputDir:       "./feeds",
		BaseUrl:         "https://feeds.example.com",
		ShowsFile:       "./shows.yml",
		DBPath:          "./shows.db",
		Serve:           true,
		Port:            "8080",
		RefreshInterval: 3600,
		UserAgent:       "Test Agent",
		Debug:           true,
		Version:         "test-version",
	}

	if cfg.FeedURL != "https://kill-the-newsletter.com/feeds/abc.xml" {
		t.Errorf("Expected feed URL to round-trip, got '%s'", cfg.FeedURL)
	}
	if cfg.TimezoneOffset != 15 {
		t.Errorf("Expected timezone offset 15, got %d", cfg.TimezoneOffset)
	}
	if !cfg.ShiftPubDate {
		t.Error("Expected shift-pubdate to be enabled")
	}
	if cfg.OutputDir != "./feeds" {
		t.Errorf("Expected output dir './feeds', got '%s'", cfg.OutputDir)
	}
	if cfg.BaseUrl != "https://feeds.example.com" {
		t.Errorf("Expected base URL 'https://feeds.example.com', got '%s'", cfg.BaseUrl)
	}
	if cfg.ShowsFile != "./shows.yml" {
		t.Errorf("Expected shows file './shows.yml', got '%s'", cfg.ShowsFile)
	}
	if cfg.DBPath != "./shows.db" {
		t.Errorf("Expected DB path './shows.db', got '%s'", cfg.DBPath)
	}
	if !cfg.Serve {
		t.Error("Expected serve mode to be enabled")
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected port '8080', got '%s'", cfg.Port)
	}
	if cfg.RefreshInterval != 3600 {
		t.Errorf("Expected refresh interval 3600, got %d", cfg.RefreshInterval)
	}
	if cfg.UserAgent != "Test Agent" {
		t.Errorf("Expected user agent 'Test Agent', got '%s'", cfg.UserAgent)
	}
	if !cfg.Debug {
		t.Error("Expected debug to be enabled")
	}
	if cfg.Version != "test-version" {
		t.Errorf("Expected version 'test-version', got '%s'", cfg.Version)
	}
}
