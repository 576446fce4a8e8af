package cmd

import (
	"fmt"

	"github.com/ziadkadry99/casefile/internal/config"
	"github.com/ziadkadry99/casefile/internal/content"
	"github.com/ziadkadry99/casefile/internal/logging"
	"github.com/ziadkadry99/casefile/internal/site"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `casefile init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadSite reads the content named by cfg: a content directory when one is
// configured, the built-in case study otherwise.
func loadSite(cfg *config.Config) (*content.Site, error) {
	var (
		s   *content.Site
		err error
	)
	if cfg.ContentDir != "" {
		s, err = content.LoadDir(cfg.ContentDir, cfg.ContentInclude)
	} else {
		s, err = content.LoadDefault()
	}
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	if cfg.SiteName != "" {
		s.Name = cfg.SiteName
	}
	logging.Component("content").WithField("pages", len(s.Pages)).Debug("content loaded")
	return s, nil
}

// renderOptions maps the config onto renderer options.
func renderOptions(cfg *config.Config) site.Options {
	return site.Options{
		LiveSearch:     cfg.LiveSearch,
		HighlightClass: cfg.HighlightClass,
		MaxQueryLength: cfg.MaxQueryLength,
	}
}
