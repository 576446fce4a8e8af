package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to casefile! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Content source.
	sourcePrompt := promptui.Select{
		Label: "Content source",
		Items: []string{
			"built-in - the bundled case study",
			"directory - YAML pages on disk",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("content source selection: %w", err)
	}

	if sourceIdx == 1 {
		dirPrompt := promptui.Prompt{
			Label:    "Content directory",
			Default:  "content",
			Validate: validateDir,
		}
		cfg.ContentDir, err = dirPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("content dir: %w", err)
		}

		includePrompt := promptui.Prompt{
			Label:   "Page include patterns (comma-separated globs)",
			Default: "**/*.yaml",
		}
		includeStr, err := includePrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("include patterns: %w", err)
		}
		if include := splitAndTrim(includeStr); len(include) > 0 {
			cfg.ContentInclude = include
		}
	}

	// 2. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static site",
		Default: cfg.OutputDir,
	}
	cfg.OutputDir, err = outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 3. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port for casefile server",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Live search.
	livePrompt := promptui.Select{
		Label: "Search mode for the live server",
		Items: []string{
			"live - filter as you type over a websocket",
			"form - filter on submit",
		},
	}
	liveIdx, _, err := livePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("search mode selection: %w", err)
	}
	cfg.LiveSearch = liveIdx == 0

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validateDir(s string) error {
	info, err := os.Stat(s)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s)
	}
	return nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("port must be a number")
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("port must be between 0 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			token := trimSpace(s[start:i])
			if token != "" {
				result = append(result, token)
			}
			start = i + 1
		}
	}
	return result
}

func trimSpace(s string) string {
	i, j := 0, len(s)
	for i < j && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	for j > i && (s[j-1] == ' ' || s[j-1] == '\t') {
		j--
	}
	return s[i:j]
}
