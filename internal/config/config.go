package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	// ProjectDir is the default project to align when the CLI is invoked
	// without --project. Empty means "current working directory".
	ProjectDir string `toml:"project_dir"`
	LogDir     string `toml:"log_dir"`
	// DataDir holds the run history database and the align lock file.
	DataDir string `toml:"data_dir"`
}

// Transcripts contains configuration for locating recording transcripts.
type Transcripts struct {
	// Dir is the transcript directory; relative values resolve against the
	// project directory.
	Dir string `toml:"dir"`
}

// Subtitles contains configuration for locating the finished video's
// subtitle track.
type Subtitles struct {
	// Candidates is the priority-ordered list of subtitle locations tried by
	// the locator; relative values resolve against the project directory.
	Candidates []string `toml:"candidates"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// History contains configuration for the alignment run history store.
type History struct {
	Enabled bool `toml:"enabled"`
	// Keep bounds how many runs ListRuns returns by default.
	Keep int `toml:"keep"`
}

// Config encapsulates all configuration values for slate.
type Config struct {
	Paths       Paths       `toml:"paths"`
	Transcripts Transcripts `toml:"transcripts"`
	Subtitles   Subtitles   `toml:"subtitles"`
	Logging     Logging     `toml:"logging"`
	History     History     `toml:"history"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/slate/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("slate.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories the CLI needs to run.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.LogDir, c.Paths.DataDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// TranscriptDir resolves the transcript directory for a project.
func (c *Config) TranscriptDir(projectDir string) string {
	if filepath.IsAbs(c.Transcripts.Dir) {
		return c.Transcripts.Dir
	}
	return filepath.Join(projectDir, c.Transcripts.Dir)
}

// SubtitleCandidates resolves the locator's candidate paths for a project, in
// priority order.
func (c *Config) SubtitleCandidates(projectDir string) []string {
	out := make([]string, 0, len(c.Subtitles.Candidates))
	for _, candidate := range c.Subtitles.Candidates {
		if filepath.IsAbs(candidate) {
			out = append(out, candidate)
			continue
		}
		out = append(out, filepath.Join(projectDir, candidate))
	}
	return out
}

// HistoryDBPath returns the run history database location.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.Paths.DataDir, "history.db")
}

// LockPath returns the align run lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.DataDir, "slate.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
