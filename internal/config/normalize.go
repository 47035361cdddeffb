package config

import "strings"

// normalize expands user paths and canonicalizes string fields so validation
// and downstream consumers see consistent values.
func (c *Config) normalize() error {
	var err error

	if trimmed := strings.TrimSpace(c.Paths.ProjectDir); trimmed != "" {
		if c.Paths.ProjectDir, err = expandPath(trimmed); err != nil {
			return err
		}
	} else {
		c.Paths.ProjectDir = ""
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return err
	}
	if c.Paths.DataDir, err = expandPath(strings.TrimSpace(c.Paths.DataDir)); err != nil {
		return err
	}

	c.Transcripts.Dir = strings.TrimSpace(c.Transcripts.Dir)

	candidates := make([]string, 0, len(c.Subtitles.Candidates))
	for _, candidate := range c.Subtitles.Candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}
		candidates = append(candidates, candidate)
	}
	c.Subtitles.Candidates = candidates

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.History.Keep <= 0 {
		c.History.Keep = Default().History.Keep
	}

	return nil
}
