package main

import (
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"slate/internal/config"
)

type commandContext struct {
	configFlag  *string
	projectFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, projectFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		projectFlag: projectFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// projectDir resolves the project directory: the --project flag wins, then the
// configured path, then the current working directory.
func (c *commandContext) projectDir() (string, error) {
	if c.projectFlag != nil {
		if flag := strings.TrimSpace(*c.projectFlag); flag != "" {
			return config.ExpandPath(flag)
		}
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	if cfg.Paths.ProjectDir != "" {
		return cfg.Paths.ProjectDir, nil
	}
	return os.Getwd()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
