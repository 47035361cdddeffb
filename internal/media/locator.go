package media

import (
	"fmt"
	"log/slog"
	"os"

	"slate/internal/config"
	"slate/internal/logging"
	"slate/internal/services"
)

// Locator resolves the authoritative subtitle file for a finished video.
type Locator interface {
	Locate(projectDir string) (string, error)
}

// FileLocator walks a priority-ordered candidate list and picks the first
// existing non-empty file.
type FileLocator struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewLocator constructs a filesystem-backed locator.
func NewLocator(cfg *config.Config, logger *slog.Logger) *FileLocator {
	return &FileLocator{
		cfg:    cfg,
		logger: logging.NewComponentLogger(logger, "media"),
	}
}

// Locate returns the path of the subtitle track for projectDir. The error is
// classified services.ErrNotFound when no candidate exists.
func (l *FileLocator) Locate(projectDir string) (string, error) {
	candidates := l.cfg.SubtitleCandidates(projectDir)
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() || info.Size() == 0 {
			continue
		}
		l.logger.Debug("subtitle track located",
			logging.String("path", candidate),
			logging.String(logging.FieldProject, projectDir),
		)
		return candidate, nil
	}
	return "", services.Wrap(
		services.ErrNotFound,
		"media",
		"locate subtitle",
		fmt.Sprintf("no subtitle track found for project %s (tried %d locations)", projectDir, len(candidates)),
		nil,
	)
}
