package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"slate/internal/align"
	"slate/internal/config"
	"slate/internal/history"
	"slate/internal/logging"
	"slate/internal/media"
	"slate/internal/services"
	"slate/internal/transcripts"
)

func newAlignCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool
	var noSave bool
	var subtitleOverride string

	cmd := &cobra.Command{
		Use:   "align",
		Short: "Align chapter transcripts against the final subtitle track",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			lock := flock.New(cfg.LockPath())
			held, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !held {
				return errors.New("another alignment run is already in progress")
			}
			defer func() {
				_ = lock.Unlock()
			}()

			report, subtitlePath, err := runAlignment(ctx, cmd, subtitleOverride)
			if err != nil {
				return err
			}

			if report.Success && cfg.History.Enabled && !noSave {
				if saveErr := saveRun(cmd, cfg, subtitlePath, report); saveErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "warning: run not recorded in history: %v\n", saveErr)
				}
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}
			if !report.Success {
				return fmt.Errorf("alignment failed: %s", report.Error)
			}
			out := cmd.OutOrStdout()
			renderReport(out, report, shouldColorize(out))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the full report as JSON")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not record this run in history")
	cmd.Flags().StringVar(&subtitleOverride, "subtitle", "", "Subtitle file to align against (bypasses the locator)")
	return cmd
}

// runAlignment performs the shared locate-load-extract pipeline. An explicit
// subtitle path bypasses the candidate-list locator.
func runAlignment(ctx *commandContext, cmd *cobra.Command, subtitleOverride string) (align.Report, string, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return align.Report{}, "", err
	}
	project, err := ctx.projectDir()
	if err != nil {
		return align.Report{}, "", err
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return align.Report{}, "", fmt.Errorf("initialize logging: %w", err)
	}

	subtitlePath := strings.TrimSpace(subtitleOverride)
	if subtitlePath == "" {
		locator := media.NewLocator(cfg, logger)
		subtitlePath, err = locator.Locate(project)
		if err != nil {
			return align.Report{}, "", err
		}
	} else if subtitlePath, err = config.ExpandPath(subtitlePath); err != nil {
		return align.Report{}, "", err
	}
	content, err := os.ReadFile(subtitlePath)
	if err != nil {
		return align.Report{}, "", fmt.Errorf("read subtitle track %s: %w", subtitlePath, err)
	}

	sources, err := transcripts.LoadDir(cfg.TranscriptDir(project))
	if err != nil {
		return align.Report{}, "", err
	}

	runCtx := services.WithProject(cmd.Context(), project)
	runCtx = services.WithRequestID(runCtx, uuid.NewString())

	engine := align.New(logger)
	report := engine.Extract(runCtx, string(content), sources)
	return report, subtitlePath, nil
}

func saveRun(cmd *cobra.Command, cfg *config.Config, subtitlePath string, report align.Report) error {
	run, err := history.NewRun(subtitlePath, report)
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return store.SaveRun(cmd.Context(), run, cfg.History.Keep)
}
