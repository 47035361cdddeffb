package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/align"
	"slate/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Review previous alignment runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, runSummaries(runs))
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No alignment runs recorded yet.")
				return nil
			}

			headers := []string{"ID", "When", "Subtitle", "Chapters", "Matched", "Low", "Missing"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					shortID(run.ID),
					run.CreatedAt.Local().Format("2006-01-02 15:04"),
					run.SubtitlePath,
					strconv.Itoa(run.ChapterCount),
					strconv.Itoa(run.Matched),
					strconv.Itoa(run.LowConfidence),
					strconv.Itoa(run.NotFound),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	historyCmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	historyCmd.Flags().BoolVar(&jsonOut, "json", false, "Emit run summaries as JSON")

	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	return historyCmd
}

type runSummary struct {
	ID            string    `json:"id"`
	CreatedAt     time.Time `json:"created_at"`
	SubtitlePath  string    `json:"subtitle_path"`
	ChapterCount  int       `json:"chapter_count"`
	Matched       int       `json:"matched"`
	LowConfidence int       `json:"low_confidence"`
	NotFound      int       `json:"not_found"`
}

func runSummaries(runs []*history.Run) []runSummary {
	summaries := make([]runSummary, 0, len(runs))
	for _, run := range runs {
		summaries = append(summaries, runSummary{
			ID:            run.ID,
			CreatedAt:     run.CreatedAt,
			SubtitlePath:  run.SubtitlePath,
			ChapterCount:  run.ChapterCount,
			Matched:       run.Matched,
			LowConfidence: run.LowConfidence,
			NotFound:      run.NotFound,
		})
	}
	return summaries
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show one recorded alignment run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			chapters, err := run.Chapters()
			if err != nil {
				return err
			}
			report := align.Report{
				Success:   true,
				Chapters:  chapters,
				Formatted: run.Formatted,
			}

			if jsonOut {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Run %s\n", run.ID)
			fmt.Fprintf(out, "Recorded %s against %s\n\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"), run.SubtitlePath)
			renderReport(out, report, false)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the stored report as JSON")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
