package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/transcripts"
)

func newChaptersCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "chapters",
		Short: "List the chapter sources discovered in the project",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			project, err := ctx.projectDir()
			if err != nil {
				return err
			}

			sources, err := transcripts.LoadDir(cfg.TranscriptDir(project))
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, sources)
			}
			if len(sources) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No chapter transcripts found in %s.\n", cfg.TranscriptDir(project))
				return nil
			}

			headers := []string{"Chapter", "Name", "Title", "Words"}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignRight}
			rows := make([][]string, 0, len(sources))
			for _, src := range sources {
				rows = append(rows, []string{
					strconv.Itoa(src.Chapter),
					src.Name,
					src.DisplayName,
					strconv.Itoa(len(strings.Fields(src.Transcript))),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the discovered sources as JSON")
	return cmd
}
