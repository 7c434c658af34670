package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rankboard-ocr/internal/config"
	"github.com/ironsheep/rankboard-ocr/internal/consensus"
	"github.com/ironsheep/rankboard-ocr/internal/leaderboard"
	"github.com/ironsheep/rankboard-ocr/internal/pipeline"
	"github.com/ironsheep/rankboard-ocr/internal/video"
)

const missingValue = "-"

func newExtractCommand(ctx *commandContext) *cobra.Command {
	var (
		jsonOutput  bool
		framesDir   bool
		workers     int
		debugDir    string
		startOffset string
		sortRows    bool
	)

	cmd := &cobra.Command{
		Use:   "extract <video|frames-dir>",
		Short: "Extract the consensus leaderboard from a recording",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			cfg := *loaded
			source := args[0]

			info, err := os.Stat(source)
			if err != nil {
				return err
			}
			if framesDir || info.IsDir() {
				cfg.Video.Backend = config.BackendDirectory
			}
			if cmd.Flags().Changed("workers") {
				cfg.Extract.Workers = workers
			}
			if debugDir != "" {
				cfg.Debug.Dir = debugDir
			}
			if startOffset != "" {
				cfg.Video.StartOffset = startOffset
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := ctx.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			dec, err := video.New(cfg.Video, logger)
			if err != nil {
				return err
			}

			began := time.Now()
			res, err := pipeline.Run(cmd.Context(), dec, source, pipeline.OptionsFromConfig(&cfg, newRecognizerFactory(&cfg), logger))
			if err != nil {
				return err
			}
			if sortRows {
				consensus.SortByRank(res.Rows)
			}

			if jsonOutput {
				return writeJSON(cmd, res)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out,
				[]string{"Rank", "Nickname", "Points", "W-L", "Win %", "Rating", "Seen"},
				leaderboardRows(res.Rows),
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}))
			fmt.Fprintf(out, "%d rows from %d frames in %s\n", len(res.Rows), res.Frames, time.Since(began).Round(time.Millisecond))
			if len(res.Incomplete) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %d incomplete rows (ranks %s)\n", len(res.Incomplete), strings.Join(res.Incomplete, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&framesDir, "frames-dir", false, "Treat the source as a directory of extracted frames")
	cmd.Flags().IntVarP(&workers, "workers", "w", 1, "Frames processed in parallel")
	cmd.Flags().StringVar(&debugDir, "debug-dir", "", "Write a bounds overlay per frame into this directory")
	cmd.Flags().StringVar(&startOffset, "start-offset", "", "Skip this much of the recording (e.g. 9s)")
	cmd.Flags().BoolVar(&sortRows, "sort", false, "Order rows by rank instead of first appearance")
	return cmd
}

func leaderboardRows(rows []leaderboard.Row) [][]string {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{
			r.RankingKey,
			valueOrMissing(r.Nickname),
			valueOrMissing(r.Points),
			valueOrMissing(r.WinsLosses),
			valueOrMissing(r.WinPercent),
			valueOrMissing(r.Rating),
			strconv.Itoa(r.Observations),
		})
	}
	return out
}

func valueOrMissing(v *string) string {
	if v == nil {
		return missingValue
	}
	return *v
}
