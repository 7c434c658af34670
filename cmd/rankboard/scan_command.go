package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/rankboard-ocr/internal/imaging"
	"github.com/ironsheep/rankboard-ocr/internal/rowscan"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	var overlayPath string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "scan <frame>",
		Short: "Show the row bounds found in one frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			img, err := imaging.LoadFrame(args[0])
			if err != nil {
				return err
			}

			scanner := rowscan.NewScanner(rowscan.Probe{
				X:      cfg.Probe.X,
				YStart: cfg.Probe.YStart,
				YEnd:   cfg.Probe.YEnd,
			}, cfg.Probe.MinRowHeight)
			scan, err := scanner.Scan(img)
			if err != nil {
				return err
			}

			if overlayPath != "" {
				overlay := rowscan.DrawRowBounds(img, scan.All, cfg.Debug.OverlayX1, cfg.Debug.OverlayX2)
				if err := imaging.SaveImage(overlay, overlayPath); err != nil {
					return err
				}
			}

			if jsonOutput {
				return writeJSON(cmd, scan)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Type", "Start", "End", "Height", "Row"}, boundRows(scan), []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignLeft}))
			if overlayPath != "" {
				fmt.Fprintf(out, "Overlay written to %s\n", overlayPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&overlayPath, "overlay", "o", "", "Write a debug overlay PNG to this path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print bounds as JSON")
	return cmd
}

// boundRows marks which bounds survived the minimum height filter.
func boundRows(scan *rowscan.FrameScan) [][]string {
	kept := make(map[rowscan.Bound]bool, len(scan.Rows))
	for _, b := range scan.Rows {
		kept[b] = true
	}
	rows := make([][]string, 0, len(scan.All))
	for _, b := range scan.All {
		rows = append(rows, []string{
			string(b.Type),
			strconv.Itoa(b.Start),
			strconv.Itoa(b.End),
			strconv.Itoa(b.Height()),
			yesNo(kept[b]),
		})
	}
	return rows
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
