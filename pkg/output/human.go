package output

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/savesync/savesync/pkg/config"
	"github.com/savesync/savesync/pkg/models"
)

// HumanFormatter formats output for interactive terminal use.
type HumanFormatter struct {
	writer io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	cyan   *color.Color
	faint  *color.Color
}

// NewHumanFormatter creates a new human-readable formatter writing to w.
func NewHumanFormatter(w io.Writer) *HumanFormatter {
	return &HumanFormatter{
		writer: w,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		cyan:   color.New(color.FgCyan),
		faint:  color.New(color.Faint),
	}
}

// SyncResult renders the outcome of a full synchronization run.
func (f *HumanFormatter) SyncResult(result *models.SyncResult) error {
	w := f.writer

	if result.DryRun {
		f.yellow.Fprintln(w, "Dry run: no files were modified")
	}

	for _, a := range result.Actions {
		switch a.Action {
		case models.ActionCopyToCloud, models.ActionCopyToLocal:
			if a.Success {
				f.green.Fprintf(w, "  ✓ %s", a.Filename)
				fmt.Fprintf(w, "  %s (%s)\n", a.Direction, humanize.Bytes(uint64(a.Size)))
			} else {
				f.red.Fprintf(w, "  ✗ %s", a.Filename)
				fmt.Fprintf(w, "  %s\n", a.Error)
			}
		case models.ActionConflict:
			f.yellow.Fprintf(w, "  ! %s", a.Filename)
			fmt.Fprintln(w, "  conflict, needs resolution")
		case models.ActionSkip:
			f.faint.Fprintf(w, "  - %s  up to date\n", a.Filename)
		}
	}

	duration := result.EndTime.Sub(result.StartTime).Round(time.Millisecond)
	fmt.Fprintf(w, "\nSynced %d, skipped %d, conflicts %d, errors %d in %s\n",
		result.FilesSynced, result.FilesSkipped, result.Conflicts, len(result.Errors), duration)

	if result.Conflicts > 0 {
		f.yellow.Fprintln(w, "Run 'savesync conflicts' to inspect, 'savesync resolve' to fix")
	}
	return nil
}

// Comparisons renders a comparison report without applying anything.
func (f *HumanFormatter) Comparisons(localDir, cloudDir string, comparisons []models.FileComparison) error {
	w := f.writer

	fmt.Fprintf(w, "Local:  %s\n", localDir)
	fmt.Fprintf(w, "Cloud:  %s\n\n", cloudDir)

	if len(comparisons) == 0 {
		fmt.Fprintln(w, "No files on either side")
		return nil
	}

	for _, c := range comparisons {
		switch c.Action {
		case models.ActionCopyToCloud:
			f.cyan.Fprintf(w, "  → %s", c.Filename)
			fmt.Fprintf(w, "  would copy to cloud (%s)\n", humanize.Bytes(uint64(c.TransferSize())))
		case models.ActionCopyToLocal:
			f.cyan.Fprintf(w, "  ← %s", c.Filename)
			fmt.Fprintf(w, "  would copy to local (%s)\n", humanize.Bytes(uint64(c.TransferSize())))
		case models.ActionConflict:
			f.yellow.Fprintf(w, "  ! %s", c.Filename)
			fmt.Fprintln(w, "  conflict")
		case models.ActionSkip:
			f.faint.Fprintf(w, "  - %s  up to date\n", c.Filename)
		}
	}
	return nil
}

// DirectionalResult renders the outcome of a push or pull.
func (f *HumanFormatter) DirectionalResult(result *models.DirectionalResult) error {
	w := f.writer

	for _, file := range result.Files {
		switch {
		case file.Error != "":
			f.red.Fprintf(w, "  ✗ %s", file.Filename)
			fmt.Fprintf(w, "  %s\n", file.Error)
		case file.Copied:
			f.green.Fprintf(w, "  ✓ %s\n", file.Filename)
		default:
			f.faint.Fprintf(w, "  - %s  skipped: %s\n", file.Filename, file.Reason)
		}
	}

	fmt.Fprintf(w, "\n%s: copied %d, skipped %d, errors %d",
		result.Direction, result.TotalCopied, result.TotalSkipped, len(result.Errors))
	if result.Forced {
		f.yellow.Fprintf(w, " (forced)")
	}
	fmt.Fprintln(w)
	return nil
}

// Conflicts renders pending conflicts with both sides' details.
func (f *HumanFormatter) Conflicts(conflicts []models.ConflictInfo) error {
	w := f.writer

	if len(conflicts) == 0 {
		f.green.Fprintln(w, "No pending conflicts")
		return nil
	}

	fmt.Fprintf(w, "%d pending conflict(s):\n\n", len(conflicts))
	for _, c := range conflicts {
		f.yellow.Fprintf(w, "%s\n", c.Filename)
		f.printSide(w, "local", c.Local)
		f.printSide(w, "cloud", c.Cloud)
		fmt.Fprintln(w)
	}
	return nil
}

func (f *HumanFormatter) printSide(w io.Writer, label string, side *models.ConflictSide) {
	if side == nil {
		fmt.Fprintf(w, "  %-6s missing\n", label)
		return
	}
	fmt.Fprintf(w, "  %-6s %s  %s  %s\n",
		label, side.SizeHuman, side.Modified.Format("2006-01-02 15:04:05"), side.Path)
}

// Games renders the configured game list.
func (f *HumanFormatter) Games(games []*config.GameConfig) error {
	w := f.writer

	if len(games) == 0 {
		fmt.Fprintln(w, "No games configured")
		return nil
	}

	for _, g := range games {
		f.cyan.Fprintf(w, "%s\n", g.Name)
		fmt.Fprintf(w, "  local:  %s\n", g.LocalDir)
		fmt.Fprintf(w, "  cloud:  %s\n", g.CloudDir)
		if g.AppID != 0 {
			fmt.Fprintf(w, "  app id: %d\n", g.AppID)
		}
		if ts := g.LastSyncTime(); ts != nil {
			fmt.Fprintf(w, "  last sync: %s (%s)\n",
				ts.Format("2006-01-02 15:04:05"), humanize.Time(*ts))
		} else {
			f.faint.Fprintln(w, "  last sync: never")
		}
	}
	return nil
}

// Name returns the formatter name.
func (f *HumanFormatter) Name() string {
	return FormatHuman
}
