package cli

import (
	"fmt"
	"time"
)

// BuildSummary is what the build hands back for terminal rendering.
type BuildSummary struct {
	Pages     int
	Written   []string
	Skipped   []string
	Removed   []string
	Warnings  []BuildWarning
	Duration  time.Duration
	OutputDir string
}

type BuildWarning struct {
	Page    string
	Message string
}

// RenderBuildSummary prints a build result in the compact form when
// nothing went wrong, and the annotated form when there are warnings.
func (o *Output) RenderBuildSummary(s BuildSummary) {
	o.PrintSuccess("%d page(s), %d written, %d unchanged", s.Pages, len(s.Written), len(s.Skipped))

	for _, path := range s.Written {
		o.PrintFile(path)
	}

	if len(s.Removed) > 0 {
		o.PrintStep("%d stale page(s) removed", len(s.Removed))
	}

	if len(s.Warnings) > 0 {
		fmt.Println()
		o.PrintWarning("Warnings (%d):", len(s.Warnings))
		for _, w := range s.Warnings {
			fmt.Printf("    %s %s\n", o.Yellow("⚠"), w.Page)
			fmt.Printf("      %s\n", w.Message)
		}
	}

	o.PrintSuccess("Build complete in %s", formatDuration(s.Duration))

	if s.OutputDir != "" {
		fmt.Printf("\n  %s\n", o.Gray("Output: "+s.OutputDir))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
