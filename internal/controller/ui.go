// Package controller provides the output adapters that display splice results.
package controller

import (
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/splice/internal/model"
)

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', 2, 64)
}

func formatLocation(def m.Definition) string {
	return fmt.Sprintf("%s:%d", def.File, def.Line)
}

// formatWarnings summarizes the skipped items of a result, or returns "".
func formatWarnings(r m.OpResult) string {
	var parts []string

	if r.Unmatched > 0 {
		parts = append(parts, fmt.Sprintf("unmatched markers: %d", r.Unmatched))
	}

	if r.Missing > 0 {
		parts = append(parts, fmt.Sprintf("missing artifacts: %d", r.Missing))
	}

	if r.Collisions > 0 {
		parts = append(parts, fmt.Sprintf("collisions: %d", r.Collisions))
	}

	return strings.Join(parts, ", ")
}

// scoreBreakdown renders per-scorer values in scorer order.
func scoreBreakdown(def m.Definition, order []m.ScorerName) string {
	parts := make([]string, 0, len(order))

	for _, name := range order {
		score, ok := def.Scores[name]
		if !ok {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s=%s", name, formatScore(score)))
	}

	return strings.Join(parts, " ")
}
