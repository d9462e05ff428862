// Package report renders snapshots and scores as human-readable text
// for the console, the HTTP text endpoint, and saved report files.
// A Renderer built without color produces byte-identical layout with
// no escape sequences, which is what goes into files.
package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	bannerWidth    = 60
	scoreBarWidth  = 40
	sectionBarWide = 20
	summaryRule    = 40
)

type Renderer struct {
	color bool
}

func New(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) styled(hex, s string) string {
	if !r.color || hex == "" {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(s)
}

func (r *Renderer) title(hex, s string) string {
	if !r.color {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true).Render(s)
}

func banner() string {
	return strings.Repeat("=", bannerWidth)
}

func centered(s string) string {
	pad := (bannerWidth - len([]rune(s))) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + s
}

// scoreBar draws the overall gauge: 40 cells, filled in proportion to
// score/10.
func scoreBar(score float64) string {
	filled := int(math.Round(score / 10.0 * scoreBarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > scoreBarWidth {
		filled = scoreBarWidth
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", scoreBarWidth-filled) + "]"
}

// progressBar draws the 20-cell utilization bar used by the report
// sections.
func progressBar(percent float64) string {
	filled := int(math.Round(percent / 100.0 * sectionBarWide))
	if filled < 0 {
		filled = 0
	}
	if filled > sectionBarWide {
		filled = sectionBarWide
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat(" ", sectionBarWide-filled) + "]"
}

// gb renders bytes as decimal gigabytes with two decimals, gb1 with
// one.
func gb(bytes uint64) string {
	return fmt.Sprintf("%.2f", float64(bytes)/1e9)
}

func gb1(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/1e9)
}
