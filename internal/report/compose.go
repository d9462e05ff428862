package report

import (
	"strings"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
	"github.com/GabrielRod726/hardware-diagnostic/internal/score"
)

// Compose assembles the printable report in its standard order. Saved
// files and the HTTP text endpoint always include the detailed
// sections; the console passes full=false unless asked.
func Compose(r *Renderer, snap *domain.Snapshot, res score.Result, full bool) string {
	var b strings.Builder
	b.WriteString(r.Banner())
	b.WriteString(r.Summary(snap))
	b.WriteString(r.ScoreBlock(res))
	b.WriteString(r.Decision(res))
	if full {
		b.WriteString(r.Full(snap))
	}
	b.WriteString(r.Footer(snap.TakenAt))
	return b.String()
}
