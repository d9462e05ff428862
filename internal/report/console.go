package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/GabrielRod726/hardware-diagnostic/internal/domain"
	"github.com/GabrielRod726/hardware-diagnostic/internal/score"
)

// Banner is the opening header of a diagnostic run.
func (r *Renderer) Banner() string {
	var b strings.Builder
	b.WriteString(banner() + "\n")
	b.WriteString(r.title("", centered("🖥️  HARDWARE DIAGNOSTIC")) + "\n")
	b.WriteString(banner() + "\n")
	return b.String()
}

// Summary is the bulleted system overview shown before the score.
func (r *Renderer) Summary(snap *domain.Snapshot) string {
	var b strings.Builder

	b.WriteString("\n📋 SYSTEM SUMMARY:\n")
	b.WriteString(strings.Repeat("-", summaryRule) + "\n")

	if snap.Hostname != "" {
		b.WriteString(fmt.Sprintf("• Host: %s (%s)\n", snap.Hostname, snap.Platform))
	}
	b.WriteString(fmt.Sprintf("• CPU: %s (%.1f%% load)\n", snap.CPU.Model, snap.CPU.UsagePercent))
	b.WriteString(fmt.Sprintf("• Cores: %d logical, %d physical\n", snap.CPU.LogicalCores, snap.CPU.PhysicalCores))
	b.WriteString(fmt.Sprintf("• RAM: %s GB / %s GB (%.1f%% used)\n",
		gb1(snap.Memory.UsedBytes), gb1(snap.Memory.TotalBytes), snap.Memory.UsedPercent))
	b.WriteString(fmt.Sprintf("• Disks: %d volume(s) found\n", len(snap.Disks)))
	for _, d := range snap.Disks {
		b.WriteString(fmt.Sprintf("  → %s: %s GB free (%.1f%% used)\n", d.Device, gb1(d.FreeBytes), d.UsedPercent))
	}

	return b.String()
}

// ScoreBlock renders the overall score with its gauge, the category,
// the component scores, the legend, and the recommendation list.
func (r *Renderer) ScoreBlock(res score.Result) string {
	accent := res.Category.Accent()

	var b strings.Builder
	b.WriteString(banner() + "\n")
	b.WriteString(r.title(accent, centered("📊 MACHINE PERFORMANCE SCORE")) + "\n")
	b.WriteString(banner() + "\n\n")

	b.WriteString(fmt.Sprintf("OVERALL SCORE: %.1f/10.0\n", res.Overall))
	b.WriteString(r.styled(accent, scoreBar(res.Overall)) + "\n\n")

	b.WriteString("CATEGORY: " + r.styled(accent, res.Category.Description()) + "\n\n")

	b.WriteString("DETAILED SCORES:\n")
	b.WriteString(fmt.Sprintf("  • CPU:      %.1f/10.0\n", res.CPU))
	b.WriteString(fmt.Sprintf("  • RAM:      %.1f/10.0\n", res.RAM))
	b.WriteString(fmt.Sprintf("  • Disks:    %.1f/10.0\n\n", res.Disk))

	b.WriteString("CATEGORY LEGEND:\n")
	b.WriteString("  1-2  → DISCARD/FULL UPGRADE\n")
	b.WriteString("  3-4  → URGENT MAINTENANCE\n")
	b.WriteString("  5-6  → USE WITH CAUTION\n")
	b.WriteString("  7-10 → GOOD CONDITION\n\n")

	b.WriteString("RECOMMENDATIONS:\n")
	for i, rec := range res.Recommendations {
		b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, rec))
	}

	return b.String()
}

// Decision renders the action block: what to do, why, the risk, and
// the horizon, one fixed set per category.
func (r *Renderer) Decision(res score.Result) string {
	accent := res.Category.Accent()

	var b strings.Builder
	b.WriteString("\n" + banner() + "\n")
	b.WriteString(r.title(accent, centered("🎯 RECOMMENDED DECISION")) + "\n")
	b.WriteString(banner() + "\n")

	switch res.Category {
	case score.Discard:
		b.WriteString(r.styled(accent, "🚨 RECOMMENDED ACTION: DISCARD/FULL UPGRADE") + "\n")
		b.WriteString(fmt.Sprintf("• Justification: Very low score (%.1f/10)\n", res.Overall))
		b.WriteString("• Risk: High risk of failures and low productivity\n")
		b.WriteString("• Timeframe: Immediate\n")
	case score.UrgentMaintenance:
		b.WriteString(r.styled(accent, "⚠️ RECOMMENDED ACTION: URGENT MAINTENANCE") + "\n")
		b.WriteString(fmt.Sprintf("• Justification: Low score (%.1f/10)\n", res.Overall))
		b.WriteString("• Risk: Frequent performance problems\n")
		b.WriteString("• Timeframe: Within 1-2 weeks\n")
	case score.UseWithCaution:
		b.WriteString(r.styled(accent, "🔶 RECOMMENDED ACTION: USE WITH CAUTION") + "\n")
		b.WriteString(fmt.Sprintf("• Justification: Moderate score (%.1f/10)\n", res.Overall))
		b.WriteString("• Risk: Possible problems under heavy load\n")
		b.WriteString("• Timeframe: Constant monitoring\n")
	default:
		b.WriteString(r.styled(accent, "✅ RECOMMENDED ACTION: NORMAL USE") + "\n")
		b.WriteString(fmt.Sprintf("• Justification: Good score (%.1f/10)\n", res.Overall))
		b.WriteString("• Risk: Low for standard use\n")
		b.WriteString("• Timeframe: Regular preventive maintenance\n")
	}

	return b.String()
}

// Footer closes the run with the generation timestamp.
func (r *Renderer) Footer(at time.Time) string {
	var b strings.Builder
	b.WriteString("\n" + banner() + "\n")
	b.WriteString(fmt.Sprintf("Report generated at: %d\n", at.Unix()))
	b.WriteString(banner() + "\n")
	return b.String()
}
