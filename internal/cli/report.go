package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verdantlabs/verdant/internal/model"
)

// RenderReport formats a complete analysis result for terminal display.
func RenderReport(result *model.AnalysisResult) string {
	var b strings.Builder

	b.WriteString(FormatTitle("Carbon Footprint Analysis"))
	b.WriteString("\n\n")

	if result.Degraded {
		b.WriteString(FormatWarning("Analysis degraded: " + result.FailureReason))
		b.WriteString("\n\n")
	}

	b.WriteString(RenderBox("Overview", renderOverview(result)))
	b.WriteString("\n")
	b.WriteString(RenderBox("Domain Breakdown", renderBreakdown(result.DomainBreakdown)))
	b.WriteString("\n")

	if len(result.PrioritizedActions) > 0 {
		b.WriteString(RenderBox("Prioritized Actions", renderActions(result.PrioritizedActions)))
		b.WriteString("\n")
	}
	if len(result.Synergies) > 0 {
		b.WriteString(RenderBox("Cross-Domain Synergies", renderSynergies(result.Synergies)))
		b.WriteString("\n")
	}

	b.WriteString(RenderBox("Implementation Timeline", renderTimeline(result.Timeline)))
	b.WriteString("\n")

	return b.String()
}

func renderOverview(result *model.AnalysisResult) string {
	lines := []string{
		fmt.Sprintf("%s EcoScore:            %s", ChartIcon, scoreStyle(result.EcoScore).Render(fmt.Sprintf("%.1f / 100", result.EcoScore))),
		fmt.Sprintf("%s Carbon footprint:    %.1f tons CO2/year", GlobeIcon, result.TotalCarbonFootprint),
		fmt.Sprintf("%s Potential reduction: %.1f tons CO2/year", LeafIcon, result.PotentialReduction),
	}
	if result.Refined {
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("Plan refined (%d iteration)", result.RefinementIterations)))
	}
	return strings.Join(lines, "\n")
}

func scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 60:
		return SuccessStyle
	case score >= 40:
		return WarningStyle
	default:
		return ErrorStyle
	}
}

func renderBreakdown(breakdown map[model.Domain]model.DomainSummary) string {
	var lines []string
	for _, domain := range model.AllDomains() {
		summary, ok := breakdown[domain]
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-10s %5.1f tons/year   efficiency %.0f%%   potential: %s",
			string(domain), summary.CarbonFootprint, summary.EfficiencyScore*100, summary.ImprovementPotential))
	}
	return strings.Join(lines, "\n")
}

func renderActions(actions []model.Intervention) string {
	var lines []string
	for i, action := range actions {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, BoldStyle.Render(action.Action)))
		detail := fmt.Sprintf("   %s reduction, %s feasibility", action.CO2Reduction, action.Feasibility)
		if action.CostImpact != "" {
			detail += ", " + action.CostImpact
		}
		lines = append(lines, SubtleStyle.Render(detail))
		if action.Timeline != "" {
			lines = append(lines, SubtleStyle.Render("   Timeline: "+action.Timeline))
		}
	}
	return strings.Join(lines, "\n")
}

func renderSynergies(synergies []model.Synergy) string {
	var lines []string
	for _, synergy := range synergies {
		lines = append(lines, fmt.Sprintf("%s %s", SuccessIcon, synergy.Description))
		lines = append(lines, SubtleStyle.Render(fmt.Sprintf("   %s (%.1fx multiplier)", synergy.CombinedImpact, synergy.Multiplier)))
	}
	return strings.Join(lines, "\n")
}

func renderTimeline(timeline model.ImplementationTimeline) string {
	var lines []string
	phases := []struct {
		label   string
		actions []string
	}{
		{"Immediate (0-1 month)", timeline.Immediate},
		{"Short term (1-3 months)", timeline.ShortTerm},
		{"Medium term (3-6 months)", timeline.MediumTerm},
		{"Long term (6+ months)", timeline.LongTerm},
	}
	for _, phase := range phases {
		if len(phase.actions) == 0 {
			continue
		}
		lines = append(lines, BoldStyle.Render(phase.label))
		for _, action := range phase.actions {
			lines = append(lines, "  • "+action)
		}
	}
	if len(lines) == 0 {
		return SubtleStyle.Render("No phased actions")
	}
	return strings.Join(lines, "\n")
}

// RenderHistory formats stored conversations as a table-like listing.
func RenderHistory(conversations []model.Conversation) string {
	if len(conversations) == 0 {
		return FormatInfo("No analyses recorded yet")
	}

	var b strings.Builder
	b.WriteString(FormatTitle("Analysis History"))
	b.WriteString("\n\n")
	for _, conv := range conversations {
		b.WriteString(fmt.Sprintf("%s  score %5.1f  %5.1f tons  %s\n",
			conv.Timestamp.Format("2006-01-02 15:04"),
			conv.EcoScore,
			conv.CarbonFootprint,
			truncate(conv.Input, 60)))
	}
	return b.String()
}

// RenderStats formats aggregate statistics.
func RenderStats(stats *model.MemoryStats) string {
	content := strings.Join([]string{
		fmt.Sprintf("Total analyses:    %d", stats.TotalConversations),
		fmt.Sprintf("Average EcoScore:  %.1f", stats.AverageEcoScore),
		fmt.Sprintf("Best EcoScore:     %.1f", stats.BestEcoScore),
		fmt.Sprintf("Average footprint: %.1f tons CO2/year", stats.AverageFootprint),
	}, "\n")
	return RenderBox("Statistics", content)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
