package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/kitmeta"
	"github.com/buildit/buildit/internal/planner"
)

// RenderKits renders the kit catalog as a list: icon, name, ID, part count
// and description.
func RenderKits(kits []api.Kit, width int) string {
	if len(kits) == 0 {
		return FallbackStyle.Render("No kits available")
	}

	blocks := make([]string, 0, len(kits))
	for _, k := range kits {
		meta := kitmeta.Lookup(k.Name)
		name := lipgloss.NewStyle().Foreground(kitmeta.Accent(kitmeta.ColorVar(meta.Color))).Bold(true).Render(k.Name)

		head := fmt.Sprintf("%s %s %s", meta.Icon, name, HeaderCommandStyle.UnsetPaddingLeft().Render("("+k.ID+")"))
		lines := []string{
			"  " + head,
			SectionBodyStyle.Width(width - 4).Render(meta.Description),
			SectionBodyStyle.Render(fmt.Sprintf("%d parts: %s", len(k.Parts), strings.Join(k.Parts, ", "))),
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}
	return strings.Join(blocks, "\n\n")
}

// RenderPlan renders a generation result as sections, in the same order as
// the TUI tabs for mode. Empty fields get the same placeholders.
func RenderPlan(r *api.GenerationResult, mode planner.Mode, width int) string {
	if r == nil {
		r = &api.GenerationResult{}
	}
	bodyWidth := width - 4
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var sections []string
	for _, tab := range planner.TabsFor(mode) {
		var body string
		switch tab {
		case planner.TabOverview:
			body = textOr(r.Overview, planner.NoOverview, bodyWidth)
		case planner.TabSteps:
			body = numbered(r.Steps, planner.NoSteps)
		case planner.TabWiring:
			body = codeOr(r.Wiring, planner.NoWiring)
		case planner.TabParts:
			body = renderShopping(r)
		case planner.TabCode:
			body = codeOr(r.Firmware, planner.NoCode)
		}
		sections = append(sections, SectionTitleStyle.Render(tab.Title())+"\n"+body)
	}

	if len(r.Tips) > 0 {
		sections = append(sections, SectionTitleStyle.Render("Tips")+"\n"+bullets(r.Tips))
	}

	return strings.Join(sections, "\n\n")
}

// PlanDetails summarises a result for the success box
func PlanDetails(r *api.GenerationResult, mode planner.Mode) []Field {
	details := []Field{{Key: "Mode", Value: mode.Label()}}
	if r == nil {
		return details
	}
	details = append(details, Field{Key: "Steps", Value: fmt.Sprintf("%d", len(r.Steps))})
	if mode == planner.ModeReverse && r.EstimatedCost != "" {
		details = append(details, Field{Key: "Est. cost", Value: r.EstimatedCost})
	}
	if r.ModelUsed != "" {
		details = append(details, Field{Key: "Model", Value: r.ModelUsed})
	}
	return details
}

func renderShopping(r *api.GenerationResult) string {
	var b strings.Builder
	if len(r.PartsNeeded) == 0 {
		b.WriteString(FallbackStyle.Render(planner.NoParts))
	} else {
		b.WriteString(bullets(r.PartsNeeded))
	}
	if r.EstimatedCost != "" {
		b.WriteString("\n\n")
		b.WriteString(SectionBodyStyle.Render("Estimated cost: " + r.EstimatedCost))
	}
	b.WriteString("\n\n")
	b.WriteString(SectionBodyStyle.Render("Where to buy:"))
	b.WriteString("\n")
	if len(r.WhereToBuy) == 0 {
		b.WriteString(FallbackStyle.Render(planner.NoWhereInfo))
	} else {
		b.WriteString(bullets(r.WhereToBuy))
	}
	return b.String()
}

func textOr(text, fallback string, width int) string {
	if strings.TrimSpace(text) == "" {
		return FallbackStyle.Render(fallback)
	}
	return SectionBodyStyle.Width(width).Render(text)
}

func codeOr(code, fallback string) string {
	if strings.TrimSpace(code) == "" {
		return FallbackStyle.Render(fallback)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(MutedColor).
		PaddingLeft(1).
		MarginLeft(2).
		Render(code)
}

func numbered(items []string, fallback string) string {
	if len(items) == 0 {
		return FallbackStyle.Render(fallback)
	}
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = fmt.Sprintf("%2d. %s", i+1, item)
	}
	return indent(strings.Join(lines, "\n"), "  ")
}

func bullets(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = BulletMarker + " " + item
	}
	return indent(strings.Join(lines, "\n"), "  ")
}
