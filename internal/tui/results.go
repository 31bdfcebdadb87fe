package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/logging"
	"github.com/buildit/buildit/internal/planner"
)

// markdownRenderer renders backend text that may contain markdown. A nil
// renderer, or a render failure, falls back to plain text.
type markdownRenderer struct {
	r *glamour.TermRenderer
}

func newMarkdownRenderer(style string, width int) markdownRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		logging.Warn("markdown renderer unavailable", zap.Error(err))
		return markdownRenderer{}
	}
	return markdownRenderer{r: r}
}

func (m markdownRenderer) render(text string) string {
	if m.r == nil {
		return text
	}
	out, err := m.r.Render(text)
	if err != nil {
		logging.Debug("markdown render failed", zap.Error(err))
		return text
	}
	return strings.TrimRight(out, "\n")
}

// renderCode renders firmware as a fenced C++ block so glamour highlights
// it; the plain fallback keeps a left rule to set the code apart.
func (m markdownRenderer) renderCode(code string) string {
	if m.r == nil {
		return CodeStyle.Render(code)
	}
	out, err := m.r.Render("```cpp\n" + code + "\n```")
	if err != nil {
		return CodeStyle.Render(code)
	}
	return strings.TrimRight(out, "\n")
}

// renderTabBar renders the tab row for a mode with the active tab
// highlighted.
func renderTabBar(tabs []planner.Tab, active planner.Tab) string {
	cells := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t == active {
			cells = append(cells, ActiveTabStyle.Render(t.Title()))
		} else {
			cells = append(cells, TabStyle.Render(t.Title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// renderOverviewTab renders the project overview, the model that produced
// it and any tips.
func renderOverviewTab(r *api.GenerationResult, md markdownRenderer) string {
	var b strings.Builder

	if r.Overview == "" {
		b.WriteString(HintStyle.Render(planner.NoOverview))
	} else {
		b.WriteString(md.render(r.Overview))
	}

	if len(r.Tips) > 0 {
		b.WriteString("\n\n")
		b.WriteString(SectionTitleStyle.Render("Tips"))
		b.WriteString("\n")
		b.WriteString(bulletList(r.Tips))
	}

	if r.ModelUsed != "" {
		b.WriteString("\n\n")
		b.WriteString(HintStyle.Render("Model: " + r.ModelUsed))
	}

	return b.String()
}

func renderWiringTab(r *api.GenerationResult) string {
	if r.Wiring == "" {
		return HintStyle.Render(planner.NoWiring)
	}
	return CodeStyle.Render(r.Wiring)
}

// renderPartsTab renders the reverse-mode shopping list: parts, estimated
// cost and where to buy.
func renderPartsTab(r *api.GenerationResult) string {
	var b strings.Builder

	b.WriteString(SectionTitleStyle.Render("Parts Needed"))
	b.WriteString("\n")
	if len(r.PartsNeeded) == 0 {
		b.WriteString(HintStyle.Render(planner.NoParts))
	} else {
		b.WriteString(bulletList(r.PartsNeeded))
	}

	if r.EstimatedCost != "" {
		b.WriteString("\n\n")
		b.WriteString(SectionTitleStyle.Render("Estimated Cost: "))
		b.WriteString(r.EstimatedCost)
	}

	b.WriteString("\n\n")
	b.WriteString(SectionTitleStyle.Render("Where to Buy"))
	b.WriteString("\n")
	if len(r.WhereToBuy) == 0 {
		b.WriteString(HintStyle.Render(planner.NoWhereInfo))
	} else {
		b.WriteString(bulletList(r.WhereToBuy))
	}

	return b.String()
}

func renderCodeTab(r *api.GenerationResult, md markdownRenderer) string {
	if r.Firmware == "" {
		return HintStyle.Render(planner.NoCode)
	}
	return md.renderCode(r.Firmware)
}

// renderErrorPanel renders a failed generation with troubleshooting hints.
func renderErrorPanel(message string, err error) string {
	var b strings.Builder
	b.WriteString(RenderError(message))

	if hints := api.Troubleshooting(err); len(hints) > 0 {
		b.WriteString("\n\n")
		b.WriteString(SectionTitleStyle.Render("Troubleshooting"))
		b.WriteString("\n")
		b.WriteString(HintStyle.Render(bulletList(hints)))
	}

	return b.String()
}

func bulletList(items []string) string {
	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "• " + item
	}
	return strings.Join(lines, "\n")
}
