package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/buildit/buildit/internal/api"
	"github.com/buildit/buildit/internal/kitmeta"
)

// Kit card geometry
const (
	minCardWidth = 30
	maxCardWidth = 72
)

// RenderKitCard renders one selectable kit: icon, name, description from the
// kit catalog metadata, the part count and a selection mark. The accent
// colour comes from the kit's category; focus switches to the highlight
// border.
func RenderKitCard(kit api.Kit, selected, focused bool, width int) string {
	meta := kitmeta.Lookup(kit.Name)
	accent := kitmeta.Accent(kitmeta.ColorVar(meta.Color))

	nameStyle := lipgloss.NewStyle().Foreground(accent).Bold(true)

	var b strings.Builder

	b.WriteString(meta.Icon + " " + nameStyle.Render(kit.Name))
	if selected {
		b.WriteString("  " + DoneStyle.Render("✓"))
	}
	b.WriteString("\n")
	b.WriteString(HintStyle.Render(meta.Description))
	b.WriteString("\n")
	b.WriteString(partCount(len(kit.Parts)))

	cardWidth := width - 4 // border + padding
	if cardWidth < minCardWidth {
		cardWidth = minCardWidth
	}
	if cardWidth > maxCardWidth {
		cardWidth = maxCardWidth
	}

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(SubtleColor).
		Padding(0, 1).
		Width(cardWidth)

	switch {
	case focused:
		cardStyle = cardStyle.BorderForeground(HighlightColor)
	case selected:
		cardStyle = cardStyle.BorderForeground(accent)
	}

	return cardStyle.Render(b.String())
}

// RenderKitLine renders a kit as a single line for terminals too short for
// cards: selection box, icon, name and part count.
func RenderKitLine(kit api.Kit, selected, focused bool, width int) string {
	meta := kitmeta.Lookup(kit.Name)
	accent := kitmeta.Accent(kitmeta.ColorVar(meta.Color))

	box := "[ ]"
	if selected {
		box = "[" + DoneStyle.Render("✓") + "]"
	}
	cursor := "  "
	if focused {
		cursor = FocusMarkerStyle.Render("› ")
	}

	line := cursor + box + " " + meta.Icon + " " +
		lipgloss.NewStyle().Foreground(accent).Bold(true).Render(kit.Name) +
		"  " + HintStyle.Render(partCount(len(kit.Parts)))

	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}

func partCount(n int) string {
	if n == 1 {
		return "1 part"
	}
	return fmt.Sprintf("%d parts", n)
}
