// Package views draws widget render models as terminal cards.
package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/indent"

	"github.com/sandeepkv93/baringwidget/internal/layout"
	"github.com/sandeepkv93/baringwidget/internal/model"
	"github.com/sandeepkv93/baringwidget/internal/preset"
	"github.com/sandeepkv93/baringwidget/internal/widget"
)

const (
	MediumWidth = 44
	SmallWidth  = 24

	cardPadding = 1
	timeIndent  = 6
	ellipsis    = "…"
)

var (
	routineAccent = preset.ParseHex("34D399")
	// 40% white over the to-do background.
	timeColor  = preset.ParseHex("66FFFFFF").Over(widget.TodoBackground)
	dimColor   = preset.ParseHex("99FFFFFF").Over(widget.TodoBackground)
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cardBorder = lipgloss.RoundedBorder()
)

func RenderEntry(e widget.Entry) string {
	switch {
	case e.Goal != nil && e.Goal.Family == widget.FamilyGoalSmall:
		return RenderGoalSmall(*e.Goal)
	case e.Goal != nil:
		return RenderGoalMedium(*e.Goal)
	case e.Todo != nil:
		return RenderTodo(*e.Todo)
	default:
		return ""
	}
}

func RenderGoalMedium(m widget.GoalModel) string {
	inner := MediumWidth - 2*cardPadding
	fg, bg := goalColors(m.Preset)

	header := spread(inner, badge(m.Badge, m.Preset), bold(m.DDay, fg))
	lines := []string{
		header,
		"",
		bold(truncate(m.Title, inner), fg),
		spread(inner, label(m.Percent, fg), ""),
		progressBar(m.Preset, inner).ViewAs(m.Progress),
		spread(inner, label(m.StartDate, fg), label(m.TargetDate, fg)),
	}
	return card(lines, inner, bg)
}

func RenderGoalSmall(m widget.GoalModel) string {
	inner := SmallWidth - 2*cardPadding
	fg, bg := goalColors(m.Preset)

	lines := []string{
		badge(m.Badge, m.Preset),
		"",
		bold(truncate(m.Title, inner), fg),
		bold(m.DDay, fg),
		progressBar(m.Preset, inner).ViewAs(m.Progress),
		label(m.Percent, fg),
	}
	return card(lines, inner, bg)
}

func RenderTodo(m widget.TodoModel) string {
	inner := SmallWidth - 2*cardPadding
	white := lipgloss.Color("#FFFFFF")
	bg := lipgloss.Color(m.Background.Hex())

	lines := []string{spread(inner, bold(m.Badge, white), label(m.Counter, lipgloss.Color(dimColor.Hex())))}
	if m.Empty() {
		msg := lipgloss.NewStyle().
			Width(inner).
			Align(lipgloss.Center).
			Foreground(lipgloss.Color(dimColor.Hex())).
			Render(m.EmptyMessage)
		lines = append(lines, "", msg)
		return card(lines, inner, bg)
	}
	for _, row := range m.Plan.Rows {
		lines = append(lines, renderRow(row, inner)...)
	}
	return card(lines, inner, bg)
}

func renderRow(row layout.Row, width int) []string {
	if row.Kind == layout.RowOverflow {
		return []string{label(widget.OverflowLabel(row.Hidden), lipgloss.Color(dimColor.Hex()))}
	}
	item := row.Item
	marker := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Render("○")
	if item.Kind == model.ItemKindRoutine {
		marker = lipgloss.NewStyle().Foreground(lipgloss.Color(routineAccent.Hex())).Render("↻")
	}
	title := truncate(item.Title, width-2)
	out := []string{marker + " " + lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Render(title)}
	if item.HasTime() {
		line := lipgloss.NewStyle().Foreground(lipgloss.Color(timeColor.Hex())).Render(item.Time)
		out = append(out, indent.String(line, timeIndent))
	}
	return out
}

func progressBar(p preset.StylePreset, width int) progress.Model {
	bar := progress.New(
		progress.WithGradient(p.Start.Hex(), p.End.Hex()),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	if p.Dark {
		bar.EmptyColor = "#3A3D5C"
	}
	return bar
}

func goalColors(p preset.StylePreset) (lipgloss.Color, lipgloss.Color) {
	return lipgloss.Color("#FFFFFF"), lipgloss.Color(p.Mid().Hex())
}

func badge(text string, p preset.StylePreset) string {
	return badgeStyle.
		Foreground(lipgloss.Color(p.End.Hex())).
		Background(lipgloss.Color("#FFFFFF")).
		Render(text)
}

func bold(text string, fg lipgloss.Color) string {
	return lipgloss.NewStyle().Bold(true).Foreground(fg).Render(text)
}

func label(text string, fg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Render(text)
}

// truncate keeps a single line, cutting the tail to fit width cells.
func truncate(s string, width int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i] + ellipsis
	}
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, ellipsis)
}

func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func card(lines []string, inner int, bg lipgloss.Color) string {
	return lipgloss.NewStyle().
		Border(cardBorder).
		BorderForeground(bg).
		Background(bg).
		Padding(0, cardPadding).
		Width(inner + 2*cardPadding).
		Render(strings.Join(lines, "\n"))
}
