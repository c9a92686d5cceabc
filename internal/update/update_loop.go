package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/baringwidget/internal/scheduler"
	"github.com/sandeepkv93/baringwidget/internal/views"
	"github.com/sandeepkv93/baringwidget/internal/widget"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.renderAllCmd()}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForRefreshCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case RefreshMsg:
		var cmds []tea.Cmd
		if m.Scheduler != nil {
			cmds = append(cmds, waitForRefreshCmd(m.Scheduler.C()))
		}
		family, err := widget.ParseFamily(typed.Event.Family)
		if err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("ignored refresh: %v", err), IsError: true}
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.renderCmd(family, typed.Event.Reason))
		return m, tea.Batch(cmds...)
	case RenderedMsg:
		if typed.Family == m.Family {
			m.Entry = typed.Entry
		}
		if typed.Err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("refresh failed: %v", typed.Err), IsError: true}
		} else if typed.Family == m.Family {
			m.Status = StatusBar{Text: "rendered " + typed.Entry.Date.Format("15:04:05")}
		}
		if typed.Reason == scheduler.ReasonTimeline {
			m.scheduleTimeline(typed.Family, typed.Entry, typed.Err == nil)
		}
		return m, nil
	case RenderedAllMsg:
		for _, entry := range typed.Entries {
			if entry.Family == m.Family {
				m.Entry = entry
			}
			m.scheduleTimeline(entry.Family, entry, typed.Err == nil)
		}
		if typed.Err != nil {
			m.Status = StatusBar{Text: fmt.Sprintf("refresh failed: %v", typed.Err), IsError: true}
		} else {
			m.Status = StatusBar{Text: fmt.Sprintf("rendered %d widgets", len(typed.Entries))}
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	header := string(m.Family)
	if d, ok := m.Family.Descriptor(); ok {
		header = fmt.Sprintf("%s · %s", d.DisplayName, d.Description)
	}
	m.helpBar.ShowAll = m.HelpFull
	return views.RenderPreview(views.PreviewData{
		Header:     header,
		Widget:     views.RenderEntry(m.Entry),
		StatusLine: m.Status.Text,
		IsError:    m.Status.IsError,
		Footer:     m.helpBar.View(m.keys),
	})
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.HelpFull = !m.HelpFull
	case key.Matches(msg, m.keys.Goal):
		m.switchFamily(widget.FamilyGoalMedium)
	case key.Matches(msg, m.keys.Small):
		m.switchFamily(widget.FamilyGoalSmall)
	case key.Matches(msg, m.keys.Todo):
		m.switchFamily(widget.FamilyTodo)
	case key.Matches(msg, m.keys.Next):
		m.switchFamily(nextFamily(m.Family))
	case key.Matches(msg, m.keys.Reload):
		return m.requestReload()
	}
	return m, nil
}

// requestReload goes through the gate when one is wired so that repeated
// presses collapse; without a scheduler it renders directly.
func (m Model) requestReload() (tea.Model, tea.Cmd) {
	if m.Reloads == nil {
		return m, m.renderCmd(m.Family, scheduler.ReasonHost)
	}
	queued, err := m.Reloads.Request(string(m.Family))
	switch {
	case err != nil:
		m.Status = StatusBar{Text: fmt.Sprintf("reload failed: %v", err), IsError: true}
	case queued:
		m.Status = StatusBar{Text: "reload queued"}
	default:
		m.Status = StatusBar{Text: "reload already pending"}
	}
	return m, nil
}

func (m *Model) switchFamily(f widget.Family) {
	m.Family = f
	if m.Renderer != nil {
		m.Entry = m.Renderer.Last(f)
	}
}

// scheduleTimeline queues the next timeline pass. A failed pass hands back
// the last good entry, whose date is stale, so it counts from now.
func (m *Model) scheduleTimeline(family widget.Family, entry widget.Entry, fresh bool) {
	if m.Scheduler == nil {
		return
	}
	rendered := entry.Date
	if !fresh || rendered.IsZero() || entry.Placeholder {
		rendered = m.now()
	}
	if _, err := m.Scheduler.ScheduleTimeline(string(family), rendered, m.Interval); err != nil {
		m.Status = StatusBar{Text: fmt.Sprintf("schedule failed: %v", err), IsError: true}
	}
}

func (m Model) renderCmd(family widget.Family, reason scheduler.Reason) tea.Cmd {
	if m.Renderer == nil {
		return nil
	}
	ctx, renderer := m.ctx, m.Renderer
	return func() tea.Msg {
		entry, err := renderer.Refresh(ctx, family)
		return RenderedMsg{Family: family, Reason: reason, Entry: entry, Err: err}
	}
}

func (m Model) renderAllCmd() tea.Cmd {
	if m.Renderer == nil {
		return nil
	}
	ctx, renderer := m.ctx, m.Renderer
	return func() tea.Msg {
		entries, err := renderer.RefreshAll(ctx)
		return RenderedAllMsg{Entries: entries, Err: err}
	}
}

func waitForRefreshCmd(ch <-chan scheduler.RefreshEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return RefreshMsg{Event: ev}
	}
}

func nextFamily(f widget.Family) widget.Family {
	catalog := widget.Catalog()
	for i, d := range catalog {
		if d.Family == f {
			return catalog[(i+1)%len(catalog)].Family
		}
	}
	return catalog[0].Family
}
