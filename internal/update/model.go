// Package update is the terminal preview app: it shows one widget family at a
// time and re-renders it on timeline and host-reload events.
package update

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/sandeepkv93/baringwidget/internal/scheduler"
	"github.com/sandeepkv93/baringwidget/internal/widget"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type Model struct {
	Family    widget.Family
	Entry     widget.Entry
	Status    StatusBar
	Renderer  *widget.Renderer
	Scheduler *scheduler.Engine
	Reloads   *scheduler.ReloadGate
	Interval  time.Duration
	HelpFull  bool
	Quitting  bool

	ctx     context.Context
	now     func() time.Time
	keys    keyMap
	helpBar help.Model
}

type Deps struct {
	Context         context.Context
	Renderer        *widget.Renderer
	Scheduler       *scheduler.Engine
	Reloads         *scheduler.ReloadGate
	Family          widget.Family
	RefreshInterval time.Duration
}

// RefreshMsg carries one scheduler event into the update loop.
type RefreshMsg struct {
	Event scheduler.RefreshEvent
}

// RenderedMsg is the outcome of a single-family render pass.
type RenderedMsg struct {
	Family widget.Family
	Reason scheduler.Reason
	Entry  widget.Entry
	Err    error
}

// RenderedAllMsg is the outcome of the startup pass over every family.
type RenderedAllMsg struct {
	Entries []widget.Entry
	Err     error
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

func NewModel(deps Deps) Model {
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}
	family := deps.Family
	if !family.IsValid() {
		family = widget.FamilyGoalMedium
	}
	interval := deps.RefreshInterval
	if interval <= 0 {
		interval = widget.DefaultRefreshInterval
	}
	m := Model{
		Family:    family,
		Renderer:  deps.Renderer,
		Scheduler: deps.Scheduler,
		Reloads:   deps.Reloads,
		Interval:  interval,
		ctx:       ctx,
		now:       time.Now,
		keys:      defaultKeyMap(),
		helpBar:   help.New(),
	}
	if m.Renderer != nil {
		m.Entry = m.Renderer.Last(family)
	}
	return m
}
