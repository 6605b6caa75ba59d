// Package ui renders live counters of the handle runtime while a
// configurable churn scenario exercises it.
package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mimir/cmd/inspector/internal/config"
	"mimir/logging"
	"mimir/memory"
	"mimir/rc"
	"mimir/registry"
	"mimir/store"
)

type tickMsg time.Time

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Model drives the scenario and draws its state. bubbletea passes it
// by value; the pointered subsystems mutate in place.
type Model struct {
	sc   config.Scenario
	st   *store.Store
	reg  *registry.Registry[string, store.View]
	ring *memory.RetireRing
	rng  *rand.Rand

	ticks   int
	writes  int
	scans   int
	visited int
	drained int
	swept   int
	faults  int
	paused  bool
	width   int
}

func New(sc config.Scenario, st *store.Store) Model {
	return Model{
		sc:   sc,
		st:   st,
		reg:  registry.New[string, store.View](),
		ring: memory.NewRetireRing(sc.RingSize),
		rng:  rand.New(rand.NewSource(sc.Seed)),
	}
}

func (m Model) Init() tea.Cmd { return tick(m.sc.Tick()) }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !m.paused {
			m = m.step()
		}
		return m, tick(m.sc.Tick())

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m = m.teardown()
			return m, tea.Quit
		case key.Matches(msg, keys.Drain):
			m.drained += m.ring.Drain(m.ring.Len())
		case key.Matches(msg, keys.Sweep):
			m.swept += m.reg.Sweep()
		case key.Matches(msg, keys.Pause):
			m.paused = !m.paused
		}
	}
	return m, nil
}

// step runs one churn round: writes refresh store keys, named views
// are interned and parked in the retire ring, and cursor scans walk
// freshly pinned ranges.
func (m Model) step() Model {
	m.ticks++
	for i := 0; i < m.sc.ChurnPerTick; i++ {
		switch m.rng.Intn(4) {
		case 0, 1:
			m = m.write()
		case 2:
			m = m.retireView()
		default:
			m = m.scan()
		}
	}
	return m
}

func (m Model) write() Model {
	k := fmt.Sprintf("key/%04d", m.rng.Intn(m.sc.Keys))
	v := fmt.Sprintf("tick=%d", m.ticks)
	if err := m.st.Set([]byte(k), []byte(v)); err != nil {
		m.faults++
		logging.Error("write failed", "key", k, "error", err)
		return m
	}
	m.writes++
	return m
}

// retireView interns a named view and parks a handle to it in the
// ring, keeping the snapshot pinned until the ring lets go.
func (m Model) retireView() Model {
	name := fmt.Sprintf("view-%d", m.rng.Intn(m.sc.Views))
	h, err := m.reg.GetOrCreate(name, func() (rc.Shared[store.View], error) {
		return m.st.Acquire(), nil
	})
	if err != nil {
		m.faults++
		logging.Error("view intern failed", "name", name, "error", err)
		return m
	}

	if m.ring.IsFull() {
		m.drained += m.ring.Drain(1)
	}
	boxed := new(rc.Shared[store.View])
	*boxed = h
	m.ring.Enqueue(boxed)
	return m
}

// scan pins a fresh view just long enough to walk a short key range.
func (m Model) scan() Model {
	lo := m.rng.Intn(m.sc.Keys)
	start := []byte(fmt.Sprintf("key/%04d", lo))
	end := []byte(fmt.Sprintf("key/%04d", lo+16))

	h := m.st.Acquire()
	cur, err := h.Get().Cursor(start, end)
	if err != nil {
		m.faults++
		logging.Error("cursor open failed", "error", err)
		h.Release()
		return m
	}

	n := 0
	for ok := cur.Get().First(); ok; ok = cur.Get().Next() {
		n++
	}
	if err := cur.Get().Err(); err != nil {
		m.faults++
		logging.Error("scan failed", "error", err)
	}
	cur.Destroy()
	h.Release()

	m.scans++
	m.visited += n
	return m
}

// teardown releases everything the scenario still holds and closes
// the store, logging the final counters as a leak check.
func (m Model) teardown() Model {
	m.drained += m.ring.Drain(m.ring.Len())
	m.reg.Clear()

	stats := rc.Live()
	logging.Info("inspector shutting down",
		"ticks", m.ticks,
		"live_blocks", stats.Blocks,
		"live_objects", stats.Objects,
	)
	if err := m.st.Close(); err != nil {
		logging.WithError(err).Error("store close failed")
	}
	return m
}

func (m Model) View() string {
	live := rc.Live()

	runtime := panel("runtime",
		row("blocks", live.Blocks),
		row("objects", live.Objects),
		row("views", m.st.Views()),
	)
	reg := panel("registry",
		row("interned", m.reg.Len()),
		row("swept", m.swept),
	)
	ring := panel("retire ring",
		row("parked", m.ring.Len()),
		row("capacity", m.ring.Cap()),
		row("drained", m.drained),
	)
	ops := panel("ops",
		row("ticks", m.ticks),
		row("writes", m.writes),
		row("scans", m.scans),
		row("visited", m.visited),
		row("faults", m.faults),
	)

	panels := []string{runtime, reg, ring, ops}
	body := lipgloss.JoinHorizontal(lipgloss.Top, panels...)
	if m.width > 0 && m.width < 80 {
		body = lipgloss.JoinVertical(lipgloss.Left, panels...)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("mimir inspector") + "\n")
	b.WriteString(body)
	if m.paused {
		b.WriteString("\n" + pausedStyle.Render("paused"))
	}
	b.WriteString("\n" + helpStyle.Render("d: drain ring | s: sweep registry | p: pause | q: quit"))
	return b.String()
}

func panel(title string, rows ...string) string {
	body := panelTitleStyle.Render(title) + "\n" + strings.Join(rows, "\n")
	return panelStyle.Render(body)
}

func row(label string, n int) string {
	return labelStyle.Render(fmt.Sprintf("%-9s ", label)) + valueStyle.Render(fmt.Sprintf("%7d", n))
}
