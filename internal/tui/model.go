package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// writeClipboard is swapped in tests.
var writeClipboard = clipboard.WriteAll

type subscriptions struct {
	states <-chan models.SyncState
	events <-chan models.ErrorEvent
	levels <-chan service.PhoneBattery
}

type model struct {
	ctx        context.Context
	sync       service.PreferenceSyncService
	preference service.BoolPreference
	buildInfo  models.AppBuildInfo
	subs       subscriptions

	state     models.SyncState
	cached    bool
	cachedErr error
	battery   service.PhoneBattery

	status   string
	errMsg   string
	showInfo bool

	spinner spinner.Model
	help    help.Model
}

func newModel(ctx context.Context, sync service.PreferenceSyncService, preference service.BoolPreference, buildInfo models.AppBuildInfo, subs subscriptions) model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return model{
		ctx:        ctx,
		sync:       sync,
		preference: preference,
		buildInfo:  buildInfo,
		subs:       subs,
		state:      sync.State(),
		spinner:    s,
		help:       help.New(),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.cmdLoadPreference(),
		waitFor(m.subs.states, func(s models.SyncState) tea.Msg { return stateMsg{state: s} }),
		waitFor(m.subs.events, func(e models.ErrorEvent) tea.Msg { return errorEventMsg{event: e} }),
		waitFor(m.subs.levels, func(b service.PhoneBattery) tea.Msg { return batteryMsg{battery: b} }),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateMsg:
		m.state = msg.state
		return m, tea.Batch(
			waitFor(m.subs.states, func(s models.SyncState) tea.Msg { return stateMsg{state: s} }),
			m.cmdLoadPreference(),
		)
	case errorEventMsg:
		if msg.event == models.ErrorEventPhoneChanged {
			m.status = "Телефон сменился, проверяем заново"
		}
		return m, tea.Batch(
			waitFor(m.subs.events, func(e models.ErrorEvent) tea.Msg { return errorEventMsg{event: e} }),
			cmdClearStatus(),
		)
	case batteryMsg:
		m.battery = msg.battery
		return m, waitFor(m.subs.levels, func(b service.PhoneBattery) tea.Msg { return batteryMsg{battery: b} })
	case preferenceMsg:
		m.cached, m.cachedErr = msg.value, msg.err
		return m, nil
	case copiedMsg:
		m.status = "Скопировано!"
		m.errMsg = ""
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.errMsg = fmt.Sprintf("Ошибка копирования: %v", msg.err)
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case subscriptionClosedMsg:
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.showInfo = !m.showInfo
		return m, nil
	case key.Matches(msg, keys.activate), key.Matches(msg, keys.deactivate):
		if _, ok := m.state.(models.StatePhoneStatusResponse); !ok {
			m.errMsg = "Изменение доступно только после ответа телефона"
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdRequestChange(key.Matches(msg, keys.activate))
	case key.Matches(msg, keys.force):
		m.errMsg = ""
		return m, m.cmdForceDeactivate()
	case key.Matches(msg, keys.retry):
		m.errMsg = ""
		return m, m.cmdRetry()
	case key.Matches(msg, keys.copy):
		node, ok := models.StateNode(m.state)
		if !ok {
			m.errMsg = "Телефон ещё не найден"
			return m, nil
		}
		return m, cmdCopy(node.ID)
	}
	return m, nil
}

// ── Commands ─────────────────────────────────────────────────────────────────

func waitFor[T any](ch <-chan T, wrap func(T) tea.Msg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		v, ok := <-ch
		if !ok {
			return subscriptionClosedMsg{}
		}
		return wrap(v)
	}
}

func (m model) cmdLoadPreference() tea.Cmd {
	return func() tea.Msg {
		v, err := m.preference.Get(m.ctx)
		return preferenceMsg{value: v, err: err}
	}
}

func (m model) cmdRequestChange(v bool) tea.Cmd {
	return func() tea.Msg {
		m.sync.RequestPreferenceChange(v)
		return nil
	}
}

func (m model) cmdForceDeactivate() tea.Cmd {
	return func() tea.Msg {
		m.sync.OnForceDeactivate()
		return nil
	}
}

func (m model) cmdRetry() tea.Cmd {
	return func() tea.Msg {
		m.sync.OnRetry()
		return nil
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
