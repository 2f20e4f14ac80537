package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/internal/service"
	"github.com/MKhiriev/watchface-sync/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNilServices = errors.New("wearable services are required")

// TUI is the terminal observer of the battery sync state machine.
type TUI struct {
	services   *service.WearableServices
	preference service.BoolPreference
	buildInfo  models.AppBuildInfo
	logger     *logger.Logger
}

func New(services *service.WearableServices, preference service.BoolPreference, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.BatterySync == nil || services.PhoneBattery == nil || preference == nil {
		return nil, errNilServices
	}
	return &TUI{
		services:   services,
		preference: preference,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	states, cancelStates := t.services.BatterySync.SubscribeState()
	defer cancelStates()
	events, cancelEvents := t.services.BatterySync.SubscribeErrorEvents()
	defer cancelEvents()
	levels, cancelLevels := t.services.PhoneBattery.SubscribeLevel()
	defer cancelLevels()

	m := newModel(ctx, t.services.BatterySync, t.preference, t.buildInfo, subscriptions{
		states: states,
		events: events,
		levels: levels,
	})

	t.logger.Info().Str("func", "*TUI.Run").Msg("starting terminal UI")
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
