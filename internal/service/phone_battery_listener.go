package service

import (
	"context"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/flow"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
)

// PhoneBattery is the last known phone battery level.
type PhoneBattery struct {
	Level int
	Known bool
}

// PhoneBatteryListener caches battery levels reported by the phone.
type PhoneBatteryListener interface {
	adapter.MessageListener

	Level() PhoneBattery
	SubscribeLevel() (<-chan PhoneBattery, func())
	Close() error
}

type phoneBatteryListener struct {
	messages   adapter.MessageClient
	preference IntPreference
	level      *flow.State[PhoneBattery]

	logger *logger.Logger
}

// NewPhoneBatteryListener seeds the level from preference and registers on
// messages.
func NewPhoneBatteryListener(ctx context.Context, messages adapter.MessageClient, preference IntPreference, logger *logger.Logger) PhoneBatteryListener {
	initial := PhoneBattery{}
	level, ok, err := preference.Get(ctx)
	if err != nil {
		logger.Warn().Err(err).Str("func", "NewPhoneBatteryListener").Msg("unable to read cached phone battery level")
	} else if ok {
		initial = PhoneBattery{Level: level, Known: true}
	}

	l := &phoneBatteryListener{
		messages:   messages,
		preference: preference,
		level:      flow.NewState(initial),
		logger:     logger,
	}
	messages.AddListener(l)
	return l
}

func (l *phoneBatteryListener) OnMessageReceived(msg models.Message) {
	if msg.Path != models.PathBatteryLevel {
		return
	}

	level, err := models.DecodeBatteryLevel(msg.Data)
	if err != nil {
		l.logger.Warn().Err(err).Str("func", "phoneBatteryListener.OnMessageReceived").Msg("malformed battery level")
		return
	}

	l.level.Set(PhoneBattery{Level: level, Known: true})
	if err = l.preference.Set(context.Background(), level); err != nil {
		l.logger.Error().Err(err).Str("func", "phoneBatteryListener.OnMessageReceived").Msg("unable to cache phone battery level")
	}
}

func (l *phoneBatteryListener) Level() PhoneBattery {
	return l.level.Value()
}

func (l *phoneBatteryListener) SubscribeLevel() (<-chan PhoneBattery, func()) {
	return l.level.Subscribe()
}

func (l *phoneBatteryListener) Close() error {
	l.messages.RemoveListener(l)
	return nil
}
