// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/watchface-sync/internal/adapter"
	"github.com/MKhiriev/watchface-sync/internal/config"
	"github.com/MKhiriev/watchface-sync/internal/flow"
	"github.com/MKhiriev/watchface-sync/internal/logger"
	"github.com/MKhiriev/watchface-sync/models"
)

// preferenceSyncService is an actor: the state and the pending operation are
// owned by the run goroutine. Public methods and asynchronous completions
// reach it through events.
type preferenceSyncService struct {
	channel    models.SyncChannel
	messages   adapter.MessageClient
	preference BoolPreference
	cfg        config.Sync

	// owned by the run goroutine
	state        models.SyncState
	pending      context.CancelFunc
	earlyAck     *models.Message
	discoveryGen uint64

	stateFlow   *flow.State[models.SyncState]
	errorEvents *flow.Events[models.ErrorEvent]
	retryEvents *flow.Events[struct{}]

	events chan func()
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
	once   sync.Once

	logger *logger.Logger
}

// NewPreferenceSyncService starts a state machine for channel in Loading,
// registers it as message listener on messages and arms the discovery
// timeout. Zero timeouts in cfg fall back to the config defaults.
func NewPreferenceSyncService(channel models.SyncChannel, messages adapter.MessageClient, preference BoolPreference, cfg config.Sync, log *logger.Logger) PreferenceSyncService {
	cfg.ResponseTimeout = orTimeout(cfg.ResponseTimeout, config.DefaultResponseTimeout)
	cfg.DiscoveryTimeout = orTimeout(cfg.DiscoveryTimeout, config.DefaultDiscoveryTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	s := &preferenceSyncService{
		channel:     channel,
		messages:    messages,
		preference:  preference,
		cfg:         cfg,
		state:       models.StateLoading{},
		stateFlow:   flow.NewState[models.SyncState](models.StateLoading{}),
		errorEvents: flow.NewEvents[models.ErrorEvent](flow.DefaultEventBuffer),
		retryEvents: flow.NewEvents[struct{}](flow.DefaultEventBuffer),
		events:      make(chan func()),
		ctx:         ctx,
		cancel:      cancel,
		done:        make(chan struct{}),
		logger:      log.WithComponent("sync_" + channel.Name),
	}

	s.logger.Info().Str("func", "NewPreferenceSyncService").
		Dur("response_timeout", cfg.ResponseTimeout).
		Dur("discovery_timeout", cfg.DiscoveryTimeout).
		Msg("creating preference sync service")

	go s.run()
	s.do(s.armDiscoveryTimeout)
	messages.AddListener(s)

	return s
}

// NewBatterySyncService binds a state machine to [models.BatterySyncChannel].
func NewBatterySyncService(messages adapter.MessageClient, preference BoolPreference, cfg config.Sync, log *logger.Logger) PreferenceSyncService {
	return NewPreferenceSyncService(models.BatterySyncChannel, messages, preference, cfg, log)
}

func (s *preferenceSyncService) run() {
	defer close(s.done)
	for {
		select {
		case <-s.ctx.Done():
			return
		case fn := <-s.events:
			fn()
		}
	}
}

// do runs fn on the run goroutine and waits until it has been applied.
func (s *preferenceSyncService) do(fn func()) {
	applied := make(chan struct{})
	select {
	case s.events <- func() { fn(); close(applied) }:
	case <-s.done:
		return
	}
	select {
	case <-applied:
	case <-s.done:
	}
}

// post hands fn to the run goroutine without waiting for it.
func (s *preferenceSyncService) post(fn func()) {
	select {
	case s.events <- fn:
	case <-s.done:
	}
}

// ── Discovery ─────────────────────────────────────────────────────────────────

func (s *preferenceSyncService) OnCapabilityChanged(info models.CapabilityInfo) {
	s.OnNodeDiscoveryResult(info.Nodes)
}

func (s *preferenceSyncService) OnNodeDiscoveryResult(nodes []models.Node) {
	node, ok := SelectBestCompanionNode(nodes)
	if !ok {
		s.logger.Debug().Str("func", "preferenceSyncService.OnNodeDiscoveryResult").Msg("no companion node advertised")
		return
	}
	s.OnPhoneNodeFound(node)
}

func (s *preferenceSyncService) OnNodeDiscoveryFailed(err error) {
	s.do(func() {
		s.logger.Warn().Err(err).Str("func", "preferenceSyncService.OnNodeDiscoveryFailed").Msg("companion discovery failed")
		s.cancelPending()
		s.setState(models.StatePhoneNotFound{SyncActivated: s.persisted()})
	})
}

func (s *preferenceSyncService) OnPhoneNodeFound(node models.Node) {
	s.do(func() { s.onPhoneNodeFound(node) })
}

func (s *preferenceSyncService) onPhoneNodeFound(node models.Node) {
	switch st := s.state.(type) {
	case models.StateLoading, models.StatePhoneNotFound, models.StateError:
		s.setState(models.StatePhoneFound{Node: node})
		s.startStatusCheck(node)
	case models.StatePhoneFound:
		if st.Node.ID == node.ID {
			return
		}
		delivered := s.errorEvents.Emit(models.ErrorEventPhoneChanged)
		s.logger.Info().Str("func", "preferenceSyncService.onPhoneNodeFound").
			Str("old_node", st.Node.ID).Str("new_node", node.ID).Int("delivered", delivered).Msg("phone changed")
		s.setState(models.StatePhoneFound{Node: node})
		s.startStatusCheck(node)
	case models.StateWaitingForResponse, models.StatePhoneStatusResponse, models.StateSendingRequest:
		s.logger.Debug().Str("func", "preferenceSyncService.onPhoneNodeFound").
			Stringer("state", st).Str("node", node.ID).Msg("exchange in progress, node ignored")
	}
}

func (s *preferenceSyncService) armDiscoveryTimeout() {
	s.discoveryGen++
	gen := s.discoveryGen
	timeout := s.cfg.DiscoveryTimeout

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTimer(timeout)
		defer t.Stop()

		select {
		case <-s.ctx.Done():
			return
		case <-t.C:
		}
		s.post(func() {
			if gen != s.discoveryGen {
				return
			}
			if _, ok := s.state.(models.StateLoading); !ok {
				return
			}
			s.logger.Info().Str("func", "preferenceSyncService.armDiscoveryTimeout").Msg("no phone found before timeout")
			s.setState(models.StatePhoneNotFound{SyncActivated: s.persisted()})
		})
	}()
}

// ── Status check and change request ───────────────────────────────────────────

func (s *preferenceSyncService) startStatusCheck(node models.Node) {
	ctx := s.beginOperation()
	data := models.EncodeBool(s.persisted())

	s.send(ctx, node, data, func(err error) {
		st, ok := s.state.(models.StatePhoneFound)
		if !ok || st.Node.ID != node.ID {
			s.logger.Debug().Str("func", "preferenceSyncService.startStatusCheck").
				Stringer("state", s.state).Msg("stale status check result discarded")
			return
		}
		if err != nil {
			s.logger.Error().Err(err).Str("func", "preferenceSyncService.startStatusCheck").
				Str("node", node.ID).Msg("unable to send status query")
			s.setState(models.StateError{ErrorKind: models.ErrorUnableToSendMessage, SyncActivated: s.persisted()})
			return
		}
		s.awaitResponse(ctx, node)
	})
}

func (s *preferenceSyncService) RequestPreferenceChange(v bool) {
	s.do(func() {
		st, ok := s.state.(models.StatePhoneStatusResponse)
		if !ok {
			s.logger.Warn().Str("func", "preferenceSyncService.RequestPreferenceChange").
				Stringer("state", s.state).Bool("value", v).Msg("change requested outside of a confirmed state, ignored")
			return
		}

		node := st.Node
		ctx := s.beginOperation()
		s.setState(models.StateSendingRequest{Node: node, Activating: v})

		s.send(ctx, node, models.EncodeBool(v), func(err error) {
			cur, ok := s.state.(models.StateSendingRequest)
			if !ok || cur.Node.ID != node.ID {
				s.logger.Debug().Str("func", "preferenceSyncService.RequestPreferenceChange").
					Stringer("state", s.state).Msg("stale change result discarded")
				return
			}
			if err != nil {
				s.logger.Error().Err(err).Str("func", "preferenceSyncService.RequestPreferenceChange").
					Str("node", node.ID).Msg("unable to send change request")
				s.setState(models.StateError{ErrorKind: models.ErrorUnableToSendMessage, SyncActivated: s.persisted()})
				return
			}
			s.awaitResponse(ctx, node)
		})
	})
}

// awaitResponse enters Waiting for node. A held acknowledgement for the
// change request is applied right away, otherwise the response timer is
// armed.
func (s *preferenceSyncService) awaitResponse(ctx context.Context, node models.Node) {
	s.setState(models.StateWaitingForResponse{Node: node})

	if ack := s.earlyAck; ack != nil {
		s.earlyAck = nil
		s.applyAck(node, *ack)
		return
	}
	s.armResponseTimeout(ctx, node)
}

// send delivers data on the query path in its own goroutine and hands the
// result to onResult on the run goroutine. Results of cancelled operations
// are dropped.
func (s *preferenceSyncService) send(ctx context.Context, node models.Node, data []byte, onResult func(err error)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		err := s.messages.SendMessage(ctx, node.ID, s.channel.QueryPath, data)
		s.post(func() {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return
			}
			onResult(err)
		})
	}()
}

func (s *preferenceSyncService) armResponseTimeout(ctx context.Context, node models.Node) {
	timeout := s.cfg.ResponseTimeout

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		t := time.NewTimer(timeout)
		defer t.Stop()

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
		s.post(func() {
			if ctx.Err() != nil {
				return
			}
			st, ok := s.state.(models.StateWaitingForResponse)
			if !ok || st.Node.ID != node.ID {
				return
			}
			s.logger.Warn().Str("func", "preferenceSyncService.armResponseTimeout").
				Str("node", node.ID).Dur("timeout", timeout).Msg("no response from phone")
			s.setState(models.StateError{ErrorKind: models.ErrorNoResponseFromPhone, SyncActivated: s.persisted()})
		})
	}()
}

// beginOperation cancels the pending operation and returns the context of
// the new one.
func (s *preferenceSyncService) beginOperation() context.Context {
	s.cancelPending()
	ctx, cancel := context.WithCancel(s.ctx)
	s.pending = cancel
	return ctx
}

func (s *preferenceSyncService) cancelPending() {
	if s.pending != nil {
		s.pending()
		s.pending = nil
	}
	s.earlyAck = nil
}

// ── Inbound messages ──────────────────────────────────────────────────────────

func (s *preferenceSyncService) OnMessageReceived(msg models.Message) {
	if msg.Path != s.channel.AckPath {
		return
	}

	s.do(func() {
		switch st := s.state.(type) {
		case models.StateWaitingForResponse:
			s.applyAck(st.Node, msg)
		case models.StateSendingRequest:
			s.holdEarlyAck(st, msg)
		case models.StateLoading, models.StatePhoneNotFound, models.StatePhoneFound, models.StatePhoneStatusResponse, models.StateError:
			s.logger.Debug().Str("func", "preferenceSyncService.OnMessageReceived").
				Stringer("state", st).Msg("acknowledgement outside of an exchange, ignored")
		}
	})
}

// holdEarlyAck keeps an acknowledgement that overtook the change request
// send. Only an ack from the request's node carrying the requested value is
// held; anything else is a leftover of an earlier exchange.
func (s *preferenceSyncService) holdEarlyAck(st models.StateSendingRequest, msg models.Message) {
	activated, err := models.DecodeBool(msg.Data)
	if s.pending == nil || msg.SourceNodeID != st.Node.ID || err != nil || activated != st.Activating {
		s.logger.Debug().Str("func", "preferenceSyncService.holdEarlyAck").
			Stringer("state", st).Str("source", msg.SourceNodeID).Msg("acknowledgement ignored")
		return
	}
	s.logger.Debug().Str("func", "preferenceSyncService.holdEarlyAck").
		Str("node", st.Node.ID).Msg("acknowledgement arrived before send completed, holding")
	s.earlyAck = &msg
}

func (s *preferenceSyncService) applyAck(node models.Node, msg models.Message) {
	if msg.SourceNodeID != node.ID {
		s.logger.Debug().Str("func", "preferenceSyncService.applyAck").
			Str("source", msg.SourceNodeID).Str("node", node.ID).Msg("acknowledgement from another node, ignored")
		return
	}

	s.cancelPending()
	activated, err := models.DecodeBool(msg.Data)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "preferenceSyncService.applyAck").Msg("malformed acknowledgement")
		s.setState(models.StateError{ErrorKind: models.ErrorNoResponseFromPhone, SyncActivated: s.persisted()})
		return
	}

	s.setState(models.StatePhoneStatusResponse{Node: node, SyncActivated: activated})
	s.persist(activated)
}

// ── User actions ──────────────────────────────────────────────────────────────

func (s *preferenceSyncService) OnForceDeactivate() {
	s.do(func() {
		s.persist(false)

		switch st := s.state.(type) {
		case models.StateError:
			s.setState(models.StateError{ErrorKind: st.ErrorKind, SyncActivated: false})
		case models.StatePhoneNotFound:
			s.setState(models.StatePhoneNotFound{SyncActivated: false})
		case models.StateLoading, models.StatePhoneFound, models.StateWaitingForResponse,
			models.StatePhoneStatusResponse, models.StateSendingRequest:
		}
	})
}

func (s *preferenceSyncService) OnRetry() {
	s.do(func() {
		s.cancelPending()
		s.setState(models.StateLoading{})
		if s.retryEvents.Emit(struct{}{}) == 0 {
			s.logger.Warn().Str("func", "preferenceSyncService.OnRetry").Msg("no discovery worker subscribed, waiting for the next capability change")
		}
		s.armDiscoveryTimeout()
	})
}

// ── Observers ─────────────────────────────────────────────────────────────────

func (s *preferenceSyncService) State() models.SyncState {
	return s.stateFlow.Value()
}

func (s *preferenceSyncService) SubscribeState() (<-chan models.SyncState, func()) {
	return s.stateFlow.Subscribe()
}

func (s *preferenceSyncService) SubscribeErrorEvents() (<-chan models.ErrorEvent, func()) {
	return s.errorEvents.Subscribe()
}

func (s *preferenceSyncService) SubscribeRetryEvents() (<-chan struct{}, func()) {
	return s.retryEvents.Subscribe()
}

func (s *preferenceSyncService) Close() error {
	s.once.Do(func() {
		s.messages.RemoveListener(s)
		s.do(s.cancelPending)
		s.cancel()
		<-s.done
		s.wg.Wait()
		s.logger.Info().Str("func", "preferenceSyncService.Close").Msg("preference sync service closed")
	})
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (s *preferenceSyncService) setState(next models.SyncState) {
	s.logger.Debug().Str("func", "preferenceSyncService.setState").
		Str("kind", string(next.Kind())).
		Stringer("from", s.state).Stringer("to", next).Msg("state transition")
	s.state = next
	s.stateFlow.Set(next)
}

func (s *preferenceSyncService) persisted() bool {
	v, err := s.preference.Get(s.ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("func", "preferenceSyncService.persisted").Msg("unable to read preference, assuming false")
		return false
	}
	return v
}

func (s *preferenceSyncService) persist(v bool) {
	if err := s.preference.Set(s.ctx, v); err != nil {
		s.logger.Error().Err(err).Str("func", "preferenceSyncService.persist").Bool("value", v).Msg("unable to persist preference")
	}
}

func orTimeout(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}
