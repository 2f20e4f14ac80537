package adapter

import (
	"sync"

	"github.com/MKhiriev/watchface-sync/models"
)

type messageRecorder struct {
	mu   sync.Mutex
	msgs []models.Message
}

func (r *messageRecorder) OnMessageReceived(msg models.Message) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *messageRecorder) messages() []models.Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Message(nil), r.msgs...)
}

type capabilityRecorder struct {
	mu    sync.Mutex
	infos []models.CapabilityInfo
}

func (r *capabilityRecorder) OnCapabilityChanged(info models.CapabilityInfo) {
	r.mu.Lock()
	r.infos = append(r.infos, info)
	r.mu.Unlock()
}

func (r *capabilityRecorder) all() []models.CapabilityInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.CapabilityInfo(nil), r.infos...)
}

func (r *capabilityRecorder) last() (models.CapabilityInfo, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.infos) == 0 {
		return models.CapabilityInfo{}, false
	}
	return r.infos[len(r.infos)-1], true
}
