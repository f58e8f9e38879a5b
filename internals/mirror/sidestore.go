package mirror

import "sync"

// Slot side-store, satu per koleksi. Nama slot dipakai sebagai key
// di tabel content_slots (atau map in-memory untuk test).
const (
	SlotLeadership = "masjid_leadership"
	SlotFacilities = "masjid_facilities"
	SlotActivities = "masjid_activities"
	SlotPhotos     = "masjid_photos"
	SlotVideos     = "masjid_videos"
	SlotMessages   = "masjid_messages"
)

// Sidestore adalah port persistensi mirror. Setiap mutasi menulis ulang
// seluruh koleksi (bukan diff) ke slot-nya; dibaca sekali saat start.
type Sidestore interface {
	Load(slot string) (payload []byte, found bool, err error)
	Save(slot string, payload []byte) error
}

// MemorySidestore: implementasi map untuk test dan mode tanpa DB.
type MemorySidestore struct {
	mu    sync.Mutex
	slots map[string][]byte
}

func NewMemorySidestore() *MemorySidestore {
	return &MemorySidestore{slots: make(map[string][]byte)}
}

func (s *MemorySidestore) Load(slot string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.slots[slot]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	return cp, true, nil
}

func (s *MemorySidestore) Save(slot string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]byte, len(payload))
	copy(cp, payload)
	s.slots[slot] = cp
	return nil
}
