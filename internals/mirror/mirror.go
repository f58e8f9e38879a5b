package mirror

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

/* ==========================
   Ports
========================== */

// Notifier menerima event sukses dari mirror (padanan toast di UI).
// Kegagalan persist TIDAK lewat sini; hanya dicatat di log.
type Notifier interface {
	Notify(event, message string)
}

type LogNotifier struct{}

func (LogNotifier) Notify(event, message string) {
	log.Printf("[NOTIFY] %s: %s", event, message)
}

/* ==========================
   Mirror
========================== */

type persistJob struct {
	slot    string
	payload []byte
}

// Mirror memegang enam koleksi konten di memori. Semua mutasi lewat
// method di sini; koleksi tidak pernah diexpose by-reference. Setiap
// mutasi meng-enqueue serialisasi penuh koleksi ke side-store, ditulis
// berurutan oleh satu goroutine sehingga snapshot terakhir selalu
// mencerminkan mutasi terakhir.
type Mirror struct {
	mu       sync.Mutex
	store    Sidestore
	notifier Notifier

	leadership []LeadershipMember
	facilities []Facility
	activities []Activity
	photos     []Photo
	videos     []Video
	messages   []ContactMessage

	persistCh chan persistJob
	wg        sync.WaitGroup
	closed    bool
}

// New membaca keenam slot side-store (fallback ke seed bawaan per slot)
// lalu menyalakan goroutine persist.
func New(store Sidestore, notifier Notifier) *Mirror {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	m := &Mirror{
		store:     store,
		notifier:  notifier,
		persistCh: make(chan persistJob, 256),
	}
	m.leadership = loadSlot(store, SlotLeadership, seedLeadership())
	m.facilities = loadSlot(store, SlotFacilities, seedFacilities())
	m.activities = loadSlot(store, SlotActivities, seedActivities())
	m.photos = loadSlot(store, SlotPhotos, seedPhotos())
	m.videos = loadSlot(store, SlotVideos, seedVideos())
	m.messages = loadSlot(store, SlotMessages, seedMessages())

	m.wg.Add(1)
	go m.persistLoop()
	return m
}

func loadSlot[T any](store Sidestore, slot string, seed []T) []T {
	payload, found, err := store.Load(slot)
	if err != nil {
		log.Printf("[ERROR] load slot %s: %v — pakai seed bawaan", slot, err)
		return seed
	}
	if !found {
		return seed
	}
	var out []T
	if err := json.Unmarshal(payload, &out); err != nil {
		log.Printf("[ERROR] decode slot %s: %v — pakai seed bawaan", slot, err)
		return seed
	}
	if out == nil {
		out = []T{}
	}
	return out
}

func (m *Mirror) persistLoop() {
	defer m.wg.Done()
	for job := range m.persistCh {
		if err := m.store.Save(job.slot, job.payload); err != nil {
			log.Printf("[ERROR] persist slot %s: %v", job.slot, err)
		}
	}
}

// Close menutup antrean persist dan menunggu penulisan tersisa selesai.
func (m *Mirror) Close() {
	m.mu.Lock()
	if !m.closed {
		m.closed = true
		close(m.persistCh)
	}
	m.mu.Unlock()
	m.wg.Wait()
}

// persistLocked harus dipanggil dengan m.mu held. Serialisasi penuh,
// tanpa diff, tanpa debounce — update no-op pun tetap menulis ulang.
func (m *Mirror) persistLocked(slot string, collection any) {
	if m.closed {
		return
	}
	payload, err := json.Marshal(collection)
	if err != nil {
		log.Printf("[ERROR] encode slot %s: %v", slot, err)
		return
	}
	m.persistCh <- persistJob{slot: slot, payload: payload}
}

/* ==========================
   Leadership
========================== */

func (m *Mirror) Leadership() []LeadershipMember {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]LeadershipMember{}, m.leadership...)
}

func (m *Mirror) AddLeadership(rec LeadershipMember) LeadershipMember {
	m.mu.Lock()
	rec.ID = uuid.New()
	m.leadership = append(m.leadership, rec)
	m.persistLocked(SlotLeadership, m.leadership)
	m.mu.Unlock()

	m.notifier.Notify("leadership.created", rec.Name)
	return rec
}

func (m *Mirror) UpdateLeadership(rec LeadershipMember) bool {
	m.mu.Lock()
	found := false
	for i := range m.leadership {
		if m.leadership[i].ID == rec.ID {
			m.leadership[i] = rec
			found = true
			break
		}
	}
	m.persistLocked(SlotLeadership, m.leadership)
	m.mu.Unlock()

	if found {
		m.notifier.Notify("leadership.updated", rec.Name)
	}
	return found
}

func (m *Mirror) DeleteLeadership(id uuid.UUID) bool {
	m.mu.Lock()
	found := false
	for i := range m.leadership {
		if m.leadership[i].ID == id {
			m.leadership = append(m.leadership[:i], m.leadership[i+1:]...)
			found = true
			break
		}
	}
	m.persistLocked(SlotLeadership, m.leadership)
	m.mu.Unlock()

	m.notifier.Notify("leadership.deleted", id.String())
	return found
}

/* ==========================
   Facilities
========================== */

func (m *Mirror) Facilities() []Facility {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Facility{}, m.facilities...)
}

func (m *Mirror) AddFacility(rec Facility) Facility {
	m.mu.Lock()
	rec.ID = uuid.New()
	m.facilities = append(m.facilities, rec)
	m.persistLocked(SlotFacilities, m.facilities)
	m.mu.Unlock()

	m.notifier.Notify("facility.created", rec.Name)
	return rec
}

func (m *Mirror) UpdateFacility(rec Facility) bool {
	m.mu.Lock()
	found := false
	for i := range m.facilities {
		if m.facilities[i].ID == rec.ID {
			m.facilities[i] = rec
			found = true
			break
		}
	}
	m.persistLocked(SlotFacilities, m.facilities)
	m.mu.Unlock()

	if found {
		m.notifier.Notify("facility.updated", rec.Name)
	}
	return found
}

func (m *Mirror) DeleteFacility(id uuid.UUID) bool {
	m.mu.Lock()
	found := false
	for i := range m.facilities {
		if m.facilities[i].ID == id {
			m.facilities = append(m.facilities[:i], m.facilities[i+1:]...)
			found = true
			break
		}
	}
	m.persistLocked(SlotFacilities, m.facilities)
	m.mu.Unlock()

	m.notifier.Notify("facility.deleted", id.String())
	return found
}

/* ==========================
   Activities
========================== */

func (m *Mirror) Activities() []Activity {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Activity{}, m.activities...)
}

func (m *Mirror) FindActivity(id uuid.UUID) (Activity, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

func (m *Mirror) AddActivity(rec Activity) Activity {
	m.mu.Lock()
	rec.ID = uuid.New()
	m.activities = append(m.activities, rec)
	m.persistLocked(SlotActivities, m.activities)
	m.mu.Unlock()

	m.notifier.Notify("activity.created", rec.Name)
	return rec
}

func (m *Mirror) UpdateActivity(rec Activity) bool {
	m.mu.Lock()
	found := false
	for i := range m.activities {
		if m.activities[i].ID == rec.ID {
			m.activities[i] = rec
			found = true
			break
		}
	}
	m.persistLocked(SlotActivities, m.activities)
	m.mu.Unlock()

	if found {
		m.notifier.Notify("activity.updated", rec.Name)
	}
	return found
}

func (m *Mirror) DeleteActivity(id uuid.UUID) bool {
	m.mu.Lock()
	found := false
	for i := range m.activities {
		if m.activities[i].ID == id {
			m.activities = append(m.activities[:i], m.activities[i+1:]...)
			found = true
			break
		}
	}
	m.persistLocked(SlotActivities, m.activities)
	m.mu.Unlock()

	m.notifier.Notify("activity.deleted", id.String())
	return found
}

/* ==========================
   Photos
========================== */

func (m *Mirror) Photos() []Photo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Photo{}, m.photos...)
}

func (m *Mirror) AddPhoto(rec Photo) Photo {
	m.mu.Lock()
	rec.ID = uuid.New()
	m.photos = append(m.photos, rec)
	m.persistLocked(SlotPhotos, m.photos)
	m.mu.Unlock()

	m.notifier.Notify("photo.created", rec.Name)
	return rec
}

func (m *Mirror) UpdatePhoto(rec Photo) bool {
	m.mu.Lock()
	found := false
	for i := range m.photos {
		if m.photos[i].ID == rec.ID {
			m.photos[i] = rec
			found = true
			break
		}
	}
	m.persistLocked(SlotPhotos, m.photos)
	m.mu.Unlock()

	if found {
		m.notifier.Notify("photo.updated", rec.Name)
	}
	return found
}

func (m *Mirror) DeletePhoto(id uuid.UUID) bool {
	m.mu.Lock()
	found := false
	for i := range m.photos {
		if m.photos[i].ID == id {
			m.photos = append(m.photos[:i], m.photos[i+1:]...)
			found = true
			break
		}
	}
	m.persistLocked(SlotPhotos, m.photos)
	m.mu.Unlock()

	m.notifier.Notify("photo.deleted", id.String())
	return found
}

/* ==========================
   Videos
========================== */

func (m *Mirror) Videos() []Video {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Video{}, m.videos...)
}

func (m *Mirror) AddVideo(rec Video) Video {
	m.mu.Lock()
	rec.ID = uuid.New()
	m.videos = append(m.videos, rec)
	m.persistLocked(SlotVideos, m.videos)
	m.mu.Unlock()

	m.notifier.Notify("video.created", rec.Name)
	return rec
}

func (m *Mirror) UpdateVideo(rec Video) bool {
	m.mu.Lock()
	found := false
	for i := range m.videos {
		if m.videos[i].ID == rec.ID {
			m.videos[i] = rec
			found = true
			break
		}
	}
	m.persistLocked(SlotVideos, m.videos)
	m.mu.Unlock()

	if found {
		m.notifier.Notify("video.updated", rec.Name)
	}
	return found
}

func (m *Mirror) DeleteVideo(id uuid.UUID) bool {
	m.mu.Lock()
	found := false
	for i := range m.videos {
		if m.videos[i].ID == id {
			m.videos = append(m.videos[:i], m.videos[i+1:]...)
			found = true
			break
		}
	}
	m.persistLocked(SlotVideos, m.videos)
	m.mu.Unlock()

	m.notifier.Notify("video.deleted", id.String())
	return found
}

/* ==========================
   Contact messages
========================== */

func (m *Mirror) Messages() []ContactMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]ContactMessage{}, m.messages...)
}

func (m *Mirror) FindMessage(id uuid.UUID) (ContactMessage, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, msg := range m.messages {
		if msg.ID == id {
			return msg, true
		}
	}
	return ContactMessage{}, false
}

// AddMessage selalu menimpa CreatedAt dengan waktu sekarang dan memaksa
// IsRead=false, apapun isi input dari pengirim form.
func (m *Mirror) AddMessage(rec ContactMessage) ContactMessage {
	m.mu.Lock()
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now().UTC()
	rec.IsRead = false
	m.messages = append(m.messages, rec)
	m.persistLocked(SlotMessages, m.messages)
	m.mu.Unlock()

	m.notifier.Notify("message.created", rec.Subject)
	return rec
}

// SetMessageRead hanya mengubah flag baca, TANPA notifikasi — dibedakan
// dari update generik supaya buka pesan di admin tidak menspam toast.
func (m *Mirror) SetMessageRead(id uuid.UUID, read bool) bool {
	m.mu.Lock()
	found := false
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages[i].IsRead = read
			found = true
			break
		}
	}
	m.persistLocked(SlotMessages, m.messages)
	m.mu.Unlock()
	return found
}

func (m *Mirror) DeleteMessage(id uuid.UUID) bool {
	m.mu.Lock()
	found := false
	for i := range m.messages {
		if m.messages[i].ID == id {
			m.messages = append(m.messages[:i], m.messages[i+1:]...)
			found = true
			break
		}
	}
	m.persistLocked(SlotMessages, m.messages)
	m.mu.Unlock()

	m.notifier.Notify("message.deleted", id.String())
	return found
}
