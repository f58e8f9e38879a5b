package mirror

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (n *recordingNotifier) Notify(event, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Events() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string{}, n.events...)
}

func TestAddAssignsFreshIDAndKeepsFields(t *testing.T) {
	m := New(NewMemorySidestore(), &recordingNotifier{})
	defer m.Close()

	rec := m.AddFacility(Facility{
		ID:          uuid.MustParse("00000000-0000-0000-0000-000000000001"), // harus diabaikan
		Name:        "Aula Serbaguna",
		Description: "Untuk akad dan kajian besar",
	})

	require.NotEqual(t, uuid.Nil, rec.ID)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000001", rec.ID.String())
	assert.Equal(t, "Aula Serbaguna", rec.Name)
	assert.Equal(t, "Untuk akad dan kajian besar", rec.Description)

	list := m.Facilities()
	count := 0
	for _, f := range list {
		if f.ID == rec.ID {
			count++
		}
	}
	assert.Equal(t, 1, count, "tepat satu record dengan ID baru")
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	m := New(NewMemorySidestore(), nil)
	defer m.Close()

	a := m.AddActivity(Activity{Name: "Kajian Subuh", Date: "2026-09-01", Category: "kajian"})
	b := m.AddActivity(Activity{Name: "Santunan Yatim", Date: "2026-09-10", Category: "sosial"})

	list := m.Activities()
	require.GreaterOrEqual(t, len(list), 2)
	assert.Equal(t, a.ID, list[len(list)-2].ID)
	assert.Equal(t, b.ID, list[len(list)-1].ID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	m := New(NewMemorySidestore(), nil)
	defer m.Close()

	rec := m.AddLeadership(LeadershipMember{Name: "H. Salim", Position: "Bendahara"})
	before := len(m.Leadership())

	assert.True(t, m.DeleteLeadership(rec.ID))
	assert.Equal(t, before-1, len(m.Leadership()))

	// delete kedua: tidak error, tidak mengubah apa pun
	assert.False(t, m.DeleteLeadership(rec.ID))
	assert.Equal(t, before-1, len(m.Leadership()))
}

func TestUpdateUnknownIDLeavesCollectionUntouched(t *testing.T) {
	m := New(NewMemorySidestore(), nil)
	defer m.Close()

	m.AddPhoto(Photo{Name: "Ramadhan 1447", Category: "kegiatan"})
	before, err := json.Marshal(m.Photos())
	require.NoError(t, err)

	ok := m.UpdatePhoto(Photo{ID: uuid.New(), Name: "Tidak Ada"})
	assert.False(t, ok)

	after, err := json.Marshal(m.Photos())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestUpdateReplacesInPlace(t *testing.T) {
	m := New(NewMemorySidestore(), nil)
	defer m.Close()

	first := m.AddVideo(Video{Name: "Kajian Tauhid", VideoURL: "https://cdn/x.mp4"})
	second := m.AddVideo(Video{Name: "Khutbah Idul Fitri", VideoURL: "https://cdn/y.mp4"})

	first.Name = "Kajian Tauhid (Edit)"
	require.True(t, m.UpdateVideo(first))

	list := m.Videos()
	require.Len(t, list, 2)
	// posisi tidak berubah
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, "Kajian Tauhid (Edit)", list[0].Name)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestSidestoreRoundTrip(t *testing.T) {
	store := NewMemorySidestore()

	m := New(store, nil)
	m.AddFacility(Facility{Name: "Tempat Wudhu"})
	m.AddFacility(Facility{Name: "Parkir Motor"})
	want := m.Facilities()
	m.Close() // drain antrean persist

	reloaded := New(store, nil)
	defer reloaded.Close()
	assert.Equal(t, want, reloaded.Facilities())
}

func TestSeedUsedWhenSlotAbsent(t *testing.T) {
	m := New(NewMemorySidestore(), nil)
	defer m.Close()

	assert.Equal(t, seedLeadership(), m.Leadership())
	assert.Empty(t, m.Photos())
	assert.Empty(t, m.Messages())
}

func TestAddMessageForcesUnreadAndTimestamp(t *testing.T) {
	notif := &recordingNotifier{}
	m := New(NewMemorySidestore(), notif)
	defer m.Close()

	start := time.Now().UTC()
	msg := m.AddMessage(ContactMessage{
		Name:      "Jane",
		Email:     "jane@x.com",
		Subject:   "general",
		Message:   "Hello there, need info",
		IsRead:    true,                            // harus dipaksa false
		CreatedAt: time.Unix(0, 0),                 // harus ditimpa
	})
	end := time.Now().UTC()

	assert.False(t, msg.IsRead)
	assert.False(t, msg.CreatedAt.Before(start))
	assert.False(t, msg.CreatedAt.After(end))
	assert.Contains(t, notif.Events(), "message.created")
}

func TestSetMessageReadOnlyFlipsFlagWithoutNotify(t *testing.T) {
	notif := &recordingNotifier{}
	m := New(NewMemorySidestore(), notif)
	defer m.Close()

	msg := m.AddMessage(ContactMessage{Name: "Jane", Email: "jane@x.com", Subject: "general", Message: "Hello"})
	eventsBefore := len(notif.Events())

	require.True(t, m.SetMessageRead(msg.ID, true))

	got, ok := m.FindMessage(msg.ID)
	require.True(t, ok)
	assert.True(t, got.IsRead)
	// field lain tidak tersentuh
	assert.Equal(t, msg.Name, got.Name)
	assert.Equal(t, msg.Email, got.Email)
	assert.Equal(t, msg.Subject, got.Subject)
	assert.Equal(t, msg.Message, got.Message)
	assert.Equal(t, msg.CreatedAt, got.CreatedAt)
	// tidak ada toast untuk buka pesan
	assert.Len(t, notif.Events(), eventsBefore)

	// id tak dikenal → no-op
	assert.False(t, m.SetMessageRead(uuid.New(), true))
}

func TestGormSlotPayloadIsPlainJSONArray(t *testing.T) {
	// jaga kompatibilitas format slot: array JSON polos, bukan objek wrapper
	store := NewMemorySidestore()
	m := New(store, nil)
	m.AddFacility(Facility{Name: "Kantin"})
	m.Close()

	payload, found, err := store.Load(SlotFacilities)
	require.NoError(t, err)
	require.True(t, found)

	var arr []Facility
	require.NoError(t, json.Unmarshal(payload, &arr))
	assert.Equal(t, "Kantin", arr[len(arr)-1].Name)
}
