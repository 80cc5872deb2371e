package console

import (
	"pump_console/internal/models"

	"github.com/google/uuid"
)

// IDFunc generates opaque entry identifiers.
type IDFunc func() string

// ScheduleStore owns the ordered list of committed schedule entries.
// Insertion order is display order.
type ScheduleStore struct {
	entries []models.ScheduleEntry
	issued  map[string]struct{}
	newID   IDFunc
}

// NewScheduleStore returns an empty store. A nil newID falls back to random UUIDs.
func NewScheduleStore(newID IDFunc) *ScheduleStore {
	if newID == nil {
		newID = uuid.NewString
	}
	return &ScheduleStore{
		entries: make([]models.ScheduleEntry, 0),
		issued:  make(map[string]struct{}),
		newID:   newID,
	}
}

// Add commits d as a new entry at the end of the list.
func (s *ScheduleStore) Add(d Draft) models.ScheduleEntry {
	e := models.ScheduleEntry{
		ID:       s.nextID(),
		Date:     d.Date.Format(models.DateLayout),
		Time:     d.Time.Format(models.TimeLayout),
		Duration: d.Duration,
	}
	s.entries = append(s.entries, e)
	return e
}

// Remove deletes the entry with the given id and reports whether one existed.
func (s *ScheduleStore) Remove(id string) bool {
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return true
		}
	}
	return false
}

// List returns a copy of the entries in insertion order. Never nil.
func (s *ScheduleStore) List() []models.ScheduleEntry {
	out := make([]models.ScheduleEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Len returns the number of committed entries.
func (s *ScheduleStore) Len() int { return len(s.entries) }

// nextID draws ids until one has never been issued by this store,
// including ids of entries that were since removed.
func (s *ScheduleStore) nextID() string {
	for {
		id := s.newID()
		if _, seen := s.issued[id]; id == "" || seen {
			continue
		}
		s.issued[id] = struct{}{}
		return id
	}
}
