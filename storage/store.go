package storage

import (
	"log"
	"sync"

	"jumpbot/model"
)

// RecordStore is the single source of truth for panel records. All reads and
// read-modify-persist sequences go through one mutex so a concurrent Add
// during an in-flight save cannot tear the snapshot.
type RecordStore struct {
	mu      sync.Mutex
	backend Backend
	records []model.PanelRecord
}

// NewRecordStore loads the collection from the backend. A load failure is
// logged and the store starts empty; it is never fatal to startup.
func NewRecordStore(backend Backend) *RecordStore {
	records, err := backend.Load()
	if err != nil {
		log.Printf("record-store: failed to load panel records, starting empty: %v", err)
		records = nil
	}
	log.Printf("record-store: loaded %d panel records", len(records))
	return &RecordStore{backend: backend, records: records}
}

// Records returns a copy of the full collection.
func (s *RecordStore) Records() []model.PanelRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.PanelRecord, len(s.records))
	copy(out, s.records)
	return out
}

// GuildRecords returns a copy of the records belonging to one guild.
func (s *RecordStore) GuildRecords(guildID string) []model.PanelRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.PanelRecord
	for _, rec := range s.records {
		if rec.GuildID == guildID {
			out = append(out, rec)
		}
	}
	return out
}

// Add appends a record and persists the collection. A persistence failure is
// logged; the in-memory collection stays authoritative for the running
// process and the next successful save recovers durability.
func (s *RecordStore) Add(rec model.PanelRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	s.persistLocked()
}

// Remove deletes the record with the given message id, if present, and
// reports whether anything was removed. Nothing is persisted when no record
// matched.
func (s *RecordStore) Remove(messageID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, rec := range s.records {
		if rec.MessageID == messageID {
			s.records = append(s.records[:i], s.records[i+1:]...)
			s.persistLocked()
			return true
		}
	}
	return false
}

func (s *RecordStore) persistLocked() {
	if err := s.backend.Save(s.records); err != nil {
		log.Printf("record-store: failed to persist panel records: %v", err)
	}
}
