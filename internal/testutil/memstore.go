package testutil

import "github.com/kadunafoods/stockwatch-go/internal/domain"

// MemStore is an in-memory monitor.StateStore for tests.
type MemStore struct {
	Sheets  map[string]domain.Sheet
	Counts  map[string]*int64
	Weights map[string]*float64

	// SheetSaves records the order of SaveSheet calls.
	SheetSaves []string

	// SaveErr, when set, is returned from every save.
	SaveErr error
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{
		Sheets:  make(map[string]domain.Sheet),
		Counts:  make(map[string]*int64),
		Weights: make(map[string]*float64),
	}
}

func (m *MemStore) LoadSheet(key string) *domain.Sheet {
	s, ok := m.Sheets[key]
	if !ok || !s.Valid() {
		return nil
	}
	return &s
}

func (m *MemStore) SaveSheet(key string, sheet domain.Sheet) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SheetSaves = append(m.SheetSaves, key)
	if !sheet.Valid() {
		return nil
	}
	m.Sheets[key] = sheet
	return nil
}

func (m *MemStore) LoadCount(key string) *int64 {
	return m.Counts[key]
}

func (m *MemStore) SaveCount(key string, v *int64) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Counts[key] = v
	return nil
}

func (m *MemStore) LoadWeight(key string) *float64 {
	return m.Weights[key]
}

func (m *MemStore) SaveWeight(key string, v *float64) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Weights[key] = v
	return nil
}
