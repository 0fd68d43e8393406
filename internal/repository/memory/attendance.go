package memory

import (
	"context"
	"sync"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/timeutil"
)

type dayKey struct {
	employeeID string
	date       string // YYYY-MM-DD
}

// recordStore keeps one record per (employee, day). A single RWMutex guards
// the map itself; per-key mutexes serialize the read-merge-write of an
// upsert so concurrent writers to the same day-slot never interleave, while
// writers to different keys proceed independently.
type recordStore struct {
	mu      sync.RWMutex
	records map[dayKey]attendance.AttendanceRecord

	lockMu sync.Mutex
	locks  map[dayKey]*sync.Mutex
}

func NewRecordStore() attendance.RecordStore {
	return &recordStore{
		records: make(map[dayKey]attendance.AttendanceRecord),
		locks:   make(map[dayKey]*sync.Mutex),
	}
}

func keyFor(employeeID string, date time.Time) dayKey {
	return dayKey{employeeID: employeeID, date: date.UTC().Format("2006-01-02")}
}

func (s *recordStore) keyLock(k dayKey) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[k]
	if !ok {
		l = &sync.Mutex{}
		s.locks[k] = l
	}
	return l
}

// Upsert implements attendance.RecordStore.
func (s *recordStore) Upsert(ctx context.Context, employeeID string, date time.Time, patch attendance.RecordPatch) (attendance.AttendanceRecord, error) {
	k := keyFor(employeeID, date)
	l := s.keyLock(k)
	l.Lock()
	defer l.Unlock()

	s.mu.RLock()
	existing, ok := s.records[k]
	s.mu.RUnlock()

	var cur *attendance.AttendanceRecord
	if ok {
		cur = &existing
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	merged, err := attendance.Apply(employeeID, day, cur, patch)
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	s.mu.Lock()
	s.records[k] = merged
	s.mu.Unlock()

	return merged, nil
}

// Get implements attendance.RecordStore.
func (s *recordStore) Get(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[keyFor(employeeID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

// ListMonth implements attendance.RecordStore.
func (s *recordStore) ListMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]*attendance.AttendanceRecord, error) {
	days := timeutil.DaysInMonth(year, month)
	out := make([]*attendance.AttendanceRecord, days)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if rec, ok := s.records[keyFor(employeeID, date)]; ok {
			r := rec
			out[day-1] = &r
		}
	}
	return out, nil
}

// thresholdStore holds the single overtime threshold cell.
type thresholdStore struct {
	mu    sync.RWMutex
	hours int
}

func NewThresholdStore(defaultHours int) attendance.ThresholdStore {
	return &thresholdStore{hours: defaultHours}
}

func (s *thresholdStore) GetThreshold(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hours, nil
}

func (s *thresholdStore) SetThreshold(ctx context.Context, hours int) error {
	if hours < 0 || hours > 24 {
		return attendance.ErrInvalidThreshold
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hours = hours
	return nil
}
