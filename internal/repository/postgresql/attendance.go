package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/database"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/timeutil"
	"github.com/jackc/pgx/v5"
)

type recordStore struct {
	db *database.DB
}

// NewRecordStore creates a PostgreSQL-backed attendance record store.
func NewRecordStore(db *database.DB) attendance.RecordStore {
	return &recordStore{db: db}
}

// Upsert implements attendance.RecordStore.
//
// The read-merge-write runs inside a transaction with the row locked, so
// concurrent writers to the same employee/day are serialized by the database.
func (r *recordStore) Upsert(ctx context.Context, employeeID string, date time.Time, patch attendance.RecordPatch) (attendance.AttendanceRecord, error) {
	var merged attendance.AttendanceRecord

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			SELECT employee_id, date, status, check_in, check_out
			FROM attendance_records
			WHERE employee_id = $1 AND date = $2
			FOR UPDATE
		`

		var existing *attendance.AttendanceRecord
		var rec attendance.AttendanceRecord
		err := tx.QueryRow(ctx, query, employeeID, date).Scan(
			&rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut,
		)
		switch {
		case err == nil:
			existing = &rec
		case errors.Is(err, pgx.ErrNoRows):
			existing = nil
		default:
			return fmt.Errorf("failed to lock attendance record: %w", err)
		}

		merged, err = attendance.Apply(employeeID, date, existing, patch)
		if err != nil {
			return err
		}

		upsert := `
			INSERT INTO attendance_records (employee_id, date, status, check_in, check_out)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (employee_id, date)
			DO UPDATE SET status = EXCLUDED.status,
			              check_in = EXCLUDED.check_in,
			              check_out = EXCLUDED.check_out,
			              updated_at = NOW()
		`
		if _, err := tx.Exec(ctx, upsert,
			merged.EmployeeID, merged.Date, merged.Status, merged.CheckIn, merged.CheckOut,
		); err != nil {
			return fmt.Errorf("failed to upsert attendance record: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.AttendanceRecord{}, err
	}

	return merged, nil
}

// Get implements attendance.RecordStore.
func (r *recordStore) Get(ctx context.Context, employeeID string, date time.Time) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, date, status, check_in, check_out
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
	`

	var rec attendance.AttendanceRecord
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return &rec, nil
}

// ListMonth implements attendance.RecordStore.
func (r *recordStore) ListMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	query := `
		SELECT employee_id, date, status, check_in, check_out
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	days := make([]*attendance.AttendanceRecord, timeutil.DaysInMonth(year, month))
	for rows.Next() {
		var rec attendance.AttendanceRecord
		if err := rows.Scan(&rec.EmployeeID, &rec.Date, &rec.Status, &rec.CheckIn, &rec.CheckOut); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		days[rec.Date.Day()-1] = &rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance records: %w", err)
	}

	return days, nil
}

type thresholdStore struct {
	db           *database.DB
	defaultHours int
}

// NewThresholdStore creates a PostgreSQL-backed overtime threshold store.
// defaultHours is returned until a value has been stored.
func NewThresholdStore(db *database.DB, defaultHours int) attendance.ThresholdStore {
	return &thresholdStore{db: db, defaultHours: defaultHours}
}

// GetThreshold implements attendance.ThresholdStore.
func (s *thresholdStore) GetThreshold(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, s.db)

	var hours int
	err := q.QueryRow(ctx, `SELECT value FROM settings WHERE key = 'overtime_threshold'`).Scan(&hours)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return s.defaultHours, nil
		}
		return 0, fmt.Errorf("failed to get overtime threshold: %w", err)
	}

	return hours, nil
}

// SetThreshold implements attendance.ThresholdStore.
func (s *thresholdStore) SetThreshold(ctx context.Context, hours int) error {
	if hours < 0 || hours > 24 {
		return attendance.ErrInvalidThreshold
	}

	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO settings (key, value)
		VALUES ('overtime_threshold', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, hours); err != nil {
		return fmt.Errorf("failed to set overtime threshold: %w", err)
	}

	return nil
}
