package attendance

import (
	"github.com/caffeinepub/attendance-backend-go/internal/domain/attendance"
	"github.com/caffeinepub/attendance-backend-go/internal/pkg/timeutil"
	"github.com/shopspring/decimal"
)

// DayHours is the derived hour breakdown for one calendar day. The identity
// Worked = Normal + Overtime holds exactly.
type DayHours struct {
	Worked   decimal.Decimal
	Normal   decimal.Decimal
	Overtime decimal.Decimal
}

// DailyHours derives worked, normal and overtime hours for one day record
// against the overtime threshold (whole hours per day).
//
// A nil record and the non-working statuses yield zeros. A working status
// with both timestamps derives worked hours from the interval; a working
// status without a complete timestamp pair falls back to the status itself,
// crediting the full threshold for fullwork and fullworkOvertime and nothing
// for partialWork. A check-out stored without a check-in, or an interval
// that is not strictly positive, is reported as an error so callers can
// decide how to treat the day.
func DailyHours(rec *attendance.AttendanceRecord, threshold int) (DayHours, error) {
	if rec == nil || !rec.Status.IsWorking() {
		return DayHours{}, nil
	}

	var worked decimal.Decimal
	switch {
	case rec.CheckIn != nil && rec.CheckOut != nil:
		var err error
		worked, err = timeutil.HoursBetween(*rec.CheckIn, *rec.CheckOut)
		if err != nil {
			return DayHours{}, err
		}
	case rec.CheckIn == nil && rec.CheckOut != nil:
		return DayHours{}, attendance.ErrNoCheckIn
	default:
		// No derivable interval; credit by status.
		switch rec.Status {
		case attendance.StatusFullwork, attendance.StatusFullworkOvertime:
			worked = decimal.NewFromInt(int64(threshold))
		case attendance.StatusPartialWork:
			worked = decimal.Zero
		}
	}

	overtime := worked.Sub(decimal.NewFromInt(int64(threshold)))
	if overtime.IsNegative() {
		overtime = decimal.Zero
	}

	return DayHours{
		Worked:   worked,
		Normal:   worked.Sub(overtime),
		Overtime: overtime,
	}, nil
}
