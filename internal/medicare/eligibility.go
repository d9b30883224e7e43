package medicare

import (
	"errors"
	"fmt"
	"time"

	"github.com/medsupp/appformat/internal/normalize"
)

// The enrollment window around the policy effective date is asymmetric:
// 150 days before, 180 days after, both ends inclusive.
const (
	windowDaysBefore = 150
	windowDaysAfter  = 180
)

// ErrNoT65Date is returned when the 65th birthday does not exist on the
// calendar: a Feb 29 birth whose 65th year is not a leap year.
var ErrNoT65Date = errors.New("turning-65 date does not exist")

// Facts are the Medicare enrollment facts derived for one application.
type Facts struct {
	T65Date      time.Time
	T65SixMonths bool
	// PartBSixMonths is nil when no Part B date was supplied.
	PartBSixMonths   *bool
	EffectiveAfter65 bool
}

// CalculateDates derives the turning-65 date and enrollment-window flags.
// birthDate and effectiveDate are required; partBDate may be empty. partADate
// is accepted for symmetry with the intake schema and does not affect the result.
func CalculateDates(birthDate, effectiveDate, partADate, partBDate string) (Facts, error) {
	birth, err := normalize.ParseDay(birthDate)
	if err != nil {
		return Facts{}, fmt.Errorf("birth date: %w", err)
	}
	effective, err := normalize.ParseDay(effectiveDate)
	if err != nil {
		return Facts{}, fmt.Errorf("effective date: %w", err)
	}

	t65 := time.Date(birth.Year()+65, birth.Month(), birth.Day(), 0, 0, 0, 0, time.UTC)
	if t65.Month() != birth.Month() || t65.Day() != birth.Day() {
		return Facts{}, fmt.Errorf("%w: born %s, no such day in %d", ErrNoT65Date, birthDate, birth.Year()+65)
	}
	lower := effective.AddDate(0, 0, -windowDaysBefore)
	upper := effective.AddDate(0, 0, windowDaysAfter)

	facts := Facts{
		T65Date:          t65,
		T65SixMonths:     within(t65, lower, upper),
		EffectiveAfter65: effective.After(t65),
	}

	if partBDate != "" {
		partB, err := normalize.ParseDay(partBDate)
		if err != nil {
			return Facts{}, fmt.Errorf("part b date: %w", err)
		}
		in := within(partB, lower, upper)
		facts.PartBSixMonths = &in
	}
	return facts, nil
}

func within(t, lower, upper time.Time) bool {
	return !t.Before(lower) && !t.After(upper)
}
