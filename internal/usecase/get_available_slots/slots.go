package get_available_slots

import (
	"sort"
	"time"

	"github.com/ndelucca/lavadero-booking/internal/domain"
	"github.com/ndelucca/lavadero-booking/pkg/timeutil"
	"github.com/ndelucca/lavadero-booking/pkg/types"
)

// buildSlots walks every enabled margin of the day at a fixed step and
// keeps the candidates that survive all checks:
//   - the whole wash fits inside the margin (candidate + duration <= close)
//   - the candidate starts strictly after now + minimum lead time
//   - the candidate does not overlap any active appointment of the day
//   - the candidate does not overlap any enabled exception
//
// Overlap is half-open on both sides: a candidate ending exactly where an
// appointment starts (or starting exactly where one ends) is kept.
//
// Margins never overlap each other and are walked in opening-time order,
// so the output is chronological with no duplicates.
func buildSlots(
	date time.Time,
	day *domain.WorkingDay,
	durationMinutes int,
	stepMinutes int,
	appointments []*domain.Appointment,
	exceptions []*domain.Exception,
	now time.Time,
	minLeadTime time.Duration,
	loc *time.Location,
) ([]domain.Slot, error) {
	earliestStart := now.Add(minLeadTime)
	slots := make([]domain.Slot, 0)

	margins := day.EnabledMargins()
	// "HH:MM" sorts lexicographically in chronological order.
	sort.Slice(margins, func(i, j int) bool {
		return margins[i].OpensAt < margins[j].OpensAt
	})

	for _, margin := range margins {
		openMinutes, err := margin.OpensAt.Minutes()
		if err != nil {
			return nil, err
		}
		closeMinutes, err := margin.ClosesAt.Minutes()
		if err != nil {
			return nil, err
		}

		for candidate := openMinutes; candidate+durationMinutes <= closeMinutes; candidate += stepMinutes {
			start := timeutil.AtCivilTime(date, candidate, loc)
			end := start.Add(time.Duration(durationMinutes) * time.Minute)

			if !start.After(earliestStart) {
				continue
			}
			if overlapsAppointment(start, end, appointments) {
				continue
			}
			if overlapsException(start, end, exceptions) {
				continue
			}

			startTime, err := types.NewTimeStringFromMinutes(candidate)
			if err != nil {
				return nil, err
			}
			slots = append(slots, domain.Slot{
				StartTime:       startTime,
				StartInstant:    start,
				DurationMinutes: durationMinutes,
			})
		}
	}

	return slots, nil
}

// overlapsAppointment reports whether [start, end) intersects any active
// appointment's occupied interval, with strict inequalities so touching
// endpoints do not collide.
func overlapsAppointment(start, end time.Time, appointments []*domain.Appointment) bool {
	for _, appt := range appointments {
		if !appt.IsActive() {
			continue
		}
		if appt.ReservedAt.Before(end) && appt.EndsAt().After(start) {
			return true
		}
	}
	return false
}

// overlapsException reports whether [start, end) intersects any enabled
// exception span.
func overlapsException(start, end time.Time, exceptions []*domain.Exception) bool {
	for _, exc := range exceptions {
		if !exc.Enabled {
			continue
		}
		if exc.Blocks(start, end) {
			return true
		}
	}
	return false
}
