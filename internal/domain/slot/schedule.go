package slot

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04"

	// Offsets follow the browser convention (Date.getTimezoneOffset):
	// minutes to add to local time to get UTC, e.g. -540 for UTC+9.
	minOffsetMinutes = -14 * 60
	maxOffsetMinutes = 12 * 60

	MaxWindowDays = 62
)

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("time of day must be formatted as HH:MM")
	ErrInvalidOffset    = errors.New("timezone offset out of range")
	ErrInvalidWindow    = errors.New("window start must not be after its end")
	ErrWindowTooLarge   = errors.New("window exceeds the maximum number of days")
	ErrEmptyBatch       = errors.New("batch produces no slots")
)

// Window is a half-open [From, To) interval in UTC.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// DayWindow covers one local calendar day.
func DayWindow(date string, offsetMinutes int) (Window, error) {
	return DateWindow(date, date, offsetMinutes)
}

// DateWindow covers the local days from..to inclusive.
func DateWindow(from, to string, offsetMinutes int) (Window, error) {
	start, err := localMidnight(from, offsetMinutes)
	if err != nil {
		return Window{}, err
	}
	end, err := localMidnight(to, offsetMinutes)
	if err != nil {
		return Window{}, err
	}
	if end.Before(start) {
		return Window{}, ErrInvalidWindow
	}
	end = end.AddDate(0, 0, 1)
	if end.Sub(start) > MaxWindowDays*24*time.Hour {
		return Window{}, ErrWindowTooLarge
	}
	return Window{From: start, To: end}, nil
}

func localMidnight(date string, offsetMinutes int) (time.Time, error) {
	if offsetMinutes < minOffsetMinutes || offsetMinutes > maxOffsetMinutes {
		return time.Time{}, ErrInvalidOffset
	}
	d, err := time.ParseInLocation(dateLayout, date, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d.Add(time.Duration(offsetMinutes) * time.Minute), nil
}

type BatchSpec struct {
	StartDate     string
	EndDate       string
	TimesOfDay    []string
	ExcludeDates  []string
	Capacity      int
	OffsetMinutes int
}

// ExpandBatch builds one 30-minute slot per (day, time of day) pair, skipping
// excluded days. Results are sorted by start time and free of duplicates.
func ExpandBatch(ownerID uuid.UUID, batch BatchSpec, now time.Time) ([]*Slot, error) {
	window, err := DateWindow(batch.StartDate, batch.EndDate, batch.OffsetMinutes)
	if err != nil {
		return nil, err
	}
	if err := ValidateCapacity(batch.Capacity); err != nil {
		return nil, err
	}

	offsets := make([]time.Duration, 0, len(batch.TimesOfDay))
	seenTimes := make(map[time.Duration]struct{}, len(batch.TimesOfDay))
	for _, tod := range batch.TimesOfDay {
		t, perr := time.Parse(timeOfDayLayout, tod)
		if perr != nil {
			return nil, ErrInvalidTimeOfDay
		}
		d := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
		if _, dup := seenTimes[d]; dup {
			continue
		}
		seenTimes[d] = struct{}{}
		offsets = append(offsets, d)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	excluded := make(map[string]struct{}, len(batch.ExcludeDates))
	for _, d := range batch.ExcludeDates {
		if _, perr := time.Parse(dateLayout, d); perr != nil {
			return nil, ErrInvalidDate
		}
		excluded[d] = struct{}{}
	}

	var slots []*Slot
	for day := window.From; day.Before(window.To); day = day.AddDate(0, 0, 1) {
		localDate := day.Add(-time.Duration(batch.OffsetMinutes) * time.Minute).Format(dateLayout)
		if _, skip := excluded[localDate]; skip {
			continue
		}
		for _, off := range offsets {
			start := day.Add(off)
			s, serr := NewSlot(ownerID, start, start.Add(Duration), batch.Capacity, now)
			if serr != nil {
				return nil, serr
			}
			slots = append(slots, s)
		}
	}
	if len(slots) == 0 {
		return nil, ErrEmptyBatch
	}
	return slots, nil
}
