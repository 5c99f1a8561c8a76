// Package calendar lays out a Sunday-first month grid and buckets events into it.
package calendar

import (
	"time"

	"github.com/SergeyKozhin/timeline-tracker/internal/model"
)

type YearMonth struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

func (ym YearMonth) Valid() bool {
	return ym.Month >= time.January && ym.Month <= time.December
}

func Of(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.February:
		if IsLeap(year) {
			return 29
		}
		return 28
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// FirstWeekdayOfMonth returns 0 for Sunday through 6 for Saturday.
func FirstWeekdayOfMonth(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Cell is one slot of the month grid. Leading placeholders have a zero Date.
type Cell struct {
	Date time.Time
}

func (c Cell) Empty() bool {
	return c.Date.IsZero()
}

// BuildMonthGrid returns FirstWeekdayOfMonth empty cells followed by one cell per
// day. Padding the tail to a full week is left to the caller.
func BuildMonthGrid(year int, month time.Month) []Cell {
	first := FirstWeekdayOfMonth(year, month)
	days := DaysInMonth(year, month)

	cells := make([]Cell, first, first+days)
	for d := 1; d <= days; d++ {
		cells = append(cells, Cell{Date: time.Date(year, month, d, 0, 0, 0, 0, time.UTC)})
	}

	return cells
}

func SameDay(a, b time.Time) bool {
	return model.Date(a).Equal(model.Date(b))
}

func EventsOnDate(events []*model.Event, date time.Time) []*model.Event {
	var res []*model.Event
	for _, e := range events {
		if SameDay(e.Deadline, date) {
			res = append(res, e)
		}
	}
	return res
}

func NavigateMonth(ym YearMonth, delta int) YearMonth {
	idx := ym.Year*12 + int(ym.Month-1) + delta
	year := idx / 12
	month := idx % 12
	if month < 0 {
		month += 12
		year--
	}
	return YearMonth{Year: year, Month: time.Month(month + 1)}
}

// DayBucket is a grid cell with the events whose deadline falls on it.
type DayBucket struct {
	Cell
	Events []*model.Event
}

// Project builds the grid for ym and distributes events over its days. Events
// outside the month are ignored; bucket order follows input order.
func Project(events []*model.Event, ym YearMonth) []DayBucket {
	grid := BuildMonthGrid(ym.Year, ym.Month)
	first := FirstWeekdayOfMonth(ym.Year, ym.Month)

	buckets := make([]DayBucket, len(grid))
	for i, c := range grid {
		buckets[i].Cell = c
	}

	for _, e := range events {
		y, m, d := e.Deadline.Date()
		if y != ym.Year || m != ym.Month {
			continue
		}
		idx := first + d - 1
		buckets[idx].Events = append(buckets[idx].Events, e)
	}

	return buckets
}
