package cycle

import (
	"sort"
	"time"
)

// Day classifications painted on the cycle calendar.
const (
	DayPeriod             = "period"
	DayPredictedPeriod    = "predicted_period"
	DayOvulation          = "ovulation"
	DayFertileWindowStart = "fertile_window_start"
	DayFertileWindow      = "fertile_window"
	DayFertileWindowEnd   = "fertile_window_end"
)

// Precedence ranks day classifications for rendering when several apply to
// the same date: the first matching entry decides the fill, and ovulation
// additionally gets the emphasized border.
var Precedence = []string{
	DayOvulation,
	DayFertileWindowStart,
	DayFertileWindowEnd,
	DayFertileWindow,
	DayPeriod,
	DayPredictedPeriod,
}

var dayLabels = map[string]string{
	DayPeriod:             "Règles",
	DayPredictedPeriod:    "Règles estimées",
	DayOvulation:          "Ovulation",
	DayFertileWindowStart: "Fenêtre fertile",
	DayFertileWindow:      "Fenêtre fertile",
	DayFertileWindowEnd:   "Fenêtre fertile",
}

// CalendarDay is one classified date in a calendar range.
type CalendarDay struct {
	Day   time.Time `json:"day"`
	Type  string    `json:"type"`
	Label string    `json:"label"`
}

// MergedDay is the per-date render decision after precedence resolution.
type MergedDay struct {
	Day       time.Time `json:"day"`
	Fill      string    `json:"fill"`      // winning classification
	Emphasize bool      `json:"emphasize"` // true when the date is an ovulation day
	Tags      []string  `json:"tags"`      // every classification on the date
}

func rank(dayType string) int {
	for i, t := range Precedence {
		if t == dayType {
			return i
		}
	}
	return len(Precedence)
}

// BuildCalendar classifies every relevant date in [from, to]: recorded period
// days (an open period runs through today), then the predicted next period,
// ovulation and the fertile window derived from the average cycle length.
// Prediction entries are omitted when no average is available.
func BuildCalendar(periods []Period, today, from, to time.Time) []CalendarDay {
	from = startOfDay(from)
	to = startOfDay(to)
	today = startOfDay(today)

	var days []CalendarDay
	emit := func(d time.Time, dayType string) {
		if d.Before(from) || d.After(to) {
			return
		}
		days = append(days, CalendarDay{Day: d, Type: dayType, Label: dayLabels[dayType]})
	}

	var lastStart time.Time
	for _, p := range periods {
		start := startOfDay(p.Start)
		if start.After(lastStart) {
			lastStart = start
		}
		end := today
		if p.End != nil {
			end = startOfDay(*p.End)
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			emit(d, DayPeriod)
		}
	}

	avgCycle, ok := AverageCycleLength(periods)
	if !ok || lastStart.IsZero() {
		return sortCalendar(days)
	}

	nextStart := PredictNextStart(lastStart, avgCycle)
	periodLen, ok := AveragePeriodLength(periods)
	if !ok {
		periodLen = 5
	}
	for i := 0; i < periodLen; i++ {
		emit(nextStart.AddDate(0, 0, i), DayPredictedPeriod)
	}

	ovulation := PredictOvulation(nextStart)
	emit(ovulation, DayOvulation)
	for i := -FertileWindowRadiusDays; i <= FertileWindowRadiusDays; i++ {
		d := ovulation.AddDate(0, 0, i)
		switch i {
		case -FertileWindowRadiusDays:
			emit(d, DayFertileWindowStart)
		case FertileWindowRadiusDays:
			emit(d, DayFertileWindowEnd)
		default:
			emit(d, DayFertileWindow)
		}
	}

	return sortCalendar(days)
}

func sortCalendar(days []CalendarDay) []CalendarDay {
	sort.SliceStable(days, func(i, j int) bool {
		if !days[i].Day.Equal(days[j].Day) {
			return days[i].Day.Before(days[j].Day)
		}
		return rank(days[i].Type) < rank(days[j].Type)
	})
	return days
}

// MergeDays collapses per-date classifications into one render decision per
// date using Precedence, rather than whichever tag happened to arrive first.
func MergeDays(days []CalendarDay) []MergedDay {
	byDay := make(map[time.Time][]string)
	var order []time.Time
	for _, d := range days {
		key := startOfDay(d.Day)
		if _, seen := byDay[key]; !seen {
			order = append(order, key)
		}
		byDay[key] = append(byDay[key], d.Type)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].Before(order[j]) })

	merged := make([]MergedDay, 0, len(order))
	for _, day := range order {
		tags := byDay[day]
		fill := tags[0]
		emphasize := false
		for _, tag := range tags {
			if rank(tag) < rank(fill) {
				fill = tag
			}
			if tag == DayOvulation {
				emphasize = true
			}
		}
		merged = append(merged, MergedDay{Day: day, Fill: fill, Emphasize: emphasize, Tags: tags})
	}
	return merged
}
