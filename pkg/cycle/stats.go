package cycle

import (
	"math"
	"sort"
	"time"
)

// Computed cycle lengths outside (0, 100) days are treated as data-entry
// noise and excluded from every statistic.
const maxPlausibleCycleDays = 100

// OvulationOffsetDays is how many days before the predicted next start
// ovulation is assumed to fall.
const OvulationOffsetDays = 14

// FertileWindowRadiusDays extends the fertile window this many days on each
// side of ovulation.
const FertileWindowRadiusDays = 2

// Period is the client-visible shape of one menstruation record. End is nil
// while the cycle is still open. Callers guarantee at most one open period
// per profile; the estimator does not repair inconsistent data.
type Period struct {
	Start time.Time
	End   *time.Time
}

// Length is one observed cycle: the whole days between two consecutive
// period starts.
type Length struct {
	Start     time.Time
	NextStart time.Time
	Days      int
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func wholeDays(from, to time.Time) int {
	return int(math.Round(startOfDay(to).Sub(startOfDay(from)).Hours() / 24))
}

// Lengths derives observed cycle lengths from period history, sorted by start
// date ascending. Implausible lengths are dropped, not clamped.
func Lengths(periods []Period) []Length {
	sorted := make([]Period, len(periods))
	copy(sorted, periods)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var lengths []Length
	for i := 0; i+1 < len(sorted); i++ {
		days := wholeDays(sorted[i].Start, sorted[i+1].Start)
		if days <= 0 || days >= maxPlausibleCycleDays {
			continue
		}
		lengths = append(lengths, Length{
			Start:     sorted[i].Start,
			NextStart: sorted[i+1].Start,
			Days:      days,
		})
	}
	return lengths
}

// AverageCycleLength is the rounded mean of the valid observed lengths. The
// second return is false when fewer than two periods produced a valid length.
func AverageCycleLength(periods []Period) (int, bool) {
	lengths := Lengths(periods)
	if len(lengths) == 0 {
		return 0, false
	}
	sum := 0
	for _, l := range lengths {
		sum += l.Days
	}
	return int(math.Round(float64(sum) / float64(len(lengths)))), true
}

// AveragePeriodLength is the rounded mean duration of closed periods, in
// days, counting both the start and end day. Open periods are skipped.
func AveragePeriodLength(periods []Period) (int, bool) {
	sum, n := 0, 0
	for _, p := range periods {
		if p.End == nil {
			continue
		}
		days := wholeDays(p.Start, *p.End) + 1
		if days <= 0 || days >= maxPlausibleCycleDays {
			continue
		}
		sum += days
		n++
	}
	if n == 0 {
		return 0, false
	}
	return int(math.Round(float64(sum) / float64(n))), true
}

// PredictNextStart projects the next period start from the most recent start
// and the average cycle length.
func PredictNextStart(lastStart time.Time, avgCycleDays int) time.Time {
	return startOfDay(lastStart).AddDate(0, 0, avgCycleDays)
}

// PredictOvulation places ovulation a fixed offset before the predicted next
// start.
func PredictOvulation(nextStart time.Time) time.Time {
	return startOfDay(nextStart).AddDate(0, 0, -OvulationOffsetDays)
}
