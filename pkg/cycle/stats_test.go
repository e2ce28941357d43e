package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func closed(start, end time.Time) Period {
	return Period{Start: start, End: &end}
}

func TestLengthsStartToStart(t *testing.T) {
	periods := []Period{
		closed(date(2024, 1, 1), date(2024, 1, 5)),
		closed(date(2024, 1, 29), date(2024, 2, 2)),
		closed(date(2024, 2, 27), date(2024, 3, 2)),
	}
	lengths := Lengths(periods)
	assert.Len(t, lengths, 2)
	assert.Equal(t, 28, lengths[0].Days)
	assert.Equal(t, 29, lengths[1].Days)
}

func TestLengthsUnsortedInput(t *testing.T) {
	periods := []Period{
		closed(date(2024, 2, 27), date(2024, 3, 2)),
		closed(date(2024, 1, 1), date(2024, 1, 5)),
		closed(date(2024, 1, 29), date(2024, 2, 2)),
	}
	lengths := Lengths(periods)
	assert.Len(t, lengths, 2)
	assert.Equal(t, 28, lengths[0].Days)
}

func TestLengthsFilterNoise(t *testing.T) {
	periods := []Period{
		{Start: date(2024, 1, 1)},
		{Start: date(2024, 5, 30)}, // 150 days, data-entry error
		{Start: date(2024, 6, 27)},
	}
	lengths := Lengths(periods)
	assert.Len(t, lengths, 1)
	assert.Equal(t, 28, lengths[0].Days)
}

func TestAverageCycleLength(t *testing.T) {
	periods := []Period{
		{Start: date(2024, 1, 1)},
		{Start: date(2024, 1, 29)},
		{Start: date(2024, 2, 27)},
	}
	avg, ok := AverageCycleLength(periods)
	assert.True(t, ok)
	assert.Equal(t, 29, avg) // mean of 28 and 29, rounded

	_, ok = AverageCycleLength(periods[:1])
	assert.False(t, ok)

	_, ok = AverageCycleLength(nil)
	assert.False(t, ok)
}

func TestAveragePeriodLengthSkipsOpen(t *testing.T) {
	periods := []Period{
		closed(date(2024, 1, 1), date(2024, 1, 5)),
		{Start: date(2024, 1, 29)}, // still open
	}
	avg, ok := AveragePeriodLength(periods)
	assert.True(t, ok)
	assert.Equal(t, 5, avg)
}

func TestPredictions(t *testing.T) {
	next := PredictNextStart(date(2024, 2, 27), 28)
	assert.Equal(t, date(2024, 3, 26), next)
	assert.Equal(t, date(2024, 3, 12), PredictOvulation(next))
}

func TestBuildCalendarClassifications(t *testing.T) {
	today := date(2024, 3, 1)
	periods := []Period{
		closed(date(2024, 1, 1), date(2024, 1, 5)),
		closed(date(2024, 1, 29), date(2024, 2, 2)),
		closed(date(2024, 2, 26), date(2024, 3, 1)),
	}
	days := BuildCalendar(periods, today, date(2024, 2, 1), date(2024, 3, 31))

	byType := map[string][]CalendarDay{}
	for _, d := range days {
		byType[d.Type] = append(byType[d.Type], d)
	}

	// avg cycle = 28, next start = 26/02 + 28d = 25/03, ovulation = 11/03.
	assert.NotEmpty(t, byType[DayPeriod])
	assert.Len(t, byType[DayOvulation], 1)
	assert.Equal(t, date(2024, 3, 11), byType[DayOvulation][0].Day)
	assert.Len(t, byType[DayPredictedPeriod], 5)
	assert.Equal(t, date(2024, 3, 25), byType[DayPredictedPeriod][0].Day)
	assert.Len(t, byType[DayFertileWindowStart], 1)
	assert.Len(t, byType[DayFertileWindowEnd], 1)
	assert.Len(t, byType[DayFertileWindow], 3)
}

func TestBuildCalendarNoPredictionWithoutHistory(t *testing.T) {
	today := date(2024, 3, 1)
	periods := []Period{{Start: date(2024, 2, 26)}}
	days := BuildCalendar(periods, today, date(2024, 2, 1), date(2024, 3, 31))
	for _, d := range days {
		assert.Equal(t, DayPeriod, d.Type)
	}
}

func TestMergeDaysPrecedence(t *testing.T) {
	day := date(2024, 3, 11)
	merged := MergeDays([]CalendarDay{
		{Day: day, Type: DayFertileWindow},
		{Day: day, Type: DayOvulation},
		{Day: day, Type: DayPredictedPeriod},
	})
	assert.Len(t, merged, 1)
	assert.Equal(t, DayOvulation, merged[0].Fill)
	assert.True(t, merged[0].Emphasize)
	assert.Len(t, merged[0].Tags, 3)

	edge := MergeDays([]CalendarDay{
		{Day: day, Type: DayPeriod},
		{Day: day, Type: DayFertileWindowStart},
	})
	assert.Equal(t, DayFertileWindowStart, edge[0].Fill)
	assert.False(t, edge[0].Emphasize)
}

func TestMergeDaysOrderIndependent(t *testing.T) {
	day := date(2024, 3, 11)
	a := MergeDays([]CalendarDay{{Day: day, Type: DayOvulation}, {Day: day, Type: DayFertileWindow}})
	b := MergeDays([]CalendarDay{{Day: day, Type: DayFertileWindow}, {Day: day, Type: DayOvulation}})
	assert.Equal(t, a[0].Fill, b[0].Fill)
	assert.Equal(t, a[0].Emphasize, b[0].Emphasize)
}
