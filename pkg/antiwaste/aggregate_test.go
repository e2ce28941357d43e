package antiwaste

import (
	"testing"
	"time"

	"Couple-Backend/entities"
	"Couple-Backend/pkg/bucket"

	"github.com/stretchr/testify/assert"
)

func ts(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestSummarizeEventsScenario(t *testing.T) {
	events := []entities.FoodEvent{
		{EventType: EventConsumed, Quantity: 2, ExpirationDate: ts(2024, 1, 10, 0), EventAt: ts(2024, 1, 9, 12)},
		{EventType: EventDiscarded, Quantity: 1, ExpirationDate: ts(2024, 1, 5, 0), EventAt: ts(2024, 1, 6, 9)},
	}
	s := SummarizeEvents(events)
	assert.Equal(t, 2, s.AvoidedWaste)
	assert.Equal(t, 1, s.Discarded)
	assert.Equal(t, 0, s.ConsumedAfterExpiry)
}

func TestSummarizeConsumedOnExpiryDayIsAvoided(t *testing.T) {
	events := []entities.FoodEvent{
		// Late in the evening of the expiration day still counts.
		{EventType: EventConsumed, Quantity: 1, ExpirationDate: ts(2024, 1, 10, 0), EventAt: ts(2024, 1, 10, 23)},
		// The next morning does not.
		{EventType: EventConsumed, Quantity: 1, ExpirationDate: ts(2024, 1, 10, 0), EventAt: ts(2024, 1, 11, 8)},
	}
	s := SummarizeEvents(events)
	assert.Equal(t, 1, s.AvoidedWaste)
	assert.Equal(t, 1, s.ConsumedAfterExpiry)
}

func TestSummarizeZeroQuantityCountsAsOne(t *testing.T) {
	events := []entities.FoodEvent{
		{EventType: EventDiscarded, Quantity: 0, EventAt: ts(2024, 1, 6, 9)},
	}
	assert.Equal(t, 1, SummarizeEvents(events).Discarded)
}

func TestAggregateSeriesGapFilling(t *testing.T) {
	from := ts(2024, 1, 1, 0)
	today := ts(2024, 1, 14, 0)

	points := AggregateSeries(nil, from, today, bucket.Day)
	assert.Len(t, points, 14)
	for _, p := range points {
		assert.Zero(t, p.Total)
	}

	// 01/01/2024 is a Monday; 14 days span exactly the weeks of 01/01 and 08/01.
	weekly := AggregateSeries(nil, from, today, bucket.Week)
	assert.Len(t, weekly, 2)
	for i := 1; i < len(weekly); i++ {
		assert.Less(t, weekly[i-1].Key, weekly[i].Key)
	}
}

func TestAggregateSeriesBuckets(t *testing.T) {
	from := ts(2024, 1, 1, 0)
	today := ts(2024, 1, 10, 0)
	events := []entities.FoodEvent{
		{EventType: EventConsumed, Quantity: 2, ExpirationDate: ts(2024, 1, 10, 0), EventAt: ts(2024, 1, 9, 12)},
		{EventType: EventDiscarded, Quantity: 1, ExpirationDate: ts(2024, 1, 5, 0), EventAt: ts(2024, 1, 6, 9)},
		// Consumed after expiry: excluded from the chart entirely.
		{EventType: EventConsumed, Quantity: 3, ExpirationDate: ts(2024, 1, 2, 0), EventAt: ts(2024, 1, 4, 9)},
	}
	points := AggregateSeries(events, from, today, bucket.Day)
	assert.Len(t, points, 10)

	byKey := map[string]SeriesPoint{}
	for _, p := range points {
		byKey[p.Key] = p
	}
	assert.Equal(t, 2, byKey["2024-01-09"].Avoided)
	assert.Equal(t, 1, byKey["2024-01-06"].Discarded)
	assert.Equal(t, 0, byKey["2024-01-04"].Total)
}

func TestAggregationConservation(t *testing.T) {
	from := ts(2024, 1, 1, 0)
	today := ts(2024, 1, 31, 0)
	events := []entities.FoodEvent{
		{EventType: EventConsumed, Quantity: 2, ExpirationDate: ts(2024, 1, 10, 0), EventAt: ts(2024, 1, 9, 0)},
		{EventType: EventConsumed, Quantity: 4, ExpirationDate: ts(2024, 1, 10, 0), EventAt: ts(2024, 1, 12, 0)},
		{EventType: EventDiscarded, Quantity: 3, EventAt: ts(2024, 1, 20, 0)},
	}
	points := AggregateSeries(events, from, today, bucket.Day)
	s := SummarizeEvents(events)

	seriesAvoided, seriesDiscarded := 0, 0
	for _, p := range points {
		seriesAvoided += p.Avoided
		seriesDiscarded += p.Discarded
	}

	totalQty := 0
	for _, e := range events {
		totalQty += e.Quantity
	}
	assert.LessOrEqual(t, seriesAvoided+seriesDiscarded, totalQty)
	assert.Equal(t, s.AvoidedWaste, seriesAvoided)
	assert.Equal(t, s.Discarded, seriesDiscarded)
	assert.Equal(t, 9, s.AvoidedWaste+s.ConsumedAfterExpiry+s.Discarded)
}

func TestAggregateIdempotent(t *testing.T) {
	from := ts(2024, 1, 1, 0)
	today := ts(2024, 1, 7, 0)
	events := []entities.FoodEvent{
		{EventType: EventDiscarded, Quantity: 1, EventAt: ts(2024, 1, 3, 9)},
	}
	first := AggregateSeries(events, from, today, bucket.Day)
	second := AggregateSeries(events, from, today, bucket.Day)
	assert.Equal(t, first, second)
}
