package antiwaste

import (
	"sort"
	"time"

	"Couple-Backend/entities"
	"Couple-Backend/pkg/bucket"
)

const (
	EventConsumed  = "consumed"
	EventDiscarded = "discarded"
)

// SeriesPoint is one chart bucket of the anti-waste history.
type SeriesPoint struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Avoided   int    `json:"avoided"`
	Discarded int    `json:"discarded"`
	Total     int    `json:"total"`
}

// Summary are the KPI totals over an event window. AvoidedWaste always
// equals ConsumedBeforeExpiry; it is kept as its own field because that is
// the number the app surfaces.
type Summary struct {
	ConsumedBeforeExpiry int `json:"consumed_before_expiry"`
	ConsumedAfterExpiry  int `json:"consumed_after_expiry"`
	Discarded            int `json:"discarded"`
	AvoidedWaste         int `json:"avoided_waste"`
}

func eventQuantity(e entities.FoodEvent) int {
	if e.Quantity <= 0 {
		return 1
	}
	return e.Quantity
}

// consumedBeforeExpiry is true when a consumption happened on or before the
// end of the expiration day. A zero expiration date counts as late, matching
// how unknown expirations are tallied upstream.
func consumedBeforeExpiry(e entities.FoodEvent) bool {
	if e.ExpirationDate.IsZero() {
		return false
	}
	endOfExpiryDay := bucket.StartOfDay(e.ExpirationDate).AddDate(0, 0, 1)
	return e.EventAt.Before(endOfExpiryDay)
}

// AggregateSeries buckets consumption and discard events between from and
// today. Discards count per bucket; consumptions count as avoided waste only
// when they beat the expiration day. Late consumptions appear in the summary
// KPIs, not in the series. Every bucket in the range is present even with
// zero counts, sorted ascending by key.
func AggregateSeries(events []entities.FoodEvent, from, today time.Time, granularity bucket.Granularity) []SeriesPoint {
	type tally struct {
		avoided   int
		discarded int
	}
	tallies := make(map[string]*tally)

	for _, e := range events {
		if e.EventAt.IsZero() {
			continue
		}
		key := bucket.Key(e.EventAt, granularity)
		t, ok := tallies[key]
		if !ok {
			t = &tally{}
			tallies[key] = t
		}
		switch e.EventType {
		case EventDiscarded:
			t.discarded += eventQuantity(e)
		case EventConsumed:
			if consumedBeforeExpiry(e) {
				t.avoided += eventQuantity(e)
			}
		}
	}

	starts := bucket.Range(from, today, granularity)
	points := make([]SeriesPoint, 0, len(starts))
	for _, start := range starts {
		key := bucket.Key(start, granularity)
		t := tallies[key]
		if t == nil {
			t = &tally{}
		}
		points = append(points, SeriesPoint{
			Key:       key,
			Label:     bucket.Label(start, granularity),
			Avoided:   t.avoided,
			Discarded: t.discarded,
			Total:     t.avoided + t.discarded,
		})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Key < points[j].Key })
	return points
}

// SummarizeEvents partitions event quantities into the three KPI buckets.
// Each event lands in exactly one bucket.
func SummarizeEvents(events []entities.FoodEvent) Summary {
	var s Summary
	for _, e := range events {
		q := eventQuantity(e)
		switch e.EventType {
		case EventDiscarded:
			s.Discarded += q
		case EventConsumed:
			if consumedBeforeExpiry(e) {
				s.ConsumedBeforeExpiry += q
			} else {
				s.ConsumedAfterExpiry += q
			}
		}
	}
	s.AvoidedWaste = s.ConsumedBeforeExpiry
	return s
}
