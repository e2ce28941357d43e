package emotion

import (
	"context"
	"testing"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeEmotionRepository struct {
	entries map[string]*entities.EmotionEntry
}

func newFakeEmotionRepository() *fakeEmotionRepository {
	return &fakeEmotionRepository{entries: make(map[string]*entities.EmotionEntry)}
}

func (f *fakeEmotionRepository) CreateEntry(_ context.Context, entry *entities.EmotionEntry) error {
	copied := *entry
	f.entries[entry.ID.String()] = &copied
	return nil
}

func (f *fakeEmotionRepository) GetEntryByID(_ context.Context, coupleID string, entryID string) (*entities.EmotionEntry, error) {
	entry, ok := f.entries[entryID]
	if !ok || entry.CoupleID.String() != coupleID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *entry
	return &copied, nil
}

func (f *fakeEmotionRepository) GetEntries(_ context.Context, coupleID string) ([]entities.EmotionEntry, error) {
	var entries []entities.EmotionEntry
	for _, entry := range f.entries {
		if entry.CoupleID.String() == coupleID {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (f *fakeEmotionRepository) GetEntriesSince(_ context.Context, coupleID string, since time.Time) ([]entities.EmotionEntry, error) {
	var entries []entities.EmotionEntry
	for _, entry := range f.entries {
		if entry.CoupleID.String() == coupleID && !entry.OccurredAt.Before(since) {
			entries = append(entries, *entry)
		}
	}
	return entries, nil
}

func (f *fakeEmotionRepository) DeleteEntry(_ context.Context, coupleID string, entryID string) error {
	delete(f.entries, entryID)
	return nil
}

func TestAddEntryJoinsTags(t *testing.T) {
	repo := newFakeEmotionRepository()
	service := NewEmotionService(repo)
	coupleID := uuid.NewString()
	userID := uuid.NewString()

	res, err := service.AddEntry(context.Background(), coupleID, userID, domain.AddEmotionRequest{
		Mood: 4,
		Tags: []string{"travail", " famille ", ""},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"travail", "famille"}, res.Tags)
	assert.Equal(t, userID, res.CreatedBy)
}

func TestStatsAveragesMoods(t *testing.T) {
	repo := newFakeEmotionRepository()
	service := NewEmotionService(repo)
	coupleID := uuid.NewString()
	userID := uuid.NewString()

	for _, mood := range []int{2, 4, 3} {
		_, err := service.AddEntry(context.Background(), coupleID, userID, domain.AddEmotionRequest{Mood: mood})
		require.NoError(t, err)
	}

	stats, err := service.GetStats(context.Background(), coupleID)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Total)
	require.NotNil(t, stats.AvgMood)
	assert.InDelta(t, 3.0, *stats.AvgMood, 0.001)
	assert.Equal(t, 1, stats.MoodCounts[2])
	assert.Equal(t, 1, stats.MoodCounts[3])
	assert.Equal(t, 1, stats.MoodCounts[4])
}

func TestStatsEmpty(t *testing.T) {
	repo := newFakeEmotionRepository()
	service := NewEmotionService(repo)

	stats, err := service.GetStats(context.Background(), uuid.NewString())
	require.NoError(t, err)

	assert.Zero(t, stats.Total)
	assert.Nil(t, stats.AvgMood)
	assert.Nil(t, stats.FirstAt)
}

func TestSeriesGapFillsEmptyDays(t *testing.T) {
	repo := newFakeEmotionRepository()
	service := NewEmotionService(repo)
	coupleID := uuid.NewString()
	userID := uuid.NewString()

	_, err := service.AddEntry(context.Background(), coupleID, userID, domain.AddEmotionRequest{Mood: 5})
	require.NoError(t, err)

	points, err := service.GetSeries(context.Background(), coupleID, 7, "day")
	require.NoError(t, err)
	require.Len(t, points, 7)

	// only today carries data, the rest stay empty with a zero count
	last := points[len(points)-1]
	require.NotNil(t, last.AvgMood)
	assert.InDelta(t, 5.0, *last.AvgMood, 0.001)
	assert.Equal(t, 1, last.Count)

	for _, p := range points[:len(points)-1] {
		assert.Nil(t, p.AvgMood)
		assert.Zero(t, p.Count)
	}
}
