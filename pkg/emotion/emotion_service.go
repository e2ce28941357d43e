package emotion

import (
	"context"
	"errors"
	"strings"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/bucket"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	EmotionService interface {
		AddEntry(ctx context.Context, coupleID string, userID string, req domain.AddEmotionRequest) (domain.EmotionResponse, error)
		GetEntries(ctx context.Context, coupleID string) ([]domain.EmotionResponse, error)
		DeleteEntry(ctx context.Context, coupleID string, entryID string) error
		GetStats(ctx context.Context, coupleID string) (domain.EmotionStatsResponse, error)
		GetSeries(ctx context.Context, coupleID string, days int, granularity string) ([]domain.EmotionSeriesPoint, error)
	}

	emotionService struct {
		emotionRepository EmotionRepository
	}
)

func NewEmotionService(emotionRepository EmotionRepository) EmotionService {
	return &emotionService{emotionRepository: emotionRepository}
}

func joinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}

func toEmotionResponse(entry entities.EmotionEntry) domain.EmotionResponse {
	res := domain.EmotionResponse{
		ID:         entry.ID.String(),
		Mood:       entry.Mood,
		Emotion:    entry.Emotion,
		Tags:       splitTags(entry.Tags),
		Note:       entry.Note,
		OccurredAt: entry.OccurredAt,
	}
	if entry.CreatedBy != nil {
		res.CreatedBy = entry.CreatedBy.String()
	}
	return res
}

func (s *emotionService) AddEntry(ctx context.Context, coupleID string, userID string, req domain.AddEmotionRequest) (domain.EmotionResponse, error) {
	coupleUUID, err := uuid.Parse(coupleID)
	if err != nil {
		return domain.EmotionResponse{}, domain.ErrParseUUID
	}
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.EmotionResponse{}, domain.ErrParseUUID
	}

	occurredAt := time.Now()
	if req.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, req.OccurredAt)
		if err != nil {
			occurredAt, err = time.Parse("2006-01-02", req.OccurredAt)
			if err != nil {
				return domain.EmotionResponse{}, err
			}
		}
	}

	entry := &entities.EmotionEntry{
		ID:         uuid.New(),
		CoupleID:   coupleUUID,
		CreatedBy:  &userUUID,
		Mood:       req.Mood,
		Emotion:    req.Emotion,
		Tags:       joinTags(req.Tags),
		Note:       req.Note,
		OccurredAt: occurredAt,
	}
	if err := s.emotionRepository.CreateEntry(ctx, entry); err != nil {
		return domain.EmotionResponse{}, err
	}
	return toEmotionResponse(*entry), nil
}

func (s *emotionService) GetEntries(ctx context.Context, coupleID string) ([]domain.EmotionResponse, error) {
	entries, err := s.emotionRepository.GetEntries(ctx, coupleID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.EmotionResponse, 0, len(entries))
	for _, entry := range entries {
		res = append(res, toEmotionResponse(entry))
	}
	return res, nil
}

func (s *emotionService) DeleteEntry(ctx context.Context, coupleID string, entryID string) error {
	if _, err := s.emotionRepository.GetEntryByID(ctx, coupleID, entryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrEmotionNotFound
		}
		return err
	}
	return s.emotionRepository.DeleteEntry(ctx, coupleID, entryID)
}

func (s *emotionService) GetStats(ctx context.Context, coupleID string) (domain.EmotionStatsResponse, error) {
	entries, err := s.emotionRepository.GetEntries(ctx, coupleID)
	if err != nil {
		return domain.EmotionStatsResponse{}, err
	}

	res := domain.EmotionStatsResponse{
		Total:      len(entries),
		MoodCounts: make(map[int]int),
	}
	if len(entries) == 0 {
		return res, nil
	}

	sum := 0
	first, last := entries[0].OccurredAt, entries[0].OccurredAt
	for _, entry := range entries {
		sum += entry.Mood
		res.MoodCounts[entry.Mood]++
		if entry.OccurredAt.Before(first) {
			first = entry.OccurredAt
		}
		if entry.OccurredAt.After(last) {
			last = entry.OccurredAt
		}
	}

	avg := float64(sum) / float64(len(entries))
	res.AvgMood = &avg
	res.FirstAt = &first
	res.LastAt = &last
	return res, nil
}

// GetSeries averages moods per bucket over the trailing window, with empty
// buckets present so charts keep a continuous axis.
func (s *emotionService) GetSeries(ctx context.Context, coupleID string, days int, granularity string) ([]domain.EmotionSeriesPoint, error) {
	if days <= 0 {
		days = 30
	}
	g := bucket.ParseGranularity(granularity)

	today := time.Now()
	from := bucket.StartOfDay(today).AddDate(0, 0, -(days - 1))

	entries, err := s.emotionRepository.GetEntriesSince(ctx, coupleID, from)
	if err != nil {
		return nil, err
	}

	type tally struct {
		sum   int
		count int
	}
	tallies := make(map[string]*tally)
	for _, entry := range entries {
		key := bucket.Key(entry.OccurredAt, g)
		t, ok := tallies[key]
		if !ok {
			t = &tally{}
			tallies[key] = t
		}
		t.sum += entry.Mood
		t.count++
	}

	starts := bucket.Range(from, today, g)
	points := make([]domain.EmotionSeriesPoint, 0, len(starts))
	for _, start := range starts {
		key := bucket.Key(start, g)
		point := domain.EmotionSeriesPoint{
			Key:   key,
			Label: bucket.Label(start, g),
		}
		if t := tallies[key]; t != nil && t.count > 0 {
			avg := float64(t.sum) / float64(t.count)
			point.AvgMood = &avg
			point.Count = t.count
		}
		points = append(points, point)
	}
	return points, nil
}
