package menstruation

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

type fakeMenstruationRepository struct {
	periods  map[string]*entities.MenstruationPeriod
	symptoms map[string]*entities.MenstruationSymptom
}

func newFakeMenstruationRepository() *fakeMenstruationRepository {
	return &fakeMenstruationRepository{
		periods:  make(map[string]*entities.MenstruationPeriod),
		symptoms: make(map[string]*entities.MenstruationSymptom),
	}
}

func (f *fakeMenstruationRepository) CreatePeriod(_ context.Context, period *entities.MenstruationPeriod) error {
	copied := *period
	f.periods[period.ID.String()] = &copied
	return nil
}

func (f *fakeMenstruationRepository) GetPeriodByID(_ context.Context, profileID string, periodID string) (*entities.MenstruationPeriod, error) {
	period, ok := f.periods[periodID]
	if !ok || period.ProfileID.String() != profileID {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *period
	return &copied, nil
}

func (f *fakeMenstruationRepository) GetOpenPeriod(_ context.Context, profileID string) (*entities.MenstruationPeriod, error) {
	for _, period := range f.periods {
		if period.ProfileID.String() == profileID && period.EndDate == nil {
			copied := *period
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMenstruationRepository) GetPeriods(_ context.Context, profileID string) ([]entities.MenstruationPeriod, error) {
	var periods []entities.MenstruationPeriod
	for _, period := range f.periods {
		if period.ProfileID.String() == profileID {
			periods = append(periods, *period)
		}
	}
	for i := 0; i < len(periods); i++ {
		for j := i + 1; j < len(periods); j++ {
			if periods[j].StartDate.Before(periods[i].StartDate) {
				periods[i], periods[j] = periods[j], periods[i]
			}
		}
	}
	return periods, nil
}

func (f *fakeMenstruationRepository) UpdatePeriod(_ context.Context, period *entities.MenstruationPeriod) error {
	copied := *period
	f.periods[period.ID.String()] = &copied
	return nil
}

func (f *fakeMenstruationRepository) DeletePeriod(_ context.Context, profileID string, periodID string) error {
	delete(f.periods, periodID)
	return nil
}

func (f *fakeMenstruationRepository) CreateSymptom(_ context.Context, symptom *entities.MenstruationSymptom) error {
	copied := *symptom
	f.symptoms[symptom.ID.String()] = &copied
	return nil
}

func (f *fakeMenstruationRepository) GetSymptomsByPeriod(_ context.Context, profileID string, periodID string) ([]entities.MenstruationSymptom, error) {
	var symptoms []entities.MenstruationSymptom
	for _, symptom := range f.symptoms {
		if symptom.ProfileID.String() == profileID && symptom.PeriodID.String() == periodID {
			symptoms = append(symptoms, *symptom)
		}
	}
	return symptoms, nil
}

func (f *fakeMenstruationRepository) GetSymptoms(_ context.Context, profileID string) ([]entities.MenstruationSymptom, error) {
	var symptoms []entities.MenstruationSymptom
	for _, symptom := range f.symptoms {
		if symptom.ProfileID.String() == profileID {
			symptoms = append(symptoms, *symptom)
		}
	}
	return symptoms, nil
}

func (f *fakeMenstruationRepository) DeleteSymptom(_ context.Context, profileID string, symptomID string) error {
	delete(f.symptoms, symptomID)
	return nil
}

func seedPeriod(repo *fakeMenstruationRepository, profileID uuid.UUID, start time.Time, days int) *entities.MenstruationPeriod {
	period := &entities.MenstruationPeriod{
		ID:        uuid.New(),
		ProfileID: profileID,
		StartDate: start,
	}
	if days > 0 {
		end := start.AddDate(0, 0, days-1)
		period.EndDate = &end
	}
	repo.periods[period.ID.String()] = period
	return period
}

func TestStartPeriodRejectsSecondOpenPeriod(t *testing.T) {
	repo := newFakeMenstruationRepository()
	service := NewMenstruationService(repo)
	profileID := uuid.New()

	_, err := service.StartPeriod(context.Background(), profileID.String(), domain.StartPeriodRequest{})
	require.NoError(t, err)

	_, err = service.StartPeriod(context.Background(), profileID.String(), domain.StartPeriodRequest{})
	assert.ErrorIs(t, err, domain.ErrPeriodAlreadyOpen)
}

func TestEndCurrentPeriodRequiresOpenPeriod(t *testing.T) {
	repo := newFakeMenstruationRepository()
	service := NewMenstruationService(repo)
	profileID := uuid.New()

	_, err := service.EndCurrentPeriod(context.Background(), profileID.String())
	assert.ErrorIs(t, err, domain.ErrNoOpenPeriod)

	_, err = service.StartPeriod(context.Background(), profileID.String(), domain.StartPeriodRequest{})
	require.NoError(t, err)

	res, err := service.EndCurrentPeriod(context.Background(), profileID.String())
	require.NoError(t, err)
	assert.NotNil(t, res.EndDate)

	// ending again fails, the period is closed now
	_, err = service.EndCurrentPeriod(context.Background(), profileID.String())
	assert.ErrorIs(t, err, domain.ErrNoOpenPeriod)
}

func TestGetCycleStatsPredictsFromRegularCycles(t *testing.T) {
	repo := newFakeMenstruationRepository()
	service := NewMenstruationService(repo)
	profileID := uuid.New()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seedPeriod(repo, profileID, base, 5)
	seedPeriod(repo, profileID, base.AddDate(0, 0, 28), 5)
	seedPeriod(repo, profileID, base.AddDate(0, 0, 56), 5)

	res, err := service.GetCycleStats(context.Background(), profileID.String())
	require.NoError(t, err)

	assert.Equal(t, 3, res.CyclesCount)
	require.NotNil(t, res.AvgCycleLength)
	assert.Equal(t, 28, *res.AvgCycleLength)
	require.NotNil(t, res.AvgPeriodLength)
	assert.Equal(t, 5, *res.AvgPeriodLength)
	require.NotNil(t, res.PredictedNextStart)
	assert.Equal(t, base.AddDate(0, 0, 84), *res.PredictedNextStart)
	require.NotNil(t, res.PredictedOvulationDay)
	assert.Equal(t, base.AddDate(0, 0, 70), *res.PredictedOvulationDay)
}

func TestGetCycleStatsWithSinglePeriod(t *testing.T) {
	repo := newFakeMenstruationRepository()
	service := NewMenstruationService(repo)
	profileID := uuid.New()

	seedPeriod(repo, profileID, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), 4)

	res, err := service.GetCycleStats(context.Background(), profileID.String())
	require.NoError(t, err)

	assert.Equal(t, 1, res.CyclesCount)
	assert.Nil(t, res.AvgCycleLength)
	assert.Nil(t, res.PredictedNextStart)
	require.NotNil(t, res.AvgPeriodLength)
	assert.Equal(t, 4, *res.AvgPeriodLength)
}

func TestSymptomSummaryAveragesIntensity(t *testing.T) {
	repo := newFakeMenstruationRepository()
	service := NewMenstruationService(repo)
	profileID := uuid.New()

	period := seedPeriod(repo, profileID, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), 0)

	two, four := 2, 4
	_, err := service.AddSymptom(context.Background(), profileID.String(), period.ID.String(), domain.AddSymptomRequest{
		SymptomType: "crampes", Intensity: &two,
	})
	require.NoError(t, err)
	_, err = service.AddSymptom(context.Background(), profileID.String(), period.ID.String(), domain.AddSymptomRequest{
		SymptomType: "crampes", Intensity: &four,
	})
	require.NoError(t, err)
	_, err = service.AddSymptom(context.Background(), profileID.String(), period.ID.String(), domain.AddSymptomRequest{
		SymptomType: "fatigue",
	})
	require.NoError(t, err)

	summary, err := service.GetSymptomSummary(context.Background(), profileID.String())
	require.NoError(t, err)
	require.Len(t, summary, 2)

	byType := make(map[string]domain.SymptomSummaryResponse)
	for _, s := range summary {
		byType[s.SymptomType] = s
	}

	assert.Equal(t, 2, byType["crampes"].Occurrences)
	require.NotNil(t, byType["crampes"].AvgIntensity)
	assert.InDelta(t, 3.0, *byType["crampes"].AvgIntensity, 0.001)

	assert.Equal(t, 1, byType["fatigue"].Occurrences)
	assert.Nil(t, byType["fatigue"].AvgIntensity)
}

func TestAddSymptomUnknownPeriod(t *testing.T) {
	repo := newFakeMenstruationRepository()
	service := NewMenstruationService(repo)

	_, err := service.AddSymptom(context.Background(), uuid.NewString(), uuid.NewString(), domain.AddSymptomRequest{
		SymptomType: "crampes",
	})
	assert.ErrorIs(t, err, domain.ErrPeriodNotFound)
}
