package menstruation

import (
	"context"
	"errors"
	"time"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/pkg/cycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MenstruationService interface {
		StartPeriod(ctx context.Context, profileID string, req domain.StartPeriodRequest) (domain.PeriodResponse, error)
		EndCurrentPeriod(ctx context.Context, profileID string) (domain.PeriodResponse, error)
		UpdatePeriod(ctx context.Context, profileID string, periodID string, req domain.UpdatePeriodRequest) (domain.PeriodResponse, error)
		DeletePeriod(ctx context.Context, profileID string, periodID string) error
		GetPeriods(ctx context.Context, profileID string) ([]domain.PeriodResponse, error)
		AddSymptom(ctx context.Context, profileID string, periodID string, req domain.AddSymptomRequest) (domain.SymptomResponse, error)
		DeleteSymptom(ctx context.Context, profileID string, symptomID string) error
		GetSymptoms(ctx context.Context, profileID string, periodID string) ([]domain.SymptomResponse, error)
		GetSymptomSummary(ctx context.Context, profileID string) ([]domain.SymptomSummaryResponse, error)
		GetCycleStats(ctx context.Context, profileID string) (domain.CycleStatsResponse, error)
		GetCalendar(ctx context.Context, profileID string, from, to time.Time) (domain.CycleCalendarResponse, error)
	}

	menstruationService struct {
		menstruationRepository MenstruationRepository
	}
)

func NewMenstruationService(menstruationRepository MenstruationRepository) MenstruationService {
	return &menstruationService{menstruationRepository: menstruationRepository}
}

func toPeriodResponse(period entities.MenstruationPeriod) domain.PeriodResponse {
	return domain.PeriodResponse{
		ID:        period.ID.String(),
		StartDate: period.StartDate,
		EndDate:   period.EndDate,
		FlowLevel: period.FlowLevel,
		Title:     period.Title,
		Notes:     period.Notes,
	}
}

func toSymptomResponse(symptom entities.MenstruationSymptom) domain.SymptomResponse {
	return domain.SymptomResponse{
		ID:          symptom.ID.String(),
		PeriodID:    symptom.PeriodID.String(),
		SymptomType: symptom.SymptomType,
		Intensity:   symptom.Intensity,
		Notes:       symptom.Notes,
		OccurredAt:  symptom.OccurredAt,
	}
}

func toCyclePeriods(periods []entities.MenstruationPeriod) []cycle.Period {
	res := make([]cycle.Period, 0, len(periods))
	for _, p := range periods {
		res = append(res, cycle.Period{Start: p.StartDate, End: p.EndDate})
	}
	return res
}

// StartPeriod refuses to open a second period while one is still running.
func (s *menstruationService) StartPeriod(ctx context.Context, profileID string, req domain.StartPeriodRequest) (domain.PeriodResponse, error) {
	if _, err := s.menstruationRepository.GetOpenPeriod(ctx, profileID); err == nil {
		return domain.PeriodResponse{}, domain.ErrPeriodAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.PeriodResponse{}, err
	}

	profileUUID, err := uuid.Parse(profileID)
	if err != nil {
		return domain.PeriodResponse{}, domain.ErrParseUUID
	}

	period := &entities.MenstruationPeriod{
		ID:        uuid.New(),
		ProfileID: profileUUID,
		StartDate: time.Now(),
		FlowLevel: req.FlowLevel,
		Title:     req.Title,
		Notes:     req.Notes,
	}
	if err := s.menstruationRepository.CreatePeriod(ctx, period); err != nil {
		return domain.PeriodResponse{}, err
	}
	return toPeriodResponse(*period), nil
}

func (s *menstruationService) EndCurrentPeriod(ctx context.Context, profileID string) (domain.PeriodResponse, error) {
	period, err := s.menstruationRepository.GetOpenPeriod(ctx, profileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PeriodResponse{}, domain.ErrNoOpenPeriod
		}
		return domain.PeriodResponse{}, err
	}

	now := time.Now()
	period.EndDate = &now
	if err := s.menstruationRepository.UpdatePeriod(ctx, period); err != nil {
		return domain.PeriodResponse{}, err
	}
	return toPeriodResponse(*period), nil
}

func (s *menstruationService) UpdatePeriod(ctx context.Context, profileID string, periodID string, req domain.UpdatePeriodRequest) (domain.PeriodResponse, error) {
	period, err := s.menstruationRepository.GetPeriodByID(ctx, profileID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PeriodResponse{}, domain.ErrPeriodNotFound
		}
		return domain.PeriodResponse{}, err
	}

	if req.FlowLevel != nil {
		period.FlowLevel = req.FlowLevel
	}
	if req.Title != nil {
		period.Title = *req.Title
	}
	if req.Notes != nil {
		period.Notes = *req.Notes
	}

	if err := s.menstruationRepository.UpdatePeriod(ctx, period); err != nil {
		return domain.PeriodResponse{}, err
	}
	return toPeriodResponse(*period), nil
}

func (s *menstruationService) DeletePeriod(ctx context.Context, profileID string, periodID string) error {
	if _, err := s.menstruationRepository.GetPeriodByID(ctx, profileID, periodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPeriodNotFound
		}
		return err
	}
	return s.menstruationRepository.DeletePeriod(ctx, profileID, periodID)
}

func (s *menstruationService) GetPeriods(ctx context.Context, profileID string) ([]domain.PeriodResponse, error) {
	periods, err := s.menstruationRepository.GetPeriods(ctx, profileID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		res = append(res, toPeriodResponse(p))
	}
	return res, nil
}

func (s *menstruationService) AddSymptom(ctx context.Context, profileID string, periodID string, req domain.AddSymptomRequest) (domain.SymptomResponse, error) {
	period, err := s.menstruationRepository.GetPeriodByID(ctx, profileID, periodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SymptomResponse{}, domain.ErrPeriodNotFound
		}
		return domain.SymptomResponse{}, err
	}

	symptom := &entities.MenstruationSymptom{
		ID:          uuid.New(),
		PeriodID:    period.ID,
		ProfileID:   period.ProfileID,
		SymptomType: req.SymptomType,
		Intensity:   req.Intensity,
		Notes:       req.Notes,
		OccurredAt:  time.Now(),
	}
	if err := s.menstruationRepository.CreateSymptom(ctx, symptom); err != nil {
		return domain.SymptomResponse{}, err
	}
	return toSymptomResponse(*symptom), nil
}

func (s *menstruationService) DeleteSymptom(ctx context.Context, profileID string, symptomID string) error {
	return s.menstruationRepository.DeleteSymptom(ctx, profileID, symptomID)
}

func (s *menstruationService) GetSymptoms(ctx context.Context, profileID string, periodID string) ([]domain.SymptomResponse, error) {
	symptoms, err := s.menstruationRepository.GetSymptomsByPeriod(ctx, profileID, periodID)
	if err != nil {
		return nil, err
	}

	res := make([]domain.SymptomResponse, 0, len(symptoms))
	for _, symptom := range symptoms {
		res = append(res, toSymptomResponse(symptom))
	}
	return res, nil
}

func (s *menstruationService) GetSymptomSummary(ctx context.Context, profileID string) ([]domain.SymptomSummaryResponse, error) {
	symptoms, err := s.menstruationRepository.GetSymptoms(ctx, profileID)
	if err != nil {
		return nil, err
	}

	type agg struct {
		count        int
		intensitySum int
		intensityN   int
	}
	byType := make(map[string]*agg)
	var order []string
	for _, symptom := range symptoms {
		a, ok := byType[symptom.SymptomType]
		if !ok {
			a = &agg{}
			byType[symptom.SymptomType] = a
			order = append(order, symptom.SymptomType)
		}
		a.count++
		if symptom.Intensity != nil {
			a.intensitySum += *symptom.Intensity
			a.intensityN++
		}
	}

	res := make([]domain.SymptomSummaryResponse, 0, len(order))
	for _, symptomType := range order {
		a := byType[symptomType]
		summary := domain.SymptomSummaryResponse{
			SymptomType: symptomType,
			Occurrences: a.count,
		}
		if a.intensityN > 0 {
			avg := float64(a.intensitySum) / float64(a.intensityN)
			summary.AvgIntensity = &avg
		}
		res = append(res, summary)
	}
	return res, nil
}

func (s *menstruationService) GetCycleStats(ctx context.Context, profileID string) (domain.CycleStatsResponse, error) {
	periods, err := s.menstruationRepository.GetPeriods(ctx, profileID)
	if err != nil {
		return domain.CycleStatsResponse{}, err
	}

	res := domain.CycleStatsResponse{CyclesCount: len(periods)}
	if len(periods) == 0 {
		return res, nil
	}

	last := periods[len(periods)-1]
	res.LastStart = &last.StartDate
	res.LastEnd = last.EndDate

	cyclePeriods := toCyclePeriods(periods)
	if avgCycle, ok := cycle.AverageCycleLength(cyclePeriods); ok {
		res.AvgCycleLength = &avgCycle
		nextStart := cycle.PredictNextStart(last.StartDate, avgCycle)
		ovulation := cycle.PredictOvulation(nextStart)
		res.PredictedNextStart = &nextStart
		res.PredictedOvulationDay = &ovulation
	}
	if avgPeriod, ok := cycle.AveragePeriodLength(cyclePeriods); ok {
		res.AvgPeriodLength = &avgPeriod
	}
	return res, nil
}

func (s *menstruationService) GetCalendar(ctx context.Context, profileID string, from, to time.Time) (domain.CycleCalendarResponse, error) {
	periods, err := s.menstruationRepository.GetPeriods(ctx, profileID)
	if err != nil {
		return domain.CycleCalendarResponse{}, err
	}

	days := cycle.BuildCalendar(toCyclePeriods(periods), time.Now(), from, to)
	return domain.CycleCalendarResponse{
		From: from,
		To:   to,
		Days: cycle.MergeDays(days),
	}, nil
}
