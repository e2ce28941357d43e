package domain

import (
	"errors"
	"time"

	"Couple-Backend/pkg/cycle"
)

var (
	MessageSuccessStartPeriod   = "period started successfully"
	MessageSuccessEndPeriod     = "period ended successfully"
	MessageSuccessUpdatePeriod  = "period updated successfully"
	MessageSuccessDeletePeriod  = "period deleted successfully"
	MessageSuccessGetPeriods    = "periods retrieved successfully"
	MessageSuccessAddSymptom    = "symptom added successfully"
	MessageSuccessDeleteSymptom = "symptom deleted successfully"
	MessageSuccessGetSymptoms   = "symptoms retrieved successfully"
	MessageSuccessGetCycleStats = "cycle statistics retrieved successfully"
	MessageSuccessGetCalendar   = "cycle calendar retrieved successfully"

	MessageFailedStartPeriod   = "failed to start period"
	MessageFailedEndPeriod     = "failed to end period"
	MessageFailedUpdatePeriod  = "failed to update period"
	MessageFailedDeletePeriod  = "failed to delete period"
	MessageFailedGetPeriods    = "failed to retrieve periods"
	MessageFailedAddSymptom    = "failed to add symptom"
	MessageFailedDeleteSymptom = "failed to delete symptom"
	MessageFailedGetSymptoms   = "failed to retrieve symptoms"
	MessageFailedGetCycleStats = "failed to retrieve cycle statistics"
	MessageFailedGetCalendar   = "failed to retrieve cycle calendar"

	ErrPeriodNotFound    = errors.New("period not found")
	ErrPeriodAlreadyOpen = errors.New("a period is already in progress")
	ErrNoOpenPeriod      = errors.New("no period in progress")
	ErrSymptomNotFound   = errors.New("symptom not found")
	ErrInvalidFlowLevel  = errors.New("flow level must be between 1 and 5")
	ErrInvalidIntensity  = errors.New("intensity must be between 1 and 5")
)

type (
	StartPeriodRequest struct {
		FlowLevel *int   `json:"flow_level" validate:"omitempty,min=1,max=5"`
		Title     string `json:"title" validate:"omitempty"`
		Notes     string `json:"notes" validate:"omitempty"`
	}

	UpdatePeriodRequest struct {
		FlowLevel *int    `json:"flow_level" validate:"omitempty,min=1,max=5"`
		Title     *string `json:"title" validate:"omitempty"`
		Notes     *string `json:"notes" validate:"omitempty"`
	}

	AddSymptomRequest struct {
		SymptomType string `json:"symptom_type" validate:"required"`
		Intensity   *int   `json:"intensity" validate:"omitempty,min=1,max=5"`
		Notes       string `json:"notes" validate:"omitempty"`
	}

	PeriodResponse struct {
		ID        string     `json:"id"`
		StartDate time.Time  `json:"start_date"`
		EndDate   *time.Time `json:"end_date,omitempty"`
		FlowLevel *int       `json:"flow_level,omitempty"`
		Title     string     `json:"title,omitempty"`
		Notes     string     `json:"notes,omitempty"`
	}

	SymptomResponse struct {
		ID          string    `json:"id"`
		PeriodID    string    `json:"period_id"`
		SymptomType string    `json:"symptom_type"`
		Intensity   *int      `json:"intensity,omitempty"`
		Notes       string    `json:"notes,omitempty"`
		OccurredAt  time.Time `json:"occurred_at"`
	}

	SymptomSummaryResponse struct {
		SymptomType  string   `json:"symptom_type"`
		Occurrences  int      `json:"occurrences"`
		AvgIntensity *float64 `json:"avg_intensity,omitempty"`
	}

	CycleCalendarResponse struct {
		From time.Time         `json:"from"`
		To   time.Time         `json:"to"`
		Days []cycle.MergedDay `json:"days"`
	}

	CycleStatsResponse struct {
		CyclesCount           int        `json:"cycles_count"`
		AvgCycleLength        *int       `json:"avg_cycle_length,omitempty"`
		AvgPeriodLength       *int       `json:"avg_period_length,omitempty"`
		LastStart             *time.Time `json:"last_start,omitempty"`
		LastEnd               *time.Time `json:"last_end,omitempty"`
		PredictedNextStart    *time.Time `json:"predicted_next_start,omitempty"`
		PredictedOvulationDay *time.Time `json:"predicted_ovulation_day,omitempty"`
	}
)
