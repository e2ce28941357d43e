package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddEmotion      = "emotion added successfully"
	MessageSuccessGetEmotions     = "emotions retrieved successfully"
	MessageSuccessDeleteEmotion   = "emotion deleted successfully"
	MessageSuccessGetEmotionStats = "emotion statistics retrieved successfully"

	MessageFailedAddEmotion      = "failed to add emotion"
	MessageFailedGetEmotions     = "failed to retrieve emotions"
	MessageFailedDeleteEmotion   = "failed to delete emotion"
	MessageFailedGetEmotionStats = "failed to retrieve emotion statistics"

	ErrEmotionNotFound = errors.New("emotion entry not found")
	ErrInvalidMood     = errors.New("mood must be between 1 and 5")
)

type (
	AddEmotionRequest struct {
		Mood       int      `json:"mood" validate:"required,min=1,max=5"`
		Emotion    string   `json:"emotion" validate:"omitempty"`
		Tags       []string `json:"tags" validate:"omitempty"`
		Note       string   `json:"note" validate:"omitempty"`
		OccurredAt string   `json:"occurred_at" validate:"omitempty"`
	}

	EmotionResponse struct {
		ID         string    `json:"id"`
		Mood       int       `json:"mood"`
		Emotion    string    `json:"emotion,omitempty"`
		Tags       []string  `json:"tags,omitempty"`
		Note       string    `json:"note,omitempty"`
		OccurredAt time.Time `json:"occurred_at"`
		CreatedBy  string    `json:"created_by,omitempty"`
	}

	EmotionStatsResponse struct {
		Total      int         `json:"total"`
		AvgMood    *float64    `json:"avg_mood,omitempty"`
		MoodCounts map[int]int `json:"mood_counts"`
		FirstAt    *time.Time  `json:"first_at,omitempty"`
		LastAt     *time.Time  `json:"last_at,omitempty"`
	}

	EmotionSeriesPoint struct {
		Key     string   `json:"key"`
		Label   string   `json:"label"`
		AvgMood *float64 `json:"avg_mood,omitempty"`
		Count   int      `json:"count"`
	}
)
