package menstruation

import (
	"context"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

type (
	MenstruationRepository interface {
		CreatePeriod(ctx context.Context, period *entities.MenstruationPeriod) error
		GetPeriodByID(ctx context.Context, profileID string, periodID string) (*entities.MenstruationPeriod, error)
		GetOpenPeriod(ctx context.Context, profileID string) (*entities.MenstruationPeriod, error)
		GetPeriods(ctx context.Context, profileID string) ([]entities.MenstruationPeriod, error)
		UpdatePeriod(ctx context.Context, period *entities.MenstruationPeriod) error
		DeletePeriod(ctx context.Context, profileID string, periodID string) error
		CreateSymptom(ctx context.Context, symptom *entities.MenstruationSymptom) error
		GetSymptomsByPeriod(ctx context.Context, profileID string, periodID string) ([]entities.MenstruationSymptom, error)
		GetSymptoms(ctx context.Context, profileID string) ([]entities.MenstruationSymptom, error)
		DeleteSymptom(ctx context.Context, profileID string, symptomID string) error
	}

	menstruationRepository struct {
		db *gorm.DB
	}
)

func NewMenstruationRepository(db *gorm.DB) MenstruationRepository {
	return &menstruationRepository{db: db}
}

func (r *menstruationRepository) CreatePeriod(ctx context.Context, period *entities.MenstruationPeriod) error {
	return r.db.WithContext(ctx).Create(period).Error
}

func (r *menstruationRepository) GetPeriodByID(ctx context.Context, profileID string, periodID string) (*entities.MenstruationPeriod, error) {
	var period entities.MenstruationPeriod
	err := r.db.WithContext(ctx).
		First(&period, "id = ? AND profile_id = ?", periodID, profileID).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *menstruationRepository) GetOpenPeriod(ctx context.Context, profileID string) (*entities.MenstruationPeriod, error) {
	var period entities.MenstruationPeriod
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND end_date IS NULL", profileID).
		Order("start_date desc").
		First(&period).Error
	if err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *menstruationRepository) GetPeriods(ctx context.Context, profileID string) ([]entities.MenstruationPeriod, error) {
	var periods []entities.MenstruationPeriod
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("start_date asc").
		Find(&periods).Error
	return periods, err
}

func (r *menstruationRepository) UpdatePeriod(ctx context.Context, period *entities.MenstruationPeriod) error {
	return r.db.WithContext(ctx).Save(period).Error
}

func (r *menstruationRepository) DeletePeriod(ctx context.Context, profileID string, periodID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", periodID, profileID).
		Delete(&entities.MenstruationPeriod{}).Error
}

func (r *menstruationRepository) CreateSymptom(ctx context.Context, symptom *entities.MenstruationSymptom) error {
	return r.db.WithContext(ctx).Create(symptom).Error
}

func (r *menstruationRepository) GetSymptomsByPeriod(ctx context.Context, profileID string, periodID string) ([]entities.MenstruationSymptom, error) {
	var symptoms []entities.MenstruationSymptom
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND period_id = ?", profileID, periodID).
		Order("occurred_at asc").
		Find(&symptoms).Error
	return symptoms, err
}

func (r *menstruationRepository) GetSymptoms(ctx context.Context, profileID string) ([]entities.MenstruationSymptom, error) {
	var symptoms []entities.MenstruationSymptom
	err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("occurred_at asc").
		Find(&symptoms).Error
	return symptoms, err
}

func (r *menstruationRepository) DeleteSymptom(ctx context.Context, profileID string, symptomID string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", symptomID, profileID).
		Delete(&entities.MenstruationSymptom{}).Error
}
