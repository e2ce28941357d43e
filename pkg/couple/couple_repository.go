package couple

import (
	"context"

	"Couple-Backend/entities"

	"gorm.io/gorm"
)

type (
	CoupleRepository interface {
		CreateCouple(ctx context.Context, couple *entities.Couple) error
		GetCoupleByID(ctx context.Context, coupleID string) (*entities.Couple, error)
		GetCoupleByInviteCode(ctx context.Context, code string) (*entities.Couple, error)
		UpdateCouple(ctx context.Context, couple *entities.Couple) error
		CountMembers(ctx context.Context, coupleID string) (int64, error)
	}

	coupleRepository struct {
		db *gorm.DB
	}
)

func NewCoupleRepository(db *gorm.DB) CoupleRepository {
	return &coupleRepository{db: db}
}

func (r *coupleRepository) CreateCouple(ctx context.Context, couple *entities.Couple) error {
	return r.db.WithContext(ctx).Create(couple).Error
}

func (r *coupleRepository) GetCoupleByID(ctx context.Context, coupleID string) (*entities.Couple, error) {
	var couple entities.Couple
	if err := r.db.WithContext(ctx).Preload("Members").First(&couple, "id = ?", coupleID).Error; err != nil {
		return nil, err
	}
	return &couple, nil
}

func (r *coupleRepository) GetCoupleByInviteCode(ctx context.Context, code string) (*entities.Couple, error) {
	var couple entities.Couple
	if err := r.db.WithContext(ctx).Preload("Members").First(&couple, "invite_code = ?", code).Error; err != nil {
		return nil, err
	}
	return &couple, nil
}

func (r *coupleRepository) UpdateCouple(ctx context.Context, couple *entities.Couple) error {
	return r.db.WithContext(ctx).Save(couple).Error
}

func (r *coupleRepository) CountMembers(ctx context.Context, coupleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Where("couple_id = ?", coupleID).Count(&count).Error
	return count, err
}
