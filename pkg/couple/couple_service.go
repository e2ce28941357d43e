package couple

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"Couple-Backend/domain"
	"Couple-Backend/entities"
	"Couple-Backend/internal/utils/mailing"
	"Couple-Backend/pkg/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const inviteCodeLength = 6

// no 0/O or 1/I, codes are typed by hand
const inviteCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// inviteCodeAttempts bounds retries when a generated code hits the
// unique index on couples.invite_code.
const inviteCodeAttempts = 5

type (
	CoupleService interface {
		GetMyCouple(ctx context.Context, userID string) (domain.CoupleResponse, error)
		EnsureCouple(ctx context.Context, userID string) (domain.CoupleResponse, error)
		JoinByCode(ctx context.Context, userID string, req domain.JoinCoupleRequest) (domain.CoupleResponse, error)
		UpdateCouple(ctx context.Context, userID string, req domain.UpdateCoupleRequest) error
		RegenerateInviteCode(ctx context.Context, userID string) (string, error)
		SendInvite(ctx context.Context, userID string, req domain.SendInviteRequest) error
	}

	coupleService struct {
		coupleRepository CoupleRepository
		userRepository   user.UserRepository
	}
)

func NewCoupleService(coupleRepository CoupleRepository, userRepository user.UserRepository) CoupleService {
	return &coupleService{
		coupleRepository: coupleRepository,
		userRepository:   userRepository,
	}
}

func generateInviteCode() (string, error) {
	buf := make([]byte, inviteCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = inviteCodeAlphabet[int(buf[i])%len(inviteCodeAlphabet)]
	}
	return string(buf), nil
}

func toCoupleResponse(couple *entities.Couple) domain.CoupleResponse {
	res := domain.CoupleResponse{
		ID:         couple.ID.String(),
		Name:       couple.Name,
		InviteCode: couple.InviteCode,
	}
	for _, member := range couple.Members {
		res.Members = append(res.Members, domain.CoupleMember{
			ID:          member.ID.String(),
			Email:       member.Email,
			DisplayName: member.DisplayName,
			AvatarURL:   member.AvatarURL,
		})
	}
	return res
}

func (s *coupleService) GetMyCouple(ctx context.Context, userID string) (domain.CoupleResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.CoupleResponse{}, domain.ErrUserNotFound
	}
	if u.CoupleID == nil {
		return domain.CoupleResponse{}, domain.ErrNoCouple
	}

	couple, err := s.coupleRepository.GetCoupleByID(ctx, u.CoupleID.String())
	if err != nil {
		return domain.CoupleResponse{}, domain.ErrCoupleNotFound
	}
	return toCoupleResponse(couple), nil
}

// EnsureCouple returns the user's couple, creating a single-member one when
// the user has none yet.
func (s *coupleService) EnsureCouple(ctx context.Context, userID string) (domain.CoupleResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.CoupleResponse{}, domain.ErrUserNotFound
	}

	if u.CoupleID != nil {
		couple, err := s.coupleRepository.GetCoupleByID(ctx, u.CoupleID.String())
		if err != nil {
			return domain.CoupleResponse{}, domain.ErrCoupleNotFound
		}
		return toCoupleResponse(couple), nil
	}

	couple := &entities.Couple{
		ID:   uuid.New(),
		Name: fmt.Sprintf("Foyer de %s", u.DisplayName),
	}
	if err := s.createCoupleWithFreshCode(ctx, couple); err != nil {
		return domain.CoupleResponse{}, err
	}

	u.CoupleID = &couple.ID
	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.CoupleResponse{}, err
	}

	couple.Members = []*entities.User{u}
	return toCoupleResponse(couple), nil
}

func (s *coupleService) createCoupleWithFreshCode(ctx context.Context, couple *entities.Couple) error {
	var err error
	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		couple.InviteCode, err = generateInviteCode()
		if err != nil {
			return err
		}
		err = s.coupleRepository.CreateCouple(ctx, couple)
		if err == nil || !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return err
}

func (s *coupleService) JoinByCode(ctx context.Context, userID string, req domain.JoinCoupleRequest) (domain.CoupleResponse, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.CoupleResponse{}, domain.ErrUserNotFound
	}
	if u.CoupleID != nil {
		return domain.CoupleResponse{}, domain.ErrAlreadyInCouple
	}

	couple, err := s.coupleRepository.GetCoupleByInviteCode(ctx, req.Code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CoupleResponse{}, domain.ErrInviteCodeInvalid
		}
		return domain.CoupleResponse{}, err
	}

	count, err := s.coupleRepository.CountMembers(ctx, couple.ID.String())
	if err != nil {
		return domain.CoupleResponse{}, err
	}
	if count >= 2 {
		return domain.CoupleResponse{}, domain.ErrCoupleFull
	}

	u.CoupleID = &couple.ID
	if err := s.userRepository.UpdateUser(ctx, u); err != nil {
		return domain.CoupleResponse{}, err
	}

	couple.Members = append(couple.Members, u)
	return toCoupleResponse(couple), nil
}

func (s *coupleService) UpdateCouple(ctx context.Context, userID string, req domain.UpdateCoupleRequest) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	if u.CoupleID == nil {
		return domain.ErrNoCouple
	}

	couple, err := s.coupleRepository.GetCoupleByID(ctx, u.CoupleID.String())
	if err != nil {
		return domain.ErrCoupleNotFound
	}

	couple.Name = req.Name
	return s.coupleRepository.UpdateCouple(ctx, couple)
}

func (s *coupleService) RegenerateInviteCode(ctx context.Context, userID string) (string, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return "", domain.ErrUserNotFound
	}
	if u.CoupleID == nil {
		return "", domain.ErrNoCouple
	}

	couple, err := s.coupleRepository.GetCoupleByID(ctx, u.CoupleID.String())
	if err != nil {
		return "", domain.ErrCoupleNotFound
	}

	for attempt := 0; attempt < inviteCodeAttempts; attempt++ {
		couple.InviteCode, err = generateInviteCode()
		if err != nil {
			return "", err
		}
		err = s.coupleRepository.UpdateCouple(ctx, couple)
		if err == nil {
			return couple.InviteCode, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", err
		}
	}
	return "", err
}

func (s *coupleService) SendInvite(ctx context.Context, userID string, req domain.SendInviteRequest) error {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return domain.ErrUserNotFound
	}
	if u.CoupleID == nil {
		return domain.ErrNoCouple
	}

	couple, err := s.coupleRepository.GetCoupleByID(ctx, u.CoupleID.String())
	if err != nil {
		return domain.ErrCoupleNotFound
	}

	body := fmt.Sprintf(
		"<p>Bonjour,</p><p>%s vous invite à rejoindre son foyer sur Couply. Utilisez le code <b>%s</b> pour le rejoindre.</p>",
		u.DisplayName, couple.InviteCode,
	)
	return mailing.SendMail(req.Email, "Invitation à rejoindre un foyer", body)
}
