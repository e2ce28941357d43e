package couple

import (
	"context"
	"testing"

	"Couple-Backend/domain"
	"Couple-Backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (f *fakeUserRepository) CreateUser(_ context.Context, user *entities.User) error {
	copied := *user
	f.users[user.ID.String()] = &copied
	return nil
}

func (f *fakeUserRepository) GetUserByID(_ context.Context, userID string) (*entities.User, error) {
	user, ok := f.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) UpdateUser(_ context.Context, user *entities.User) error {
	copied := *user
	f.users[user.ID.String()] = &copied
	return nil
}

type fakeCoupleRepository struct {
	couples map[string]*entities.Couple
	users   *fakeUserRepository
}

func newFakeCoupleRepository(users *fakeUserRepository) *fakeCoupleRepository {
	return &fakeCoupleRepository{couples: make(map[string]*entities.Couple), users: users}
}

func (f *fakeCoupleRepository) CreateCouple(_ context.Context, couple *entities.Couple) error {
	copied := *couple
	f.couples[couple.ID.String()] = &copied
	return nil
}

func (f *fakeCoupleRepository) members(coupleID string) []*entities.User {
	var members []*entities.User
	for _, user := range f.users.users {
		if user.CoupleID != nil && user.CoupleID.String() == coupleID {
			copied := *user
			members = append(members, &copied)
		}
	}
	return members
}

func (f *fakeCoupleRepository) GetCoupleByID(_ context.Context, coupleID string) (*entities.Couple, error) {
	couple, ok := f.couples[coupleID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *couple
	copied.Members = f.members(coupleID)
	return &copied, nil
}

func (f *fakeCoupleRepository) GetCoupleByInviteCode(_ context.Context, code string) (*entities.Couple, error) {
	for _, couple := range f.couples {
		if couple.InviteCode == code {
			copied := *couple
			copied.Members = f.members(couple.ID.String())
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCoupleRepository) UpdateCouple(_ context.Context, couple *entities.Couple) error {
	copied := *couple
	copied.Members = nil
	f.couples[couple.ID.String()] = &copied
	return nil
}

func (f *fakeCoupleRepository) CountMembers(_ context.Context, coupleID string) (int64, error) {
	return int64(len(f.members(coupleID))), nil
}

func seedUser(users *fakeUserRepository, name string) *entities.User {
	user := &entities.User{
		ID:          uuid.New(),
		Email:       name + "@example.com",
		DisplayName: name,
	}
	users.users[user.ID.String()] = user
	return user
}

func TestEnsureCoupleCreatesOnFirstCall(t *testing.T) {
	users := newFakeUserRepository()
	couples := newFakeCoupleRepository(users)
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")

	res, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.InviteCode)
	assert.Len(t, res.Members, 1)

	// second call returns the same couple
	again, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)
	assert.Equal(t, res.ID, again.ID)
	assert.Len(t, couples.couples, 1)
}

type collidingCoupleRepository struct {
	*fakeCoupleRepository
	collisions int
}

func (f *collidingCoupleRepository) CreateCouple(ctx context.Context, couple *entities.Couple) error {
	if f.collisions > 0 {
		f.collisions--
		return gorm.ErrDuplicatedKey
	}
	return f.fakeCoupleRepository.CreateCouple(ctx, couple)
}

func TestEnsureCoupleRetriesOnInviteCodeCollision(t *testing.T) {
	users := newFakeUserRepository()
	couples := &collidingCoupleRepository{fakeCoupleRepository: newFakeCoupleRepository(users), collisions: 2}
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")

	res, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)
	assert.Len(t, res.InviteCode, inviteCodeLength)
	assert.Zero(t, couples.collisions)
}

func TestEnsureCoupleGivesUpAfterRepeatedCollisions(t *testing.T) {
	users := newFakeUserRepository()
	couples := &collidingCoupleRepository{fakeCoupleRepository: newFakeCoupleRepository(users), collisions: inviteCodeAttempts + 1}
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")

	_, err := service.EnsureCouple(context.Background(), alex.ID.String())
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestJoinByCode(t *testing.T) {
	users := newFakeUserRepository()
	couples := newFakeCoupleRepository(users)
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")
	sam := seedUser(users, "sam")

	created, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)

	joined, err := service.JoinByCode(context.Background(), sam.ID.String(), domain.JoinCoupleRequest{Code: created.InviteCode})
	require.NoError(t, err)
	assert.Equal(t, created.ID, joined.ID)
	assert.Len(t, joined.Members, 2)
}

func TestJoinByCodeInvalidCode(t *testing.T) {
	users := newFakeUserRepository()
	couples := newFakeCoupleRepository(users)
	service := NewCoupleService(couples, users)

	sam := seedUser(users, "sam")

	_, err := service.JoinByCode(context.Background(), sam.ID.String(), domain.JoinCoupleRequest{Code: "NOPE42"})
	assert.ErrorIs(t, err, domain.ErrInviteCodeInvalid)
}

func TestJoinByCodeRejectsThirdMember(t *testing.T) {
	users := newFakeUserRepository()
	couples := newFakeCoupleRepository(users)
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")
	sam := seedUser(users, "sam")
	third := seedUser(users, "charlie")

	created, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)
	_, err = service.JoinByCode(context.Background(), sam.ID.String(), domain.JoinCoupleRequest{Code: created.InviteCode})
	require.NoError(t, err)

	_, err = service.JoinByCode(context.Background(), third.ID.String(), domain.JoinCoupleRequest{Code: created.InviteCode})
	assert.ErrorIs(t, err, domain.ErrCoupleFull)
}

func TestJoinByCodeRejectsUserAlreadyInCouple(t *testing.T) {
	users := newFakeUserRepository()
	couples := newFakeCoupleRepository(users)
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")
	sam := seedUser(users, "sam")

	_, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)
	other, err := service.EnsureCouple(context.Background(), sam.ID.String())
	require.NoError(t, err)

	_, err = service.JoinByCode(context.Background(), alex.ID.String(), domain.JoinCoupleRequest{Code: other.InviteCode})
	assert.ErrorIs(t, err, domain.ErrAlreadyInCouple)
}

func TestRegenerateInviteCodeChangesCode(t *testing.T) {
	users := newFakeUserRepository()
	couples := newFakeCoupleRepository(users)
	service := NewCoupleService(couples, users)

	alex := seedUser(users, "alex")
	created, err := service.EnsureCouple(context.Background(), alex.ID.String())
	require.NoError(t, err)

	code, err := service.RegenerateInviteCode(context.Background(), alex.ID.String())
	require.NoError(t, err)
	assert.NotEqual(t, created.InviteCode, code)
	assert.Len(t, code, inviteCodeLength)
}
