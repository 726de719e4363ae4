package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/pkg/utils"

	"github.com/google/uuid"
)

type memoryAccountRepository struct {
	accounts map[string]*db_models.Account
}

func newMemoryAccountRepository() *memoryAccountRepository {
	return &memoryAccountRepository{accounts: map[string]*db_models.Account{}}
}

func (m *memoryAccountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	m.accounts[account.Email] = account
	return nil
}

func (m *memoryAccountRepository) FindById(ctx context.Context, id string) (*db_models.Account, error) {
	for _, account := range m.accounts {
		if account.ID.String() == id {
			return account, nil
		}
	}
	return nil, nil
}

func (m *memoryAccountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	return m.accounts[email], nil
}

func TestRegisterAndLogin(t *testing.T) {
	service := NewAccountService(newMemoryAccountRepository())
	ctx := context.Background()

	session, err := service.Register(ctx, request_models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", session.Name)
	assert.False(t, session.IsGuest)
	assert.NotEmpty(t, session.Token)

	login, err := service.Login(ctx, request_models.LoginRequest{
		Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, session.UserID, login.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service := NewAccountService(newMemoryAccountRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, request_models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = service.Register(ctx, request_models.RegisterRequest{
		Name: "Imposter", Email: "ada@example.com", Password: "other-password",
	})
	assert.ErrorIs(t, err, utils.ErrEmailTaken)
}

func TestLoginWrongPassword(t *testing.T) {
	service := NewAccountService(newMemoryAccountRepository())
	ctx := context.Background()

	_, err := service.Register(ctx, request_models.RegisterRequest{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse",
	})
	require.NoError(t, err)

	_, err = service.Login(ctx, request_models.LoginRequest{
		Email: "ada@example.com", Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidLogin)

	_, err = service.Login(ctx, request_models.LoginRequest{
		Email: "nobody@example.com", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidLogin)
}

func TestGuestSession(t *testing.T) {
	service := NewAccountService(newMemoryAccountRepository())

	session, err := service.GuestSession(context.Background())
	require.NoError(t, err)

	assert.True(t, session.IsGuest)
	assert.True(t, strings.HasPrefix(session.UserID, utils.GuestIDPrefix))
	assert.True(t, utils.IsGuestID(session.UserID))
	assert.NotEmpty(t, session.Token)

	claims, err := utils.ValidateToken(session.Token)
	require.NoError(t, err)
	assert.True(t, claims.IsGuest)
	assert.Equal(t, session.UserID, claims.UserID)
}
