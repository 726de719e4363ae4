package services

import (
	"context"

	"github.com/google/uuid"

	"wanderlust/internal/models/db_models"
	"wanderlust/internal/models/request_models"
	"wanderlust/internal/models/response_models"
	"wanderlust/internal/repositories"
	"wanderlust/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.SessionResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error)
	GuestSession(ctx context.Context) (*response_models.SessionResponse, error)
}

type AccountService struct {
	accounts repositories.AccountRepository
}

func NewAccountService(accounts repositories.AccountRepository) AccountServiceInterface {
	return &AccountService{accounts: accounts}
}

func (s *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.SessionResponse, error) {
	existing, err := s.accounts.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailTaken
	}

	hash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := &db_models.Account{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hash,
	}
	if err := s.accounts.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return s.sessionFor(account)
}

func (s *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.SessionResponse, error) {
	account, err := s.accounts.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrInvalidLogin
	}
	if err := utils.ComparePasswords(account.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidLogin
	}

	return s.sessionFor(account)
}

// GuestSession mints a local pseudo-identity. Guest ids carry the reserved
// prefix and never reach the cloud store.
func (s *AccountService) GuestSession(ctx context.Context) (*response_models.SessionResponse, error) {
	guestID := utils.GuestIDPrefix + uuid.NewString()
	token, err := utils.CreateToken(guestID, true)
	if err != nil {
		return nil, err
	}
	return &response_models.SessionResponse{
		UserID:  guestID,
		Name:    "Guest",
		IsGuest: true,
		Token:   token,
	}, nil
}

func (s *AccountService) sessionFor(account *db_models.Account) (*response_models.SessionResponse, error) {
	token, err := utils.CreateToken(account.ID.String(), false)
	if err != nil {
		return nil, err
	}
	return &response_models.SessionResponse{
		UserID: account.ID.String(),
		Name:   account.Name,
		Email:  account.Email,
		Token:  token,
	}, nil
}
