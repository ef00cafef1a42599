package services

import (
	"context"
	"log"
	"time"

	dbm "planmyitinerary/internal/models/db_models"
	"planmyitinerary/internal/models/request_models"
	"planmyitinerary/internal/models/response_models"
	"planmyitinerary/internal/repositories"
	"planmyitinerary/pkg/memcache"
	"planmyitinerary/pkg/utils"
)

const verifyTokenTTL = 24 * time.Hour

type AccountServiceInterface interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error)
	VerifyEmail(ctx context.Context, token string) error
	Login(ctx context.Context, req request_models.LoginRequest) (string, error)
	GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error)
}

type AccountService struct {
	accountRepo repositories.AccountRepository
	tokens      memcache.VerifyTokenStore
	mail        IMailService
}

func NewAccountService(
	accountRepo repositories.AccountRepository,
	tokens memcache.VerifyTokenStore,
	mail IMailService,
) AccountServiceInterface {
	return &AccountService{
		accountRepo: accountRepo,
		tokens:      tokens,
		mail:        mail,
	}
}

// Register creates an inactive account and mails a single-use verification
// link. The account stays unusable until the link is followed.
func (a *AccountService) Register(ctx context.Context, req request_models.SignUpRequest) (*response_models.AccountResponse, error) {
	existing, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	account := &dbm.Account{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     false,
	}
	if err := a.accountRepo.Insert(ctx, account); err != nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	a.tokens.Set(token, account.ID.String(), verifyTokenTTL)

	if err := a.mail.SendMailToVerifyEmail(account.Email, token); err != nil {
		// Account creation stands; the user can request a new mail later.
		log.Printf("account: sending verification mail to %s failed: %v", account.Email, err)
	}

	return buildAccountResponse(account), nil
}

func (a *AccountService) VerifyEmail(ctx context.Context, token string) error {
	accountID := a.tokens.Consume(token)
	if accountID == "" {
		return utils.ErrInvalidVerifyToken
	}

	if err := a.accountRepo.Activate(ctx, accountID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (a *AccountService) Login(ctx context.Context, req request_models.LoginRequest) (string, error) {
	account, err := a.accountRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if account == nil {
		return "", utils.ErrInvalidCredentials
	}
	if !account.IsActive {
		return "", utils.ErrAccountNotVerified
	}

	if err := utils.ComparePasswords(account.PasswordHash, req.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(account.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return token, nil
}

func (a *AccountService) GetProfile(ctx context.Context, accountID string) (*response_models.AccountResponse, error) {
	account, err := a.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil {
		return nil, utils.ErrAccountNotFound
	}
	return buildAccountResponse(account), nil
}

func buildAccountResponse(account *dbm.Account) *response_models.AccountResponse {
	return &response_models.AccountResponse{
		ID:        account.ID.String(),
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		IsActive:  account.IsActive,
	}
}
