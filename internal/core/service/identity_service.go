package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kcimports/inventory-api/internal/core/domain"
	"github.com/kcimports/inventory-api/internal/core/ports"
)

// maxAccountPage bounds ListAccounts to a single page, mirroring the identity
// provider contract.
const maxAccountPage = 1000

// IdentityService is the identity provider: it owns credential records,
// verifies passwords and issues/validates HS256 bearer tokens whose subject
// is the account uid.
type IdentityService struct {
	accounts  ports.AccountRepository
	jwtSecret string
	tokenTTL  time.Duration
}

func NewIdentityService(accounts ports.AccountRepository, jwtSecret string, tokenTTL time.Duration) *IdentityService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &IdentityService{accounts: accounts, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Authenticate checks the credentials and returns a signed bearer token.
func (s *IdentityService) Authenticate(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("authenticate: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"sub": account.ID,
		"exp": time.Now().Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("authenticate: sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates a bearer token and returns the caller's uid. Any
// defect (absent, undecodable, expired, wrong algorithm) maps to
// domain.ErrUnauthenticated.
func (s *IdentityService) VerifyToken(token string) (string, error) {
	if token == "" {
		return "", domain.ErrUnauthenticated
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrUnauthenticated
	}

	uid, _ := claims["sub"].(string)
	if uid == "" {
		return "", domain.ErrUnauthenticated
	}
	return uid, nil
}

// CreateAccount registers a new credential record and returns its uid.
func (s *IdentityService) CreateAccount(ctx context.Context, email, password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("create account: %w", err)
	}

	account := &domain.Account{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	uid, err := s.accounts.Insert(ctx, account)
	if err != nil {
		return "", err
	}
	return uid, nil
}

// ListAccounts returns one bounded page of accounts, capped at maxAccountPage.
func (s *IdentityService) ListAccounts(ctx context.Context, pageSize int64) ([]domain.Account, error) {
	if pageSize <= 0 || pageSize > maxAccountPage {
		pageSize = maxAccountPage
	}
	return s.accounts.List(ctx, pageSize)
}
