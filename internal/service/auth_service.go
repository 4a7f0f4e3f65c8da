package service

import (
	"context"
	"errors"
	"time"

	"peakform/internal/domain"
	"peakform/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// --- Error Definitions ---
var (
	ErrLoginTokenInvalid = errors.New("login link is invalid")
	ErrLoginTokenExpired = errors.New("login link has expired")
	ErrHashingFailed     = errors.New("failed to hash login token")
	ErrTokenGeneration   = errors.New("failed to generate authentication token")
)

// AuthService implements passwordless magic-link sign-in: requesting a link
// issues a one-time token (delivered out of band), verifying it yields a JWT
// session token. Accounts are created implicitly on first request.
type AuthService interface {
	RequestLoginLink(ctx context.Context, email string) (token string, err error)
	VerifyLoginToken(ctx context.Context, email, token string) (jwtToken string, user *domain.User, err error)
	GetJWTSecret() string
}

type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
	tokenTTL      time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration, tokenTTL time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 30 * 24 * time.Hour
	}
	if tokenTTL <= 0 {
		tokenTTL = 15 * time.Minute
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
		tokenTTL:      tokenTTL,
	}
}

// RequestLoginLink creates (or finds) the account for the email and stores a
// fresh one-time login token, hashed at rest. The raw token is returned for
// the mail-delivery boundary to embed in the link; this service does not
// send mail.
func (s *authService) RequestLoginLink(ctx context.Context, email string) (string, error) {
	if email == "" {
		return "", errors.New("email cannot be empty")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		user = &domain.User{Email: email}
		userID, createErr := s.userRepo.Create(ctx, user)
		if createErr != nil {
			return "", createErr
		}
		user.ID = userID
	} else if err != nil {
		return "", err
	}

	token := uuid.NewString()
	hash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	expiry := time.Now().Add(s.tokenTTL)
	if err := s.userRepo.SetLoginToken(ctx, user.ID, string(hash), expiry); err != nil {
		return "", err
	}
	return token, nil
}

// VerifyLoginToken exchanges a pending one-time token for a session JWT.
// Tokens are single-use: the pending state is cleared on success.
func (s *authService) VerifyLoginToken(ctx context.Context, email, token string) (string, *domain.User, error) {
	if email == "" || token == "" {
		return "", nil, ErrLoginTokenInvalid
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrLoginTokenInvalid
		}
		return "", nil, err
	}

	if user.LoginTokenHash == "" {
		return "", nil, ErrLoginTokenInvalid
	}
	if !user.HasPendingLogin(time.Now()) {
		return "", nil, ErrLoginTokenExpired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.LoginTokenHash), []byte(token)); err != nil {
		return "", nil, ErrLoginTokenInvalid
	}

	if err := s.userRepo.ClearLoginToken(ctx, user.ID); err != nil {
		return "", nil, err
	}

	jwtToken, err := s.generateJWT(user)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return jwtToken, user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: user.ID.Hex(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "peakform",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication.
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
