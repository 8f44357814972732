package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/devconnect-app/backend/database"
	"github.com/devconnect-app/backend/errs"
	"github.com/devconnect-app/backend/models"
)

const minPasswordLength = 6

// AuthService issues and verifies the bearer tokens that gate every
// mutating route, and owns the password hashing on registration.
type AuthService struct {
	userRepo *database.UserRepo
	secret   []byte
	tokenTTL time.Duration
	logger   zerolog.Logger
}

func NewAuthService(userRepo *database.UserRepo, secret string, tokenTTL time.Duration) AuthService {
	return AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   log.With().Str("serviceName", "authService").Logger(),
	}
}

// Register creates a new user with a hashed password and returns it
// together with a signed token.
func (s AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	if name == "" {
		return nil, "", errs.NewValidationError("name", "is required")
	}
	if email == "" {
		return nil, "", errs.NewValidationError("email", "is required")
	}
	if len(password) < minPasswordLength {
		return nil, "", errs.NewValidationError("password", "must be at least 6 characters")
	}

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	}
	if existing != nil {
		return nil, "", errs.NewAlreadyExists("user")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", errs.NewInternalError("failed to hash password")
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
	}
	if err := s.userRepo.Add(ctx, user); err != nil {
		return nil, "", errs.NewDatabaseError("create", "user", err)
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", email).Msg("user registered")
	return user, token, nil
}

// Login authenticates a user by email and password and returns a signed
// token. Unknown emails and wrong passwords fail identically.
func (s AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", errs.NewDatabaseError("find", "user", err)
	}
	if user == nil {
		return nil, "", errs.NewInvalidCredentialsError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", errs.NewInvalidCredentialsError()
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}

	s.logger.Info().Str("email", email).Msg("user logged in")
	return user, token, nil
}

// IssueToken signs an HS256 token whose subject is the user's id.
func (s AuthService) IssueToken(userID uuid.UUID) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errs.NewInternalError("failed to sign token")
	}
	return signed, nil
}

// ParseToken verifies a bearer token and resolves it to the user id it
// was issued for.
func (s AuthService) ParseToken(tokenString string) (uuid.UUID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, errs.NewExpiredTokenError()
		}
		return uuid.Nil, errs.NewInvalidTokenError()
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return uuid.Nil, errs.NewInvalidTokenError()
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errs.NewInvalidTokenError()
	}
	return userID, nil
}
