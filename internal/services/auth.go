package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/websaga/websaga-backend/internal/platform/logger"
	"github.com/websaga/websaga-backend/internal/repos"
	"github.com/websaga/websaga-backend/internal/types"
)

// ErrInvalidCredentials is returned for both an unknown username and a
// wrong password, so a caller cannot probe which identities exist.
var ErrInvalidCredentials = errors.New("Invalid credentials")

type AuthService interface {
	Login(ctx context.Context, username, password string) (*types.Faculty, string, error)
	ParseToken(tokenString string) (*TokenClaims, error)
	GetAccessTTL() time.Duration
}

type TokenClaims struct {
	FacultyID uint   `json:"sub"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

type authService struct {
	log          *logger.Logger
	facultyRepo  repos.FacultyRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, facultyRepo repos.FacultyRepo, jwtSecretKey string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:          serviceLog,
		facultyRepo:  facultyRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) Login(ctx context.Context, username, password string) (*types.Faculty, string, error) {
	faculty, err := as.facultyRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		if errors.Is(err, repos.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("look up faculty: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(faculty.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := as.generateAccessToken(faculty)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}
	return faculty, token, nil
}

func (as *authService) ParseToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}

func (as *authService) generateAccessToken(faculty *types.Faculty) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		FacultyID: faculty.ID,
		Role:      faculty.UserType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}
