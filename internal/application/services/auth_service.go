package services

import (
	"context"
	"fmt"
	"time"

	config "github.com/avatarctic/admin-dashboard/configs"
	"github.com/avatarctic/admin-dashboard/internal/core/domain/auth"
	"github.com/avatarctic/admin-dashboard/internal/core/ports"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthService delegates the credential check to the upstream provider and
// issues its own signed session token embedding the upstream identity.
type AuthService struct {
	client    ports.AuthClient
	jwtConfig *config.JWTConfig
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAuthService(client ports.AuthClient, jwtConfig *config.JWTConfig, logger *logrus.Logger) *AuthService {
	return &AuthService{
		client:    client,
		jwtConfig: jwtConfig,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.Session, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	upstream, err := s.client.Login(ctx, req.Username, req.Password)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"username": req.Username}).WithError(err).Warn("upstream login failed")
		return nil, fmt.Errorf("invalid credentials")
	}

	now := s.now()
	claims := &auth.Claims{
		Identity:      upstream.Identity,
		UpstreamToken: upstream.Token(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   upstream.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	return &auth.Session{
		Token:     tokenString,
		ExpiresIn: int64(s.jwtConfig.AccessTokenTTL.Seconds()),
		Identity:  upstream.Identity,
	}, nil
}

func (s *AuthService) ValidateToken(_ context.Context, tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
