package jwtauth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"dispatch/internal/entities"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims — клеймы токена доступа. Движку нужны только actor_id и role,
// проверка выдачи токена остается за identity-провайдером.
type Claims struct {
	ActorID string `json:"actor_id"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

type Service struct {
	signingKey []byte
	issuer     string
}

func New(signingKey, issuer string) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
	}
}

func (s *Service) GenerateToken(identity entities.Identity, expiresIn time.Duration) (string, error) {
	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		ActorID: identity.ActorID,
		Role:    string(identity.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    s.issuer,
			ID:        uuid.NewString(),
		},
	})

	signedToken, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signedToken, nil
}

// Verify возвращает подтвержденную identity из токена.
func (s *Service) Verify(tokenString string) (entities.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return entities.Identity{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return entities.Identity{}, ErrInvalidToken
	}

	role := entities.Role(claims.Role)
	if !role.IsValid() {
		return entities.Identity{}, ErrInvalidToken
	}
	if claims.ActorID == "" {
		return entities.Identity{}, ErrInvalidToken
	}

	return entities.Identity{
		ActorID: claims.ActorID,
		Role:    role,
	}, nil
}
