package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sovoz-hq/sovoz/internal/shared/authorization"
	"github.com/sovoz-hq/sovoz/internal/shared/biztime"
)

// Claims carries the authenticated principal. Role is informational only:
// the auth middleware re-resolves the stored user, so a revoked role does
// not survive in old tokens.
type Claims struct {
	UserID uint                   `json:"id"`
	Email  string                 `json:"email"`
	Role   authorization.UserRole `json:"role"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret         []byte
	accessExpHours int
}

func NewJWTService(secret string, accessExpHours int) *JWTService {
	if accessExpHours <= 0 {
		accessExpHours = 24
	}
	return &JWTService{
		secret:         []byte(secret),
		accessExpHours: accessExpHours,
	}
}

// Generate issues a signed HS256 access token.
func (s *JWTService) Generate(userID uint, email string, role authorization.UserRole) (string, int64, error) {
	now := biztime.NowUTC()
	exp := now.Add(time.Duration(s.accessExpHours) * time.Hour)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, int64(s.accessExpHours) * 3600, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
