package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

// Tokens live for a fixed seven days from issuance. There is no revocation
// list; logout only clears the client cookie.
const defaultTokenDuration = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("auth token is invalid")

// AuthUser is the identity a verified token proves.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type TokenClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.StandardClaims
}

type JWTManager struct {
	secret string
}

func NewJWTManager(secret string) *JWTManager {
	return &JWTManager{secret: secret}
}

// GenerateToken signs a token embedding the user's id, email and name with
// the fixed seven-day expiry.
func (j *JWTManager) GenerateToken(user AuthUser) (string, error) {
	return j.generateTokenWithDuration(user, defaultTokenDuration)
}

func (j *JWTManager) generateTokenWithDuration(user AuthUser, duration time.Duration) (string, error) {
	claims := &TokenClaims{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(duration).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// VerifyToken returns the embedded identity when the signature checks out
// and the token has not expired. Every failure collapses into
// ErrInvalidToken so callers cannot tell which check rejected the token.
func (j *JWTManager) VerifyToken(tokenString string) (*AuthUser, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(j.secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return &AuthUser{ID: claims.ID, Email: claims.Email, Name: claims.Name}, nil
}
