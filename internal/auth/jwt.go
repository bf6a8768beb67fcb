package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// Claims is the decoded token payload. Staff tokens carry UserID and Email;
// diner session tokens carry SessionID and Table instead.
type Claims struct {
	UserID    string
	Email     string
	Role      string
	SessionID string
	Table     string
}

func GenerateToken(userID, email, role string) (string, error) {
	if userID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"userID": userID,
		"email":  email,
		"role":   role,
		"exp":    time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// GenerateSessionToken mints the short-lived token a diner uses for one
// table session.
func GenerateSessionToken(sessionID, table string) (string, error) {
	if sessionID == "" {
		return "", errors.New("empty sessionID passed to GenerateSessionToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"sessionID": sessionID,
		"table":     table,
		"role":      RoleDiner,
		"exp":       time.Now().Add(6 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	claims := &Claims{}
	claims.UserID, _ = mapClaims["userID"].(string)
	claims.Email, _ = mapClaims["email"].(string)
	claims.Role, _ = mapClaims["role"].(string)
	claims.SessionID, _ = mapClaims["sessionID"].(string)
	claims.Table, _ = mapClaims["table"].(string)

	return claims, nil
}

// SessionTokens adapts the token functions to the session handler's
// minter interface.
type SessionTokens struct{}

func (SessionTokens) MintSessionToken(sessionID, table string) (string, error) {
	return GenerateSessionToken(sessionID, table)
}
