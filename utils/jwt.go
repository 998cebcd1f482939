package utils

import (
	"errors"
	"time"

	"educonnect/config"

	"github.com/golang-jwt/jwt"
)

func secretKey() []byte {
	secret := config.AppConfig.JWTSecret
	if secret == "" {
		secret = "educonnect-dev-secret"
	}
	return []byte(secret)
}

// TokenClaims is the decoded identity carried by an access token.
type TokenClaims struct {
	UserID       string
	Role         string
	TokenVersion int
}

// GenerateToken creates a signed JWT for the given user. The embedded
// tokenVersion must match the user's current counter at request time.
func GenerateToken(userID, role string, tokenVersion int, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":          userID,
		"role":         role,
		"tokenVersion": tokenVersion,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
}

// ExtractClaimsFromToken validates a token string and pulls out the
// identity claims, or fails if any of them is missing.
func ExtractClaimsFromToken(tokenString string) (*TokenClaims, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return nil, errors.New("token does not contain a valid 'role' claim")
	}
	// JSON numbers decode as float64.
	versionF, ok := claims["tokenVersion"].(float64)
	if !ok {
		return nil, errors.New("token does not contain a valid 'tokenVersion' claim")
	}

	return &TokenClaims{
		UserID:       sub,
		Role:         role,
		TokenVersion: int(versionF),
	}, nil
}
