package services

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GateClaims are the JWT claims for an admin console session. There are no
// admin identities — the gate is a single shared secret — so the only payload
// is the session ID the token was minted for.
type GateClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// JWTService signs and verifies console session tokens.
type JWTService struct {
	secretKey string
}

var jwtService *JWTService

func InitJWTService(secretKey string) error {
	if secretKey == "" {
		return errors.New("JWT secret key cannot be empty")
	}
	jwtService = &JWTService{secretKey: secretKey}
	return nil
}

func GetJWTService() *JWTService {
	if jwtService == nil {
		secretKey := os.Getenv("JWT_SECRET")
		if secretKey == "" {
			secretKey = "dev-secret-key-change-in-production"
		}
		jwtService = &JWTService{secretKey: secretKey}
	}
	return jwtService
}

// GenerateGateToken mints a 24h console token bound to a session ID.
func (j *JWTService) GenerateGateToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("sessionID cannot be empty")
	}

	now := time.Now()
	claims := GateClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "montclaire-storefront",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyGateToken parses and validates a console token.
func (j *JWTService) VerifyGateToken(tokenString string) (*GateClaims, error) {
	claims := &GateClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.SessionID == "" {
		return nil, errors.New("token missing session id")
	}
	return claims, nil
}

// Convenience functions that use the global service

func GenerateGateToken(sessionID string) (string, error) {
	return GetJWTService().GenerateGateToken(sessionID)
}

func VerifyGateToken(tokenString string) (*GateClaims, error) {
	return GetJWTService().VerifyGateToken(tokenString)
}
