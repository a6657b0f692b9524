package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/config"
)

// AdminGateService is the console gate: one shared secret, compared with
// bcrypt, unlocking a session-scoped token. This is NOT a security boundary —
// there are no admin accounts, no roles, no lockout, and no rate limiting on
// failures. It keeps casual visitors out of the console, nothing more.
type AdminGateService struct {
	secretHash string
}

// GateSession is what we keep in Redis per unlocked console.
type GateSession struct {
	SessionID string    `json:"session_id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}

const gateSessionTTL = 24 * time.Hour

var adminGateService *AdminGateService

// InitAdminGate hashes the configured shared secret once at boot.
func InitAdminGate(secret string) error {
	if secret == "" {
		return errors.New("admin secret cannot be empty")
	}
	hash, err := HashPassword(secret)
	if err != nil {
		return err
	}
	adminGateService = &AdminGateService{secretHash: hash}
	return nil
}

func GetAdminGateService() *AdminGateService {
	return adminGateService
}

// VerifySecret checks the submitted password against the configured secret.
func (s *AdminGateService) VerifySecret(input string) bool {
	return VerifyPassword(s.secretHash, input)
}

// CreateSession records an unlocked console in Redis, keyed by the SHA-256 of
// the issued token.
func (s *AdminGateService) CreateSession(ctx context.Context, sessionID, token, ipAddress, userAgent string) error {
	session := GateSession{
		SessionID: sessionID,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		CreatedAt: time.Now(),
	}
	blob, err := json.Marshal(session)
	if err != nil {
		return err
	}
	key := "admin_session:" + HashToken(token)
	if err := config.RedisClient.Set(ctx, key, blob, gateSessionTTL).Err(); err != nil {
		log.Printf("[gate] failed to create session: %v", err)
		return err
	}
	log.Printf("[gate] created session %s", sessionID)
	return nil
}

// SessionActive reports whether the token still maps to a live session.
func (s *AdminGateService) SessionActive(ctx context.Context, token string) bool {
	key := "admin_session:" + HashToken(token)
	n, err := config.RedisClient.Exists(ctx, key).Result()
	if err != nil {
		log.Printf("[gate] failed to check session: %v", err)
		return false
	}
	return n > 0
}

// RevokeSession removes the session on logout.
func (s *AdminGateService) RevokeSession(ctx context.Context, token string) error {
	key := "admin_session:" + HashToken(token)
	if err := config.RedisClient.Del(ctx, key).Err(); err != nil {
		log.Printf("[gate] failed to revoke session: %v", err)
		return err
	}
	return nil
}

// HashToken hashes a token with SHA-256 so raw tokens never land in Redis.
func HashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
