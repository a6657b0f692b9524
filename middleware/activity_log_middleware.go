package middleware

import (
	"encoding/json"
	"log"
	"time"

	"github.com/Montclaire-Parfums/montclaire-storefront-backend/config"
	"github.com/gin-gonic/gin"
)

const (
	activityLogKey = "admin:activity"
	activityLogCap = 500
)

// ActivityEntry is one recorded console action.
type ActivityEntry struct {
	At     time.Time `json:"at"`
	Method string    `json:"method"`
	Path   string    `json:"path"`
	Status int       `json:"status"`
}

// ActivityLoggingMiddleware records every mutating console request to a
// capped Redis list. Reads are not logged. Must run after AdminGateMiddleware.
func ActivityLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "GET" {
			c.Next()
			return
		}

		c.Next()

		entry := ActivityEntry{
			At:     time.Now().UTC(),
			Method: c.Request.Method,
			Path:   c.Request.URL.Path,
			Status: c.Writer.Status(),
		}
		blob, err := json.Marshal(entry)
		if err != nil {
			return
		}

		// Best-effort: a logging failure never fails the request.
		pipe := config.RedisClient.Pipeline()
		pipe.LPush(config.Ctx, activityLogKey, blob)
		pipe.LTrim(config.Ctx, activityLogKey, 0, activityLogCap-1)
		if _, err := pipe.Exec(config.Ctx); err != nil {
			log.Printf("[activity] failed to record entry: %v", err)
		}
	}
}

// RecentActivity returns up to limit entries, newest first.
func RecentActivity(limit int) ([]ActivityEntry, error) {
	if limit <= 0 || limit > activityLogCap {
		limit = activityLogCap
	}
	raw, err := config.RedisClient.LRange(config.Ctx, activityLogKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]ActivityEntry, 0, len(raw))
	for _, item := range raw {
		var e ActivityEntry
		if err := json.Unmarshal([]byte(item), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}
