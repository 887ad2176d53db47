// Package httpkit provides HTTP middleware infrastructure.
// This is part of the platform layer and contains no business logic.
package httpkit

import (
	"errors"
	"net/http"
	"sync"
	"time"

	"brickworks_backend/platform/config"
	"brickworks_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// ContextUserIDKey is the gin context key for the authenticated user ID.
	ContextUserIDKey = "userID"
	// ContextRoleKey is the gin context key for the user's role.
	ContextRoleKey = "role"
	// ContextUserNameKey is the gin context key for the user's display name.
	ContextUserNameKey = "userName"
	// ContextUserEmailKey is the gin context key for the user's email.
	ContextUserEmailKey = "userEmail"

	// contextLoggerKey is the gin context key for the request logger.
	contextLoggerKey = "logger"

	errInvalidToken = "invalid token"
)

// RequestLogger logs HTTP requests with timing.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Set(contextLoggerKey, log)

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		clientIP := c.ClientIP()

		log.HTTPRequest(c.Request.Method, path, status, float64(latency.Milliseconds()), clientIP)
	}
}

// SecurityHeaders adds security headers to responses.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "1; mode=block")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Header("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

		// Only add HSTS when serving TLS
		if c.Request.TLS != nil {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		c.Next()
	}
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter manages per-IP token bucket limiters. A janitor goroutine
// evicts entries idle longer than the eviction window so the map stays
// bounded under churn of client IPs.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	rate     rate.Limit
	burst    int
	idleTTL  time.Duration
	done     chan struct{}
	log      *logger.Logger
}

// NewIPRateLimiter creates a new IP-based rate limiter and starts its janitor.
func NewIPRateLimiter(r rate.Limit, burst int, log *logger.Logger) *IPRateLimiter {
	l := &IPRateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     r,
		burst:    burst,
		idleTTL:  10 * time.Minute,
		done:     make(chan struct{}),
		log:      log,
	}
	go l.janitor()
	return l
}

func (i *IPRateLimiter) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-i.done:
			return
		case now := <-ticker.C:
			i.mu.Lock()
			for ip, entry := range i.limiters {
				if now.Sub(entry.lastSeen) > i.idleTTL {
					delete(i.limiters, ip)
				}
			}
			i.mu.Unlock()
		}
	}
}

// Close stops the janitor goroutine.
func (i *IPRateLimiter) Close() {
	close(i.done)
}

// Allow reports whether a request from the given IP may proceed.
func (i *IPRateLimiter) Allow(ip string) bool {
	i.mu.Lock()
	entry, exists := i.limiters[ip]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(i.rate, i.burst)}
		i.limiters[ip] = entry
	}
	entry.lastSeen = time.Now()
	i.mu.Unlock()

	return entry.limiter.Allow()
}

// Size returns the number of tracked IPs.
func (i *IPRateLimiter) Size() int {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.limiters)
}

// RateLimit returns a middleware that rate limits by IP.
func (i *IPRateLimiter) RateLimit(message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !i.Allow(ip) {
			if i.log != nil {
				i.log.RateLimitExceeded(ip, c.Request.URL.Path)
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, Envelope{
				Success: false,
				Message: message,
			})
			return
		}

		c.Next()
	}
}

// Limiters bundles the per-endpoint rate limiters the router hands to modules.
type Limiters struct {
	Auth      *IPRateLimiter
	Reviews   *IPRateLimiter
	Analytics *IPRateLimiter
}

// NewLimiters creates the standard limiter set:
// auth 5/min, reviews 5 per 15 minutes, analytics 120/min.
func NewLimiters(log *logger.Logger) *Limiters {
	return &Limiters{
		Auth:      NewIPRateLimiter(rate.Limit(5.0/60.0), 5, log),
		Reviews:   NewIPRateLimiter(rate.Limit(5.0/900.0), 5, log),
		Analytics: NewIPRateLimiter(rate.Limit(2.0), 120, log),
	}
}

// Close stops every limiter's janitor.
func (l *Limiters) Close() {
	l.Auth.Close()
	l.Reviews.Close()
	l.Analytics.Close()
}

// SessionClaims holds the fields carried in an admin session token.
type SessionClaims struct {
	UserID uuid.UUID
	Role   string
	Name   string
	Email  string
}

// ParseSessionToken validates a session JWT and extracts its claims.
func ParseSessionToken(rawToken string, cfg config.JWTConfig) (*SessionClaims, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(cfg.GetJWTSecret()), nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New(errInvalidToken)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New(errInvalidToken)
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New(errInvalidToken)
	}

	role, _ := claims["role"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)

	return &SessionClaims{UserID: userID, Role: role, Name: name, Email: email}, nil
}

// RequireRole returns middleware that checks the authenticated user's role
// against the allowed set.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(ContextRoleKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Message: "forbidden"})
			return
		}

		role, ok := value.(string)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Message: "forbidden"})
			return
		}

		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, Envelope{Success: false, Message: "forbidden"})
	}
}
