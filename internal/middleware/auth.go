package middleware

import (
	"context"
	"strings"
	"time"

	"pattern_edu_backend/internal/config"
	"pattern_edu_backend/internal/model"
	"pattern_edu_backend/internal/util"
	"pattern_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

// SessionStore is the slice of the session repository the gate needs.
type SessionStore interface {
	Get(ctx context.Context, id string) (*model.Session, error)
	Touch(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error
}

func bearerToken(c *gin.Context) string {
	tokenString := ""
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	return tokenString
}

// AuthMiddleware authenticates the bearer token, then runs the session gate:
// a missing session is 401, an idle-expired session is invalidated first and
// then 401. Last activity is refreshed off the request path.
func AuthMiddleware(cfg *config.Config, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			util.RespondError(c, util.ErrSessionNotFound)
			c.Abort()
			return
		}

		decision := Decide(sess, time.Now(), cfg.Session.IdleTimeout, PathPrivate)
		if decision.InvalidateSession {
			sessions.Delete(c.Request.Context(), sess.ID)
			monitoring.SessionExpirations.Inc()
			util.RespondError(c, util.ErrSessionExpired)
			c.Abort()
			return
		}
		if decision.Action != ActionAllow {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		go sessions.Touch(context.Background(), sess.ID, time.Now())

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches claims when a valid session is present but never
// rejects; auth-page checks use it.
func TryAuthMiddleware(cfg *config.Config, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Next()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			c.Next()
			return
		}

		if _, err := sessions.Get(c.Request.Context(), claims.SessionID); err == nil {
			c.Set("user", claims)
		}
		c.Next()
	}
}

func RoleMiddleware(roles ...model.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		hasRole := false
		for _, role := range roles {
			if user.Role == role {
				hasRole = true
				break
			}
		}

		if !hasRole {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
