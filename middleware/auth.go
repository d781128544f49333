package middleware

import (
	"net/http"
	"strings"
	"time"

	"trailhead/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Context keys set by the auth middleware.
const (
	CtxUserID     = "userID"
	CtxProviderID = "providerID"
)

// JWTAuthMiddleware validates the bearer token and requires the given role
// ("user" or "provider"). Valid token hashes are cached in Redis so repeat
// requests skip signature parsing bookkeeping on the hot path.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		subject, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		refreshAuthCache(c, subject, tokenString)

		switch role {
		case "provider":
			c.Set(CtxProviderID, subject)
		default:
			c.Set(CtxUserID, subject)
		}
		c.Next()
	}
}

// refreshAuthCache keeps the token hash warm in the auth cache. Cache
// trouble is logged, never fatal to the request.
func refreshAuthCache(c *gin.Context, subject, tokenString string) {
	authCache := utils.GetAuthCacheClient()
	if authCache == nil {
		return
	}
	cacheKey := utils.AuthCachePrefix + subject
	computedHash := utils.HashToken(tokenString)

	cached, err := authCache.Get(c.Request.Context(), cacheKey).Result()
	switch {
	case err == nil && cached == computedHash:
		_ = authCache.Expire(c.Request.Context(), cacheKey, time.Hour).Err()
	case err == nil || err == redis.Nil:
		_ = authCache.Set(c.Request.Context(), cacheKey, computedHash, time.Hour).Err()
	default:
		utils.GetLogger().Warn("auth cache unavailable", zap.Error(err))
	}
}
