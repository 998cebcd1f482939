package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	userRepo "educonnect/database/repository/user"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

const authCacheTTL = 10 * time.Minute

// JWTAuthMiddleware validates the bearer token and compares its
// embedded tokenVersion against the user's current one. The current
// version is cached in Redis; a miss falls back to the database and
// repopulates the cache. A version mismatch means the token was revoked.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing or invalid Authorization header")
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		userID, err := primitive.ObjectIDFromHex(claims.UserID)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token subject")
			c.Abort()
			return
		}

		currentVersion, active, err := currentTokenVersion(users, userID)
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "account not found")
			c.Abort()
			return
		}
		if !active {
			utils.JSONError(c, http.StatusForbidden, "this account has been deactivated")
			c.Abort()
			return
		}
		if claims.TokenVersion != currentVersion {
			utils.JSONError(c, http.StatusUnauthorized, "token has been revoked")
			c.Abort()
			return
		}

		c.Set(CtxUserID, userID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// currentTokenVersion returns the user's live tokenVersion and active
// flag, consulting the auth cache first.
func currentTokenVersion(users userRepo.UserRepository, userID primitive.ObjectID) (int, bool, error) {
	cacheKey := fmt.Sprintf("%s%s", utils.AuthVersionPrefix, userID.Hex())
	client := utils.GetAuthCacheClient()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if raw, err := client.Get(ctx, cacheKey).Result(); err == nil {
		if version, convErr := strconv.Atoi(raw); convErr == nil {
			return version, true, nil
		}
	}

	userRec, err := users.GetByID(userID)
	if err != nil {
		return 0, false, err
	}
	if userRec == nil {
		return 0, false, fmt.Errorf("user %s not found", userID.Hex())
	}
	if !userRec.Active {
		// Inactive accounts are never cached; each request re-checks.
		return userRec.TokenVersion, false, nil
	}

	if err := client.Set(ctx, cacheKey, strconv.Itoa(userRec.TokenVersion), authCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache token version",
			zap.String("userID", userID.Hex()), zap.Error(err))
	}
	return userRec.TokenVersion, true, nil
}

// UserIDFrom pulls the authenticated user's ID out of the request
// context.
func UserIDFrom(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// RoleFrom pulls the authenticated user's role out of the request
// context.
func RoleFrom(c *gin.Context) string {
	return c.GetString(CtxRole)
}
