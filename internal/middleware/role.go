package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"secondlit/internal/models"
)

// AccountLookup resolves the stored account type for an email.
// found=false means no account record exists for the email.
type AccountLookup func(ctx context.Context, email string) (accountType string, found bool, err error)

// RequireRole rejects callers whose stored account type differs from the
// required one. When no account record exists for the verified email the
// request passes through; only an existing mismatched account is blocked.
func RequireRole(lookup AccountLookup, accountType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := EmailFromContext(c)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		stored, found, err := lookup(ctx, email)
		if err != nil {
			log.Println("[ROLE] [ERROR] account lookup failed:", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if found && stored != accountType {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
			return
		}

		c.Next()
	}
}

func RequireAdmin(lookup AccountLookup) gin.HandlerFunc {
	return RequireRole(lookup, models.AccountTypeAdmin)
}

func RequireSeller(lookup AccountLookup) gin.HandlerFunc {
	return RequireRole(lookup, models.AccountTypeSeller)
}
