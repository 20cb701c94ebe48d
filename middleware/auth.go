package middleware

import (
	"net/http"
	"strings"

	professionalRepo "serenibook/database/repository/professional"
	"serenibook/utils"

	"github.com/gin-gonic/gin"
)

// ContextProfessionalID is the gin context key carrying the authenticated
// professional's ID.
const ContextProfessionalID = "professionalID"

// JWTAuthProfessionalMiddleware guards routes that act on behalf of a
// professional. The token hash stored on the account must match, so revoking
// a token signs the professional out everywhere.
func JWTAuthProfessionalMiddleware(repo professionalRepo.ProfessionalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		professionalID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || professionalID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		prof, err := repo.GetByID(professionalID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if prof.TokenHash == "" || prof.TokenHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked"})
			return
		}

		c.Set(ContextProfessionalID, professionalID)
		c.Next()
	}
}
