package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"

	"videotube/domain/dto"
	"videotube/domain/model"
	"videotube/domain/repository"
	"videotube/infrastructure/configuration"
)

// Auth verifies the access token from the Authorization header or the
// accessToken cookie, checks the user still exists, and stores the user id on
// the request context.
func Auth(userRepository repository.IUser) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)
		if tokenString == "" {
			unauthorized(ctx, "Unauthorized request")
			return
		}

		var claims model.UserClaims
		token, err := jwt.ParseWithClaims(tokenString, &claims,
			func(token *jwt.Token) (interface{}, error) {
				return []byte(configuration.C.App.SecretKey), nil
			})
		if err != nil || !token.Valid {
			unauthorized(ctx, "Invalid access token")
			return
		}

		userID, err := bson.ObjectIDFromHex(claims.UserID)
		if err != nil {
			unauthorized(ctx, "Invalid access token")
			return
		}
		if _, err := userRepository.GetByID(ctx.Request.Context(), userID); err != nil {
			unauthorized(ctx, "Invalid access token")
			return
		}

		ctx.Set("user_id", claims.UserID)
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	authorization := ctx.Request.Header.Get("Authorization")
	if strings.HasPrefix(authorization, "Bearer ") {
		return strings.TrimPrefix(authorization, "Bearer ")
	}
	token, _ := ctx.Cookie("accessToken")
	return token
}

func unauthorized(ctx *gin.Context, message string) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized,
		dto.NewErrorResponse(http.StatusUnauthorized, message, nil))
}
