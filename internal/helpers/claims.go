package helpers

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ContextUserKey is where the auth middleware stores the caller's claims.
const ContextUserKey = "user"

func (c *CustomClaims) IsAdmin() bool {
	return c.Role == "admin"
}

func (c *CustomClaims) HasRole(role string) bool {
	return c.Role == role
}

// CurrentUser returns the authenticated caller's claims from the gin
// context, or false when the request never passed the auth middleware.
func CurrentUser(c *gin.Context) (*CustomClaims, bool) {
	val, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	claims, ok := val.(*CustomClaims)
	return claims, ok
}

// CurrentUserID parses the caller's identifier into an ObjectID.
func CurrentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	claims, ok := CurrentUser(c)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}
