package handlers

import (
	"net/http"

	"educonnect/services/apperrors"
	"educonnect/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// respondError maps a service error onto its HTTP status. Unclassified
// errors become opaque 500s so internals never leak to clients.
func respondError(c *gin.Context, err error) {
	var status int
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		status = http.StatusBadRequest
	case apperrors.KindUnauthorized:
		status = http.StatusUnauthorized
	case apperrors.KindForbidden:
		status = http.StatusForbidden
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindConflict:
		status = http.StatusConflict
	default:
		utils.GetLogger().Error("internal error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		return
	}
	utils.JSONError(c, status, err.Error())
}

// pathID parses an ObjectID path parameter, writing the 400 itself on
// failure.
func pathID(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return primitive.NilObjectID, false
	}
	return id, true
}
