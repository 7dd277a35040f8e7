package httpapi

import (
	"errors"
	"net/http"

	"github.com/anonymous231985/room-for-rent/internal/config"
	"github.com/anonymous231985/room-for-rent/internal/core/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a domain error to its HTTP status; anything else is a
// 500 with the detail logged, never leaked.
func respondError(c *gin.Context, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) {
		config.Logger.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		e = apperr.ErrInternal
	}
	c.JSON(statusFor(e), gin.H{"code": e.Code, "error": e.Message})
}

func statusFor(e *apperr.Error) int {
	switch e {
	case apperr.ErrPostNotExist, apperr.ErrUserNotExist, apperr.ErrAuthorNotExist,
		apperr.ErrPackageNotExist, apperr.ErrPaymentNotExist:
		return http.StatusNotFound
	case apperr.ErrNotPermissionUpdate, apperr.ErrNotRechargeVip:
		return http.StatusForbidden
	case apperr.ErrEmailExist, apperr.ErrPhoneExist:
		return http.StatusConflict
	case apperr.ErrInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
