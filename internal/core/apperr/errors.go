package apperr

import "errors"

// Error is a domain error with a stable code. Controllers map codes to HTTP
// statuses; the message is the developer-facing default, presentation layers
// may localize by code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Code + ": " + e.Message }

var (
	ErrPostNotExist        = &Error{"POST_NOT_EXIST", "post does not exist"}
	ErrUserNotExist        = &Error{"USER_NOT_EXIST", "user does not exist"}
	ErrAuthorNotExist      = &Error{"AUTHOR_NOT_EXIST", "post author does not exist"}
	ErrPackageNotExist     = &Error{"ADVERTISING_PACKAGE_VALID", "advertising package does not exist"}
	ErrPaymentNotExist     = &Error{"PAY_AD_VALID", "payment record does not exist"}
	ErrNotPermissionUpdate = &Error{"YOU_NOT_PERMISSION_UPDATE", "only the author can update this post"}
	ErrNotRechargeVip      = &Error{"USER_NOT_RECHARGE_VIP", "posting requires an active vip recharge"}
	ErrEmailExist          = &Error{"EMAIL_EXIST", "email already registered"}
	ErrPhoneExist          = &Error{"PHONE_EXIST", "phone number already registered"}
	ErrInvalidCredentials  = &Error{"INVALID_CREDENTIALS", "invalid email or password"}
	ErrInternal            = &Error{"INTERNAL_SERVER_ERROR", "an unexpected error occurred"}
)

// Code returns the stable code of err, or INTERNAL_SERVER_ERROR for anything
// that is not a domain error.
func Code(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInternal.Code
}
