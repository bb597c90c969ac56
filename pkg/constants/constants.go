package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	PoolKey      ContextKey = "pool"
	TxKey        ContextKey = "tx"
	UserKey      ContextKey = "user"
	SessionKey   ContextKey = "session"
	LoggerKey    ContextKey = "logger"
	RequestIDKey ContextKey = "requestID"
)

// Validate is the shared validator instance used by all DTOs.
var Validate = validator.New(validator.WithRequiredStructEnabled())

// SessionCookieName is the cookie carrying the admin session token.
const SessionCookieName = "portfolio_session"
