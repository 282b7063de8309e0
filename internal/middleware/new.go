package middleware

import (
	pkgJWT "notification-enricher/pkg/jwt"
	pkgLog "notification-enricher/pkg/log"
)

type Middleware struct {
	l         pkgLog.Logger
	validator *pkgJWT.Validator
}

func New(l pkgLog.Logger, validator *pkgJWT.Validator) Middleware {
	return Middleware{
		l:         l,
		validator: validator,
	}
}
