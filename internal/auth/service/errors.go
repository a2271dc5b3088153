package service

import "errors"

var (
	errUnexpectedSigningMethod = errors.New("unexpected signing method")
	errMissingIdentityClaims   = errors.New("missing sub or usr claims")
)
