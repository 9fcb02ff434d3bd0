package catalog

import "errors"

var ErrNotFound = errors.New("catalog: service not found")

const (
	CodeUnauthenticated  = "unauthenticated"
	CodeAccountInactive  = "account_inactive"
	CodeServiceNotFound  = "service_not_found"
	CodeDuplicateService = "duplicate_service"
	CodeInvalidService   = "invalid_service"
	CodeServiceInUse     = "service_in_use"
)
