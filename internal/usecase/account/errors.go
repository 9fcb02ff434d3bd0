package account

const (
	CodeUnauthenticated  = "unauthenticated"
	CodeAccountInactive  = "account_inactive"
	CodeInvalidRole      = "invalid_role"
	CodePermissionDenied = "permission_denied"
	CodeUserNotFound     = "user_not_found"
)
