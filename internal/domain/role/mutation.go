package role

// Reasons a role change is refused. They are stable and safe to return to
// clients.
const (
	ReasonOnlySuperAdmin         = "only_super_admin"
	ReasonCannotDemoteSuperAdmin = "cannot_demote_super_admin"
	ReasonInvalidTargetRole      = "invalid_target_role"
)

type ChangeDecision struct {
	Allowed bool
	Reason  string
}

// CanChangeRole decides whether acting may move an account currently holding
// current to target. It runs on top of the system_settings permission check
// guarding the endpoint, not instead of it.
func CanChangeRole(acting, target, current Role) ChangeDecision {
	if acting != SuperAdmin {
		return ChangeDecision{Reason: ReasonOnlySuperAdmin}
	}

	if current == SuperAdmin && target != SuperAdmin {
		return ChangeDecision{Reason: ReasonCannotDemoteSuperAdmin}
	}

	if !target.Valid() {
		return ChangeDecision{Reason: ReasonInvalidTargetRole}
	}

	return ChangeDecision{Allowed: true}
}
