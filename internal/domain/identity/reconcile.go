package identity

import "github.com/BruksfildServices01/pet-shop/internal/domain/role"

type Source string

const (
	SourceRecord  Source = "record"
	SourceSession Source = "session"
)

// Resolution is the outcome of Reconcile plus the repairs the caller should
// schedule. Reconcile itself performs no I/O.
type Resolution struct {
	User   AuthenticatedUser
	Source Source

	// SyncSession is set when the session claims must be corrected to match
	// the relational row.
	SyncSession *MetadataPatch

	// MaterializeRecord is set when the relational row should be created from
	// the session data.
	MaterializeRecord *UserRecord

	// RejectedRole holds a role claim that failed validation.
	RejectedRole string
}

// Reconcile merges the session view and the relational row. rec is nil when
// the row is absent or the store could not be reached.
//
// The relational row wins whenever it exists. An inactive row is still
// authoritative so that deactivation cannot be bypassed through a stale
// session claim.
func Reconcile(sess SessionUser, rec *UserRecord) Resolution {
	sessionRole, suspicious := role.ParseOrDefault(sess.Metadata.Role)

	var res Resolution
	if suspicious {
		res.RejectedRole = sess.Metadata.Role
	}

	if rec != nil {
		recordRole, bad := role.ParseOrDefault(rec.Role)
		if bad {
			res.RejectedRole = rec.Role
		}

		res.Source = SourceRecord
		res.User = AuthenticatedUser{
			ID:          rec.ID,
			Email:       firstNonEmpty(rec.Email, sess.Email),
			Role:        recordRole,
			FullName:    firstNonEmpty(rec.FullName, sess.Metadata.FullName),
			IsActive:    rec.IsActive,
			LastLoginAt: latest(sess.LastSignInAt, rec.LastLoginAt),
		}

		var patch MetadataPatch
		dirty := false
		if sess.Metadata.Role != string(recordRole) {
			patch.Role = &recordRole
			dirty = true
		}
		if activeOrDefault(sess.Metadata.IsActive) != rec.IsActive {
			active := rec.IsActive
			patch.IsActive = &active
			dirty = true
		}
		if dirty {
			res.SyncSession = &patch
		}
		return res
	}

	active := activeOrDefault(sess.Metadata.IsActive)
	res.Source = SourceSession
	res.User = AuthenticatedUser{
		ID:          sess.ID,
		Email:       sess.Email,
		Role:        sessionRole,
		FullName:    sess.Metadata.FullName,
		IsActive:    active,
		LastLoginAt: sess.LastSignInAt,
	}
	res.MaterializeRecord = &UserRecord{
		ID:          sess.ID,
		Email:       sess.Email,
		FullName:    sess.Metadata.FullName,
		Role:        string(sessionRole),
		IsActive:    active,
		LastLoginAt: sess.LastSignInAt,
	}
	return res
}

// activeOrDefault treats a missing flag as active: only an explicit false
// disables an account.
func activeOrDefault(v *bool) bool {
	return v == nil || *v
}
