package auth

// Action names an operation gated by the permission policy.
type Action int

const (
	ActionCreateRecords Action = iota
	ActionEditRecords
	ActionDeleteRecords
	ActionImportRecords
	ActionManageBackups
)

// Allowed is the permission policy: a pure function of the session and the
// requested action. A nil session is anonymous and may do nothing.
func Allowed(s *Session, action Action) bool {
	if s == nil {
		return false
	}
	switch action {
	case ActionCreateRecords:
		return true
	case ActionEditRecords, ActionDeleteRecords, ActionImportRecords, ActionManageBackups:
		return s.Role == RoleAdmin
	default:
		return false
	}
}

// IsAdmin reports whether the session belongs to an admin account.
func IsAdmin(s *Session) bool {
	return s != nil && s.Role == RoleAdmin
}

// CanEditRecords reports whether the session may edit or delete customer
// records.
func CanEditRecords(s *Session) bool {
	return Allowed(s, ActionEditRecords)
}

// CanCreateRecords reports whether the session may create customer records.
func CanCreateRecords(s *Session) bool {
	return Allowed(s, ActionCreateRecords)
}
