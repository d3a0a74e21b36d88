package auth

import "time"

// Known roles.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

// Outcome is the result of a gate check.
type Outcome int

const (
	// Allow means the protected view may render.
	Allow Outcome = iota

	// RedirectLogin means no usable credential exists; go to the login
	// view for Decision.Role.
	RedirectLogin

	// RedirectHome means the user is authenticated but for a different
	// role; go to the landing view for Decision.Role (the user's own).
	RedirectHome
)

// Decision is the gate's verdict for one navigation.
type Decision struct {
	Outcome Outcome

	// Role qualifies the redirect target: the required role's login for
	// RedirectLogin, the user's own role's landing view for RedirectHome.
	// Set to the user's role on Allow.
	Role string
}

// Gate guards navigation to role-protected views. It is evaluated on
// every protected navigation, not kept as live state.
type Gate struct {
	store Store
}

// NewGate creates a Gate over the given credential store.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Check applies the access rules for a view requiring the given role
// (empty string means any authenticated user):
//
//	no token or no user        -> RedirectLogin
//	role required, mismatched  -> RedirectHome (user's own role)
//	token expired              -> credential cleared, RedirectLogin
//	otherwise                  -> Allow
//
// An unreadable expiry claim never blocks access by itself.
func (g *Gate) Check(requiredRole string, now time.Time) Decision {
	loginRole := requiredRole
	if loginRole == "" {
		loginRole = RoleStudent
	}

	cred, err := g.store.Load()
	if err != nil || cred == nil || cred.Token == "" || cred.User == nil {
		return Decision{Outcome: RedirectLogin, Role: loginRole}
	}

	if requiredRole != "" && cred.User.Role != requiredRole {
		return Decision{Outcome: RedirectHome, Role: cred.User.Role}
	}

	claims := DecodeClaims(cred.Token)
	if claims.Exp > 0 && claims.Exp < now.Unix() {
		// Expired sessions are cleared so the next check starts clean.
		_ = g.store.Clear()
		return Decision{Outcome: RedirectLogin, Role: loginRole}
	}

	return Decision{Outcome: Allow, Role: cred.User.Role}
}
