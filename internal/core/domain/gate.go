package domain

// SessionState describes how far session resolution has progressed for a
// request. Resolving means the session store could not answer yet; it is
// never treated as either signed-in or signed-out.
type SessionState int

const (
	StateResolving SessionState = iota
	StateAnonymous
	StateAuthenticated
)

// GateDecision is the outcome of evaluating the access gate for a protected
// view.
type GateDecision int

const (
	// DecisionWait renders a placeholder; the session is not resolved yet.
	DecisionWait GateDecision = iota
	// DecisionRedirectLogin sends the visitor to the login view.
	DecisionRedirectLogin
	// DecisionDeny renders an access-denied notice without redirecting.
	DecisionDeny
	// DecisionRender allows the protected content through.
	DecisionRender
)

// DecideAccess evaluates the gate's three states in fixed priority order:
//
//  1. session unresolved        -> wait (placeholder, never content)
//  2. no authenticated session  -> redirect to login
//  3. admin required, not admin -> denied notice
//
// Protected content is rendered only when none of the above apply.
func DecideAccess(state SessionState, s *Session, requireAdmin bool) GateDecision {
	if state == StateResolving {
		return DecisionWait
	}
	if state == StateAnonymous || !s.IsAuthenticated() {
		return DecisionRedirectLogin
	}
	if requireAdmin && !s.IsAdmin() {
		return DecisionDeny
	}
	return DecisionRender
}
