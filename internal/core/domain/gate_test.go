package domain

import "testing"

func authedSession(roles ...Role) *Session {
	return &Session{Username: "alice", Roles: roles, Token: "opaque-token"}
}

func TestDecideAccess_ResolvingAlwaysWaits(t *testing.T) {
	for _, requireAdmin := range []bool{false, true} {
		got := DecideAccess(StateResolving, nil, requireAdmin)
		if got != DecisionWait {
			t.Errorf("requireAdmin=%v: expected wait while resolving, got %v", requireAdmin, got)
		}
	}
}

func TestDecideAccess_AnonymousRedirects(t *testing.T) {
	for _, requireAdmin := range []bool{false, true} {
		got := DecideAccess(StateAnonymous, nil, requireAdmin)
		if got != DecisionRedirectLogin {
			t.Errorf("requireAdmin=%v: expected redirect for anonymous, got %v", requireAdmin, got)
		}
	}
}

func TestDecideAccess_TokenlessSessionRedirects(t *testing.T) {
	s := &Session{Username: "alice", Roles: []Role{RoleAdmin}}
	if got := DecideAccess(StateAuthenticated, s, true); got != DecisionRedirectLogin {
		t.Errorf("session without token must never render, got %v", got)
	}
}

func TestDecideAccess_NonAdminDeniedNotice(t *testing.T) {
	s := authedSession(RoleUser)
	if got := DecideAccess(StateAuthenticated, s, true); got != DecisionDeny {
		t.Errorf("expected denied notice (not a redirect), got %v", got)
	}
}

func TestDecideAccess_UserRendersUserView(t *testing.T) {
	s := authedSession(RoleUser)
	if got := DecideAccess(StateAuthenticated, s, false); got != DecisionRender {
		t.Errorf("expected render, got %v", got)
	}
}

func TestDecideAccess_AdminRendersAdminView(t *testing.T) {
	s := authedSession(RoleUser, RoleAdmin)
	if got := DecideAccess(StateAuthenticated, s, true); got != DecisionRender {
		t.Errorf("expected render for admin, got %v", got)
	}
}
