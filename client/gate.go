package client

type GateDecision int

const (
	GateWait GateDecision = iota
	GateRedirectLogin
	GateRender
)

// EvaluateGate decides what the admin console does with the current session
// state: wait while loading, redirect absent users and non-admins to login,
// render for admins. Non-admins never reach admin data.
func EvaluateGate(s SessionSnapshot) GateDecision {
	if s.Loading {
		return GateWait
	}
	if s.User == nil || !s.IsAdmin {
		return GateRedirectLogin
	}
	return GateRender
}
