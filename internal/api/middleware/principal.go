package middleware

import "github.com/labstack/echo/v4"

const principalKey = "principal"

// Principal is the authenticated identity attached to a request after token
// verification. It is immutable once set; Role is the snapshot embedded in
// the verified token, not a live lookup.
type Principal struct {
	SubjectID string
	Role      string
}

// SetPrincipal attaches p to the request context. Only Authenticate calls
// this; handlers and downstream middleware read it via GetPrincipal.
func SetPrincipal(c echo.Context, p Principal) {
	c.Set(principalKey, p)
}

// GetPrincipal returns the request principal. ok is false when Authenticate
// has not run on this request; callers must fail closed in that case.
func GetPrincipal(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}
