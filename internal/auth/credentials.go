package auth

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"courseapi/internal/model"
)

const currentUserKey = "user"

// Credentials is the name/secret pair carried by an HTTP Basic header.
type Credentials struct {
	Name string
	Pass string
}

// ParseBasic extracts Basic credentials from req. ok is false when the
// Authorization header is absent or not a well-formed Basic value.
func ParseBasic(req *http.Request) (creds Credentials, ok bool) {
	name, pass, ok := req.BasicAuth()
	if !ok {
		return Credentials{}, false
	}
	return Credentials{Name: name, Pass: pass}, true
}

// SetCurrentUser records the authenticated user on the request context.
func SetCurrentUser(c echo.Context, user *model.User) {
	c.Set(currentUserKey, user)
}

// CurrentUser returns the authenticated user, or nil when the request did not
// pass through the authentication middleware.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(currentUserKey).(*model.User)
	return user
}
