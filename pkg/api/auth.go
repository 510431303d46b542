package api

import (
	echo "github.com/labstack/echo/v5"
)

// fallbackOwner is recorded as the squad owner when the request carries no
// proxy identity, e.g. local development without an auth proxy.
const fallbackOwner = "api-client"

// ownerHeaders are the proxy identity headers, in priority order:
// oauth2-proxy's user, then its email, then kube-rbac-proxy's remote user.
var ownerHeaders = []string{"X-Forwarded-User", "X-Forwarded-Email", "X-Remote-User"}

// requestOwner resolves the operator behind a request. Squads and templates
// created through the API are attributed to this identity.
func requestOwner(c *echo.Context) string {
	for _, h := range ownerHeaders {
		if v := c.Request().Header.Get(h); v != "" {
			return v
		}
	}
	return fallbackOwner
}
