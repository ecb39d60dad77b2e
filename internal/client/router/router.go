// Package router maps view paths to views and enforces the auth guard in
// both directions: unauthenticated visitors are redirected to the auth view
// and authenticated visitors are kept out of it.
package router

import (
	"fmt"

	"github.com/beautyease/beautyease/internal/shared"
)

// View paths.
const (
	PathRoot      = "/"
	PathAuth      = "/auth"
	PathDashboard = "/dashboard"
	PathScan      = "/scan"
	PathShop      = "/shop"
	PathMakeup    = "/makeup"
	PathConsult   = "/consult"
	PathProfile   = "/profile"
)

// protected lists every view that requires a signed-in session.
var protected = []string{
	PathDashboard, PathScan, PathShop, PathMakeup, PathConsult, PathProfile,
}

// Paths returns every navigable path, auth first.
func Paths() []string {
	return append([]string{PathAuth}, protected...)
}

func known(path string) bool {
	if path == PathAuth || path == PathRoot {
		return true
	}
	for _, p := range protected {
		if p == path {
			return true
		}
	}
	return false
}

// Resolve returns the view that a navigation to path should land on, given
// whether the session is signed in. The root path aliases the dashboard.
// Unknown paths return shared.ErrNotFound.
func Resolve(path string, loggedIn bool) (string, error) {
	if !known(path) {
		return "", fmt.Errorf("%w: no view at %s", shared.ErrNotFound, path)
	}

	if path == PathRoot {
		path = PathDashboard
	}

	if path == PathAuth {
		if loggedIn {
			return PathDashboard, nil
		}
		return PathAuth, nil
	}

	if !loggedIn {
		return PathAuth, nil
	}
	return path, nil
}
