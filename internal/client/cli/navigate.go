package cli

import (
	"context"

	"github.com/beautyease/beautyease/internal/client/router"
)

// Open navigates to a view path. The router applies the auth guard in both
// directions, so a signed-out user asking for a protected view lands on the
// auth flow and a signed-in user asking for /auth lands on the dashboard.
func (a *App) Open(ctx context.Context, path string) error {
	resolved, err := router.Resolve(path, a.isLoggedIn())
	if err != nil {
		printlnFn("No such view:", path)
		return err
	}

	switch resolved {
	case router.PathAuth:
		if resolved != path {
			printlnFn("Please sign in to continue.")
		}
		return a.Login(ctx)
	case router.PathDashboard:
		return a.Dashboard(ctx)
	case router.PathScan:
		return a.Scan(ctx)
	case router.PathShop:
		return a.Shop(ctx)
	case router.PathMakeup:
		return a.Makeup(ctx)
	case router.PathConsult:
		return a.Consult(ctx)
	case router.PathProfile:
		return a.ProfileView(ctx)
	default:
		printlnFn("No such view:", path)
		return nil
	}
}
