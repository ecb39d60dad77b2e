package cli

import (
	"context"
	"fmt"
	"strings"
)

type beautyTip struct {
	title string
	text  string
}

var todaysTips = []beautyTip{
	{"Morning Skincare Routine", "Start with a gentle cleanser, followed by vitamin C serum and SPF 30+"},
	{"Hydration Reminder", "Drink at least 8 glasses of water for glowing skin from within"},
	{"Sleep Beauty", "Get 7-8 hours of sleep for natural skin repair and regeneration"},
}

// Dashboard greets the user and summarizes recent activity: the latest
// scans, plus wishlist and cart sizes.
func (a *App) Dashboard(ctx context.Context) error {
	p := a.session.Profile()
	if p != nil {
		printlnFn("Hello,", p.FullName+"!")
	}

	scans, err := a.session.ListScans(ctx, 3)
	if err != nil {
		printlnFn("Could not load recent scans:", err.Error())
	} else if len(scans) == 0 {
		printlnFn("No scans yet. Run 'scan' to analyze your skin.")
	} else {
		printlnFn("Recent scans:")
		for _, s := range scans {
			printlnFn(fmt.Sprintf("  %s - %s, score %d/100, concerns: %s",
				s.AnalysisDate.Format("Jan 2 2006"), s.SkinType, s.Score, strings.Join(s.Concerns, ", ")))
			if s.ImageKey != "" {
				if url, err := a.session.ScanImageURL(ctx, s.ImageKey); err == nil {
					printlnFn("    photo:", url)
				}
			}
		}
	}

	wishlist, err := a.store.Wishlist.List(ctx)
	if err == nil {
		printlnFn(fmt.Sprintf("Wishlist: %d item(s)", len(wishlist)))
	}
	cart, err := a.store.Cart.List(ctx)
	if err == nil {
		printlnFn(fmt.Sprintf("Cart: %d item(s)", len(cart)))
	}

	printlnFn("Today's beauty tips:")
	for _, tip := range todaysTips {
		printlnFn(fmt.Sprintf("  %s: %s", tip.title, tip.text))
	}

	printlnFn("Views: scan, shop, makeup, consult, profile")
	return nil
}
