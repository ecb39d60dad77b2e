package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/beautyease/beautyease/internal/client/catalog"
)

// Shop prompts for filter criteria, lists the matching products, and lets
// the user toggle wishlist entries and add items to the cart.
func (a *App) Shop(ctx context.Context) error {
	search, err := getSimpleText(a.reader, "Search by name or brand (Enter for all)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := GetChoice(a.reader, "Category", catalog.ProductCategories, catalog.WildcardAll, os.Stdout)
	if err != nil {
		return err
	}

	skinType, err := GetChoice(a.reader, "Skin type", catalog.FilterSkinTypes, catalog.WildcardAll, os.Stdout)
	if err != nil {
		return err
	}

	maxPriceText, err := getSimpleText(a.reader, "Max price (Enter for no limit)", os.Stdout)
	if err != nil {
		return err
	}
	maxPrice := 0.0
	if maxPriceText != "" {
		maxPrice, err = strconv.ParseFloat(maxPriceText, 64)
		if err != nil {
			printlnFn("Not a number, ignoring the price limit.")
			maxPrice = 0
		}
	}

	products := catalog.FilterProducts(catalog.Products(), catalog.ProductFilter{
		Search:   search,
		Category: category,
		SkinType: skinType,
		MaxPrice: maxPrice,
	})

	if len(products) == 0 {
		printlnFn("No products match those filters.")
		return nil
	}

	for _, p := range products {
		price := fmt.Sprintf("$%.2f", p.Price)
		if p.OnSale {
			price = fmt.Sprintf("$%.2f (was $%.2f)", p.Price, p.OriginalPrice)
		}
		printlnFn(fmt.Sprintf("[%s] %s - %s, %s, %.1f★ (%d reviews), %s",
			p.ID, p.Name, p.Brand, p.Category, p.Rating, p.Reviews, price))
	}

	return a.shopActions(ctx)
}

// shopActions handles post-listing commands: "w <id>" toggles the wishlist,
// "c <id>" adds to the cart, empty input goes back.
func (a *App) shopActions(ctx context.Context) error {
	for {
		line, err := getSimpleText(a.reader, "w <id> = wishlist, c <id> = cart, Enter = back", os.Stdout)
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		parts := strings.Fields(line)
		if len(parts) != 2 {
			printlnFn("Usage: w <id> or c <id>")
			continue
		}

		id := parts[1]
		if _, ok := catalog.ProductByID(id); !ok {
			printlnFn("Unknown product id:", id)
			continue
		}

		switch parts[0] {
		case "w":
			in, err := a.store.Wishlist.Toggle(ctx, id)
			if err != nil {
				printlnFn("Wishlist update failed:", err.Error())
				continue
			}
			if in {
				printlnFn("Added to wishlist.")
			} else {
				printlnFn("Removed from wishlist.")
			}

		case "c":
			if err := a.store.Cart.Add(ctx, id); err != nil {
				printlnFn("Cart update failed:", err.Error())
				continue
			}
			printlnFn("Added to cart.")

		default:
			printlnFn("Usage: w <id> or c <id>")
		}
	}
}
