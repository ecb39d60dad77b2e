package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/beautyease/beautyease/internal/client/catalog"
)

// Makeup prompts for filter criteria and lists the matching tutorials.
func (a *App) Makeup(ctx context.Context) error {
	category, err := GetChoice(a.reader, "Category", catalog.TutorialCategories, catalog.WildcardAll, os.Stdout)
	if err != nil {
		return err
	}

	skinType, err := GetChoice(a.reader, "Skin type", catalog.FilterSkinTypes, catalog.WildcardAll, os.Stdout)
	if err != nil {
		return err
	}

	difficulty, err := GetChoice(a.reader, "Difficulty", catalog.Difficulties, catalog.WildcardAll, os.Stdout)
	if err != nil {
		return err
	}

	tutorials := catalog.FilterTutorials(catalog.Tutorials(), catalog.TutorialFilter{
		Category:   category,
		SkinType:   skinType,
		Difficulty: difficulty,
	})

	if len(tutorials) == 0 {
		printlnFn("No tutorials match those filters.")
		return nil
	}

	for _, t := range tutorials {
		printlnFn(fmt.Sprintf("[%s] %s (%s, %s, %.1f★, %d views)",
			t.ID, t.Title, t.Duration, t.Difficulty, t.Rating, t.Views))
		printlnFn("    " + t.Description)
	}
	return nil
}
