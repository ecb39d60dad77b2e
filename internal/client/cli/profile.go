package cli

import (
	"context"
	"os"
	"strings"

	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

// ProfileView shows the stored profile and offers a field-by-field edit.
// Pressing Enter keeps a field unchanged, so untouched fields are never
// sent in the patch.
func (a *App) ProfileView(ctx context.Context) error {
	p := a.session.Profile()
	if p == nil {
		printlnFn("No profile loaded.")
		return nil
	}

	printlnFn("Email:        ", p.Email)
	printlnFn("Full name:    ", p.FullName)
	printlnFn("Skin type:    ", orUnset(p.SkinType))
	printlnFn("Skin concerns:", orUnset(strings.Join(p.SkinConcerns, ", ")))
	printlnFn("Age range:    ", orUnset(p.AgeRange))

	edit, err := GetChoice(a.reader, "Edit profile?", []string{"y", "n"}, "n", os.Stdout)
	if err != nil || edit != "y" {
		return err
	}

	var patch wire.ProfilePatch

	name, err := getSimpleText(a.reader, "Full name (Enter to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name != "" {
		patch.FullName = &name
	}

	skinType, err := GetChoice(a.reader, "Skin type",
		append(append([]string{}, shared.SkinTypes...), "keep"), "keep", os.Stdout)
	if err != nil {
		return err
	}
	if skinType != "keep" {
		patch.SkinType = &skinType
	}

	printlnFn("Concerns:", strings.Join(shared.ProfileConcerns, ", "))
	concernsText, err := getSimpleText(a.reader, "Your concerns, comma-separated (Enter to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if concernsText != "" {
		concerns := splitConcerns(concernsText)
		patch.SkinConcerns = &concerns
	}

	ageRange, err := GetChoice(a.reader, "Age range",
		append(append([]string{}, shared.AgeRanges...), "keep"), "keep", os.Stdout)
	if err != nil {
		return err
	}
	if ageRange != "keep" {
		patch.AgeRange = &ageRange
	}

	if patch.FullName == nil && patch.SkinType == nil && patch.SkinConcerns == nil && patch.AgeRange == nil {
		printlnFn("Nothing to change.")
		return nil
	}

	if _, err := a.session.UpdateProfile(ctx, patch); err != nil {
		printlnFn(err.Error())
		return err
	}
	printlnFn("Profile saved.")
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}

func splitConcerns(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
