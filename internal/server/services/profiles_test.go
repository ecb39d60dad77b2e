package services

import (
	"context"
	"errors"
	"testing"

	"github.com/beautyease/beautyease/internal/server/models"
	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

func strPtr(s string) *string { return &s }

func TestProfileUpdate_PartialPatch(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		p: &fakeProfilesRepo{getOut: &models.Profile{
			UserID:   "u1",
			Email:    "user@example.com",
			FullName: "Sam",
			SkinType: shared.SkinTypeOily,
			AgeRange: "18-25",
		}},
	}
	s := NewProfileService(db, rm)

	updated, err := s.Update(context.Background(), "u1", &wire.ProfilePatch{
		FullName: strPtr("Sam Lee"),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.FullName != "Sam Lee" {
		t.Fatalf("full name not applied: %+v", updated)
	}
	if updated.SkinType != shared.SkinTypeOily || updated.AgeRange != "18-25" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestProfileUpdate_ClearSkinType(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{
		p: &fakeProfilesRepo{getOut: &models.Profile{UserID: "u1", SkinType: shared.SkinTypeDry}},
	}
	s := NewProfileService(db, rm)

	updated, err := s.Update(context.Background(), "u1", &wire.ProfilePatch{SkinType: strPtr("")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.SkinType != "" {
		t.Fatalf("skin type not cleared: %+v", updated)
	}
}

func TestProfileUpdate_Rejections(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakeProfilesRepo{getOut: &models.Profile{UserID: "u1"}}}
	s := NewProfileService(db, rm)

	cases := []struct {
		name  string
		patch wire.ProfilePatch
	}{
		{"unknown skin type", wire.ProfilePatch{SkinType: strPtr("radiant")}},
		{"empty full name", wire.ProfilePatch{FullName: strPtr("")}},
		{"unknown age range", wire.ProfilePatch{AgeRange: strPtr("0-99")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Update(context.Background(), "u1", &tc.patch)
			if !errors.Is(err, shared.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
			if rm.p.updated != nil {
				t.Fatalf("rejected patch must not be written: %+v", rm.p.updated)
			}
		})
	}
}

func TestProfileGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{p: &fakeProfilesRepo{getErr: shared.ErrNotFound}}
	s := NewProfileService(db, rm)

	_, err := s.Get(context.Background(), "missing")
	if !errors.Is(err, shared.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
