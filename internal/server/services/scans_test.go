package services

import (
	"context"
	"errors"
	"testing"

	"github.com/beautyease/beautyease/internal/shared"
	"github.com/beautyease/beautyease/internal/wire"
)

func TestScanSave_Success(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScansRepo{}}
	s := NewScanService(db, rm)

	scan, err := s.Save(context.Background(), "u1", &wire.SaveScanRequest{
		SkinType:   "Oily",
		Concerns:   []string{"Mild acne", "Dark spots"},
		Score:      82,
		Confidence: 91,
		Recommendations: wire.Recommendations{
			Products:           []string{"SPF 30+ sunscreen"},
			Treatments:         []string{"Face mask 1x/week"},
			HomeRemedies:       []string{"Honey mask for hydration"},
			DoctorConsultation: true,
		},
		ImageKey: "scans/u1/2026/08/29/abc",
	})
	if err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if scan.UserID != "u1" || scan.SkinType != "Oily" || !scan.NeedsDoctor {
		t.Fatalf("scan mapped wrong: %+v", scan)
	}
	if rm.s.created == nil || rm.s.created.ImageKey != "scans/u1/2026/08/29/abc" {
		t.Fatalf("scan not persisted: %+v", rm.s.created)
	}
}

func TestScanSave_ConcernBounds(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScansRepo{}}
	s := NewScanService(db, rm)

	_, err := s.Save(context.Background(), "u1", &wire.SaveScanRequest{SkinType: "Dry"})
	if !errors.Is(err, shared.ErrValidation) {
		t.Fatalf("want ErrValidation for empty concerns, got %v", err)
	}

	_, err = s.Save(context.Background(), "u1", &wire.SaveScanRequest{
		SkinType: "Dry",
		Concerns: []string{"a", "b", "c", "d"},
	})
	if !errors.Is(err, shared.ErrValidation) {
		t.Fatalf("want ErrValidation for four concerns, got %v", err)
	}
}

func TestScanList_LimitClamps(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{s: &fakeScansRepo{}}
	s := NewScanService(db, rm)

	if _, err := s.List(context.Background(), "u1", 0); err != nil {
		t.Fatal(err)
	}
	if rm.s.listLimit != 20 {
		t.Fatalf("default limit: want 20, got %d", rm.s.listLimit)
	}

	if _, err := s.List(context.Background(), "u1", 500); err != nil {
		t.Fatal(err)
	}
	if rm.s.listLimit != 100 {
		t.Fatalf("max limit: want 100, got %d", rm.s.listLimit)
	}

	if _, err := s.List(context.Background(), "u1", 7); err != nil {
		t.Fatal(err)
	}
	if rm.s.listLimit != 7 {
		t.Fatalf("explicit limit: want 7, got %d", rm.s.listLimit)
	}
}
