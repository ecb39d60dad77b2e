// Package analysis produces skin assessments from captured stills. The only
// implementation today is a mock that simulates processing time and draws a
// plausible result at random; the interface keeps a real engine swappable.
package analysis

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/beautyease/beautyease/internal/client/capture"
	"github.com/beautyease/beautyease/internal/shared"
)

// Recommendations groups the advice attached to an assessment.
type Recommendations struct {
	Products     []string
	Treatments   []string
	HomeRemedies []string
}

// Result is a completed skin assessment.
type Result struct {
	SkinType        string
	Concerns        []string
	Score           int
	Confidence      int
	Recommendations Recommendations
	NeedsDoctor     bool
}

// ProfileSkinType maps the assessment's display skin type onto the profile
// enum, or "" when it has no counterpart.
func (r *Result) ProfileSkinType() string {
	lowered := strings.ToLower(r.SkinType)
	if shared.ValidSkinType(lowered) {
		return lowered
	}
	return ""
}

// Analyzer assesses a single still. Analyze blocks for the duration of the
// run and cannot be cancelled; wrap it in an Operation to let the caller
// walk away.
type Analyzer interface {
	Analyze(still capture.Still) (*Result, error)
}

// Display-form skin types, in draw order.
var skinTypes = []string{"Combination", "Oily", "Dry", "Normal", "Sensitive"}

// Candidate concerns; a random-length prefix is reported.
var concernPool = []string{"Mild acne", "Dark spots", "Fine lines", "Dry patches", "Enlarged pores"}

var recommendedProducts = []string{
	"Gentle foaming cleanser",
	"Niacinamide serum",
	"Hyaluronic acid moisturizer",
	"SPF 30+ sunscreen",
}

var recommendedTreatments = []string{
	"Chemical exfoliation 2x/week",
	"Face mask 1x/week",
	"Professional facial monthly",
}

var recommendedHomeRemedies = []string{
	"Green tea compress for inflammation",
	"Honey mask for hydration",
	"Oatmeal scrub for gentle exfoliation",
}

// DefaultDelay approximates real processing time.
const DefaultDelay = 3 * time.Second

// MockAnalyzer draws results from fixed distributions after a simulated
// processing delay. Safe for concurrent use; draws from the shared rng are
// serialized.
type MockAnalyzer struct {
	mu    sync.Mutex
	rng   *rand.Rand
	delay time.Duration
}

// NewMockAnalyzer builds an analyzer around the given source of randomness.
// A nil rng gets a time-seeded one. Use a zero delay in tests.
func NewMockAnalyzer(rng *rand.Rand, delay time.Duration) *MockAnalyzer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MockAnalyzer{rng: rng, delay: delay}
}

// Analyze sleeps for the configured delay, then draws an independent result:
// one of five skin types, a one-to-three concern subset, a score in [70,99],
// a confidence in [85,99], and a 30% chance of a doctor referral.
func (a *MockAnalyzer) Analyze(still capture.Still) (*Result, error) {
	if len(still.Data) == 0 {
		return nil, fmt.Errorf("%w: no image to analyze", shared.ErrValidation)
	}

	time.Sleep(a.delay)

	a.mu.Lock()
	skinType := skinTypes[a.rng.Intn(len(skinTypes))]
	concernCount := a.rng.Intn(3) + 1
	score := a.rng.Intn(30) + 70
	confidence := a.rng.Intn(15) + 85
	needsDoctor := a.rng.Float64() > 0.7
	a.mu.Unlock()

	concerns := make([]string, concernCount)
	copy(concerns, concernPool[:concernCount])

	return &Result{
		SkinType:   skinType,
		Concerns:   concerns,
		Score:      score,
		Confidence: confidence,
		Recommendations: Recommendations{
			Products:     append([]string(nil), recommendedProducts...),
			Treatments:   append([]string(nil), recommendedTreatments...),
			HomeRemedies: append([]string(nil), recommendedHomeRemedies...),
		},
		NeedsDoctor: needsDoctor,
	}, nil
}
