package analysis

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/beautyease/beautyease/internal/client/capture"
	"github.com/beautyease/beautyease/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStill() capture.Still {
	return capture.Still{MIME: "image/jpeg", Data: []byte{0xff, 0xd8, 0xff}}
}

func TestAnalyzeRanges(t *testing.T) {
	a := NewMockAnalyzer(rand.New(rand.NewSource(1)), 0)

	seenTypes := map[string]bool{}
	seenDoctor := map[bool]bool{}

	for i := 0; i < 500; i++ {
		r, err := a.Analyze(testStill())
		require.NoError(t, err)

		assert.Contains(t, skinTypes, r.SkinType)
		seenTypes[r.SkinType] = true
		seenDoctor[r.NeedsDoctor] = true

		assert.GreaterOrEqual(t, r.Score, 70)
		assert.LessOrEqual(t, r.Score, 99)
		assert.GreaterOrEqual(t, r.Confidence, 85)
		assert.LessOrEqual(t, r.Confidence, 99)

		require.GreaterOrEqual(t, len(r.Concerns), 1)
		require.LessOrEqual(t, len(r.Concerns), 3)
		for j, c := range r.Concerns {
			assert.Equal(t, concernPool[j], c, "concerns must be a prefix of the pool")
		}

		assert.Len(t, r.Recommendations.Products, 4)
		assert.Len(t, r.Recommendations.Treatments, 3)
		assert.Len(t, r.Recommendations.HomeRemedies, 3)
	}

	// 500 independent draws should exercise the whole support
	assert.Len(t, seenTypes, len(skinTypes))
	assert.Len(t, seenDoctor, 2)
}

func TestAnalyzeDrawsAreIndependent(t *testing.T) {
	a := NewMockAnalyzer(rand.New(rand.NewSource(42)), 0)

	distinct := map[string]bool{}
	for i := 0; i < 50; i++ {
		r, err := a.Analyze(testStill())
		require.NoError(t, err)
		distinct[r.SkinType] = true
	}
	assert.Greater(t, len(distinct), 1, "consecutive runs must not repeat a single outcome")
}

func TestAnalyzeEmptyStill(t *testing.T) {
	a := NewMockAnalyzer(rand.New(rand.NewSource(1)), 0)

	_, err := a.Analyze(capture.Still{})
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestProfileSkinTypeMapping(t *testing.T) {
	r := &Result{SkinType: "Combination"}
	assert.Equal(t, shared.SkinTypeCombination, r.ProfileSkinType())

	r = &Result{SkinType: "Oily"}
	assert.Equal(t, shared.SkinTypeOily, r.ProfileSkinType())

	r = &Result{SkinType: "Radiant"}
	assert.Equal(t, "", r.ProfileSkinType())
}

type fixedAnalyzer struct {
	result *Result
	err    error
	block  chan struct{}
}

func (f *fixedAnalyzer) Analyze(still capture.Still) (*Result, error) {
	if f.block != nil {
		<-f.block
	}
	return f.result, f.err
}

func TestOperationDeliversResult(t *testing.T) {
	want := &Result{SkinType: "Dry", Score: 80}
	op := Start(&fixedAnalyzer{result: want}, testStill())

	select {
	case <-op.Done():
	case <-time.After(time.Second):
		t.Fatal("operation did not finish")
	}

	got, err := op.Result()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestOperationAbandonDropsResult(t *testing.T) {
	block := make(chan struct{})
	op := Start(&fixedAnalyzer{result: &Result{SkinType: "Oily"}, block: block}, testStill())

	op.Abandon()
	close(block)

	select {
	case <-op.Done():
	case <-time.After(time.Second):
		t.Fatal("operation did not finish")
	}

	got, err := op.Result()
	assert.Nil(t, got)
	assert.NoError(t, err)
}

func TestOperationPropagatesError(t *testing.T) {
	wantErr := errors.New("engine failure")
	op := Start(&fixedAnalyzer{err: wantErr}, testStill())

	<-op.Done()
	got, err := op.Result()
	assert.Nil(t, got)
	assert.ErrorIs(t, err, wantErr)
}
