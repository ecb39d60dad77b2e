package analysis

import (
	"sync"

	"github.com/beautyease/beautyease/internal/client/capture"
)

// Operation is an in-flight analysis run. The run itself cannot be
// cancelled, but the caller can Abandon the operation so a result arriving
// after the caller has moved on is silently dropped.
type Operation struct {
	mu        sync.Mutex
	abandoned bool
	result    *Result
	err       error
	done      chan struct{}
}

// Start runs a.Analyze(still) on its own goroutine and returns a handle to
// the in-flight run.
func Start(a Analyzer, still capture.Still) *Operation {
	op := &Operation{done: make(chan struct{})}

	go func() {
		result, err := a.Analyze(still)

		op.mu.Lock()
		if !op.abandoned {
			op.result = result
			op.err = err
		}
		op.mu.Unlock()
		close(op.done)
	}()

	return op
}

// Done is closed once the run has finished, whether or not it was abandoned.
func (op *Operation) Done() <-chan struct{} {
	return op.done
}

// Result returns the outcome of a finished run. It returns (nil, nil) if
// the operation was abandoned before the run completed.
func (op *Operation) Result() (*Result, error) {
	op.mu.Lock()
	defer op.mu.Unlock()
	return op.result, op.err
}

// Abandon marks the operation as no longer wanted. The background run keeps
// going to completion but its outcome is discarded.
func (op *Operation) Abandon() {
	op.mu.Lock()
	op.abandoned = true
	op.result = nil
	op.err = nil
	op.mu.Unlock()
}
