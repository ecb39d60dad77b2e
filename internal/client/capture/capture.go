// Package capture manages access to an imaging device and produces encoded
// stills for analysis. A Controller owns at most one live source at a time
// and guarantees the device is released on every exit path.
package capture

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/beautyease/beautyease/internal/shared"
)

// State describes the controller's capture lifecycle.
type State int

const (
	// Idle means no live source is held and no still is staged.
	Idle State = iota
	// LiveCapturing means a live source is held and streaming frames.
	LiveCapturing
	// StillCaptured means a still is staged and the device is released.
	StillCaptured
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case LiveCapturing:
		return "live"
	case StillCaptured:
		return "still"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Still is an encoded image ready for analysis or upload.
type Still struct {
	MIME string
	Data []byte
}

// Constraints requests a preferred stream geometry from the device.
type Constraints struct {
	FacingMode string
	Width      int
	Height     int
}

// DefaultConstraints asks for a front-facing 1280x720 stream.
func DefaultConstraints() Constraints {
	return Constraints{FacingMode: "user", Width: 1280, Height: 720}
}

// LiveSource is an acquired device stream. Stop must be idempotent and must
// release the underlying hardware.
type LiveSource interface {
	// Frame returns the current frame as an encoded still.
	Frame() (Still, error)
	// Stop releases the underlying device tracks.
	Stop()
}

// Device abstracts the imaging hardware. Acquire returns
// shared.ErrDeviceUnavailable when permission is denied or no device exists.
type Device interface {
	Acquire(ctx context.Context, c Constraints) (LiveSource, error)
}

// Controller drives the capture state machine:
//
//	Idle -> LiveCapturing (StartLive)
//	LiveCapturing -> StillCaptured (CaptureFrame)
//	LiveCapturing -> Idle (Cancel)
//	Idle -> StillCaptured (LoadFromFile)
//	StillCaptured -> Idle (Reset)
//
// The device is released on every transition out of LiveCapturing,
// error paths included.
type Controller struct {
	mu     sync.Mutex
	device Device
	state  State
	live   LiveSource
	still  *Still
}

func NewController(device Device) *Controller {
	return &Controller{device: device, state: Idle}
}

// State reports the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Still returns the staged still, or nil when none is staged.
func (c *Controller) Still() *Still {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.still
}

// StartLive acquires the device and enters LiveCapturing. Acquisition
// failures surface as shared.ErrDeviceUnavailable so the caller can offer
// the file-upload fallback instead.
func (c *Controller) StartLive(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != Idle {
		return fmt.Errorf("cannot start live capture in state %s", c.state)
	}

	live, err := c.device.Acquire(ctx, DefaultConstraints())
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrDeviceUnavailable, err.Error())
	}

	c.live = live
	c.state = LiveCapturing
	return nil
}

// CaptureFrame freezes the current frame as the staged still and releases
// the device. The device is released even when grabbing the frame fails,
// in which case the controller returns to Idle.
func (c *Controller) CaptureFrame() (*Still, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != LiveCapturing {
		return nil, fmt.Errorf("cannot capture frame in state %s", c.state)
	}

	still, err := c.live.Frame()
	c.releaseLocked()

	if err != nil {
		c.state = Idle
		return nil, fmt.Errorf("failed to capture frame: %w", err)
	}

	c.still = &still
	c.state = StillCaptured
	return c.still, nil
}

// Cancel abandons a live session, releasing the device, and returns to Idle.
// Calling Cancel outside LiveCapturing is a no-op.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state != LiveCapturing {
		return
	}
	c.releaseLocked()
	c.state = Idle
}

// LoadFromFile stages a user-supplied image without ever touching the
// device. It enters StillCaptured on success.
func (c *Controller) LoadFromFile(data []byte) (*Still, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == LiveCapturing {
		return nil, fmt.Errorf("cannot load a file during live capture")
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty image file", shared.ErrValidation)
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%w: file is not an image (%s)", shared.ErrValidation, mime)
	}

	c.still = &Still{MIME: mime, Data: data}
	c.state = StillCaptured
	return c.still, nil
}

// Reset discards the staged still and returns to Idle. It also releases
// the device if a live session is somehow still active.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.releaseLocked()
	c.still = nil
	c.state = Idle
}

// Close tears the controller down, releasing any held device. Safe to call
// multiple times.
func (c *Controller) Close() {
	c.Reset()
}

func (c *Controller) releaseLocked() {
	if c.live != nil {
		c.live.Stop()
		c.live = nil
	}
}
