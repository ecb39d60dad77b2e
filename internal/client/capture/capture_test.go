package capture

import (
	"context"
	"errors"
	"testing"

	"github.com/beautyease/beautyease/internal/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	frame    Still
	frameErr error
	stops    int
}

func (f *fakeSource) Frame() (Still, error) {
	return f.frame, f.frameErr
}

func (f *fakeSource) Stop() {
	f.stops++
}

type fakeDevice struct {
	source     *fakeSource
	acquireErr error
	acquires   int
}

func (f *fakeDevice) Acquire(ctx context.Context, c Constraints) (LiveSource, error) {
	f.acquires++
	if f.acquireErr != nil {
		return nil, f.acquireErr
	}
	return f.source, nil
}

func TestStartLiveThenCaptureFrame(t *testing.T) {
	src := &fakeSource{frame: Still{MIME: "image/jpeg", Data: []byte{0x01}}}
	dev := &fakeDevice{source: src}
	c := NewController(dev)

	require.Equal(t, Idle, c.State())
	require.NoError(t, c.StartLive(context.Background()))
	assert.Equal(t, LiveCapturing, c.State())

	still, err := c.CaptureFrame()
	require.NoError(t, err)
	assert.Equal(t, StillCaptured, c.State())
	assert.Equal(t, "image/jpeg", still.MIME)
	assert.Equal(t, 1, src.stops, "device must be released after capture")
}

func TestStartLiveDeviceUnavailable(t *testing.T) {
	dev := &fakeDevice{acquireErr: errors.New("permission denied")}
	c := NewController(dev)

	err := c.StartLive(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrDeviceUnavailable)
	assert.Equal(t, Idle, c.State())
}

func TestCaptureFrameErrorStillReleasesDevice(t *testing.T) {
	src := &fakeSource{frameErr: errors.New("stream ended")}
	dev := &fakeDevice{source: src}
	c := NewController(dev)

	require.NoError(t, c.StartLive(context.Background()))
	_, err := c.CaptureFrame()
	require.Error(t, err)
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, src.stops, "device must be released on frame errors too")
}

func TestCancelReleasesDevice(t *testing.T) {
	src := &fakeSource{}
	dev := &fakeDevice{source: src}
	c := NewController(dev)

	require.NoError(t, c.StartLive(context.Background()))
	c.Cancel()
	assert.Equal(t, Idle, c.State())
	assert.Equal(t, 1, src.stops)

	// repeated cancels are no-ops
	c.Cancel()
	assert.Equal(t, 1, src.stops)
}

func TestStartLiveTwiceFails(t *testing.T) {
	dev := &fakeDevice{source: &fakeSource{}}
	c := NewController(dev)

	require.NoError(t, c.StartLive(context.Background()))
	err := c.StartLive(context.Background())
	assert.Error(t, err)
	assert.Equal(t, 1, dev.acquires)
}

func TestLoadFromFileNeverTouchesDevice(t *testing.T) {
	dev := &fakeDevice{source: &fakeSource{}}
	c := NewController(dev)

	// minimal PNG header so content sniffing reports an image
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}
	still, err := c.LoadFromFile(png)
	require.NoError(t, err)
	assert.Equal(t, StillCaptured, c.State())
	assert.Equal(t, "image/png", still.MIME)
	assert.Equal(t, 0, dev.acquires, "file upload must not acquire the device")
}

func TestLoadFromFileRejectsNonImage(t *testing.T) {
	c := NewController(&fakeDevice{})

	_, err := c.LoadFromFile([]byte("just some text, definitely not pixels"))
	require.Error(t, err)
	assert.ErrorIs(t, err, shared.ErrValidation)
	assert.Equal(t, Idle, c.State())

	_, err = c.LoadFromFile(nil)
	assert.ErrorIs(t, err, shared.ErrValidation)
}

func TestResetDiscardsStill(t *testing.T) {
	c := NewController(&fakeDevice{})
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

	_, err := c.LoadFromFile(png)
	require.NoError(t, err)
	require.NotNil(t, c.Still())

	c.Reset()
	assert.Equal(t, Idle, c.State())
	assert.Nil(t, c.Still())
}

func TestCloseDuringLiveReleasesDevice(t *testing.T) {
	src := &fakeSource{}
	dev := &fakeDevice{source: src}
	c := NewController(dev)

	require.NoError(t, c.StartLive(context.Background()))
	c.Close()
	assert.Equal(t, 1, src.stops)
	assert.Equal(t, Idle, c.State())
}
