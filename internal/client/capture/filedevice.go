package capture

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
)

// FileDevice plays the role of a camera by streaming frames from an image
// file on disk. An empty or unreadable path behaves like a missing or
// permission-denied camera.
type FileDevice struct {
	Path string
}

func (d *FileDevice) Acquire(ctx context.Context, c Constraints) (LiveSource, error) {
	if d.Path == "" {
		return nil, errors.New("no camera source configured")
	}

	data, err := os.ReadFile(d.Path)
	if err != nil {
		return nil, err
	}

	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, errors.New("camera source is not an image")
	}

	return &fileSource{still: Still{MIME: mime, Data: data}}, nil
}

type fileSource struct {
	still   Still
	stopped bool
}

func (s *fileSource) Frame() (Still, error) {
	if s.stopped {
		return Still{}, errors.New("source is stopped")
	}
	return s.still, nil
}

func (s *fileSource) Stop() {
	s.stopped = true
}
