package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/beautyease/beautyease/internal/client/analysis"
	"github.com/beautyease/beautyease/internal/client/capture"
	"github.com/beautyease/beautyease/internal/client/localstore"
	"github.com/beautyease/beautyease/internal/client/session"
	"github.com/beautyease/beautyease/internal/logging"
	"github.com/beautyease/beautyease/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func stubInputs(t *testing.T, lines []string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	i := 0
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if i >= len(lines) {
			return "", io.EOF
		}
		line := lines[i]
		i++
		return line, nil
	}
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

type stubAPI struct {
	registerCalls int
	loginCalls    int
}

func (f *stubAPI) Ping(ctx context.Context) error { return nil }
func (f *stubAPI) Register(ctx context.Context, req wire.RegisterRequest) (*wire.TokenResponse, error) {
	f.registerCalls++
	return &wire.TokenResponse{AccessToken: "at", RefreshToken: "rt", UserID: "u1"}, nil
}
func (f *stubAPI) Login(ctx context.Context, req wire.LoginRequest) (*wire.TokenResponse, error) {
	f.loginCalls++
	return &wire.TokenResponse{AccessToken: "at", RefreshToken: "rt", UserID: "u1"}, nil
}
func (f *stubAPI) Refresh(ctx context.Context, token string) (*wire.TokenResponse, error) {
	return &wire.TokenResponse{AccessToken: "at", RefreshToken: "rt", UserID: "u1"}, nil
}
func (f *stubAPI) Logout(ctx context.Context, token string) error { return nil }
func (f *stubAPI) GetProfile(ctx context.Context, token string) (*wire.Profile, error) {
	return &wire.Profile{ID: "u1", Email: "user@example.com", FullName: "Sam"}, nil
}
func (f *stubAPI) UpdateProfile(ctx context.Context, token string, patch wire.ProfilePatch) (*wire.Profile, error) {
	return &wire.Profile{ID: "u1", FullName: "Sam"}, nil
}
func (f *stubAPI) SaveScan(ctx context.Context, token string, req wire.SaveScanRequest) (*wire.Scan, error) {
	return &wire.Scan{ID: "scan-1"}, nil
}
func (f *stubAPI) ListScans(ctx context.Context, token string, limit int) ([]wire.Scan, error) {
	return nil, nil
}
func (f *stubAPI) UploadURL(ctx context.Context, token string) (*wire.UploadURLResponse, error) {
	return &wire.UploadURLResponse{Key: "k", URL: "http://storage"}, nil
}
func (f *stubAPI) UploadStill(ctx context.Context, url string, mime string, data []byte) error {
	return nil
}
func (f *stubAPI) DownloadURL(ctx context.Context, token string, key string) (string, error) {
	return "http://storage/get/" + key, nil
}

func newTestApp(t *testing.T, apiClient *stubAPI) *App {
	t.Helper()
	store, err := localstore.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	return &App{
		logger:    logger,
		apiClient: apiClient,
		session:   session.New(apiClient, store.Metadata, logger),
		store:     store,
		capture:   capture.NewController(&capture.FileDevice{}),
		analyzer:  analysis.NewMockAnalyzer(nil, 0),
		reader:    bufio.NewReader(strings.NewReader("")),
	}
}

func TestRegister_BlankNameNeverCallsAPI(t *testing.T) {
	silencePrintln(t)
	api := &stubAPI{}
	a := newTestApp(t, api)

	restore := stubInputs(t, []string{"user@example.com", "  "}, []byte("secret"))
	defer restore()

	err := a.Register(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, api.registerCalls)
	assert.False(t, a.isLoggedIn())
}

func TestRegister_Success(t *testing.T) {
	silencePrintln(t)
	api := &stubAPI{}
	a := newTestApp(t, api)

	restore := stubInputs(t, []string{"user@example.com", "Sam"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, 1, api.registerCalls)
	assert.True(t, a.isLoggedIn())
}

func TestOpen_SignedOutRedirectsToAuth(t *testing.T) {
	silencePrintln(t)
	api := &stubAPI{}
	a := newTestApp(t, api)

	// the redirect lands on the login prompt
	restore := stubInputs(t, []string{"user@example.com"}, []byte("secret"))
	defer restore()

	require.NoError(t, a.Open(context.Background(), "/shop"))
	assert.Equal(t, 1, api.loginCalls)
	assert.True(t, a.isLoggedIn())
}

func TestOpen_SignedInAuthLandsOnDashboard(t *testing.T) {
	silencePrintln(t)
	api := &stubAPI{}
	a := newTestApp(t, api)

	restore := stubInputs(t, []string{"user@example.com"}, []byte("secret"))
	defer restore()
	require.NoError(t, a.Login(context.Background()))

	// no further login prompts expected; dashboard renders instead
	require.NoError(t, a.Open(context.Background(), "/auth"))
	assert.Equal(t, 1, api.loginCalls)
}

func TestOpen_UnknownPath(t *testing.T) {
	silencePrintln(t)
	a := newTestApp(t, &stubAPI{})

	err := a.Open(context.Background(), "/admin")
	assert.Error(t, err)
}
