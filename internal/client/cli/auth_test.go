package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/daybookapp/daybook/internal/client/api"
	"github.com/daybookapp/daybook/internal/client/config"
	"github.com/daybookapp/daybook/internal/client/localdb"
	"github.com/daybookapp/daybook/internal/client/models"
	"github.com/daybookapp/daybook/internal/client/personalization"
	"github.com/daybookapp/daybook/internal/common"
	"github.com/daybookapp/daybook/internal/logging"
)

func stubInputs(t *testing.T, username string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// fakeClient implements api.Client in memory and records what was called.
type fakeClient struct {
	regUser, regPass      string
	regErr                error
	loginInfo             *models.SessionInfo
	loginErr              error
	logoutCalled          bool
	setAccess, setRefresh string

	settings *models.Settings
	putCalls int

	savedDraft  *models.Draft
	listOpts    api.ListOptions
	listResult  []models.Entry
	listErr     error
	deletedDate string

	presignKey, presignURL string
	inviteCode             string
	acceptedCode           string
	removeCalled           bool
}

func (f *fakeClient) Close() error                          { return nil }
func (f *fakeClient) SetTokens(access, refresh string)      { f.setAccess, f.setRefresh = access, refresh }
func (f *fakeClient) OnTokens(func(access, refresh string)) {}
func (f *fakeClient) Ping(context.Context) error            { return nil }

func (f *fakeClient) Register(_ context.Context, username, password string) error {
	f.regUser, f.regPass = username, password
	return f.regErr
}

func (f *fakeClient) Login(_ context.Context, username, password string) (*models.SessionInfo, error) {
	return f.loginInfo, f.loginErr
}

func (f *fakeClient) Logout(context.Context) error {
	f.logoutCalled = true
	return nil
}

func (f *fakeClient) SaveEntry(_ context.Context, draft *models.Draft) (*models.Entry, error) {
	f.savedDraft = draft.Clone()
	return &models.Entry{Date: draft.Date, Content: draft.Content}, nil
}

func (f *fakeClient) ListEntries(_ context.Context, opts api.ListOptions) ([]models.Entry, error) {
	f.listOpts = opts
	return f.listResult, f.listErr
}

func (f *fakeClient) DeleteEntry(_ context.Context, date string) error {
	f.deletedDate = date
	return nil
}

func (f *fakeClient) GetSettings(context.Context) (*models.Settings, error) {
	if f.settings == nil {
		return nil, common.ErrorNotFound
	}
	return f.settings, nil
}

func (f *fakeClient) PutSettings(_ context.Context, s *models.Settings) error {
	f.putCalls++
	return nil
}

func (f *fakeClient) PresignPut(context.Context, string) (string, string, error) {
	return f.presignKey, f.presignURL, nil
}

func (f *fakeClient) PresignGet(context.Context, string) (string, error) {
	return f.presignURL, nil
}

func (f *fakeClient) CreatePairInvite(context.Context) (string, error) {
	return f.inviteCode, nil
}

func (f *fakeClient) AcceptPairInvite(_ context.Context, code string) error {
	f.acceptedCode = code
	return nil
}

func (f *fakeClient) RemovePartner(context.Context) error {
	f.removeCalled = true
	return nil
}

var _ api.Client = (*fakeClient)(nil)

// fakeSessionRepo is an in-memory session.Repository.
type fakeSessionRepo struct {
	values  map[string]string
	cleared bool
}

func (f *fakeSessionRepo) Get(_ context.Context, name string) (string, error) {
	v, ok := f.values[name]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeSessionRepo) Set(_ context.Context, name, value string) error {
	f.values[name] = value
	return nil
}

func (f *fakeSessionRepo) Clear(context.Context) error {
	f.values = map[string]string{}
	f.cleared = true
	return nil
}

// fakeBackupsRepo is an in-memory backups.Repository.
type fakeBackupsRepo struct {
	values  map[string]string
	removed []string
}

func (f *fakeBackupsRepo) Get(_ context.Context, key string) (string, error) {
	v, ok := f.values[key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return v, nil
}

func (f *fakeBackupsRepo) Set(_ context.Context, key, value string) error {
	f.values[key] = value
	return nil
}

func (f *fakeBackupsRepo) Remove(_ context.Context, key string) error {
	delete(f.values, key)
	f.removed = append(f.removed, key)
	return nil
}

func newTestApp(t *testing.T) (*App, *fakeClient, *fakeSessionRepo, *fakeBackupsRepo) {
	t.Helper()

	fc := &fakeClient{}
	fs := &fakeSessionRepo{values: map[string]string{}}
	fb := &fakeBackupsRepo{values: map[string]string{}}

	cfg := &config.Config{}
	cfg.LoadDefaults()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	a := &App{
		config: cfg,
		client: fc,
		repos:  &localdb.Repositories{Backups: fb, Session: fs},
		logger: logger,
		reader: bufio.NewReader(strings.NewReader("")),
	}
	a.personal = personalization.NewManager(personalization.Params{
		Sink:     personalization.NewMapSink(),
		Settings: fc,
		Logger:   logger,
		Debounce: time.Hour,
	})
	t.Cleanup(a.personal.Close)

	return a, fc, fs, fb
}

func TestRegister_Success(t *testing.T) {
	a, fc, _, _ := newTestApp(t)

	restore := stubInputs(t, "alice", []byte("correcthorse"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if fc.regUser != "alice" || fc.regPass != "correcthorse" {
		t.Fatalf("credentials not forwarded: %q/%q", fc.regUser, fc.regPass)
	}
}

func TestLogin_PersistsSessionAndAppliesSettings(t *testing.T) {
	a, fc, fs, _ := newTestApp(t)
	fc.loginInfo = &models.SessionInfo{UserID: "u1", Username: "alice"}
	fc.settings = &models.Settings{Theme: "forest"}

	restore := stubInputs(t, "alice", []byte("correcthorse"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}

	if a.userID != "u1" || a.userName != "alice" {
		t.Fatalf("identity not set: %q/%q", a.userID, a.userName)
	}
	if !a.isLoggedIn() {
		t.Fatal("expected logged in")
	}
	if a.Mode != ModeOnline {
		t.Fatalf("mode = %s, want online", a.Mode)
	}
	if fs.values["user_id"] != "u1" || fs.values["username"] != "alice" {
		t.Fatalf("session not persisted: %+v", fs.values)
	}
	if got := a.personal.Config().Theme; got != "forest" {
		t.Fatalf("stored theme not applied: %q", got)
	}
}

func TestRestoreSession_AppliesStoredSettings(t *testing.T) {
	a, fc, fs, _ := newTestApp(t)
	fc.settings = &models.Settings{Theme: "forest"}
	fs.values = map[string]string{
		"access_token":  "at",
		"refresh_token": "rt",
		"user_id":       "u1",
		"username":      "alice",
	}

	a.restoreSession(context.Background())

	if !a.isLoggedIn() || a.userName != "alice" {
		t.Fatalf("session not restored: %q/%q", a.userID, a.userName)
	}
	if fc.setAccess != "at" || fc.setRefresh != "rt" {
		t.Fatalf("tokens not seeded: %q/%q", fc.setAccess, fc.setRefresh)
	}
	if got := a.personal.Config().Theme; got != "forest" {
		t.Fatalf("stored theme not applied on restore: %q", got)
	}
}

func TestRestoreSession_PartialStateIgnored(t *testing.T) {
	a, fc, fs, _ := newTestApp(t)
	fc.settings = &models.Settings{Theme: "forest"}
	fs.values = map[string]string{"access_token": "at"}

	a.restoreSession(context.Background())

	if a.isLoggedIn() {
		t.Fatal("incomplete session must not log in")
	}
	if got := a.personal.Config().Theme; got == "forest" {
		t.Fatal("settings must not load without a session")
	}
}

func TestLogin_FailureKeepsLoggedOut(t *testing.T) {
	a, fc, _, _ := newTestApp(t)
	fc.loginErr = common.ErrorUnauthorized

	restore := stubInputs(t, "alice", []byte("wrong"))
	defer restore()

	if err := a.Login(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if a.isLoggedIn() {
		t.Fatal("should not be logged in")
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	a, fc, fs, _ := newTestApp(t)
	a.userID, a.userName = "u1", "alice"
	fs.values["access_token"] = "at"

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}

	if !fc.logoutCalled {
		t.Fatal("server logout not attempted")
	}
	if !fs.cleared {
		t.Fatal("session not cleared")
	}
	if fc.setAccess != "" || fc.setRefresh != "" {
		t.Fatal("tokens not dropped")
	}
	if a.isLoggedIn() {
		t.Fatal("still logged in")
	}
}
