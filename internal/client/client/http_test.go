package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dmitrijs2005/ecocollect/internal/client/fakebackend"
	"github.com/dmitrijs2005/ecocollect/internal/client/models"
	"github.com/dmitrijs2005/ecocollect/internal/client/platform"
	"github.com/dmitrijs2005/ecocollect/internal/client/storage"
	"github.com/dmitrijs2005/ecocollect/internal/common"
	"github.com/dmitrijs2005/ecocollect/internal/logging"
)

type env struct {
	backend *fakebackend.Backend
	store   storage.Storage
	client  *HTTPClient
	logs    *observer.ObservedLogs
}

func newEnv(t *testing.T) *env {
	t.Helper()
	b := fakebackend.New()
	t.Cleanup(b.Close)

	core, logs := observer.New(zap.DebugLevel)
	store := storage.NewMemory("test")
	c := NewHTTPClient(b.URL()+"/", store, &platform.NativeAttacher{Platform: platform.Android}, logging.NewZapLogger(zap.New(core)))
	return &env{backend: b, store: store, client: c, logs: logs}
}

func (e *env) loginAs(t *testing.T, u models.User) {
	t.Helper()
	token := e.backend.AddUser("secret123", u)
	require.NoError(t, e.store.Set(context.Background(), common.CredentialKey, token))
}

func photo(t *testing.T, name, content string) models.Photo {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return models.Photo{URI: "file://" + path}
}

func TestLogin_Success(t *testing.T) {
	e := newEnv(t)
	e.backend.AddUser("secret123", models.User{Email: "a@b.com", Username: "a"})
	e.backend.NextToken = "tok-1"

	tokens, err := e.client.Login(context.Background(), models.Credentials{Email: "a@b.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tokens.AuthToken)

	req, ok := e.backend.Last(http.MethodPost, "/auth/token/login")
	require.True(t, ok)
	assert.Empty(t, req.Authorization)
	assert.NotEmpty(t, req.RequestID)
}

func TestLogin_FieldError(t *testing.T) {
	e := newEnv(t)

	_, err := e.client.Login(context.Background(), models.Credentials{Password: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "email: this field is required", apiErr.FieldMessage())
	assert.Equal(t, map[string]any{"email": []any{"this field is required"}}, apiErr.Payload)

	entries := e.logs.FilterMessage("api error").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(http.StatusBadRequest), entries[0].ContextMap()["status"])
	assert.Equal(t, apiErr.RequestID, entries[0].ContextMap()["request_id"])

	req, ok := e.backend.Last(http.MethodPost, "/auth/token/login")
	require.True(t, ok)
	assert.Equal(t, apiErr.RequestID, req.RequestID)
}

func TestCurrentUser_SendsStoredCredential(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com", Username: "a", Type: models.RoleIndividual})

	u, err := e.client.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", u.Username)

	token, _, _ := e.store.Get(context.Background(), common.CredentialKey)
	req, _ := e.backend.Last(http.MethodGet, "/auth/users/me/")
	assert.Equal(t, "Token "+token, req.Authorization)
}

func TestCurrentUser_CredentialReadOnEveryRequest(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com"})
	ctx := context.Background()

	_, err := e.client.CurrentUser(ctx)
	require.NoError(t, err)

	require.NoError(t, e.store.Remove(ctx, common.CredentialKey))
	_, err = e.client.CurrentUser(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	req, _ := e.backend.Last(http.MethodGet, "/auth/users/me/")
	assert.Empty(t, req.Authorization)
}

func TestErrorClasses(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com"})
	ctx := context.Background()

	e.backend.Fail(http.MethodGet, "/auth/users/me/", http.StatusServiceUnavailable, "")
	_, err := e.client.CurrentUser(ctx)
	require.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	e.backend.Fail(http.MethodGet, "/auth/users/me/", http.StatusForbidden, `{"detail":"nope"}`)
	_, err = e.client.CurrentUser(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "403")

	e.backend.Fail(http.MethodGet, "/auth/users/me/", http.StatusInternalServerError, "<html>boom</html>")
	_, err = e.client.CurrentUser(ctx)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Nil(t, apiErr.Payload)
	assert.Equal(t, []byte("<html>boom</html>"), apiErr.Body)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, storage.NewMemory("t"), nil, logging.Nop())
	_, err := c.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCanceledContextIsNotUnavailable(t *testing.T) {
	e := newEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.client.CurrentUser(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrUnavailable)
}

type failingStore struct{ storage.Storage }

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func TestCredentialReadFailure(t *testing.T) {
	e := newEnv(t)
	c := NewHTTPClient(e.backend.URL(), failingStore{storage.NewMemory("t")}, nil, logging.Nop())

	_, err := c.CurrentUser(context.Background())
	require.ErrorContains(t, err, "disk on fire")
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, e.backend.Requests())
}

func TestUpdateProfileAndLocation(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com", Username: "a"})
	ctx := context.Background()

	name := "alice"
	u, err := e.client.UpdateProfile(ctx, models.ProfileUpdate{Username: &name})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)

	u, err = e.client.UpdateLocation(ctx, models.LocationUpdate{Latitude: 6.3702928, Longitude: 2.3912362})
	require.NoError(t, err)
	assert.Equal(t, "6.3702928,2.3912362", u.LocationGPS)
}

func TestOTPFlow(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com"})
	ctx := context.Background()

	require.NoError(t, e.client.RequestOTP(ctx, models.OTPRequest{Phone: "+22990000000"}))
	err := e.client.VerifyOTP(ctx, models.OTPVerify{OTP: "000000"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "otp: invalid code", apiErr.FieldMessage())

	require.NoError(t, e.client.VerifyOTP(ctx, models.OTPVerify{OTP: fakebackend.OTP}))
	u, _ := e.backend.User("a@b.com")
	assert.True(t, bool(u.PhoneVerified))
}

func TestUploadDocuments(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com", Type: models.RoleIndividual})

	err := e.client.UploadDocuments(context.Background(), models.DocumentUpload{
		CIPDocument:    photo(t, "cip.jpg", "cip"),
		ResidenceProof: photo(t, "res.jpg", "res"),
	})
	require.NoError(t, err)

	req, _ := e.backend.Last(http.MethodPost, "/auth/upload-verification-documents/")
	assert.True(t, strings.HasPrefix(req.ContentType, "multipart/form-data"))
	assert.Equal(t, fakebackend.File{Filename: "cip_document.jpg", ContentType: "image/jpeg", Data: []byte("cip")}, req.Files["cip_document"])
	assert.Equal(t, []byte("res"), req.Files["residence_proof"].Data)
}

func TestSubmitProfessionalVerification(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "c@b.com", Type: models.RoleCollector})

	err := e.client.SubmitProfessionalVerification(context.Background(), models.ProfessionalData{
		Type:              models.RoleCollector,
		Entreprise:        "Eco SARL",
		IFU:               "IFU1",
		RCCM:              "RC1",
		EmailEntreprise:   "pro@eco.bj",
		AdresseEntreprise: "Cotonou",
		TypeDechets:       "plastique",
		NbreEquipe:        4,
		ZonesIntervention: []string{"Cotonou", "Porto-Novo"},
		PreuveImpot:       photo(t, "tax.jpg", "tax"),
	})
	require.NoError(t, err)

	req, _ := e.backend.Last(http.MethodPost, "/auth/professional-verification/")
	assert.Equal(t, "collecteur", req.Fields["type"])
	assert.Equal(t, "4", req.Fields["nbre_equipe"])
	assert.Equal(t, `["Cotonou","Porto-Novo"]`, req.Fields["zones_intervention"])
	assert.Equal(t, "preuve_impot.jpg", req.Files["preuve_impot"].Filename)

	u, _ := e.backend.User("c@b.com")
	assert.True(t, bool(u.ProVerificationSubmitted))
}

func TestWasteOperations(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{ID: 7, Email: "a@b.com", Type: models.RoleIndividual})
	ctx := context.Background()

	created, err := e.client.SubmitWaste(ctx, models.WasteData{
		Category: models.CategoryPlastic,
		Weight:   decimal.RequireFromString("2.5"),
		Location: "Cotonou, A",
		Photo:    photo(t, "w.jpg", "img"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.WasteStatusPending, created.Status)
	assert.True(t, created.Weight.Equal(decimal.RequireFromString("2.5")))

	req, _ := e.backend.Last(http.MethodPost, "/api/waste/")
	assert.Equal(t, "2.5", req.Fields["weight"])
	assert.Equal(t, "plastique", req.Fields["category"])
	assert.Contains(t, req.Files, "photo")

	list, err := e.client.ListMyWaste(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	got, err := e.client.GetWaste(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = e.client.GetWaste(ctx, 99999)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestSubmitWaste_WithoutPhoto(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "a@b.com"})

	_, err := e.client.SubmitWaste(context.Background(), models.WasteData{Category: models.CategoryPaper, Weight: decimal.NewFromInt(1), Location: "x"})
	require.NoError(t, err)

	req, _ := e.backend.Last(http.MethodPost, "/api/waste/")
	assert.NotContains(t, req.Files, "photo")
}

func TestListAvailableWaste_Query(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "r@b.com", Type: models.RoleRecycler})
	e.backend.Available = []models.WasteDeclaration{{ID: 1, Category: models.CategoryPaper}, {ID: 2, Category: models.CategoryPlastic}}

	day := time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)
	lo, hi := decimal.RequireFromString("2.5"), decimal.NewFromInt(10)
	list, err := e.client.ListAvailableWaste(context.Background(), models.WasteFilters{
		Category: models.CategoryPlastic, Date: &day, Location: "Cotonou", MinWeight: &lo, MaxWeight: &hi,
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].ID)

	req, _ := e.backend.Last(http.MethodGet, "/api/waste/available/")
	assert.Equal(t, "category=plastique&date=2025-04-18&location=Cotonou&max_weight=10&min_weight=2.5", req.Query)

	_, err = e.client.ListAvailableWaste(context.Background(), models.WasteFilters{})
	require.NoError(t, err)
	req, _ = e.backend.Last(http.MethodGet, "/api/waste/available/")
	assert.Empty(t, req.Query)
}

func TestCollectorOperations(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "c@b.com", Type: models.RoleCollector})
	e.backend.Missions = []models.Mission{
		{ID: 1, Status: models.MissionPending},
		{ID: 2, Status: models.MissionPending},
		{ID: 3, Status: models.MissionPending},
	}
	ctx := context.Background()

	require.NoError(t, e.client.SetCollectorAvailability(ctx, true))
	u, _ := e.backend.User("c@b.com")
	assert.Equal(t, models.Available, u.Availability)

	require.NoError(t, e.client.AcceptMission(ctx, 1))
	require.NoError(t, e.client.AcceptMission(ctx, 2))
	require.NoError(t, e.client.RejectMission(ctx, 3))
	require.NoError(t, e.client.MarkCollected(ctx, 1))
	require.NoError(t, e.client.MarkAllCollected(ctx))

	collected, err := e.client.ListMissions(ctx, models.MissionFilters{Status: models.MissionCollected, Zone: "Cotonou"})
	require.NoError(t, err)
	assert.Len(t, collected, 2)

	req, _ := e.backend.Last(http.MethodGet, "/api/waste/my_missions/")
	assert.Equal(t, "status=collect%C3%A9&zone=Cotonou", req.Query)

	err = e.client.MarkCollected(ctx, 3)
	require.Error(t, err)
}

func TestScheduleOperations(t *testing.T) {
	e := newEnv(t)
	e.loginAs(t, models.User{Email: "c@b.com", Type: models.RoleCollector})
	ctx := context.Background()

	s := models.DefaultSchedule()
	s.Zone = "Cotonou"
	created, err := e.client.AddSchedule(ctx, s)
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	created.EndTime = "18:00"
	updated, err := e.client.UpdateSchedule(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, "18:00", updated.EndTime)

	list, err := e.client.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Schedule{*updated}, list)

	require.NoError(t, e.client.DeleteSchedule(ctx, created.ID))
	list, err = e.client.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateSchedule_RequiresID(t *testing.T) {
	e := newEnv(t)

	_, err := e.client.UpdateSchedule(context.Background(), models.DefaultSchedule())
	require.ErrorIs(t, err, ErrScheduleIDRequired)
	assert.Empty(t, e.backend.Requests())
}

func TestRegister_Duplicate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	data := models.RegisterData{Username: "a", Email: "a@b.com", Password: "secret123", Type: models.RoleIndividual}

	require.NoError(t, e.client.Register(ctx, data))
	err := e.client.Register(ctx, data)
	assert.Equal(t, "email: user with this email already exists.", Message(err))
}
