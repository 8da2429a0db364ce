package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"nearby/internal/delivery/api/validator"
	deliverycontext "nearby/internal/delivery/context"
	"nearby/internal/domain/entity"
	domainerrors "nearby/internal/domain/errors"
	mockUsecase "nearby/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	consumer = &entity.Identity{UserID: "c1", Role: entity.RoleConsumer}
	vendor   = &entity.Identity{UserID: "v1", Role: entity.RoleVendor, Name: "Tea Cart"}
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(method, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		deliverycontext.SetIdentity(c, identity)
	}

	return c, rec
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return env
}

func TestPreferenceHandler_GetPreferences(t *testing.T) {
	uc := mockUsecase.NewMockHubPreferenceUsecase(t)
	h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: uc, Logger: testLogger()})

	prefs := entity.DefaultPreferences()
	uc.EXPECT().GetPreferences(mock.Anything, "c1").Return(&prefs, nil).Once()

	c, rec := newContext(http.MethodGet, "", consumer)
	require.NoError(t, h.GetPreferences(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body PreferencesResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, rec).Data, &body))
	assert.Equal(t, &prefs, body.Preferences)
}

func TestPreferenceHandler_GetPreferencesWithoutIdentity(t *testing.T) {
	uc := mockUsecase.NewMockHubPreferenceUsecase(t)
	h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: uc, Logger: testLogger()})

	c, rec := newContext(http.MethodGet, "", nil)
	require.NoError(t, h.GetPreferences(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPreferenceHandler_UpdatePreferences(t *testing.T) {
	uc := mockUsecase.NewMockHubPreferenceUsecase(t)
	h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: uc, Logger: testLogger()})

	uc.EXPECT().
		UpdatePreferences(mock.Anything, "c1", mock.MatchedBy(func(p *entity.NotificationPreferences) bool {
			return p.RadiusMeters == 1500 && p.DoNotDisturb
		})).
		Return(nil).Once()

	c, rec := newContext(http.MethodPut, `{"enabled":true,"radius":1500,"doNotDisturb":true,"quietHours":{"enabled":false,"start":"22:00","end":"08:00"}}`, consumer)
	require.NoError(t, h.UpdatePreferences(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPreferenceHandler_UpdatePreferencesRejected(t *testing.T) {
	uc := mockUsecase.NewMockHubPreferenceUsecase(t)
	h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: uc, Logger: testLogger()})

	uc.EXPECT().UpdatePreferences(mock.Anything, "c1", mock.Anything).Return(domainerrors.ErrInvalidRadius).Once()

	c, rec := newContext(http.MethodPut, `{"enabled":true,"radius":100}`, consumer)
	require.NoError(t, h.UpdatePreferences(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_RADIUS", decodeBody(t, rec).Error.Code)
}

func TestPreferenceHandler_UpdatePreferencesBadJSON(t *testing.T) {
	uc := mockUsecase.NewMockHubPreferenceUsecase(t)
	h := NewPreferenceHandler(PreferenceHandlerParams{PreferenceUC: uc, Logger: testLogger()})

	c, rec := newContext(http.MethodPut, `{"radius":`, consumer)
	require.NoError(t, h.UpdatePreferences(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decodeBody(t, rec).Error.Code)
}

func newVendorHandler(t *testing.T) (*VendorHandler, *mockUsecase.MockVendorSettingsUsecase, *mockUsecase.MockMatchingUsecase) {
	settings := mockUsecase.NewMockVendorSettingsUsecase(t)
	matching := mockUsecase.NewMockMatchingUsecase(t)

	return NewVendorHandler(VendorHandlerParams{
		SettingsUC: settings,
		MatchingUC: matching,
		Logger:     testLogger(),
	}), settings, matching
}

func TestVendorHandler_UpdateVendorStatus(t *testing.T) {
	h, settings, _ := newVendorHandler(t)

	radius := 3000.0
	settings.EXPECT().
		UpdateDeliverySettings(mock.Anything, "v1", entity.DeliverySettings{DeliveryRadius: &radius}).
		Return(&entity.Vendor{ID: "v1", DeliveryRadiusMeters: 3000, AcceptingOrders: true, IsOnline: true}, nil).Once()

	c, rec := newContext(http.MethodPatch, `{"deliveryRadius":3000}`, vendor)
	require.NoError(t, h.UpdateVendorStatus(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body VendorStatusResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, rec).Data, &body))
	assert.Equal(t, VendorStatusResponse{VendorID: "v1", DeliveryRadius: 3000, AcceptingOrders: true, IsOnline: true}, body)
}

func TestVendorHandler_UpdateVendorStatusRejected(t *testing.T) {
	h, settings, _ := newVendorHandler(t)

	settings.EXPECT().UpdateDeliverySettings(mock.Anything, "v1", mock.Anything).
		Return(nil, domainerrors.ErrInvalidRadius.WithDetails("got 100")).Once()

	c, rec := newContext(http.MethodPatch, `{"deliveryRadius":100}`, vendor)
	require.NoError(t, h.UpdateVendorStatus(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeBody(t, rec)
	assert.Equal(t, "INVALID_RADIUS", env.Error.Code)
	assert.Equal(t, "got 100", env.Error.Details)
}

func TestVendorHandler_NearbyBroadcast(t *testing.T) {
	h, _, matching := newVendorHandler(t)

	matching.EXPECT().
		Broadcast(mock.Anything, *vendor, entity.Coordinates{Latitude: 25.033, Longitude: 121.5654}, "Fresh chai").
		Return(3, nil).Once()

	c, rec := newContext(http.MethodPost, `{"latitude":25.033,"longitude":121.5654,"message":"Fresh chai"}`, vendor)
	require.NoError(t, h.NearbyBroadcast(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body BroadcastResponse
	require.NoError(t, json.Unmarshal(decodeBody(t, rec).Data, &body))
	assert.Equal(t, 3, body.Notified)
}

func TestVendorHandler_NearbyBroadcastInvalidCoordinates(t *testing.T) {
	h, _, _ := newVendorHandler(t)

	c, rec := newContext(http.MethodPost, `{"latitude":95,"longitude":121.5654}`, vendor)
	require.NoError(t, h.NearbyBroadcast(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)

	details, ok := body.Error.Details.([]any)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, map[string]any{"field": "latitude", "rule": "latitude"}, details[0])
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	matching := mockUsecase.NewMockMatchingUsecase(t)
	matching.EXPECT().Stats().Return(entity.HubStats{OnlineVendors: 2, Consumers: 5}).Once()

	c, rec := newContext(http.MethodGet, "", nil)
	require.NoError(t, NewHealthHandler(matching).HealthCheck(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","stats":{"onlineVendors":2,"acceptingVendors":0,"consumers":5,"locatedConsumers":0}}`,
		string(decodeBody(t, rec).Data))
}
