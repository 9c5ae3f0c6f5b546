package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"team-scheduler/core/config"
	"team-scheduler/core/constants"
	"team-scheduler/core/errors"
	"team-scheduler/core/testkit"
	"team-scheduler/core/utils"
	memberEntity "team-scheduler/modules/member/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "server-test-secret"

type harness struct {
	e        *echo.Echo
	cache    *testkit.Cache
	uploader *testkit.Uploader
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:  testSecret,
			CookieName: constants.AuthCookieName,
			LoginURL:   "https://auth.example.com",
		},
	}
	code, email := "AG-7", "seven@example.com"
	members := &testkit.MemberStore{
		Members: []memberEntity.Member{{ID: 7, Email: &email, AgentCode: &code}},
	}
	h := &harness{
		e:        NewEcho(cfg),
		cache:    testkit.NewCache(),
		uploader: testkit.NewUploader(),
	}
	Register(h.e, cfg, Stores{
		Appointments: testkit.NewAppointmentStore(),
		Tasks:        testkit.NewTaskStore(),
		Members:      members,
	}, Infra{Cache: h.cache, Jobs: &testkit.Jobs{}, Uploader: h.uploader})
	return h
}

type envelope struct {
	Status  int              `json:"status"`
	Code    errors.ErrorCode `json:"code"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Details json.RawMessage  `json:"details"`
}

func (h *harness) do(t *testing.T, userID int64, method, target string, body any) (int, envelope) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID > 0 {
		token, err := utils.GenerateToken(testSecret, userID, "tester", time.Hour)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.e.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

type dayView struct {
	Appointments        []map[string]any `json:"appointments"`
	Tasks               []map[string]any `json:"tasks"`
	PendingAppointments []map[string]any `json:"pendingAppointments"`
	PendingTasks        []map[string]any `json:"pendingTasks"`
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	code, env := h.do(t, 0, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"status":"ok"`)
}

func TestPrivateRoutesRequireToken(t *testing.T) {
	h := newHarness(t)
	code, env := h.do(t, 0, http.MethodGet, "/api/v1/private/calendar?memberId=7&date=2025-03-14", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, errors.ErrMissingAuthorizationHeader, env.Code)
}

func TestUnknownRoute(t *testing.T) {
	h := newHarness(t)
	code, env := h.do(t, 0, http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, errors.ErrNotFound, env.Code)
}

func TestAppointmentLifecycle(t *testing.T) {
	h := newHarness(t)

	code, env := h.do(t, 3, http.MethodPost, "/api/v1/private/appointments", map[string]any{
		"subject":  "  Site survey ",
		"content":  "   ",
		"memberId": "7",
		"startAt":  "2025-03-14T09:00:00Z",
		"endAt":    "2025-03-14T10:00:00Z",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "pending", created["status"])
	assert.Equal(t, "Site survey", created["subject"])
	assert.Nil(t, created["content"])
	assert.EqualValues(t, 3, created["createdById"])
	id := created["id"].(string)

	code, env = h.do(t, 7, http.MethodGet, "/api/v1/private/calendar?memberId=7&date=2025-03-14", nil)
	require.Equal(t, http.StatusOK, code)
	var day dayView
	require.NoError(t, json.Unmarshal(env.Data, &day))
	assert.Empty(t, day.Appointments)
	require.Len(t, day.PendingAppointments, 1)
	assert.Equal(t, id, day.PendingAppointments[0]["id"])

	// prime the month cache, then check the decision drops it
	code, env = h.do(t, 7, http.MethodGet, "/api/v1/private/calendar?memberId=7&date=2025-03-01&view=month", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"summary":{}}`, string(env.Data))
	assert.True(t, h.cache.Has("7:2025-03"))

	code, env = h.do(t, 3, http.MethodPost, "/api/v1/private/approve", map[string]any{
		"type": "appointment", "id": id, "status": "approved",
	})
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, errors.ErrForbidden, env.Code)

	code, env = h.do(t, 7, http.MethodPost, "/api/v1/private/approve", map[string]any{
		"type": "appointment", "id": id, "status": "approved",
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	var decided struct {
		Appointment map[string]any `json:"appointment"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &decided))
	assert.Equal(t, "approved", decided.Appointment["status"])
	assert.EqualValues(t, 7, decided.Appointment["approvedById"])
	assert.False(t, h.cache.Has("7:2025-03"))

	code, env = h.do(t, 7, http.MethodPost, "/api/v1/private/approve", map[string]any{
		"type": "appointment", "id": id, "status": "declined",
	})
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, errors.ErrInvalidStateTransition, env.Code)

	code, env = h.do(t, 7, http.MethodGet, "/api/v1/private/calendar?memberId=7&date=2025-03-14", nil)
	require.Equal(t, http.StatusOK, code)
	day = dayView{}
	require.NoError(t, json.Unmarshal(env.Data, &day))
	require.Len(t, day.Appointments, 1)
	assert.Empty(t, day.PendingAppointments)

	code, env = h.do(t, 7, http.MethodGet, "/api/v1/private/calendar?memberId=7&date=2025-03-01&view=month", nil)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"summary":{"2025-03-14":{"appointments":1,"tasks":0}}}`, string(env.Data))

	code, env = h.do(t, 7, http.MethodPost, "/api/v1/private/calendar/export?memberId=7&date=2025-03-20", nil)
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.JSONEq(t, `{"key":"exports/ag-7-7/2025-03.json","month":"2025-03"}`, string(env.Data))
	obj, ok := h.uploader.Objects["exports/ag-7-7/2025-03.json"]
	require.True(t, ok)
	assert.Contains(t, string(obj.Body), `"2025-03-14"`)
}

func TestTaskLifecycle(t *testing.T) {
	h := newHarness(t)

	code, env := h.do(t, 3, http.MethodPost, "/api/v1/private/tasks", map[string]any{
		"title":        "Send quote",
		"assignedToId": 7,
		"deadlineAt":   "2025-03-20T17:00:00Z",
	})
	require.Equal(t, http.StatusCreated, code, env.Message)
	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	id := created["id"].(string)

	code, env = h.do(t, 7, http.MethodPost, "/api/v1/private/approve", map[string]any{
		"type": "task", "id": id, "status": "declined",
	})
	require.Equal(t, http.StatusOK, code, env.Message)
	assert.Contains(t, string(env.Data), `"task"`)

	code, env = h.do(t, 7, http.MethodGet, "/api/v1/private/calendar?memberId=7&date=2025-03-20", nil)
	require.Equal(t, http.StatusOK, code)
	var day dayView
	require.NoError(t, json.Unmarshal(env.Data, &day))
	assert.Empty(t, day.Tasks)
	assert.Empty(t, day.PendingTasks)
}

func TestValidationErrors(t *testing.T) {
	h := newHarness(t)

	code, env := h.do(t, 3, http.MethodPost, "/api/v1/private/appointments", map[string]any{
		"subject":  "Survey",
		"memberId": 7,
		"startAt":  "2025-03-14T10:00:00Z",
		"endAt":    "2025-03-14T10:00:00Z",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, errors.ErrInvalidInput, env.Code)
	assert.Contains(t, string(env.Details), "endAt")

	code, env = h.do(t, 7, http.MethodGet, "/api/v1/private/calendar?memberId=abc&date=14-03-2025", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.True(t, strings.Contains(string(env.Details), "memberId"))
	assert.True(t, strings.Contains(string(env.Details), "date"))

	code, env = h.do(t, 7, http.MethodPost, "/api/v1/private/approve", map[string]any{
		"type": "meeting", "id": "x", "status": "approved",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, string(env.Details), "type")
}
