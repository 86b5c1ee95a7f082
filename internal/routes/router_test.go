package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"framework4future/portal/internal/api"
	"framework4future/portal/internal/common"
	"framework4future/portal/internal/config"
	"framework4future/portal/internal/constants"
	"framework4future/portal/internal/db"
	"framework4future/portal/internal/fallback"
	"framework4future/portal/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *api.Dependencies) {
	t.Helper()
	cfg := config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.AuthConfig{JWTSecret: "router-secret", TokenTTLHours: 1},
		Upload: config.UploadConfig{Dir: t.TempDir(), PublicBaseURL: "/uploads", MaxSizeMB: 1},
	}
	m := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	deps := api.InitDependencies(cfg, db.NewLive(config.StoreConfig{}, nil, nil, nil), fallback.New(),
		common.NewCacheService(60, 60), m)
	return RegisterRoutes(deps, m, time.Now()), deps
}

func do(t *testing.T, h http.Handler, method, target, token, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.RemoteAddr = "203.0.113.10:5555"
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out), "body of %s %s", method, target)
	return rec.Code, out
}

func login(t *testing.T, h http.Handler, email, password string) string {
	t.Helper()
	code, body := do(t, h, http.MethodPost, "/api/auth/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, code)
	return body["token"].(string)
}

func TestRouter_PublicAndEnvelopes(t *testing.T) {
	h, _ := newTestRouter(t)

	code, body := do(t, h, http.MethodGet, "/api/events", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["events"], 3)

	code, body = do(t, h, http.MethodGet, "/api/blogs/featured", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body["blogs"], 1)

	code, body = do(t, h, http.MethodDelete, "/api/events", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, code)
	assert.Equal(t, constants.MsgMethodNotAllowed, body["error"])

	code, body = do(t, h, http.MethodGet, "/api/nothing-here", "", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, body["success"])

	code, body = do(t, h, http.MethodGet, "/healthCheck", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "fallback", body["store"])
}

func TestRouter_AdminGate(t *testing.T) {
	h, _ := newTestRouter(t)
	memberToken := login(t, h, fallback.DemoMemberEmail, fallback.DemoMemberPassword)
	adminToken := login(t, h, fallback.DemoAdminEmail, fallback.DemoAdminPassword)

	code, _ := do(t, h, http.MethodGet, "/api/admin/dashboard", "", "")
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body := do(t, h, http.MethodGet, "/api/admin/dashboard", memberToken, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, constants.MsgAdminRequired, body["error"])

	code, body = do(t, h, http.MethodGet, "/api/admin/dashboard", adminToken, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "dashboard")

	code, _ = do(t, h, http.MethodPost, "/api/admin/events", memberToken, `{"name":"x","date":"y"}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = do(t, h, http.MethodPost, "/api/admin/events", adminToken, `{"name":"Open House","date":"2026-01-10"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Open House", body["event"].(map[string]interface{})["name"])

	code, _ = do(t, h, http.MethodPatch, "/api/volunteering/admin", memberToken, `{"id":"1","status":"approved"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestRouter_MemberRecords(t *testing.T) {
	h, _ := newTestRouter(t)
	memberToken := login(t, h, fallback.DemoMemberEmail, fallback.DemoMemberPassword)

	code, body := do(t, h, http.MethodGet, "/api/volunteering/member/2", memberToken, "")
	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body["hours"], 2)

	code, body = do(t, h, http.MethodGet, "/api/volunteering/member/1", memberToken, "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, constants.MsgForbiddenMember, body["error"])

	code, _ = do(t, h, http.MethodPost, "/api/volunteering/submit", memberToken,
		`{"memberId":"2","activity_name":"Tutoring","hours_completed":0,"activity_date":"2025-09-01","organization_name":"Library"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestRouter_LogoutRevokesToken(t *testing.T) {
	h, _ := newTestRouter(t)
	token := login(t, h, fallback.DemoMemberEmail, fallback.DemoMemberPassword)

	code, body := do(t, h, http.MethodGet, "/api/auth/me", token, "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, fallback.DemoMemberEmail, body["member"].(map[string]interface{})["email"])

	code, _ = do(t, h, http.MethodPost, "/api/auth/logout", token, "")
	require.Equal(t, http.StatusOK, code)

	code, _ = do(t, h, http.MethodGet, "/api/auth/me", token, "")
	assert.Equal(t, http.StatusUnauthorized, code)
}
