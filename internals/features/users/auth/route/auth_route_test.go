package route

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	authRepo "collegeschedule_backend/internals/features/users/auth/repository"
	"collegeschedule_backend/internals/features/users/auth/service"
)

func newApp(t *testing.T, loggedOut *[]string) *fiber.App {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.MinCost)
	require.NoError(t, err)
	svc, err := service.NewSessionService(service.Config{
		Secret: "test-secret", TTL: time.Hour, Username: "user", PasswordHash: string(hash),
	}, authRepo.NewMemoryBlacklist())
	require.NoError(t, err)

	app := fiber.New(fiber.Config{JSONEncoder: sonic.Marshal, JSONDecoder: sonic.Unmarshal})
	AuthRoutes(app, svc, func(u string) { *loggedOut = append(*loggedOut, u) })
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body, token string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	_ = sonic.Unmarshal(raw, &out)
	return resp.StatusCode, out
}

func TestLoginSessionLogout(t *testing.T) {
	var loggedOut []string
	app := newApp(t, &loggedOut)

	status, body := do(t, app, http.MethodPost, "/admin/login", `{"username":"user","password":"123"}`, "")
	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]any)
	token := data["token"].(string)
	require.NotEmpty(t, token)

	status, body = do(t, app, http.MethodGet, "/admin/session", "", token)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "user", body["data"].(map[string]any)["username"])

	status, _ = do(t, app, http.MethodPost, "/admin/logout", "", token)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"user"}, loggedOut)

	status, body = do(t, app, http.MethodGet, "/admin/session", "", token)
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, body["success"])
}

func TestLoginFailures(t *testing.T) {
	var loggedOut []string
	app := newApp(t, &loggedOut)

	status, body := do(t, app, http.MethodPost, "/admin/login", `{"username":"user","password":"nope"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "Invalid username or password", body["message"])

	status, body = do(t, app, http.MethodPost, "/admin/login", `{"username":"user"}`, "")
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.Contains(t, body["errors"], "password")
}
