package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/gloww/internal/content"
	"github.com/terraincognita07/gloww/internal/db"
	"github.com/terraincognita07/gloww/internal/services"
	"golang.org/x/crypto/bcrypt"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

type testServer struct {
	app     *fiber.App
	handler *Handler
}

func newTestServer(t *testing.T, now time.Time) testServer {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "gloww-api.db"), nil)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	repos := db.NewRepositories(database)
	wellness := services.NewWellnessService(
		repos.Profiles,
		repos.Periods,
		repos.SymptomEvents,
		repos.Conditions,
		repos.OrganHealth,
		content.Default(),
		30,
	)
	lock := services.NewLockServiceWithCost(repos.Settings, bcrypt.MinCost)

	handler, err := NewHandler(HandlerConfig{
		Wellness:  wellness,
		Lock:      lock,
		SecretKey: testSecretKey,
		Location:  time.UTC,
	})
	if err != nil {
		t.Fatalf("NewHandler() unexpected error: %v", err)
	}
	handler.now = func() time.Time { return now }

	return testServer{app: NewApp(handler), handler: handler}
}

type testResponse struct {
	status  int
	body    []byte
	cookies []*http.Cookie
}

func (server testServer) do(t *testing.T, method string, path string, payload any, cookie string) testResponse {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if cookie != "" {
		request.Header.Set("Cookie", cookie)
	}

	response, err := server.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("%s %s read body failed: %v", method, path, err)
	}
	return testResponse{status: response.StatusCode, body: raw, cookies: response.Cookies()}
}

func (server testServer) doRaw(t *testing.T, method string, path string, rawBody string) testResponse {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(rawBody))
	request.Header.Set("Content-Type", "application/json")
	response, err := server.app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer response.Body.Close()

	raw, _ := io.ReadAll(response.Body)
	return testResponse{status: response.StatusCode, body: raw}
}

func expectStatus(t *testing.T, response testResponse, want int) {
	t.Helper()
	if response.status != want {
		t.Fatalf("expected status %d, got %d: %s", want, response.status, string(response.body))
	}
}

func decodeJSON[T any](t *testing.T, response testResponse) T {
	t.Helper()
	var value T
	if err := json.Unmarshal(response.body, &value); err != nil {
		t.Fatalf("decode %s: %v", string(response.body), err)
	}
	return value
}

func sessionCookie(t *testing.T, response testResponse) string {
	t.Helper()
	for _, cookie := range response.cookies {
		if cookie.Name == sessionCookieName && cookie.Value != "" {
			return cookie.Name + "=" + cookie.Value
		}
	}
	t.Fatalf("expected %s cookie in response", sessionCookieName)
	return ""
}

func errorMessage(t *testing.T, response testResponse) string {
	t.Helper()
	return decodeJSON[map[string]string](t, response)["error"]
}
