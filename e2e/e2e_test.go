//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"gorm.io/gorm"
	"promana-go/internal/app"
	"promana-go/internal/config"
	"promana-go/internal/db"
	"promana-go/internal/hypermedia"
	"promana-go/pkg/logger"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	cfg := config.Default()
	cfg.DB.Driver = config.DriverPostgres
	cfg.DB.DSN = dsn
	log := logger.NewNop()

	dbConn, err := db.Open(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(context.Background(), dbConn, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	router, err := app.NewHandler(cfg, dbConn, nil, log)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE hour_entries, team_assignments, costs, tasks, phases, projects, members CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

func expectStatus(t *testing.T, resp *http.Response, body []byte, status int) {
	t.Helper()
	if resp.StatusCode != status {
		t.Fatalf("%s %s: expected status %d, got %d: %s", resp.Request.Method, resp.Request.URL.Path, status, resp.StatusCode, body)
	}
}

func decodeError(t *testing.T, body []byte) hypermedia.ErrorDocument {
	t.Helper()
	var env hypermedia.ErrorDocument
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	return env
}

func TestE2EProjectLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := env.server.Client()
	base := env.server.URL + "/api"

	resp, body := requestJSON(t, client, http.MethodPost, base+"/members/", map[string]interface{}{"name": "alice", "hourly_cost": 50})
	expectStatus(t, resp, body, http.StatusCreated)
	if loc := resp.Header.Get("Location"); loc != "/api/members/alice/" {
		t.Fatalf("unexpected Location %q", loc)
	}

	project := map[string]interface{}{
		"name":            "apollo",
		"start":           "2024-01-01",
		"end":             "2024-12-31",
		"budget":          1000,
		"status":          "NOT_STARTED",
		"project_manager": "alice",
	}
	resp, body = requestJSON(t, client, http.MethodPost, base+"/projects/", project)
	expectStatus(t, resp, body, http.StatusCreated)

	resp, body = requestJSON(t, client, http.MethodPost, base+"/projects/", project)
	expectStatus(t, resp, body, http.StatusConflict)
	if msg := decodeError(t, body).Error.Message; msg != "Already exists" {
		t.Fatalf("expected Already exists, got %q", msg)
	}

	resp, body = requestJSON(t, client, http.MethodPut, base+"/projects/apollo/", map[string]interface{}{"name": "apollo", "budget": -5})
	expectStatus(t, resp, body, http.StatusConflict)

	resp, body = requestJSON(t, client, http.MethodPost, base+"/projects/apollo/phases/", map[string]interface{}{"name": "design"})
	expectStatus(t, resp, body, http.StatusCreated)
	resp, body = requestJSON(t, client, http.MethodPost, base+"/projects/apollo/phases/design/tasks/", map[string]interface{}{"name": "wireframes"})
	expectStatus(t, resp, body, http.StatusCreated)
	resp, body = requestJSON(t, client, http.MethodPost, base+"/projects/apollo/phases/design/tasks/wireframes/members/", map[string]interface{}{"name": "alice"})
	expectStatus(t, resp, body, http.StatusCreated)

	resp, body = requestJSON(t, client, http.MethodGet, base+"/projects/apollo/members/", nil)
	expectStatus(t, resp, body, http.StatusOK)
	if ct := resp.Header.Get("Content-Type"); ct != hypermedia.MediaType {
		t.Fatalf("unexpected content type %q", ct)
	}
	var team struct {
		Items []struct {
			Name  string   `json:"name"`
			Tasks []string `json:"tasks"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	if len(team.Items) != 1 || team.Items[0].Name != "alice" || len(team.Items[0].Tasks) != 1 {
		t.Fatalf("unexpected project team %+v", team.Items)
	}

	resp, body = requestJSON(t, client, http.MethodDelete, base+"/members/alice/", nil)
	expectStatus(t, resp, body, http.StatusNoContent)

	resp, body = requestJSON(t, client, http.MethodGet, base+"/projects/apollo/", nil)
	expectStatus(t, resp, body, http.StatusOK)
	var got map[string]interface{}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode project: %v", err)
	}
	if got["project_manager"] != nil {
		t.Fatalf("expected manager to be cleared, got %v", got["project_manager"])
	}

	resp, body = requestJSON(t, client, http.MethodDelete, base+"/projects/apollo/", nil)
	expectStatus(t, resp, body, http.StatusNoContent)
	resp, body = requestJSON(t, client, http.MethodGet, base+"/projects/apollo/", nil)
	expectStatus(t, resp, body, http.StatusNotFound)
	if env := decodeError(t, body); env.ResourceURL != "/api/projects/apollo/" {
		t.Fatalf("unexpected resource_url %q", env.ResourceURL)
	}
}

func TestE2ERejectsNonJSON(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/members/", bytes.NewBufferString("name=bob"))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := env.server.Client().Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnsupportedMediaType {
		t.Fatalf("expected 415, got %d", resp.StatusCode)
	}
}
