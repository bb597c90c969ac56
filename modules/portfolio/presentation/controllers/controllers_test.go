package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katzedaze/portfolio/modules/core/domain/aggregates/user"
	corepersistence "github.com/katzedaze/portfolio/modules/core/infrastructure/persistence"
	coreservices "github.com/katzedaze/portfolio/modules/core/services"
	"github.com/katzedaze/portfolio/modules/portfolio/infrastructure/persistence"
	"github.com/katzedaze/portfolio/modules/portfolio/presentation/controllers"
	"github.com/katzedaze/portfolio/modules/portfolio/services"
	"github.com/katzedaze/portfolio/pkg/application"
	"github.com/katzedaze/portfolio/pkg/constants"
	"github.com/katzedaze/portfolio/pkg/middleware"
)

type env struct {
	server *httptest.Server
	cookie *http.Cookie
}

// setup builds the portfolio API on in-memory storage with one signed-in
// admin.
func setup(t *testing.T) *env {
	t.Helper()

	users := corepersistence.NewInmemUserRepository()
	sessions := corepersistence.NewInmemSessionRepository()
	auth := coreservices.NewAuthService(users, sessions)

	admin, err := user.New(uuid.NewString(), "admin@example.com", "Admin", "admin123")
	require.NoError(t, err)
	admin, err = users.Create(context.Background(), admin)
	require.NoError(t, err)

	companies := persistence.NewInmemCompanyRepository()
	app := application.New(&application.ApplicationOptions{})
	app.RegisterServices(
		services.NewSkillService(persistence.NewInmemSkillRepository()),
		services.NewIntroductionService(persistence.NewInmemIntroductionRepository()),
		services.NewCompanyService(companies),
		services.NewProjectService(persistence.NewInmemProjectRepository(companies)),
		services.NewProfileService(persistence.NewInmemProfileRepository()),
	)

	router := mux.NewRouter()
	router.Use(middleware.Authorize(auth))
	for _, c := range []application.Controller{
		controllers.NewSkillsController(app),
		controllers.NewIntroductionsController(app),
		controllers.NewCompaniesController(app),
		controllers.NewProjectsController(app),
		controllers.NewProfileController(app),
	} {
		c.Register(router)
	}

	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	_, sess, err := auth.Login(context.Background(), admin.Email(), "admin123", "127.0.0.1", "test")
	require.NoError(t, err)

	return &env{
		server: ts,
		cookie: &http.Cookie{Name: constants.SessionCookieName, Value: sess.Token},
	}
}

func (e *env) do(t *testing.T, method, path string, body any, authed bool) (*http.Response, map[string]any) {
	t.Helper()
	var buf io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, e.server.URL+path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.AddCookie(e.cookie)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	return resp, decoded
}

func (e *env) list(t *testing.T, path string) []map[string]any {
	t.Helper()
	resp, err := http.Get(e.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validSkill() map[string]any {
	return map[string]any{
		"name": "Go", "category": "backend", "proficiency": "上級",
		"yearsOfExperience": 3.5, "displayOrder": 0,
	}
}

func TestSkills_PublicListIsOpen(t *testing.T) {
	e := setup(t)
	assert.Empty(t, e.list(t, "/api/skills"))
}

func TestSkills_MutationsRequireSession(t *testing.T) {
	e := setup(t)
	resp, body := e.do(t, http.MethodPost, "/api/skills", validSkill(), false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["error"])
}

func TestSkills_CreateListUpdateDelete(t *testing.T) {
	e := setup(t)

	resp, body := e.do(t, http.MethodPost, "/api/skills", validSkill(), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	items := e.list(t, "/api/skills")
	require.Len(t, items, 1)
	assert.Equal(t, "Go", items[0]["name"])
	assert.Equal(t, 3.5, items[0]["yearsOfExperience"])
	id := items[0]["id"].(string)

	payload := validSkill()
	payload["name"] = "Golang"
	resp, body = e.do(t, http.MethodPut, "/api/skills/"+id, payload, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Golang", e.list(t, "/api/skills")[0]["name"])

	resp, body = e.do(t, http.MethodDelete, "/api/skills/"+id, nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Empty(t, e.list(t, "/api/skills"))
}

func TestSkills_ValidationErrorEnvelope(t *testing.T) {
	e := setup(t)
	payload := validSkill()
	payload["name"] = ""
	resp, body := e.do(t, http.MethodPost, "/api/skills", payload, true)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Validation Error", body["error"])

	details := body["details"].([]any)
	require.NotEmpty(t, details)
	first := details[0].(map[string]any)
	assert.Equal(t, "name", first["field"])
	assert.Equal(t, "スキル名は必須です", first["message"])
}

func TestSkills_InvalidJSONBody(t *testing.T) {
	e := setup(t)
	req, err := http.NewRequest(http.MethodPost, e.server.URL+"/api/skills", bytes.NewReader([]byte("{")))
	require.NoError(t, err)
	req.AddCookie(e.cookie)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid Request Body", body["error"])
}

func TestSkills_InvalidPathID(t *testing.T) {
	e := setup(t)
	resp, body := e.do(t, http.MethodPut, "/api/skills/not-a-uuid", validSkill(), true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid ID", body["error"])
}

func TestSkills_MissingIDIsNotFound(t *testing.T) {
	e := setup(t)
	resp, body := e.do(t, http.MethodPut, "/api/skills/"+uuid.NewString(), validSkill(), true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", body["error"])

	resp, body = e.do(t, http.MethodDelete, "/api/skills/"+uuid.NewString(), nil, true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not Found", body["error"])
}

func TestIntroductions_RoundTrip(t *testing.T) {
	e := setup(t)
	resp, _ := e.do(t, http.MethodPost, "/api/introduction", map[string]any{
		"title": "自己紹介", "content": "こんにちは", "displayOrder": 0,
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := e.list(t, "/api/introduction")
	require.Len(t, items, 1)
	assert.Equal(t, "自己紹介", items[0]["title"])
}

func TestProjects_ListJoinsCompany(t *testing.T) {
	e := setup(t)

	resp, _ := e.do(t, http.MethodPost, "/api/companies", map[string]any{
		"name": "株式会社サンプル", "industry": "IT", "displayOrder": 0,
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	companyID := e.list(t, "/api/companies")[0]["id"].(string)

	resp, _ = e.do(t, http.MethodPost, "/api/projects", map[string]any{
		"title": "社内ツール", "companyId": companyID, "startDate": "2024-01-01",
		"technologies": []string{"Go"}, "description": "説明", "displayOrder": 0,
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	items := e.list(t, "/api/projects")
	require.Len(t, items, 1)
	joined, ok := items[0]["company"].(map[string]any)
	require.True(t, ok, "expected joined company, got %v", items[0]["company"])
	assert.Equal(t, "株式会社サンプル", joined["name"])
}

func TestProfile_GetRequiresSessionAndStartsNull(t *testing.T) {
	e := setup(t)

	resp, body := e.do(t, http.MethodGet, "/api/profile", nil, false)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Unauthorized", body["error"])

	req, err := http.NewRequest(http.MethodGet, e.server.URL+"/api/profile", nil)
	require.NoError(t, err)
	req.AddCookie(e.cookie)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "null", string(bytes.TrimSpace(raw)))
}

func TestProfile_UpsertRoundTrip(t *testing.T) {
	e := setup(t)

	resp, body := e.do(t, http.MethodPost, "/api/profile", map[string]any{
		"name": "山田太郎", "email": "taro@example.com", "phone": "090-0000-0000",
	}, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = e.do(t, http.MethodGet, "/api/profile", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "山田太郎", body["name"])
	assert.Equal(t, "taro@example.com", body["email"])
}

func TestCompanies_DisplayOrderDrivesListOrder(t *testing.T) {
	e := setup(t)

	for i, name := range []string{"二番目", "一番目"} {
		resp, _ := e.do(t, http.MethodPost, "/api/companies", map[string]any{
			"name": name, "displayOrder": 1 - i,
		}, true)
		require.Equal(t, http.StatusOK, resp.StatusCode, fmt.Sprintf("create %s", name))
	}

	items := e.list(t, "/api/companies")
	require.Len(t, items, 2)
	assert.Equal(t, "一番目", items[0]["name"])
	assert.Equal(t, "二番目", items[1]["name"])
}
