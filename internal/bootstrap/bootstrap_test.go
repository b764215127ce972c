package bootstrap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/academics/internal/config"
	"github.com/yigit/academics/internal/middleware"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "academics.test"
	cfg.JWT.AllowIDHeader = true
	cfg.Registry.IDStrategy = "sequential"
	cfg.Registry.AcademicIDMax = 1000
	cfg.Registry.CourseIDMax = 100
	return cfg
}

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return setupRouterWith(t, testConfig())
}

func setupRouterWith(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	deps, err := BuildDependencies(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("BuildDependencies: %v", err)
	}
	return SetupRouter(cfg, deps, zerolog.Nop())
}

// do sends a request as the given academic (0 for anonymous) and decodes the envelope.
func do(t *testing.T, r *gin.Engine, method, path string, academicID int64, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if academicID != 0 {
		req.Header.Set(middleware.AcademicIDHeader, fmt.Sprint(academicID))
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, resp.Body.String(), err)
	}
	return resp.Code, env
}

func createAcademic(t *testing.T, r *gin.Engine, name, hobby string) (int64, string) {
	t.Helper()

	code, env := do(t, r, http.MethodPost, "/api/v1/academics", 0, map[string]string{"name": name, "hobby": hobby})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}

	var data struct {
		AcademicID int64  `json:"academicId"`
		Token      string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode academic: %v", err)
	}
	return data.AcademicID, data.Token
}

func TestAcademicEndpoints(t *testing.T) {
	r := setupRouter(t)
	kevin, _ := createAcademic(t, r, "Kevin", "Golf")
	hayden, _ := createAcademic(t, r, "Hayden", "Chess")

	code, env := do(t, r, http.MethodGet, fmt.Sprintf("/api/v1/academics/%d", kevin), hayden, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var details struct {
		Academic struct {
			AcademicID int64  `json:"academicId"`
			Name       string `json:"name"`
			Hobby      string `json:"hobby"`
		} `json:"academic"`
	}
	if err := json.Unmarshal(env.Data, &details); err != nil {
		t.Fatalf("decode details: %v", err)
	}
	if details.Academic.AcademicID != kevin || details.Academic.Name != "Kevin" || details.Academic.Hobby != "Golf" {
		t.Fatalf("unexpected details: %+v", details.Academic)
	}

	code, env = do(t, r, http.MethodGet, "/api/v1/academics", kevin, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var list struct {
		Academics []struct {
			AcademicID int64  `json:"academicId"`
			Name       string `json:"name"`
		} `json:"academics"`
	}
	if err := json.Unmarshal(env.Data, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list.Academics) != 2 || list.Academics[0].Name != "Kevin" || list.Academics[1].Name != "Hayden" {
		t.Fatalf("unexpected list: %+v", list.Academics)
	}
}

func TestCreateAcademicValidation(t *testing.T) {
	r := setupRouter(t)

	code, env := do(t, r, http.MethodPost, "/api/v1/academics", 0, map[string]string{"name": "Kevin", "hobby": ""})
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Success || env.Error == nil || env.Error.Code != "VAL_001" {
		t.Fatalf("expected validation error body, got %+v", env)
	}
}

func TestCourseFlow(t *testing.T) {
	r := setupRouter(t)
	a, _ := createAcademic(t, r, "Kevin", "Golf")
	b, _ := createAcademic(t, r, "Hayden", "Chess")

	code, env := do(t, r, http.MethodPost, "/api/v1/courses", a, map[string]string{"name": "X", "description": "d"})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	var created struct {
		CourseID int64 `json:"courseId"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode course: %v", err)
	}
	coursePath := fmt.Sprintf("/api/v1/courses/%d", created.CourseID)

	// b cannot see the course before enrolling
	if code, env = do(t, r, http.MethodGet, coursePath, b, nil); code != http.StatusForbidden || env.Error.Code != "ENR_001" {
		t.Fatalf("expected 403 ENR_001, got %d %+v", code, env.Error)
	}

	if code, _ = do(t, r, http.MethodPost, coursePath+"/enrolments", b, map[string]bool{"isStaff": false}); code != http.StatusOK {
		t.Fatalf("expected 200 on first enrolment, got %d", code)
	}
	if code, env = do(t, r, http.MethodPost, coursePath+"/enrolments", b, map[string]bool{"isStaff": true}); code != http.StatusConflict || env.Error.Code != "ENR_002" {
		t.Fatalf("expected 409 ENR_002, got %d %+v", code, env.Error)
	}

	code, env = do(t, r, http.MethodGet, coursePath, b, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var details struct {
		Course struct {
			StaffMembers []struct {
				AcademicID int64 `json:"academicId"`
			} `json:"staffMembers"`
			AllMembers []struct {
				AcademicID int64 `json:"academicId"`
			} `json:"allMembers"`
		} `json:"course"`
	}
	if err := json.Unmarshal(env.Data, &details); err != nil {
		t.Fatalf("decode course details: %v", err)
	}
	if len(details.Course.StaffMembers) != 1 || details.Course.StaffMembers[0].AcademicID != a {
		t.Fatalf("unexpected staff: %+v", details.Course.StaffMembers)
	}
	if len(details.Course.AllMembers) != 2 || details.Course.AllMembers[1].AcademicID != b {
		t.Fatalf("unexpected members: %+v", details.Course.AllMembers)
	}

	if code, _ = do(t, r, http.MethodGet, "/api/v1/courses/999", a, nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown course, got %d", code)
	}
	if code, _ = do(t, r, http.MethodGet, "/api/v1/courses/abc", a, nil); code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", code)
	}
}

func TestRequesterIdentification(t *testing.T) {
	r := setupRouter(t)
	kevin, token := createAcademic(t, r, "Kevin", "Golf")

	if code, env := do(t, r, http.MethodGet, "/api/v1/courses", 0, nil); code != http.StatusUnauthorized || env.Error.Code != "AUTH_008" {
		t.Fatalf("expected 401 without requester, got %d %+v", code, env.Error)
	}

	if code, env := do(t, r, http.MethodGet, "/api/v1/courses", kevin+50, nil); code != http.StatusNotFound || env.Error.Code != "RES_001" {
		t.Fatalf("expected 404 for unknown requester, got %d %+v", code, env.Error)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected bearer token to identify requester, got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get(middleware.RequestIDHeader) == "" {
		t.Fatal("expected a request id header on the response")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/courses", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", resp.Code)
	}
}

func TestClearEndpoint(t *testing.T) {
	r := setupRouter(t)
	kevin, _ := createAcademic(t, r, "Kevin", "Golf")

	if code, _ := do(t, r, http.MethodDelete, "/api/v1/registry", 0, nil); code != http.StatusOK {
		t.Fatalf("expected 200 on clear, got %d", code)
	}

	if code, _ := do(t, r, http.MethodGet, "/api/v1/academics", kevin, nil); code != http.StatusNotFound {
		t.Fatalf("expected 404 after clear, got %d", code)
	}

	code, env := do(t, r, http.MethodGet, "/api/v1/health", 0, nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("expected healthy response, got %d %+v", code, env)
	}
}

// withToken sends a request identified only by a bearer token.
func withToken(t *testing.T, r *gin.Engine, method, path, token string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	var env envelope
	if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %s %s response %q: %v", method, path, resp.Body.String(), err)
	}
	return resp.Code, env
}

func TestTokenSurvivesClearWithoutNamingNewAcademic(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AllowIDHeader = false
	cfg.Registry.IDStrategy = "random"
	cfg.Registry.AcademicIDMax = 2
	r := setupRouterWith(t, cfg)

	alice, aliceToken := createAcademic(t, r, "Alice", "Chess")

	if code, _ := do(t, r, http.MethodDelete, "/api/v1/registry", 0, nil); code != http.StatusOK {
		t.Fatalf("expected 200 on clear, got %d", code)
	}

	mallory, _ := createAcademic(t, r, "Mallory", "Lockpicking")
	if mallory == alice {
		t.Fatalf("id %d handed out again after clear", alice)
	}

	path := fmt.Sprintf("/api/v1/academics/%d", mallory)
	if code, env := withToken(t, r, http.MethodGet, path, aliceToken); code != http.StatusNotFound || env.Error.Code != "RES_001" {
		t.Fatalf("expected stale token to be rejected with 404, got %d %+v", code, env.Error)
	}

	// Both ids in the range have been issued once.
	code, env := do(t, r, http.MethodPost, "/api/v1/academics", 0, map[string]string{"name": "Eve", "hobby": "Sailing"})
	if code != http.StatusServiceUnavailable || env.Error.Code != "SRV_002" {
		t.Fatalf("expected 503 SRV_002 once ids are exhausted, got %d %+v", code, env.Error)
	}
}

func TestAcademicIDHeaderDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.JWT.AllowIDHeader = false
	r := setupRouterWith(t, cfg)

	kevin, token := createAcademic(t, r, "Kevin", "Golf")

	if code, env := do(t, r, http.MethodGet, "/api/v1/courses", kevin, nil); code != http.StatusUnauthorized || env.Error.Code != "AUTH_008" {
		t.Fatalf("expected header to be ignored, got %d %+v", code, env.Error)
	}
	if code, _ := withToken(t, r, http.MethodGet, "/api/v1/courses", token); code != http.StatusOK {
		t.Fatalf("expected bearer token to work, got %d", code)
	}
}

func TestEnrolWithChunkedEmptyBody(t *testing.T) {
	r := setupRouter(t)
	a, _ := createAcademic(t, r, "Kevin", "Golf")
	b, _ := createAcademic(t, r, "Hayden", "Chess")

	code, env := do(t, r, http.MethodPost, "/api/v1/courses", a, map[string]string{"name": "X", "description": "d"})
	if code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", code)
	}
	var created struct {
		CourseID int64 `json:"courseId"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode course: %v", err)
	}
	coursePath := fmt.Sprintf("/api/v1/courses/%d", created.CourseID)

	req := httptest.NewRequest(http.MethodPost, coursePath+"/enrolments", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.AcademicIDHeader, fmt.Sprint(b))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected empty chunked body to enrol, got %d: %s", resp.Code, resp.Body.String())
	}

	code, env = do(t, r, http.MethodGet, coursePath, b, nil)
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	var details struct {
		Course struct {
			StaffMembers []struct {
				AcademicID int64 `json:"academicId"`
			} `json:"staffMembers"`
		} `json:"course"`
	}
	if err := json.Unmarshal(env.Data, &details); err != nil {
		t.Fatalf("decode course details: %v", err)
	}
	for _, m := range details.Course.StaffMembers {
		if m.AcademicID == b {
			t.Fatalf("expected %d to be enrolled as a plain member", b)
		}
	}
}
