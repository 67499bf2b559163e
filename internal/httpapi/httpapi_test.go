package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/HendryAvila/sheraa-eligibility/internal/catalog"
	"github.com/HendryAvila/sheraa-eligibility/internal/session"
	"github.com/gin-gonic/gin"
)

type testView struct {
	Step            int    `json:"step"`
	TotalSteps      int    `json:"total_steps"`
	Persona         string `json:"persona"`
	ShowResult      bool   `json:"show_result"`
	CurrentQuestion *struct {
		ID string `json:"id"`
	} `json:"current_question"`
	Recommendation *struct {
		Program struct {
			ID   string `json:"id"`
			Link string `json:"link"`
		} `json:"program"`
		Tier  string `json:"tier"`
		Found bool   `json:"found"`
	} `json:"recommendation"`
}

type testSession struct {
	Session struct {
		ID      string `json:"id"`
		Variant string `json:"variant"`
	} `json:"session"`
	View testView `json:"view"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cat := catalog.Default()
	reg := session.NewRegistry(cat, nil)
	return NewRouter(RouterConfig{
		SessionHandler: NewSessionHandler(reg),
		CatalogHandler: NewCatalogHandler(cat),
		HealthHandler:  NewHealthHandler(),
		AllowOrigins:   []string{"http://localhost:3000"},
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func openSession(t *testing.T, r *gin.Engine) string {
	t.Helper()
	rec := do(t, r, http.MethodPost, "/api/sessions", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("open: status = %d, body = %s", rec.Code, rec.Body.String())
	}
	return decode[testSession](t, rec).Session.ID
}

func TestHealthcheck(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, http.MethodGet, "/healthcheck", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("healthcheck = %d %q, want 200 ok", rec.Code, rec.Body.String())
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r := newTestRouter(t)

	q := decode[struct {
		Questions []catalog.Question `json:"questions"`
	}](t, do(t, r, http.MethodGet, "/api/catalog/questions", ""))
	if len(q.Questions) != catalog.Default().Len() {
		t.Errorf("questions = %d, want %d", len(q.Questions), catalog.Default().Len())
	}

	p := decode[struct {
		Programs []catalog.Program `json:"programs"`
	}](t, do(t, r, http.MethodGet, "/api/catalog/programs", ""))
	if len(p.Programs) != 11 || p.Programs[10].ID != catalog.DefaultProgramID {
		t.Errorf("programs = %d (last %q), want 11 ending in community-membership", len(p.Programs), p.Programs[len(p.Programs)-1].ID)
	}

	c := decode[struct {
		Report catalog.CheckReport `json:"report"`
	}](t, do(t, r, http.MethodGet, "/api/catalog/check", ""))
	if !c.Report.OK {
		t.Errorf("check failed: %v", c.Report.Issues)
	}
}

func TestSessionFlow_Student(t *testing.T) {
	r := newTestRouter(t)
	id := openSession(t, r)
	base := "/api/sessions/" + id

	rec := do(t, r, http.MethodPost, base+"/next", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("next without answer: status = %d, want 422", rec.Code)
	}
	if e := decode[ErrorEnvelope](t, rec); e.Error.Code != "selection_required" {
		t.Errorf("error code = %q, want selection_required", e.Error.Code)
	}

	steps := []struct{ question, body string }{
		{"persona", `{"option_ids":["student"]}`},
		{"studentStage", `{"option_ids":["concept"]}`},
		{"studentUniversity", `{"option_ids":["yes"]}`},
	}
	var last testSession
	for _, s := range steps {
		if rec := do(t, r, http.MethodPut, base+"/answers/"+s.question, s.body); rec.Code != http.StatusOK {
			t.Fatalf("answer %s: status = %d, body = %s", s.question, rec.Code, rec.Body.String())
		}
		rec := do(t, r, http.MethodPost, base+"/next", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("next after %s: status = %d, body = %s", s.question, rec.Code, rec.Body.String())
		}
		last = decode[testSession](t, rec)
	}

	if !last.View.ShowResult || last.View.Recommendation == nil {
		t.Fatalf("expected result view, got %+v", last.View)
	}
	if got := last.View.Recommendation.Program.ID; got != "startup-dojo" {
		t.Errorf("recommendation = %q, want startup-dojo", got)
	}

	open := decode[struct {
		Link string `json:"link"`
	}](t, do(t, r, http.MethodPost, base+"/open", ""))
	if open.Link != "/programs/startup-dojo" {
		t.Errorf("link = %q, want /programs/startup-dojo", open.Link)
	}

	back := decode[testSession](t, do(t, r, http.MethodPost, base+"/back", ""))
	if back.View.ShowResult || back.View.CurrentQuestion == nil || back.View.CurrentQuestion.ID != "studentUniversity" {
		t.Errorf("back from result = %+v, want studentUniversity", back.View)
	}

	reset := decode[testSession](t, do(t, r, http.MethodPost, base+"/reset", ""))
	if reset.View.Persona != "" || reset.View.CurrentQuestion == nil || reset.View.CurrentQuestion.ID != "persona" {
		t.Errorf("reset = %+v, want persona question", reset.View)
	}
}

func TestOpenSession_Variant(t *testing.T) {
	r := newTestRouter(t)
	rec := do(t, r, http.MethodPost, "/api/sessions", `{"variant":"page"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	if got := decode[testSession](t, rec).Session.Variant; got != "page" {
		t.Errorf("variant = %q, want page", got)
	}

	rec = do(t, r, http.MethodPost, "/api/sessions", `{"variant":"popover"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad variant status = %d, want 400", rec.Code)
	}
}

func TestAnswer_Errors(t *testing.T) {
	r := newTestRouter(t)
	id := openSession(t, r)
	base := "/api/sessions/" + id

	tests := []struct {
		name, path, body string
		status           int
		code             string
	}{
		{"unknown question", base + "/answers/nope", `{"option_ids":["x"]}`, http.StatusNotFound, "question_not_found"},
		{"unknown option", base + "/answers/persona", `{"option_ids":["astronaut"]}`, http.StatusBadRequest, "invalid_option"},
		{"too many", base + "/answers/persona", `{"option_ids":["student","sme"]}`, http.StatusBadRequest, "invalid_option"},
		{"bad body", base + "/answers/persona", `{`, http.StatusBadRequest, "invalid_request"},
		{"unknown session", "/api/sessions/missing/answers/persona", `{"option_ids":["sme"]}`, http.StatusNotFound, "session_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, r, http.MethodPut, tt.path, tt.body)
			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
			if e := decode[ErrorEnvelope](t, rec); e.Error.Code != tt.code {
				t.Errorf("code = %q, want %q", e.Error.Code, tt.code)
			}
		})
	}
}

func TestCloseSession(t *testing.T) {
	r := newTestRouter(t)
	id := openSession(t, r)

	if rec := do(t, r, http.MethodDelete, "/api/sessions/"+id, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", rec.Code)
	}
	if rec := do(t, r, http.MethodGet, "/api/sessions/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", rec.Code)
	}
	if rec := do(t, r, http.MethodDelete, "/api/sessions/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete = %d, want 404", rec.Code)
	}
}

func TestOpenRecommendation_Conflict(t *testing.T) {
	r := newTestRouter(t)
	id := openSession(t, r)
	rec := do(t, r, http.MethodPost, "/api/sessions/"+id+"/open", "")
	if rec.Code != http.StatusConflict {
		t.Errorf("status = %d, want 409", rec.Code)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/api/sessions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("allow-origin = %q, want http://localhost:3000", got)
	}
}
