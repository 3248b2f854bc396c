package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	appI18n "github.com/ssoksound/surveywizard/internal/i18n"
	"github.com/ssoksound/surveywizard/internal/model"
	"github.com/ssoksound/surveywizard/internal/store"
	"github.com/ssoksound/surveywizard/internal/wizard"
)

func TestMain(m *testing.M) {
	if err := appI18n.Init("ko"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubForwarder records submissions and can be told to fail.
type stubForwarder struct {
	payloads []model.SubmissionPayload
	err      error
}

func (f *stubForwarder) Submit(_ context.Context, p model.SubmissionPayload) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, p)
	return nil
}

type testEnv struct {
	srv    *httptest.Server
	client *http.Client
	store  *store.Store
	fwd    *stubForwarder
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s, err := store.New(":memory:")
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	fwd := &stubForwarder{}
	reg := wizard.NewRegistry(s, nil)
	h := New(s, reg, fwd, model.Config{Lang: "ko"})

	r := chi.NewRouter()
	r.Use(appI18n.Middleware("ko"))
	h.Routes(r)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookiejar: %v", err)
	}
	return &testEnv{
		srv:    srv,
		client: &http.Client{Jar: jar},
		store:  s,
		fwd:    fwd,
	}
}

func (e *testEnv) post(t *testing.T, path string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	resp, err := e.client.Post(e.srv.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	var out bytes.Buffer
	if _, err := out.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, out.Bytes()
}

func (e *testEnv) postOK(t *testing.T, path string, body any) stateView {
	t.Helper()
	resp, data := e.post(t, path, body)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("POST %s = %d: %s", path, resp.StatusCode, data)
	}
	var view stateView
	if err := json.Unmarshal(data, &view); err != nil {
		t.Fatalf("decode view: %v", err)
	}
	return view
}

// toSurvey walks a session up to the first survey question.
func (e *testEnv) toSurvey(t *testing.T, svc model.Service) {
	t.Helper()
	e.postOK(t, "/api/session", nil)
	e.postOK(t, "/api/session/next", nil)
	e.postOK(t, "/api/session/next", nil)
	e.postOK(t, "/api/session/profile", model.Profile{BrandName: "쏙쏙사운드", Email: "owner@example.com"})
	e.postOK(t, "/api/session/next", nil)
	e.postOK(t, "/api/session/service", map[string]any{"service": svc})
}

func TestSessionBootstrap(t *testing.T) {
	e := newTestEnv(t)

	view := e.postOK(t, "/api/session", nil)
	if view.Screen != model.ScreenIntro {
		t.Errorf("screen = %s, want intro", view.Screen)
	}
	if view.DraftPending {
		t.Error("fresh session reports a pending draft")
	}

	// The cookie pins the same session across requests.
	view = e.postOK(t, "/api/session/next", nil)
	if view.Screen != model.ScreenBrandIntro {
		t.Errorf("screen = %s, want brand_intro", view.Screen)
	}
}

func TestSurveyFlowAndValidation(t *testing.T) {
	e := newTestEnv(t)
	e.toSurvey(t, model.ServiceBrandSong)

	// An empty answer is refused with the localized message.
	resp, data := e.post(t, "/api/session/advance", wizard.RawInput{Text: "   "})
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", resp.StatusCode)
	}
	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err != nil {
		t.Fatal(err)
	}
	if errResp.Error != "답변을 입력해주세요." {
		t.Errorf("error = %q", errResp.Error)
	}

	// A valid answer advances.
	view := e.postOK(t, "/api/session/advance", wizard.RawInput{Text: "고객이 원하는 서비스가 없어서"})
	if view.StepIndex != model.FixedProfileSteps+1 {
		t.Errorf("StepIndex = %d", view.StepIndex)
	}
	if view.Question == nil || view.Question.ID != "q2" {
		t.Errorf("question = %+v", view.Question)
	}

	// Retreat re-presents the committed answer.
	view = e.postOK(t, "/api/session/retreat", nil)
	if view.Answer == nil || view.Answer.Text != "고객이 원하는 서비스가 없어서" {
		t.Errorf("prefilled answer = %+v", view.Answer)
	}
}

func TestServiceChangeConflict(t *testing.T) {
	e := newTestEnv(t)
	e.toSurvey(t, model.ServiceBrandSong)
	e.postOK(t, "/api/session/advance", wizard.RawInput{Text: "답변 하나"})
	e.postOK(t, "/api/session/retreat", nil)
	e.postOK(t, "/api/session/retreat", nil) // back to service select

	resp, data := e.post(t, "/api/session/service", map[string]any{"service": model.ServiceNarration})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", resp.StatusCode, data)
	}
	var prompt wizard.ServiceChangePrompt
	if err := json.Unmarshal(data, &prompt); err != nil {
		t.Fatal(err)
	}
	if prompt.Answered != 1 || prompt.Requested != model.ServiceNarration {
		t.Errorf("prompt = %+v", prompt)
	}

	view := e.postOK(t, "/api/session/service/confirm", map[string]any{"discard": true})
	if view.Service != model.ServiceNarration {
		t.Errorf("service = %s", view.Service)
	}
	if view.Profile.BrandName != "쏙쏙사운드" {
		t.Error("profile lost on service change")
	}
}

func TestSubmitRecordsAndForwards(t *testing.T) {
	e := newTestEnv(t)
	e.toSurvey(t, model.ServicePlaylist) // zero questions, straight to complete

	resp, data := e.post(t, "/api/session/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("submit = %d: %s", resp.StatusCode, data)
	}
	if len(e.fwd.payloads) != 1 {
		t.Fatalf("forwarded %d payloads, want 1", len(e.fwd.payloads))
	}
	if e.fwd.payloads[0].BrandName != "쏙쏙사운드" {
		t.Errorf("payload = %+v", e.fwd.payloads[0])
	}

	subs, err := e.store.ListSubmissions()
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || !subs[0].Forwarded {
		t.Fatalf("submissions = %+v", subs)
	}
}

func TestSubmitBeforeCompletionRefused(t *testing.T) {
	e := newTestEnv(t)
	e.toSurvey(t, model.ServiceBrandSong)

	resp, _ := e.post(t, "/api/session/submit", nil)
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("submit mid-survey = %d, want 409", resp.StatusCode)
	}
}

func TestSubmitForwardFailureIsRetryable(t *testing.T) {
	e := newTestEnv(t)
	e.fwd.err = errors.New("connection refused")
	e.toSurvey(t, model.ServicePlaylist)

	resp, data := e.post(t, "/api/session/submit", nil)
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err != nil {
		t.Fatal(err)
	}
	if !errResp.Retryable {
		t.Error("forward failure not marked retryable")
	}

	// The local record is kept, unforwarded, and a retry succeeds.
	subs, err := e.store.ListSubmissions()
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].Forwarded {
		t.Fatalf("submissions after failure = %+v", subs)
	}

	e.fwd.err = nil
	resp, data = e.post(t, "/api/session/submit", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("retry = %d: %s", resp.StatusCode, data)
	}
}

func TestDraftProbe(t *testing.T) {
	e := newTestEnv(t)

	probe := func() bool {
		t.Helper()
		resp, err := e.client.Get(e.srv.URL + "/api/session/draft")
		if err != nil {
			t.Fatalf("GET draft probe: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("probe = %d, want 200", resp.StatusCode)
		}
		var out struct {
			DraftPending bool `json:"draft_pending"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatal(err)
		}
		return out.DraftPending
	}

	// No cookie yet: nothing to resume.
	if probe() {
		t.Error("probe without a session reports a draft")
	}

	// A session with progress leaves a resumable draft behind.
	e.toSurvey(t, model.ServiceBrandSong)
	e.postOK(t, "/api/session/advance", wizard.RawInput{Text: "첫 번째 답변"})
	if !probe() {
		t.Error("probe after progress reports no draft")
	}
}

func TestDraftResumeAcrossSessions(t *testing.T) {
	e := newTestEnv(t)
	e.toSurvey(t, model.ServiceBrandSong)
	e.postOK(t, "/api/session/advance", wizard.RawInput{Text: "첫 번째 답변"})

	// Drop the live session; the draft row remains.
	var wizardToken string
	for _, c := range e.client.Jar.Cookies(mustParseURL(t, e.srv.URL)) {
		if c.Name == wizardCookieName {
			wizardToken = c.Value
		}
	}
	if wizardToken == "" {
		t.Fatal("no wizard cookie set")
	}

	reg := wizard.NewRegistry(e.store, nil)
	err := reg.With(wizardToken, func(w *wizard.Wizard) error {
		if w.PendingDraft() == nil {
			t.Fatal("expected a pending draft in a fresh registry")
		}
		if err := w.ResumeDraft(); err != nil {
			return err
		}
		st := w.State()
		if st.Survey.Position != 1 || len(st.Survey.Answers) != 1 {
			t.Errorf("resumed state: pos %d answers %d", st.Survey.Position, len(st.Survey.Answers))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
}

func TestAdminAuth(t *testing.T) {
	e := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := e.store.CreateUser(model.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         model.UserRoleAdmin,
		Active:       true,
	}); err != nil {
		t.Fatal(err)
	}

	// Unauthenticated access is refused.
	resp, err := e.client.Get(e.srv.URL + "/admin/submissions")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated = %d, want 401", resp.StatusCode)
	}

	// Wrong password is refused with the localized message.
	r2, data := e.post(t, "/admin/login", map[string]string{"username": "admin", "password": "wrong"})
	if r2.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad login = %d, want 401", r2.StatusCode)
	}
	var errResp errorResponse
	if err := json.Unmarshal(data, &errResp); err != nil {
		t.Fatal(err)
	}
	if errResp.Error != "아이디 또는 비밀번호가 올바르지 않습니다." {
		t.Errorf("login error = %q", errResp.Error)
	}

	// Correct login opens the submissions list.
	r3, data := e.post(t, "/admin/login", map[string]string{"username": "admin", "password": "secret"})
	if r3.StatusCode != http.StatusOK {
		t.Fatalf("login = %d: %s", r3.StatusCode, data)
	}
	resp, err = e.client.Get(e.srv.URL + "/admin/submissions")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("submissions after login = %d, want 200", resp.StatusCode)
	}
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	return u
}
