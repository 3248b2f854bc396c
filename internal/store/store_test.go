package store

import (
	"testing"
	"time"

	"github.com/ssoksound/surveywizard/internal/catalog"
	"github.com/ssoksound/surveywizard/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("newTestStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSnapshot(savedAt time.Time) model.DraftSnapshot {
	return model.DraftSnapshot{
		FormatVersion: model.DraftFormatVersion,
		SavedAt:       savedAt,
		State: model.WizardState{
			Screen:  model.ScreenSurvey,
			Service: model.ServiceBrandSong,
			Profile: model.Profile{BrandName: "쏙쏙사운드", Email: "owner@example.com"},
			Survey: model.SurveyState{
				Track:    model.TrackPrimary,
				Position: 2,
				Answers: map[string]model.Answer{
					"q1": {Kind: model.KindShortText, Text: "좋은 서비스가 없어서"},
					"q2": {Kind: model.KindShortText, Text: "가격이 비싸서"},
				},
			},
			TotalSteps: 23,
			StepIndex:  5,
		},
	}
}

func TestDraftRoundTrip(t *testing.T) {
	s := newTestStore(t)

	// Absent slot loads as nil.
	snap, err := s.LoadDraft("nobody")
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil for absent draft")
	}

	saved := testSnapshot(time.Now())
	if err := s.SaveDraft("sess-1", saved); err != nil {
		t.Fatalf("SaveDraft: %v", err)
	}

	got, err := s.LoadDraft("sess-1")
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if got == nil {
		t.Fatal("expected a draft")
	}
	if got.State.Survey.Position != 2 {
		t.Errorf("Position = %d, want 2", got.State.Survey.Position)
	}
	if got.State.Survey.Answers["q1"].Text != "좋은 서비스가 없어서" {
		t.Errorf("answer q1 = %+v", got.State.Survey.Answers["q1"])
	}
	if got.State.Profile.BrandName != "쏙쏙사운드" {
		t.Errorf("brand = %q", got.State.Profile.BrandName)
	}
}

func TestDraftLastWriteWins(t *testing.T) {
	s := newTestStore(t)

	first := testSnapshot(time.Now())
	if err := s.SaveDraft("sess-1", first); err != nil {
		t.Fatal(err)
	}
	second := testSnapshot(time.Now())
	second.State.Survey.Position = 7
	if err := s.SaveDraft("sess-1", second); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadDraft("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.State.Survey.Position != 7 {
		t.Errorf("Position = %d, want 7", got.State.Survey.Position)
	}
}

func TestStaleDraftDeletedOnLoad(t *testing.T) {
	s := newTestStore(t)

	stale := testSnapshot(time.Now().Add(-25 * time.Hour))
	if err := s.SaveDraft("sess-1", stale); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadDraft("sess-1")
	if err != nil {
		t.Fatalf("LoadDraft: %v", err)
	}
	if got != nil {
		t.Fatal("25h-old draft was honored")
	}

	// The slot was eagerly deleted, not just skipped.
	ok, err := s.HasValidDraft("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("stale draft still probes as valid")
	}
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM drafts WHERE session_key = ?`, "sess-1").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Error("stale draft row not deleted")
	}
}

func TestVersionMismatchDeletedOnLoad(t *testing.T) {
	s := newTestStore(t)

	old := testSnapshot(time.Now())
	old.FormatVersion = "1"
	if err := s.SaveDraft("sess-1", old); err != nil {
		t.Fatal(err)
	}

	got, err := s.LoadDraft("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatal("version-mismatched draft was honored")
	}
	ok, err := s.HasValidDraft("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("mismatched draft still probes as valid")
	}
}

func TestHasValidDraft(t *testing.T) {
	s := newTestStore(t)

	ok, err := s.HasValidDraft("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("empty store reports a valid draft")
	}

	if err := s.SaveDraft("sess-1", testSnapshot(time.Now())); err != nil {
		t.Fatal(err)
	}
	ok, err = s.HasValidDraft("sess-1")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("fresh draft not reported as valid")
	}
}

func TestCleanupExpiredDrafts(t *testing.T) {
	s := newTestStore(t)

	if err := s.SaveDraft("fresh", testSnapshot(time.Now())); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveDraft("stale", testSnapshot(time.Now().Add(-25*time.Hour))); err != nil {
		t.Fatal(err)
	}
	if err := s.CleanupExpiredDrafts(); err != nil {
		t.Fatal(err)
	}

	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM drafts`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("drafts remaining = %d, want 1", count)
	}
}

func testSubmission() model.Submission {
	return model.Submission{
		SessionKey: "sess-1",
		Service:    model.ServiceBrandSong,
		Profile:    model.Profile{BrandName: "쏙쏙사운드", Industry: "카페", Email: "owner@example.com"},
		Payload: model.SubmissionPayload{
			BrandName:       "쏙쏙사운드",
			Industry:        "카페",
			Email:           "owner@example.com",
			SelectedService: string(model.ServiceBrandSong),
			PrimaryTrackAnswers: map[string]string{
				catalog.Primary()[0].Title: "좋은 서비스가 없어서",
			},
			SecondaryTrackAnswers: map[string]string{},
		},
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.InsertSubmission(testSubmission())
	if err != nil {
		t.Fatalf("InsertSubmission: %v", err)
	}

	got, err := s.GetSubmission(id)
	if err != nil {
		t.Fatalf("GetSubmission: %v", err)
	}
	if got == nil {
		t.Fatal("submission not found")
	}
	if got.Profile.BrandName != "쏙쏙사운드" || got.Forwarded {
		t.Errorf("submission = %+v", got)
	}
	if got.Payload.PrimaryTrackAnswers[catalog.Primary()[0].Title] == "" {
		t.Error("payload answers lost")
	}

	if err := s.MarkSubmissionForwarded(id); err != nil {
		t.Fatalf("MarkSubmissionForwarded: %v", err)
	}
	got, err = s.GetSubmission(id)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Forwarded {
		t.Error("forwarded flag not set")
	}

	missing, err := s.GetSubmission(9999)
	if err != nil {
		t.Fatal(err)
	}
	if missing != nil {
		t.Error("expected nil for missing submission")
	}
}

func TestExportSubmissions(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.InsertSubmission(testSubmission()); err != nil {
		t.Fatal(err)
	}

	dump, err := s.ExportSubmissions()
	if err != nil {
		t.Fatalf("ExportSubmissions: %v", err)
	}
	if len(dump.Submissions) != 1 {
		t.Fatalf("submissions = %d, want 1", len(dump.Submissions))
	}
	sub := dump.Submissions[0]
	if len(sub.Answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(sub.Answers))
	}
	if sub.Answers[0].Track != model.TrackPrimary || sub.Answers[0].Title != catalog.Primary()[0].Title {
		t.Errorf("answer = %+v", sub.Answers[0])
	}
}

func TestUsersAndAuthSessions(t *testing.T) {
	s := newTestStore(t)

	count, err := s.UserCount()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Fatalf("user count = %d, want 0", count)
	}

	id, err := s.CreateUser(model.User{
		Username:     "admin",
		DisplayName:  "Administrator",
		PasswordHash: "hash",
		Role:         model.UserRoleAdmin,
		Active:       true,
	})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	u, err := s.GetUserByUsername("admin")
	if err != nil {
		t.Fatal(err)
	}
	if u == nil || u.ID != id || u.Role != model.UserRoleAdmin {
		t.Fatalf("user = %+v", u)
	}

	token, err := s.CreateAuthSession(id)
	if err != nil {
		t.Fatalf("CreateAuthSession: %v", err)
	}
	sess, err := s.GetAuthSession(token)
	if err != nil {
		t.Fatal(err)
	}
	if sess == nil || sess.UserID != id {
		t.Fatalf("auth session = %+v", sess)
	}

	if err := s.DeleteAuthSession(token); err != nil {
		t.Fatal(err)
	}
	sess, err = s.GetAuthSession(token)
	if err != nil {
		t.Fatal(err)
	}
	if sess != nil {
		t.Error("deleted auth session still readable")
	}
}
