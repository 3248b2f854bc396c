package model

import (
	"context"
	"strings"
	"time"
)

// UserRole represents a user's access level.
type UserRole string

const (
	// UserRoleAdmin is an admin user role.
	UserRoleAdmin UserRole = "admin"
)

// User represents a system user (admins reviewing submissions).
type User struct {
	ID           int64
	Username     string
	DisplayName  string
	PasswordHash string
	Role         UserRole
	Active       bool
	CreatedAt    time.Time
}

// AuthSession represents an authentication session.
type AuthSession struct {
	ID        string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

type userCtxKey struct{}

// ContextWithUser stores a user in the request context.
func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext retrieves the authenticated user from context, or nil.
func UserFromContext(ctx context.Context) *User {
	u, _ := ctx.Value(userCtxKey{}).(*User)
	return u
}

// Track identifies one ordered question set.
type Track int

const (
	// TrackPrimary is the brand-song question set.
	TrackPrimary Track = 1
	// TrackSecondary is the narration question set.
	TrackSecondary Track = 2
)

// QuestionKind represents how a question is answered.
type QuestionKind string

const (
	KindShortText    QuestionKind = "short_text"
	KindLongText     QuestionKind = "long_text"
	KindSingleChoice QuestionKind = "single_choice"
	KindMultiChoice  QuestionKind = "multi_choice"
	KindRankedChoice QuestionKind = "ranked_choice"
)

// HasOptions reports whether the kind requires a non-empty option list.
func (k QuestionKind) HasOptions() bool {
	return k == KindSingleChoice || k == KindMultiChoice || k == KindRankedChoice
}

// IsText reports whether the kind is answered with free text.
func (k QuestionKind) IsText() bool {
	return k == KindShortText || k == KindLongText
}

// Rule is a structural validation tag attached to a question at
// catalog-authoring time. Rules are explicit fields, never inferred
// from the question's display text.
type Rule string

const (
	RuleNone             Rule = ""
	RuleThreeCommaTokens Rule = "three_comma_tokens"
	RuleContainsComma    Rule = "contains_comma"
	RuleMinTwoWords      Rule = "min_two_words"
	RuleMinTwoLines      Rule = "min_two_lines"
)

// Question is an immutable catalog entry.
type Question struct {
	ID       string       `json:"id"`
	Track    Track        `json:"track"`
	Section  string       `json:"section,omitempty"`
	Title    string       `json:"title"`
	Prompt   string       `json:"prompt"`
	Example  string       `json:"example,omitempty"`
	Kind     QuestionKind `json:"kind"`
	Options  []string     `json:"options,omitempty"`
	// MaxSelections caps multi-choice selection count; 0 means unbounded.
	MaxSelections int `json:"max_selections,omitempty"`
	// AllowsNotApplicable permits the not-applicable sentinel on text kinds.
	AllowsNotApplicable bool `json:"allows_not_applicable,omitempty"`
	Rule                Rule `json:"rule,omitempty"`
}

// NotApplicable is the committed answer for questions the customer marks
// as not applicable, regardless of any typed text.
const NotApplicable = "해당없음"

// RankedCount is the number of entries a ranked-choice answer must hold.
const RankedCount = 3

// Answer is a committed, validated value keyed by Question.ID.
// Text is set for text and single-choice kinds, List for multi-choice
// (selection set) and ranked-choice (rank implied by position).
type Answer struct {
	Kind QuestionKind `json:"kind"`
	Text string       `json:"text,omitempty"`
	List []string     `json:"list,omitempty"`
}

// Display renders the answer as a single string for summaries and the
// forwarded payload.
func (a Answer) Display() string {
	if len(a.List) > 0 {
		return strings.Join(a.List, ", ")
	}
	return a.Text
}

// Matches reports whether the answer's shape conforms to the question kind.
func (a Answer) Matches(kind QuestionKind) bool {
	if a.Kind != kind {
		return false
	}
	switch kind {
	case KindMultiChoice:
		return a.Text == "" && len(a.List) > 0
	case KindRankedChoice:
		return a.Text == "" && len(a.List) == RankedCount
	default:
		return a.Text != "" && a.List == nil
	}
}

// Service is the product the customer chose on the service screen.
type Service string

const (
	ServiceBrandSong Service = "브랜드송"
	ServiceNarration Service = "나레이션"
	ServiceCombo     Service = "브랜드송+나레이션"
	ServicePlaylist  Service = "플레이리스트"
)

// Valid reports whether the service is one of the four offered products.
func (s Service) Valid() bool {
	switch s {
	case ServiceBrandSong, ServiceNarration, ServiceCombo, ServicePlaylist:
		return true
	}
	return false
}

// Screen is an enumerated wizard screen identifier.
type Screen string

const (
	ScreenIntro         Screen = "intro"
	ScreenBrandIntro    Screen = "brand_intro"
	ScreenProfile       Screen = "profile"
	ScreenServiceSelect Screen = "service_select"
	ScreenSurvey        Screen = "survey"
	ScreenComplete      Screen = "complete"
)

// FixedProfileSteps is the number of pre-survey navigation steps counted
// toward the progress indicator (intro, brand intro, profile).
const FixedProfileSteps = 3

// Profile holds the fields collected before the survey proper.
type Profile struct {
	BrandName string `json:"brand_name"`
	Email     string `json:"email"`
	Industry  string `json:"industry"`
}

// SurveyState tracks the cursor within the active question track.
type SurveyState struct {
	Track    Track             `json:"track"`
	Position int               `json:"position"`
	Answers  map[string]Answer `json:"answers"`
}

// Clone returns a deep copy of the survey state.
func (s SurveyState) Clone() SurveyState {
	out := s
	out.Answers = make(map[string]Answer, len(s.Answers))
	for id, a := range s.Answers {
		c := a
		if a.List != nil {
			c.List = append([]string(nil), a.List...)
		}
		out.Answers[id] = c
	}
	return out
}

// WizardState is the full durable state of one wizard session. It is
// mutated only by the state machine's transition operations.
type WizardState struct {
	Screen     Screen      `json:"screen"`
	Service    Service     `json:"service"`
	Profile    Profile     `json:"profile"`
	Survey     SurveyState `json:"survey"`
	TotalSteps int         `json:"total_steps"`
	StepIndex  int         `json:"step_index"`
}

// Clone returns a deep copy suitable for the history stack.
func (w WizardState) Clone() WizardState {
	out := w
	out.Survey = w.Survey.Clone()
	return out
}

// DraftFormatVersion tags the serialized draft layout. Snapshots with a
// different version are discarded on load.
const DraftFormatVersion = "2"

// DraftTTL is the validity window for saved drafts.
const DraftTTL = 24 * time.Hour

// DraftSnapshot is a persisted, versioned, time-bounded projection of
// WizardState. History and other transient UI state are excluded.
type DraftSnapshot struct {
	FormatVersion string      `json:"version"`
	SavedAt       time.Time   `json:"timestamp"`
	State         WizardState `json:"state"`
}

// Fresh reports whether the snapshot is honored at the given time.
func (d DraftSnapshot) Fresh(now time.Time) bool {
	return d.FormatVersion == DraftFormatVersion && now.Sub(d.SavedAt) <= DraftTTL
}

// SubmissionPayload is the JSON body forwarded to the spreadsheet-script
// endpoint. Track answers are keyed by question title.
type SubmissionPayload struct {
	BrandName             string            `json:"brandName"`
	Industry              string            `json:"industry"`
	Email                 string            `json:"email"`
	SelectedService       string            `json:"selectedService"`
	PrimaryTrackAnswers   map[string]string `json:"primaryTrackAnswers"`
	SecondaryTrackAnswers map[string]string `json:"secondaryTrackAnswers"`
}

// Submission is a locally recorded completed survey.
type Submission struct {
	ID         int64             `json:"id"`
	SessionKey string            `json:"session_key"`
	Service    Service           `json:"service"`
	Profile    Profile           `json:"profile"`
	Payload    SubmissionPayload `json:"payload"`
	Forwarded  bool              `json:"forwarded"`
	CreatedAt  time.Time         `json:"created_at"`
}

// Config holds runtime parameters set via CLI flags.
type Config struct {
	ForwardURL    string // external spreadsheet-script endpoint ("" disables forwarding)
	Lang          string // default UI language for validation messages
	SecureCookies bool   // set Secure flag on cookies (disable for local dev)
}
