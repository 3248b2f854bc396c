// Package wizard implements the survey flow state machine: screen
// navigation, answer collection, draft recovery, and the submission
// payload. All transitions are all-or-nothing; a returned error means
// the state did not change.
package wizard

import (
	"log/slog"
	"strings"
	"time"

	"github.com/ssoksound/surveywizard/internal/catalog"
	"github.com/ssoksound/surveywizard/internal/model"
)

// maxHistory bounds the screen history stack. The screen flow is at
// most a handful deep, so the cap is never hit in normal use.
const maxHistory = 16

// DraftStore persists wizard snapshots per session key.
type DraftStore interface {
	SaveDraft(key string, snap model.DraftSnapshot) error
	LoadDraft(key string) (*model.DraftSnapshot, error)
	DeleteDraft(key string) error
}

// ServiceChangePrompt describes a requested mid-flow service change that
// would abandon collected answers. The caller confirms or cancels via
// ConfirmServiceChange.
type ServiceChangePrompt struct {
	Current   model.Service `json:"current"`
	Requested model.Service `json:"requested"`
	Answered  int           `json:"answered"`
	Total     int           `json:"total"`
	Fraction  float64       `json:"fraction"`
}

// AdvanceResult reports what an accepted Advance did.
type AdvanceResult struct {
	TrackSwitched bool
	Completed     bool
	Question      *model.Question
}

// Wizard drives one customer's survey session. It is not safe for
// concurrent use; the session registry serializes access.
type Wizard struct {
	key     string
	state   model.WizardState
	history []model.WizardState
	// scratch holds the in-progress ranking for the current ranked
	// question. It is transient and never persisted.
	scratch []string

	drafts DraftStore
	logger *slog.Logger
	now    func() time.Time

	pendingDraft   *model.DraftSnapshot
	pendingService model.Service
}

// New creates a session wizard at the intro screen. If a fresh draft
// exists for the key, the wizard starts gated: every transition returns
// ErrDraftDecisionPending until ResumeDraft or DiscardDraft is called.
// A draft-load failure is logged and the session starts without reload
// recovery; persistence never blocks the flow.
func New(key string, drafts DraftStore, logger *slog.Logger) *Wizard {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Wizard{
		key:    key,
		state:  freshState(),
		drafts: drafts,
		logger: logger,
		now:    time.Now,
	}
	snap, err := drafts.LoadDraft(key)
	if err != nil {
		logger.Warn("loading draft", "session", key, "error", err)
	} else {
		w.pendingDraft = snap
	}
	return w
}

func freshState() model.WizardState {
	return model.WizardState{
		Screen: model.ScreenIntro,
		Survey: model.SurveyState{Answers: make(map[string]model.Answer)},
	}
}

// State returns a deep copy of the current state.
func (w *Wizard) State() model.WizardState { return w.state.Clone() }

// PendingDraft returns the recovered draft awaiting a resume/discard
// decision, or nil.
func (w *Wizard) PendingDraft() *model.DraftSnapshot { return w.pendingDraft }

// PendingServiceChange returns the outstanding service-change prompt, or nil.
func (w *Wizard) PendingServiceChange() *ServiceChangePrompt {
	if w.pendingService == "" {
		return nil
	}
	p := w.changePrompt(w.pendingService)
	return &p
}

// ResumeDraft restores the recovered draft as the live state. History
// starts empty at the restored screen.
func (w *Wizard) ResumeDraft() error {
	if w.pendingDraft == nil {
		return ErrNoPendingDraft
	}
	w.state = w.pendingDraft.State.Clone()
	if w.state.Survey.Answers == nil {
		w.state.Survey.Answers = make(map[string]model.Answer)
	}
	w.history = nil
	w.scratch = nil
	w.pendingDraft = nil
	return nil
}

// DiscardDraft deletes the recovered draft and keeps the fresh session.
func (w *Wizard) DiscardDraft() error {
	if w.pendingDraft == nil {
		return ErrNoPendingDraft
	}
	if err := w.drafts.DeleteDraft(w.key); err != nil {
		w.logger.Warn("deleting discarded draft", "error", err)
	}
	w.pendingDraft = nil
	return nil
}

func (w *Wizard) guard() error {
	if w.pendingDraft != nil {
		return ErrDraftDecisionPending
	}
	return nil
}

// Next moves forward through the pre-survey screens.
func (w *Wizard) Next() error {
	if err := w.guard(); err != nil {
		return err
	}
	switch w.state.Screen {
	case model.ScreenIntro:
		w.push()
		w.state.Screen = model.ScreenBrandIntro
		w.state.StepIndex = 1
	case model.ScreenBrandIntro:
		w.push()
		w.state.Screen = model.ScreenProfile
		w.state.StepIndex = 2
	case model.ScreenProfile:
		if strings.TrimSpace(w.state.Profile.BrandName) == "" {
			return ErrProfileIncomplete
		}
		w.push()
		w.state.Screen = model.ScreenServiceSelect
		w.state.StepIndex = model.FixedProfileSteps
	case model.ScreenServiceSelect:
		return ErrNoServiceSelected
	case model.ScreenComplete:
		return ErrFlowComplete
	default:
		return ErrNotInSurvey
	}
	w.saveDraft()
	return nil
}

// Back pops the previous screen off the history stack. Within the
// survey, question-level backward movement is Retreat, not Back.
func (w *Wizard) Back() error {
	if err := w.guard(); err != nil {
		return err
	}
	if len(w.history) == 0 {
		return ErrNoHistory
	}
	w.state = w.history[len(w.history)-1]
	w.history = w.history[:len(w.history)-1]
	w.scratch = nil
	w.pendingService = ""
	w.saveDraft()
	return nil
}

// SetProfile stores the pre-survey profile fields. Valid only on the
// profile screen.
func (w *Wizard) SetProfile(p model.Profile) error {
	if err := w.guard(); err != nil {
		return err
	}
	if w.state.Screen != model.ScreenProfile {
		return ErrNotInSurvey
	}
	p.BrandName = strings.TrimSpace(p.BrandName)
	p.Email = strings.TrimSpace(p.Email)
	p.Industry = strings.TrimSpace(p.Industry)
	if p.BrandName == "" {
		return validationErr("BrandNameRequired")
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		return validationErr("EmailInvalid")
	}
	w.state.Profile = p
	w.saveDraft()
	return nil
}

// SelectService chooses a service on the service screen. When a
// different service was already active and answers exist, a prompt is
// returned instead and the state is left unchanged until
// ConfirmServiceChange.
func (w *Wizard) SelectService(svc model.Service) (*ServiceChangePrompt, error) {
	if err := w.guard(); err != nil {
		return nil, err
	}
	if w.state.Screen != model.ScreenServiceSelect {
		return nil, ErrNotInSurvey
	}
	if !svc.Valid() {
		return nil, ErrUnknownService
	}
	if w.state.Service != "" && w.state.Service != svc && len(w.state.Survey.Answers) > 0 {
		w.pendingService = svc
		p := w.changePrompt(svc)
		return &p, nil
	}
	w.pendingService = ""
	w.applyService(svc, w.state.Service != svc)
	return nil, nil
}

// ConfirmServiceChange resolves an outstanding service-change prompt.
// With discard=true the collected answers are dropped and the requested
// service starts fresh; the profile is preserved either way. With
// discard=false the prompt is cancelled and nothing changes.
func (w *Wizard) ConfirmServiceChange(discard bool) error {
	if err := w.guard(); err != nil {
		return err
	}
	if w.pendingService == "" {
		return ErrNoPendingServiceChange
	}
	svc := w.pendingService
	w.pendingService = ""
	if !discard {
		return nil
	}
	w.applyService(svc, true)
	return nil
}

func (w *Wizard) changePrompt(svc model.Service) ServiceChangePrompt {
	answered := len(w.state.Survey.Answers)
	total := catalog.QuestionCount(w.state.Service)
	var frac float64
	if total > 0 {
		frac = float64(answered) / float64(total)
	}
	return ServiceChangePrompt{
		Current:   w.state.Service,
		Requested: svc,
		Answered:  answered,
		Total:     total,
		Fraction:  frac,
	}
}

// applyService activates a service and enters the survey (or jumps to
// completion for the zero-question playlist service).
func (w *Wizard) applyService(svc model.Service, reset bool) {
	w.push()
	w.state.Service = svc
	w.state.TotalSteps = model.FixedProfileSteps + catalog.QuestionCount(svc)
	if reset {
		tracks := catalog.Tracks(svc)
		w.state.Survey = model.SurveyState{Answers: make(map[string]model.Answer)}
		if len(tracks) > 0 {
			w.state.Survey.Track = tracks[0]
		}
	}
	w.scratch = nil
	if catalog.QuestionCount(svc) == 0 {
		w.state.Screen = model.ScreenComplete
		w.state.StepIndex = w.state.TotalSteps
	} else {
		w.state.Screen = model.ScreenSurvey
		w.state.StepIndex = w.surveyStepIndex()
	}
	w.saveDraft()
}

// surveyStepIndex maps the survey cursor onto the overall step counter.
func (w *Wizard) surveyStepIndex() int {
	done := w.state.Survey.Position
	if w.state.Service == model.ServiceCombo && w.state.Survey.Track == model.TrackSecondary {
		done += len(catalog.Primary())
	}
	return model.FixedProfileSteps + done
}

// CurrentQuestion returns the question at the cursor, or nil outside
// the survey screen.
func (w *Wizard) CurrentQuestion() *model.Question {
	if w.state.Screen != model.ScreenSurvey {
		return nil
	}
	qs := catalog.ByTrack(w.state.Survey.Track)
	if w.state.Survey.Position < 0 || w.state.Survey.Position >= len(qs) {
		return nil
	}
	q := qs[w.state.Survey.Position]
	return &q
}

// CurrentAnswer returns the committed answer for the current question,
// so a revisited question re-presents its previous value.
func (w *Wizard) CurrentAnswer() *model.Answer {
	q := w.CurrentQuestion()
	if q == nil {
		return nil
	}
	a, ok := w.state.Survey.Answers[q.ID]
	if !ok {
		return nil
	}
	return &a
}

// Advance validates the input for the current question, commits it, and
// moves the cursor. At the end of the primary track of the combo
// service the cursor switches silently to the secondary track; at the
// end of the last track the wizard completes.
func (w *Wizard) Advance(in RawInput) (AdvanceResult, error) {
	if err := w.guard(); err != nil {
		return AdvanceResult{}, err
	}
	if w.state.Screen == model.ScreenComplete {
		return AdvanceResult{}, ErrFlowComplete
	}
	if w.state.Screen != model.ScreenSurvey {
		return AdvanceResult{}, ErrNotInSurvey
	}
	q := w.CurrentQuestion()
	if q == nil {
		return AdvanceResult{}, ErrNotInSurvey
	}
	if q.Kind == model.KindRankedChoice && len(in.Ranking) == 0 {
		in.Ranking = w.ranking()
	}
	ans, err := Collect(*q, in)
	if err != nil {
		return AdvanceResult{}, err
	}

	var res AdvanceResult
	w.state.Survey.Answers[q.ID] = ans
	w.state.Survey.Position++
	w.scratch = nil

	if w.state.Survey.Position >= len(catalog.ByTrack(w.state.Survey.Track)) {
		if w.state.Service == model.ServiceCombo && w.state.Survey.Track == model.TrackPrimary {
			w.state.Survey.Track = model.TrackSecondary
			w.state.Survey.Position = 0
			res.TrackSwitched = true
		} else {
			w.push()
			w.state.Screen = model.ScreenComplete
			w.state.StepIndex = w.state.TotalSteps
			res.Completed = true
			w.saveDraft()
			return res, nil
		}
	}
	w.state.StepIndex = w.surveyStepIndex()
	res.Question = w.CurrentQuestion()
	w.saveDraft()
	return res, nil
}

// Retreat moves the survey cursor back one question, crossing the combo
// track boundary backwards when needed. At the first question it pops
// back to the previous screen.
func (w *Wizard) Retreat() error {
	if err := w.guard(); err != nil {
		return err
	}
	if w.state.Screen != model.ScreenSurvey {
		return ErrNotInSurvey
	}
	switch {
	case w.state.Survey.Position > 0:
		w.state.Survey.Position--
	case w.state.Service == model.ServiceCombo && w.state.Survey.Track == model.TrackSecondary:
		w.state.Survey.Track = model.TrackPrimary
		w.state.Survey.Position = len(catalog.Primary()) - 1
	default:
		// First question: return to the service screen with the
		// service and collected answers intact, so re-selecting the
		// same service continues where the customer left off.
		w.state.Screen = model.ScreenServiceSelect
		w.state.StepIndex = model.FixedProfileSteps
		w.scratch = nil
		w.saveDraft()
		return nil
	}
	w.state.StepIndex = w.surveyStepIndex()
	w.scratch = nil
	w.saveDraft()
	return nil
}

// ToggleRank adds or removes an option in the in-progress ranking for
// the current ranked question. Removing an entry shifts later entries
// down. Returns the resulting ordered ranking.
func (w *Wizard) ToggleRank(option string) ([]string, error) {
	if err := w.guard(); err != nil {
		return nil, err
	}
	q := w.CurrentQuestion()
	if q == nil {
		return nil, ErrNotInSurvey
	}
	if q.Kind != model.KindRankedChoice {
		return nil, ErrNotRankedQuestion
	}
	if !hasOption(*q, option) {
		return nil, validationErr(MsgSelectOption)
	}
	ranking := w.ranking()
	for i, o := range ranking {
		if o == option {
			w.scratch = append(ranking[:i:i], ranking[i+1:]...)
			return w.Ranking(), nil
		}
	}
	if len(ranking) >= model.RankedCount {
		return nil, &ValidationError{
			MsgID: MsgMaxSelections,
			Data:  map[string]any{"Max": model.RankedCount},
		}
	}
	w.scratch = append(ranking, option)
	return w.Ranking(), nil
}

// Ranking returns a copy of the in-progress ranking, seeded from the
// committed answer when the question is revisited.
func (w *Wizard) Ranking() []string {
	return append([]string(nil), w.ranking()...)
}

func (w *Wizard) ranking() []string {
	if w.scratch != nil {
		return w.scratch
	}
	if a := w.CurrentAnswer(); a != nil && a.Kind == model.KindRankedChoice {
		w.scratch = append([]string(nil), a.List...)
	}
	return w.scratch
}

// ProgressFraction returns the overall completion fraction in [0, 1].
func (w *Wizard) ProgressFraction() float64 {
	if w.state.TotalSteps <= 0 {
		return 0
	}
	f := float64(w.state.StepIndex) / float64(w.state.TotalSteps)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Restart abandons the session: the draft is deleted and the wizard
// returns to a fresh intro screen. The profile is not preserved.
func (w *Wizard) Restart() error {
	if err := w.guard(); err != nil {
		return err
	}
	if err := w.drafts.DeleteDraft(w.key); err != nil {
		w.logger.Warn("deleting draft on restart", "error", err)
	}
	w.state = freshState()
	w.history = nil
	w.scratch = nil
	w.pendingService = ""
	return nil
}

// Completed reports whether the wizard reached the completion screen.
func (w *Wizard) Completed() bool { return w.state.Screen == model.ScreenComplete }

// Payload builds the forwarded submission body from the committed
// answers, keyed by question title.
func (w *Wizard) Payload() model.SubmissionPayload {
	p := model.SubmissionPayload{
		BrandName:             w.state.Profile.BrandName,
		Industry:              w.state.Profile.Industry,
		Email:                 w.state.Profile.Email,
		SelectedService:       string(w.state.Service),
		PrimaryTrackAnswers:   map[string]string{},
		SecondaryTrackAnswers: map[string]string{},
	}
	for _, q := range catalog.Primary() {
		if a, ok := w.state.Survey.Answers[q.ID]; ok {
			p.PrimaryTrackAnswers[q.Title] = a.Display()
		}
	}
	for _, q := range catalog.Secondary() {
		if a, ok := w.state.Survey.Answers[q.ID]; ok {
			p.SecondaryTrackAnswers[q.Title] = a.Display()
		}
	}
	return p
}

func (w *Wizard) push() {
	if len(w.history) >= maxHistory {
		w.history = w.history[1:]
	}
	w.history = append(w.history, w.state.Clone())
}

// saveDraft persists the current state. Persistence failures are logged
// and swallowed; the wizard keeps working without durability.
func (w *Wizard) saveDraft() {
	snap := model.DraftSnapshot{
		FormatVersion: model.DraftFormatVersion,
		SavedAt:       w.now(),
		State:         w.state.Clone(),
	}
	if err := w.drafts.SaveDraft(w.key, snap); err != nil {
		w.logger.Warn("saving draft", "session", w.key, "error", err)
	}
}
