package wizard

// FlowError is a refused wizard transition. The state is unchanged when
// one is returned.
type FlowError struct {
	Message string
}

func (e *FlowError) Error() string { return e.Message }

var (
	// ErrDraftDecisionPending blocks all transitions until the caller
	// resumes or discards the recovered draft.
	ErrDraftDecisionPending = &FlowError{Message: "draft decision pending"}

	// ErrNoPendingDraft is returned by resume/discard when no draft was
	// recovered for this session.
	ErrNoPendingDraft = &FlowError{Message: "no pending draft"}

	// ErrFlowComplete rejects transitions after the completion screen.
	ErrFlowComplete = &FlowError{Message: "flow already complete"}

	// ErrNotInSurvey rejects survey operations outside the survey screen.
	ErrNotInSurvey = &FlowError{Message: "not in survey"}

	// ErrNoPendingServiceChange is returned by the change confirmation
	// when no service-change prompt is outstanding.
	ErrNoPendingServiceChange = &FlowError{Message: "no pending service change"}

	// ErrUnknownService rejects a service outside the offered set.
	ErrUnknownService = &FlowError{Message: "unknown service"}

	// ErrNoHistory rejects backward navigation with an empty history.
	ErrNoHistory = &FlowError{Message: "no previous screen"}

	// ErrNotRankedQuestion rejects rank toggles on other question kinds.
	ErrNotRankedQuestion = &FlowError{Message: "current question is not ranked"}

	// ErrProfileIncomplete blocks leaving the profile screen without a
	// brand name.
	ErrProfileIncomplete = &FlowError{Message: "brand name required"}

	// ErrNoServiceSelected blocks leaving the service screen without a
	// selection.
	ErrNoServiceSelected = &FlowError{Message: "no service selected"}
)

// ValidationError is a per-question input rejection. MsgID names a
// message in the i18n bundle; Data carries template values. Localization
// happens at the transport edge, not here.
type ValidationError struct {
	MsgID string
	Data  map[string]any
}

func (e *ValidationError) Error() string { return e.MsgID }

func validationErr(msgID string) *ValidationError {
	return &ValidationError{MsgID: msgID}
}
