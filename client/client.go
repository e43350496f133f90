// Package client owns the submission side of the evaluation pipeline: form
// state, the single request per submission cycle, and the
// Idle/Submitting/Succeeded/Failed lifecycle.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"startupmentor/models"
)

// Phase tags the request lifecycle state. Exactly one phase holds at a time.
type Phase int

const (
	Idle Phase = iota
	Submitting
	Succeeded
	Failed
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// RequestState is a snapshot of the controller lifecycle. Verdict is non-nil
// only in Succeeded; Message is non-empty only in Failed.
type RequestState struct {
	Phase   Phase
	Verdict *models.EvaluationVerdict
	Message string
}

// Notifier receives user-facing notices: the validation notice, the success
// notice and failure messages.
type Notifier func(title, detail string)

// ErrEmptyDescription is returned when submit is refused because the
// description trims to empty. No request is issued.
var ErrEmptyDescription = errors.New("description must not be empty")

// ErrSubmitInFlight is returned when submit is refused because a request is
// already outstanding.
var ErrSubmitInFlight = errors.New("a submission is already in flight")

const genericFailureMessage = "Something went wrong. Please try again."

// SubmissionController drives one evaluation form. At most one request is in
// flight at a time, and a request superseded by Reset never overwrites the
// newer state.
type SubmissionController struct {
	baseURL    string
	httpClient *http.Client
	notify     Notifier

	mu    sync.Mutex
	form  models.IdeaSubmission
	state RequestState
	gen   uint64
}

// NewSubmissionController creates a controller talking to the evaluation
// endpoint at baseURL. notify may be nil.
func NewSubmissionController(baseURL string, notify Notifier) *SubmissionController {
	if notify == nil {
		notify = func(string, string) {}
	}
	return &SubmissionController{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
		notify:     notify,
		state:      RequestState{Phase: Idle},
	}
}

// SetForm replaces the form fields. Allowed in any phase; the fields survive
// a failure so the user can retry without re-typing.
func (sc *SubmissionController) SetForm(form models.IdeaSubmission) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.form = form
}

// Form returns a copy of the current form fields.
func (sc *SubmissionController) Form() models.IdeaSubmission {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.form
}

// State returns a snapshot of the current request state.
func (sc *SubmissionController) State() RequestState {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.state
}

// Submit validates the form and, when valid, issues exactly one evaluation
// request, blocking until it completes. An empty description refuses the
// submit with a validation notice and no network call; a second submit while
// one is outstanding is refused. If Reset supersedes the request mid-flight,
// the eventual response is dropped.
func (sc *SubmissionController) Submit(ctx context.Context) error {
	sc.mu.Lock()
	if sc.state.Phase == Submitting {
		sc.mu.Unlock()
		return ErrSubmitInFlight
	}
	if strings.TrimSpace(sc.form.Description) == "" {
		sc.mu.Unlock()
		sc.notify("Please describe your startup idea",
			"We need to know what you're building to give you feedback!")
		return ErrEmptyDescription
	}
	form := sc.form
	gen := sc.gen
	sc.state = RequestState{Phase: Submitting}
	sc.mu.Unlock()

	verdict, failure := sc.postIdea(ctx, form)

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.gen != gen {
		// Superseded by Reset while in flight; drop the result.
		return nil
	}
	if failure != "" {
		sc.state = RequestState{Phase: Failed, Message: failure}
		sc.notify("Error evaluating idea", failure)
		return nil
	}
	sc.state = RequestState{Phase: Succeeded, Verdict: verdict}
	sc.notify("Analysis Complete!", "Your startup idea has been evaluated by our AI mentor.")
	return nil
}

// Reset returns the controller to Idle, clearing the verdict and all form
// fields. A request still in flight is orphaned: its result will be ignored.
func (sc *SubmissionController) Reset() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.gen++
	sc.form = models.IdeaSubmission{}
	sc.state = RequestState{Phase: Idle}
}

// postIdea performs the round trip. It returns either a verdict or a
// user-facing failure message, preferring the server-supplied one.
func (sc *SubmissionController) postIdea(ctx context.Context, form models.IdeaSubmission) (*models.EvaluationVerdict, string) {
	payload, err := json.Marshal(form)
	if err != nil {
		return nil, genericFailureMessage
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		sc.baseURL+"/api/evaluate-idea", bytes.NewBuffer(payload))
	if err != nil {
		return nil, genericFailureMessage
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return nil, genericFailureMessage
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, genericFailureMessage
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var serverErr models.ErrorResponse
		if err := json.Unmarshal(body, &serverErr); err == nil && serverErr.Message != "" {
			return nil, serverErr.Message
		}
		return nil, genericFailureMessage
	}

	var verdict models.EvaluationVerdict
	if err := json.Unmarshal(body, &verdict); err != nil {
		return nil, genericFailureMessage
	}
	return &verdict, ""
}
