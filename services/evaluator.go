package services

import (
	"context"
	"errors"
	"time"

	"startupmentor/models"

	"go.uber.org/zap"
)

// Evaluator runs the evaluation pipeline for one submission: prompt
// construction, the completion call, then validation. The completion client
// is injected so tests can substitute a stub.
type Evaluator struct {
	client  CompletionClient
	timeout time.Duration
	logger  *zap.Logger
}

// NewEvaluator constructs an evaluator. timeout bounds the upstream completion
// call; zero disables the bound. A nil logger is replaced with a no-op one.
func NewEvaluator(client CompletionClient, timeout time.Duration, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{client: client, timeout: timeout, logger: logger}
}

// Evaluate produces a verdict for the submission. Failures keep their type
// (*UpstreamError, *MalformedResponseError, *IncompleteResponseError) for the
// caller; the classes are distinguished here in logs only.
func (e *Evaluator) Evaluate(ctx context.Context, submission models.IdeaSubmission) (models.EvaluationVerdict, error) {
	system, user := BuildPrompt(submission)

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	raw, err := e.client.Complete(ctx, system, user)
	if err != nil {
		e.logger.Error("completion request failed", zap.Error(err))
		return models.EvaluationVerdict{}, err
	}

	verdict, err := ParseVerdict(raw)
	if err != nil {
		var incomplete *IncompleteResponseError
		if errors.As(err, &incomplete) {
			e.logger.Error("evaluation response incomplete",
				zap.String("field", incomplete.Field))
		} else {
			e.logger.Error("evaluation response malformed", zap.Error(err))
		}
		return models.EvaluationVerdict{}, err
	}

	e.logger.Info("idea evaluated", zap.Int("successScore", verdict.SuccessScore))
	return verdict, nil
}
