package assistant

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"go.uber.org/zap"

	"github.com/spigell/lex-job-assistant/internal/jobs"
	"github.com/spigell/lex-job-assistant/internal/lex"
	"github.com/spigell/lex-job-assistant/internal/logger"
)

const DefaultLimit = 5

// Recommender supplies the job recommendation list.
type Recommender interface {
	Recommendations(ctx context.Context) (*jobs.Listings, error)
}

// Config holds the fixed tables of the router.
type Config struct {
	// Details maps a job number to its description.
	Details map[int]string
	// Limit caps the number of recommendations in a reply.
	Limit int
}

// DefaultDetails returns the built-in job detail table.
func DefaultDetails() map[int]string {
	return map[int]string{
		1: "Google - Software Engineer: Develop scalable applications. Location: Remote. Apply at https://google.jobs/software-engineer",
		2: "Amazon - Data Scientist: Build predictive models. Location: Seattle. Apply at https://amazon.jobs/data-scientist",
	}
}

// Router dispatches Lex events to intent handlers. It is immutable after New.
type Router struct {
	jobs    Recommender
	details map[int]string
	limit   int
	logger  *zap.Logger
}

func New(cfg Config, recommender Recommender, logger *zap.Logger) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}

	details := make(map[int]string, len(cfg.Details))
	for number, detail := range cfg.Details {
		details[number] = detail
	}

	limit := cfg.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &Router{
		jobs:    recommender,
		details: details,
		limit:   limit,
		logger:  logger,
	}
}

// Handle is the Lambda entry point. It always returns a response and a nil error.
func (r *Router) Handle(ctx context.Context, raw map[string]any) (*lex.Response, error) {
	log := r.logger
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		log = logger.WithInvocation(log, lc.AwsRequestID, "", "")
	}

	event, err := lex.DecodeEvent(raw)
	if err != nil {
		return r.fail(log, err), nil
	}

	return r.dispatch(ctx, log, event), nil
}

// Dispatch runs the handler for the event intent and wraps the outcome into a
// response. Failures of any kind produce a Failed response.
func (r *Router) Dispatch(ctx context.Context, event *lex.Event) *lex.Response {
	return r.dispatch(ctx, r.logger, event)
}

func (r *Router) dispatch(ctx context.Context, log *zap.Logger, event *lex.Event) (resp *lex.Response) {
	if err := event.Validate(); err != nil {
		return r.fail(log, err)
	}

	name := event.IntentName()
	log = logger.WithInvocation(log, "", event.SessionID, name)

	defer func() {
		if p := recover(); p != nil {
			resp = r.fail(log, fmt.Errorf("handler panic: %v", p))
		}
	}()

	intent := ParseIntent(name)
	log.Info("handling intent",
		zap.String("input", logger.TruncateForLog(event.InputTranscript, 256)),
		zap.Stringer("handler", intent),
	)

	message, err := r.handle(ctx, log, intent, event)
	if err != nil {
		return r.fail(log, err)
	}

	return lex.Close(name, lex.Fulfilled, message)
}

func (r *Router) fail(log *zap.Logger, err error) *lex.Response {
	log.Error("processing request failed", zap.Error(err))
	return lex.Close(ErrorIntent, lex.Failed, msgFailure)
}
