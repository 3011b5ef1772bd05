package assistant

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/lex-job-assistant/internal/jobs"
	"github.com/spigell/lex-job-assistant/internal/lex"
)

const searchKeyword = "job"

// missingJobNumber is looked up when the slot is absent or not a number, so
// such requests end up as "not found".
const missingJobNumber = -1

func (r *Router) handle(ctx context.Context, logger *zap.Logger, intent Intent, event *lex.Event) (string, error) {
	switch intent {
	case Greeting:
		return greet(), nil
	case JobSearch:
		return r.searchJobs(ctx, logger, event.InputTranscript)
	case RefineSearch:
		location, _ := event.SlotValue(SlotLocation)
		jobType, _ := event.SlotValue(SlotJobType)
		return refineSearch(location, jobType), nil
	case ProvideDetails:
		return r.provideDetails(jobNumber(event)), nil
	default:
		return msgUnrecognized, nil
	}
}

func greet() string {
	return msgGreeting
}

func (r *Router) searchJobs(ctx context.Context, logger *zap.Logger, transcript string) (string, error) {
	if !strings.Contains(strings.ToLower(transcript), searchKeyword) {
		return msgSearchPrompt, nil
	}

	logger.Info("fetching job recommendations")

	listings, err := r.jobs.Recommendations(ctx)

	var statusErr *jobs.StatusError
	if errors.As(err, &statusErr) {
		logger.Warn("recommendation api returned unexpected status", zap.Int("status_code", statusErr.StatusCode))
		return fmt.Sprintf(msgFetchFailed, statusErr.StatusCode), nil
	}
	if err != nil {
		return "", fmt.Errorf("fetching recommendations: %w", err)
	}

	if listings.Len() == 0 {
		return msgNoRecommendations, nil
	}

	labels := listings.Top(r.limit).Labels()
	logger.Debug("formatted recommendations", zap.Strings("recommendations", labels))

	var b strings.Builder
	b.WriteString(msgRecommendations)
	for i, label := range labels {
		fmt.Fprintf(&b, "\n%d. %s", i+1, label)
	}
	b.WriteString("\n")
	b.WriteString(msgSeeMore)

	return b.String(), nil
}

func refineSearch(location, jobType string) string {
	switch {
	case location != "":
		return fmt.Sprintf(msgRefineLocation, location)
	case jobType != "":
		return fmt.Sprintf(msgRefineJobType, jobType)
	default:
		return msgRefinePrompt
	}
}

func (r *Router) provideDetails(number int) string {
	detail, ok := r.details[number]
	if !ok {
		return msgDetailsNotFound
	}
	return fmt.Sprintf(msgDetails, number, detail)
}

func jobNumber(event *lex.Event) int {
	value, ok := event.SlotValue(SlotJobNumber)
	if !ok {
		return missingJobNumber
	}

	number, err := strconv.Atoi(value)
	if err != nil {
		return missingJobNumber
	}
	return number
}
