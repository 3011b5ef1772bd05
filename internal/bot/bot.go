package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/lex-job-assistant/internal/logger"
)

const (
	DefaultBotID    = "SPMGX0T9ET"
	DefaultAliasID  = "TSTALIASID"
	DefaultLocaleID = "en_US"
)

// Config identifies the deployed bot.
type Config struct {
	BotID    string
	AliasID  string
	LocaleID string
	// Region overrides the region of the default AWS config chain.
	Region string
}

type recognizer interface {
	RecognizeText(ctx context.Context, params *lexruntimev2.RecognizeTextInput, optFns ...func(*lexruntimev2.Options)) (*lexruntimev2.RecognizeTextOutput, error)
}

// Session is one conversation with the bot. Lex keeps the dialog state under
// the session id.
type Session struct {
	ID     string
	client recognizer
	cfg    Config
	logger *zap.Logger
}

// Reply is what the bot answered to a single utterance.
type Reply struct {
	Intent   string
	State    string
	Messages []string
}

func New(ctx context.Context, cfg Config, logger *zap.Logger) (*Session, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var opts []func(*config.LoadOptions) error
	if region := strings.TrimSpace(cfg.Region); region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	return newSession(lexruntimev2.NewFromConfig(awsCfg), cfg, logger), nil
}

func newSession(client recognizer, cfg Config, log *zap.Logger) *Session {
	id := uuid.New().String()
	return &Session{
		ID:     id,
		client: client,
		cfg:    cfg,
		logger: logger.WithInvocation(log, "", id, ""),
	}
}

func (c Config) validate() error {
	switch {
	case strings.TrimSpace(c.BotID) == "":
		return errors.New("bot id is required")
	case strings.TrimSpace(c.AliasID) == "":
		return errors.New("bot alias id is required")
	case strings.TrimSpace(c.LocaleID) == "":
		return errors.New("bot locale id is required")
	}
	return nil
}

// Send passes the text to the bot and collects its plain text answer.
func (s *Session) Send(ctx context.Context, text string) (*Reply, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("text must not be empty")
	}

	out, err := s.client.RecognizeText(ctx, &lexruntimev2.RecognizeTextInput{
		BotId:      aws.String(s.cfg.BotID),
		BotAliasId: aws.String(s.cfg.AliasID),
		LocaleId:   aws.String(s.cfg.LocaleID),
		SessionId:  aws.String(s.ID),
		Text:       aws.String(text),
	})
	if err != nil {
		return nil, fmt.Errorf("recognize text: %w", err)
	}

	reply := &Reply{}
	if out.SessionState != nil && out.SessionState.Intent != nil {
		reply.Intent = aws.ToString(out.SessionState.Intent.Name)
		reply.State = string(out.SessionState.Intent.State)
	}

	for _, message := range out.Messages {
		if content := strings.TrimSpace(aws.ToString(message.Content)); content != "" {
			reply.Messages = append(reply.Messages, content)
		}
	}

	s.logger.Debug("bot replied",
		zap.String("intent", reply.Intent),
		zap.String("state", reply.State),
		zap.Int("messages", len(reply.Messages)),
	)

	return reply, nil
}
