package lex

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrMissingSessionState = errors.New("event has no sessionState")
	ErrMissingIntent       = errors.New("event has no sessionState.intent")
	ErrMissingIntentName   = errors.New("event has no sessionState.intent.name")
)

// Event is the part of a Lex V2 fulfillment event the assistant reads. Only
// the intent name is required; Metadata and slots are read best-effort.
type Event struct {
	Metadata     `mapstructure:"-"`
	SessionState *SessionState `mapstructure:"sessionState" json:"sessionState,omitempty"`
}

// Metadata is left empty when the event carries it in an unexpected shape.
type Metadata struct {
	MessageVersion   string `mapstructure:"messageVersion" json:"messageVersion,omitempty"`
	InvocationSource string `mapstructure:"invocationSource" json:"invocationSource,omitempty"`
	InputMode        string `mapstructure:"inputMode" json:"inputMode,omitempty"`
	SessionID        string `mapstructure:"sessionId" json:"sessionId,omitempty"`
	InputTranscript  string `mapstructure:"inputTranscript" json:"inputTranscript,omitempty"`
	Bot              Bot    `mapstructure:"bot" json:"bot"`
}

type Bot struct {
	ID       string `mapstructure:"id" json:"id,omitempty"`
	Name     string `mapstructure:"name" json:"name,omitempty"`
	AliasID  string `mapstructure:"aliasId" json:"aliasId,omitempty"`
	LocaleID string `mapstructure:"localeId" json:"localeId,omitempty"`
	Version  string `mapstructure:"version" json:"version,omitempty"`
}

type SessionState struct {
	Intent *Intent `mapstructure:"intent" json:"intent,omitempty"`
}

type Intent struct {
	Name *string `mapstructure:"name" json:"name,omitempty"`
	// Slots stays raw until a handler asks for one, see Event.SlotValue.
	Slots any `mapstructure:"slots" json:"slots,omitempty"`
}

// Slot is nil when Lex has not filled it.
type Slot struct {
	Shape string     `mapstructure:"shape" json:"shape,omitempty"`
	Value *SlotValue `mapstructure:"value" json:"value,omitempty"`
}

type SlotValue struct {
	OriginalValue    string   `mapstructure:"originalValue" json:"originalValue,omitempty"`
	InterpretedValue string   `mapstructure:"interpretedValue" json:"interpretedValue,omitempty"`
	ResolvedValues   []string `mapstructure:"resolvedValues" json:"resolvedValues,omitempty"`
}

// DecodeEvent converts a raw Lambda payload into an Event and checks that the
// intent name is present.
func DecodeEvent(raw map[string]any) (*Event, error) {
	var event Event
	if err := decode(raw, &event); err != nil {
		return nil, fmt.Errorf("decoding lex event: %w", err)
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	// Fields that fail to decode stay empty, the rest are kept.
	_ = decode(raw, &event.Metadata)

	return &event, nil
}

func decode(input any, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}

// ParseEvent decodes a JSON encoded Lex event.
func ParseEvent(data []byte) (*Event, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing lex event: %w", err)
	}

	return DecodeEvent(raw)
}

// Validate reports whether the event carries an intent name.
func (e *Event) Validate() error {
	switch {
	case e == nil:
		return ErrMissingSessionState
	case e.SessionState == nil:
		return ErrMissingSessionState
	case e.SessionState.Intent == nil:
		return ErrMissingIntent
	case e.SessionState.Intent.Name == nil:
		return ErrMissingIntentName
	}
	return nil
}

// IntentName returns the intent name or an empty string for an invalid event.
func (e *Event) IntentName() string {
	if e.Validate() != nil {
		return ""
	}
	return *e.SessionState.Intent.Name
}

// SlotValue returns the interpreted value of the named slot. Missing, unfilled,
// empty and malformed slots report false.
func (e *Event) SlotValue(name string) (string, bool) {
	if e.Validate() != nil {
		return "", false
	}

	slots, ok := e.SessionState.Intent.Slots.(map[string]any)
	if !ok {
		return "", false
	}

	var slot Slot
	if err := decode(slots[name], &slot); err != nil || slot.Value == nil {
		return "", false
	}

	value := strings.TrimSpace(slot.Value.InterpretedValue)
	return value, value != ""
}
