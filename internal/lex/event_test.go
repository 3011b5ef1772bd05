package lex

import (
	"errors"
	"testing"
)

func TestParseEvent(t *testing.T) {
	event, err := ParseEvent([]byte(`{
		"sessionId": "s-1",
		"inputTranscript": "show me details for job 2",
		"bot": {"id": "SPMGX0T9ET", "aliasId": "TSTALIASID", "localeId": "en_US"},
		"sessionState": {
			"intent": {
				"name": "ProvideDetailsIntent",
				"state": "InProgress",
				"slots": {
					"JobNumber": {"shape": "Scalar", "value": {"originalValue": "two", "interpretedValue": "2", "resolvedValues": ["2"]}},
					"Location": null,
					"JobType": {"shape": "Scalar"}
				}
			}
		}
	}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if got := event.IntentName(); got != "ProvideDetailsIntent" {
		t.Fatalf("unexpected intent name %q", got)
	}
	if event.SessionID != "s-1" || event.Bot.ID != "SPMGX0T9ET" {
		t.Fatalf("unexpected event metadata: %+v", event)
	}

	if v, ok := event.SlotValue("JobNumber"); !ok || v != "2" {
		t.Fatalf("unexpected JobNumber slot: %q %v", v, ok)
	}

	for _, name := range []string{"Location", "JobType", "Missing"} {
		if v, ok := event.SlotValue(name); ok {
			t.Fatalf("expected slot %s to be absent, got %q", name, v)
		}
	}
}

func TestDecodeEventNumericSlot(t *testing.T) {
	event, err := DecodeEvent(map[string]any{
		"sessionState": map[string]any{
			"intent": map[string]any{
				"name": "ProvideDetailsIntent",
				"slots": map[string]any{
					"JobNumber": map[string]any{"value": map[string]any{"interpretedValue": 1}},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if v, ok := event.SlotValue("JobNumber"); !ok || v != "1" {
		t.Fatalf("unexpected JobNumber slot: %q %v", v, ok)
	}
}

func TestDecodeEventInvalid(t *testing.T) {
	tests := []struct {
		name   string
		raw    map[string]any
		target error
	}{
		{
			name:   "missing session state",
			raw:    map[string]any{"inputTranscript": "hello"},
			target: ErrMissingSessionState,
		},
		{
			name:   "missing intent",
			raw:    map[string]any{"sessionState": map[string]any{}},
			target: ErrMissingIntent,
		},
		{
			name: "null intent name",
			raw: map[string]any{"sessionState": map[string]any{"intent": map[string]any{
				"name": nil,
			}}},
			target: ErrMissingIntentName,
		},
		{
			name:   "missing intent name",
			raw:    map[string]any{"sessionState": map[string]any{"intent": map[string]any{"state": "InProgress"}}},
			target: ErrMissingIntentName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeEvent(tt.raw)
			if !errors.Is(err, tt.target) {
				t.Fatalf("expected %v, got %v", tt.target, err)
			}
		})
	}

	if _, err := DecodeEvent(map[string]any{"sessionState": "broken"}); err == nil {
		t.Fatal("expected error for malformed session state")
	}

	if _, err := ParseEvent([]byte(`{`)); err == nil {
		t.Fatal("expected error for invalid json")
	}
}

func TestSlotValueMalformedSlots(t *testing.T) {
	tests := []struct {
		name  string
		slots any
	}{
		{name: "value is a string", slots: map[string]any{"Location": map[string]any{"value": "Seattle"}}},
		{name: "slot is a string", slots: map[string]any{"Location": "Seattle"}},
		{name: "interpreted value is an object", slots: map[string]any{
			"Location": map[string]any{"value": map[string]any{"interpretedValue": map[string]any{"a": 1}}},
		}},
		{name: "slots is a list", slots: []any{"Seattle"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := DecodeEvent(map[string]any{
				"sessionState": map[string]any{
					"intent": map[string]any{"name": "RefineSearchIntent", "slots": tt.slots},
				},
			})
			if err != nil {
				t.Fatalf("expected malformed slots to be tolerated, got %v", err)
			}

			if v, ok := event.SlotValue("Location"); ok {
				t.Fatalf("expected malformed slot to be absent, got %q", v)
			}
		})
	}
}

func TestDecodeEventMalformedMetadata(t *testing.T) {
	event, err := DecodeEvent(map[string]any{
		"sessionId":       "s-2",
		"inputTranscript": "hello",
		"bot":             "not an object",
		"sessionState":    map[string]any{"intent": map[string]any{"name": "GreetingIntent"}},
	})
	if err != nil {
		t.Fatalf("expected malformed metadata to be tolerated, got %v", err)
	}

	if event.IntentName() != "GreetingIntent" {
		t.Fatalf("unexpected intent name %q", event.IntentName())
	}
	if event.SessionID != "s-2" || event.InputTranscript != "hello" {
		t.Fatalf("expected well-formed metadata to be kept: %+v", event.Metadata)
	}
	if event.Bot.ID != "" {
		t.Fatalf("expected malformed bot to be empty, got %+v", event.Bot)
	}
}
