package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spigell/lex-job-assistant/internal/bot"
	"github.com/spigell/lex-job-assistant/internal/lex"
)

const greetingEvent = `{"inputTranscript":"hi","sessionState":{"intent":{"name":"GreetingIntent"}}}`

func TestReadEvent(t *testing.T) {
	fromStdin, err := readEvent(strings.NewReader(greetingEvent), "")
	if err != nil {
		t.Fatalf("reading from stdin: %v", err)
	}
	if fromStdin["inputTranscript"] != "hi" {
		t.Fatalf("unexpected event %v", fromStdin)
	}

	path := filepath.Join(t.TempDir(), "event.json")
	if err := os.WriteFile(path, []byte(greetingEvent), 0o600); err != nil {
		t.Fatalf("writing event: %v", err)
	}

	fromFile, err := readEvent(strings.NewReader(""), path)
	if err != nil {
		t.Fatalf("reading from file: %v", err)
	}
	if _, ok := fromFile["sessionState"]; !ok {
		t.Fatalf("unexpected event %v", fromFile)
	}

	if _, err := readEvent(strings.NewReader("{"), ""); err == nil {
		t.Fatal("expected error for invalid json")
	}
	if _, err := readEvent(nil, filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteResponse(t *testing.T) {
	var buf bytes.Buffer
	if err := writeResponse(&buf, lex.Close("GreetingIntent", lex.Fulfilled, "hello")); err != nil {
		t.Fatalf("writing response: %v", err)
	}

	var decoded lex.Response
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if decoded.IntentName() != "GreetingIntent" || decoded.Content() != "hello" {
		t.Fatalf("unexpected output %s", buf.String())
	}
}

func TestPrintReply(t *testing.T) {
	var buf bytes.Buffer
	printReply(&buf, &bot.Reply{Intent: "GreetingIntent", State: "Fulfilled", Messages: []string{"Hello!", "Ask me"}})
	printReply(&buf, &bot.Reply{Intent: "FallbackIntent", State: "Failed"})

	want := "Bot (GreetingIntent, Fulfilled): Hello!\n" +
		"Bot (GreetingIntent, Fulfilled): Ask me\n" +
		"Bot (FallbackIntent, Failed): <no message>\n"
	if buf.String() != want {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
