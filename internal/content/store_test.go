package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/appengine-ltd/menu-sim/internal/game"
	"go.uber.org/zap"
)

func testStore(t *testing.T, emailsPath, phonesPath string) *Store {
	t.Helper()
	return Load(zap.NewNop(), emailsPath, phonesPath, game.SeededRNG(1, "content-test"))
}

func TestLoadMissingDocumentsFallsBackToBuiltins(t *testing.T) {
	s := testStore(t, "", filepath.Join(t.TempDir(), "nope.json"))

	if tmpl, ok := s.RandomEmail(ChannelRegular); !ok || tmpl.Subject == "" {
		t.Fatalf("builtin regular emails missing: %+v ok=%v", tmpl, ok)
	}
	if tmpl, ok := s.RandomEmail(ChannelCongratulatory); !ok || tmpl.Sender == "" {
		t.Fatalf("builtin congratulatory emails missing: %+v ok=%v", tmpl, ok)
	}
	script := s.RandomPhoneScript()
	if script.Caller == "" || len(script.Turns) == 0 {
		t.Fatalf("builtin phone scripts missing: %+v", script)
	}
}

func TestLoadMalformedDocumentFallsBackToBuiltins(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "emails.json")
	if err := os.WriteFile(bad, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := testStore(t, bad, "")
	if got := s.Remaining(ChannelRegular); got != len(builtinRegularEmails) {
		t.Fatalf("remaining regular = %d, want builtin count %d", got, len(builtinRegularEmails))
	}
}

func TestLoadReadsChannelsFromDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "emails.json")
	doc := `{
		"format_version": 1,
		"channels": {
			"Regular": [
				{"sender": "a@x", "subject": "One", "message": "m1"},
				{"sender": "b@x", "subject": "Two", "message": "m2"},
				{"sender": "", "subject": "", "message": ""}
			]
		}
	}`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	s := testStore(t, path, "")
	first, ok := s.NextEmail(ChannelRegular)
	if !ok || first.Subject != "One" {
		t.Fatalf("first = %+v ok=%v, want One", first, ok)
	}
	second, ok := s.NextEmail(ChannelRegular)
	if !ok || second.Subject != "Two" {
		t.Fatalf("second = %+v ok=%v, want Two", second, ok)
	}
	// The blank record was dropped during load.
	if s.Remaining(ChannelRegular) != 0 {
		t.Fatalf("remaining = %d, want 0", s.Remaining(ChannelRegular))
	}
}

func TestExhaustedChannelYieldsPlaceholderWithoutFailing(t *testing.T) {
	s := testStore(t, "", "")
	for s.Remaining(ChannelCongratulatory) > 0 {
		if _, ok := s.NextEmail(ChannelCongratulatory); !ok {
			t.Fatalf("channel reported exhaustion while entries remained")
		}
	}
	tmpl, ok := s.NextEmail(ChannelCongratulatory)
	if ok {
		t.Fatalf("exhausted channel reported ok")
	}
	if tmpl.Subject != placeholderEmail.Subject {
		t.Fatalf("placeholder = %+v, want %+v", tmpl, placeholderEmail)
	}

	// A channel that never existed behaves the same way.
	if _, ok := s.NextEmail("nonexistent"); ok {
		t.Fatalf("unknown channel reported ok")
	}
}

func TestSlackChannelsAreDistinct(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := Load(zap.NewNop(), "", "", game.SeededRNG(seed, "slack-test"))
		channels := s.SlackChannels(3)
		if len(channels) != 3 {
			t.Fatalf("seed %d: got %d channels, want 3", seed, len(channels))
		}
		seen := map[string]bool{}
		for _, ch := range channels {
			if seen[ch] {
				t.Fatalf("seed %d: duplicate channel %q in %v", seed, ch, channels)
			}
			seen[ch] = true
		}
	}

	// Asking for more than exist returns the whole list, still distinct.
	s := Load(zap.NewNop(), "", "", game.SeededRNG(1, "slack-test"))
	if got := s.SlackChannels(99); len(got) != 4 {
		t.Fatalf("oversized request returned %d channels, want 4", len(got))
	}
}

func TestMilestoneMessagesCoverConfiguredThresholds(t *testing.T) {
	for _, at := range []float64{25, 50, 75, 90} {
		if MilestoneMessage(at) == "" {
			t.Errorf("no milestone message for %v", at)
		}
	}
	if MilestoneMessage(33) == "" {
		t.Errorf("unknown threshold must still produce a banner")
	}
}
