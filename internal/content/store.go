package content

import (
	"encoding/json"
	"math/rand/v2"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Store holds all canned game content, loaded once at startup and read-only
// afterwards. Loading never fails: a missing or malformed document degrades
// to the built-in default set.
type Store struct {
	emails  map[string][]EmailTemplate
	phones  []PhoneScript
	cursors map[string]int
	rng     *rand.Rand
	log     *zap.Logger
}

// Load reads the email and phone-call documents. Either path may be empty or
// point at a missing/corrupt file; the store is always usable.
func Load(log *zap.Logger, emailsPath, phonesPath string, rng *rand.Rand) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Store{
		emails:  map[string][]EmailTemplate{},
		cursors: map[string]int{},
		rng:     rng,
		log:     log,
	}
	s.loadEmails(emailsPath)
	s.loadPhones(phonesPath)
	return s
}

func (s *Store) loadEmails(path string) {
	fallback := func() {
		s.emails[ChannelRegular] = builtinRegularEmails
		s.emails[ChannelCongratulatory] = builtinCongratulatoryEmails
	}
	lib, err := readDocument[emailLibrary](path)
	if err != nil {
		s.log.Warn("email templates unavailable, using built-in set",
			zap.String("path", path), zap.Error(err))
		fallback()
		return
	}
	for channel, templates := range lib.Channels {
		channel = strings.ToLower(strings.TrimSpace(channel))
		if channel == "" {
			continue
		}
		kept := templates[:0]
		for _, t := range templates {
			if strings.TrimSpace(t.Subject) == "" && strings.TrimSpace(t.Message) == "" {
				continue
			}
			kept = append(kept, t)
		}
		if len(kept) > 0 {
			s.emails[channel] = kept
		}
	}
	if len(s.emails) == 0 {
		s.log.Warn("email document held no usable channels, using built-in set", zap.String("path", path))
		fallback()
	}
}

func (s *Store) loadPhones(path string) {
	lib, err := readDocument[phoneLibrary](path)
	if err != nil {
		s.log.Warn("phone scripts unavailable, using built-in set",
			zap.String("path", path), zap.Error(err))
		s.phones = builtinPhoneScripts
		return
	}
	for _, script := range lib.Conversations {
		if strings.TrimSpace(script.Caller) == "" || len(script.Turns) == 0 {
			continue
		}
		s.phones = append(s.phones, script)
	}
	if len(s.phones) == 0 {
		s.log.Warn("phone document held no usable conversations, using built-in set", zap.String("path", path))
		s.phones = builtinPhoneScripts
	}
}

func readDocument[T any](path string) (T, error) {
	var doc T
	if strings.TrimSpace(path) == "" {
		return doc, os.ErrNotExist
	}
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the game config
	if err != nil {
		return doc, err
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, err
	}
	return doc, nil
}

// NextEmail walks a channel sequentially. Once the channel is exhausted (or
// was never populated) it reports false and hands back the placeholder.
func (s *Store) NextEmail(channel string) (EmailTemplate, bool) {
	templates := s.emails[channel]
	cursor := s.cursors[channel]
	if cursor >= len(templates) {
		return placeholderEmail, false
	}
	s.cursors[channel] = cursor + 1
	return templates[cursor], true
}

// RandomEmail picks uniformly from a channel; empty channels yield the
// placeholder.
func (s *Store) RandomEmail(channel string) (EmailTemplate, bool) {
	templates := s.emails[channel]
	if len(templates) == 0 {
		return placeholderEmail, false
	}
	return templates[s.intn(len(templates))], true
}

// Remaining reports how many sequential entries a channel still holds.
func (s *Store) Remaining(channel string) int {
	left := len(s.emails[channel]) - s.cursors[channel]
	if left < 0 {
		return 0
	}
	return left
}

func (s *Store) RandomPhoneScript() PhoneScript {
	return s.phones[s.intn(len(s.phones))]
}

func (s *Store) RandomActivity() string {
	return builtinActivities[s.intn(len(builtinActivities))]
}

func (s *Store) RandomChatLine() ChatLine {
	return builtinChatLines[s.intn(len(builtinChatLines))]
}

func (s *Store) RandomDiscordLine() ChatLine {
	return builtinDiscordLines[s.intn(len(builtinDiscordLines))]
}

func (s *Store) RandomInterrupt() string {
	return builtinInterrupts[s.intn(len(builtinInterrupts))]
}

// SlackChannels returns n distinct channel names, fewer when the builtin
// list is shorter.
func (s *Store) SlackChannels(n int) []string {
	out := make([]string, len(builtinSlackChannels))
	copy(out, builtinSlackChannels)
	if s.rng != nil {
		s.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	}
	if n < len(out) {
		out = out[:n]
	}
	return out
}

func ReplyOptions() []string {
	out := make([]string, len(builtinReplyOptions))
	copy(out, builtinReplyOptions)
	return out
}

// MilestoneMessage returns the banner text for a progress threshold.
func MilestoneMessage(at float64) string {
	if msg, ok := builtinMilestoneMessages[at]; ok {
		return msg
	}
	return "Progress milestone reached!"
}

func (s *Store) intn(n int) int {
	if n <= 1 {
		return 0
	}
	if s.rng == nil {
		return 0
	}
	return s.rng.IntN(n)
}
