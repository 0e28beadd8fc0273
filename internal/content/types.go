package content

// EmailTemplate is one canned email: who it is from, what it says, and the
// quick replies the player may "type".
type EmailTemplate struct {
	Sender    string   `json:"sender"`
	Subject   string   `json:"subject"`
	Message   string   `json:"message"`
	Responses []string `json:"responses,omitempty"`
}

// Turn is a single line of a phone conversation.
type Turn struct {
	Speaker string `json:"speaker"` // "caller" or "player"
	Text    string `json:"text"`
}

// PhoneScript is a caller plus their scripted conversation.
type PhoneScript struct {
	Caller string `json:"caller"`
	Number string `json:"number"`
	Turns  []Turn `json:"turns"`
}

// ChatLine is a short ping for the Messages or Slack/Discord surfaces.
type ChatLine struct {
	From string `json:"from"`
	Text string `json:"text"`
}

// emailLibrary is the on-disk shape of the email document: channels mapping
// to ordered template sequences.
type emailLibrary struct {
	FormatVersion int                        `json:"format_version"`
	Channels      map[string][]EmailTemplate `json:"channels"`
}

// phoneLibrary is the on-disk shape of the phone-call document.
type phoneLibrary struct {
	FormatVersion int           `json:"format_version"`
	Conversations []PhoneScript `json:"conversations"`
}

// Email channel names used by the schedulers.
const (
	ChannelRegular        = "regular"
	ChannelCongratulatory = "congratulatory"
)
