// Package session holds the in-memory state behind the chat window: the
// current channel, per-channel transcripts, local voice flags and the
// activity log. Nothing here touches the network or disk.
//
// A Session is owned by the UI goroutine and is not safe for concurrent use.
package session

import (
	"fmt"
	"strings"
)

const (
	ChannelGeneral = "General"
	ChannelGaming  = "Gaming"
	ChannelAFK     = "AFK"

	DefaultChannel = ChannelGeneral

	YouPrefix = "You: "

	HostModeEnabledText  = "Host mode enabled. Ensure required ports are forwarded."
	HostModeDisabledText = "Host mode disabled."
)

// Channels lists the fixed channels in display order.
var Channels = []string{ChannelGeneral, ChannelGaming, ChannelAFK}

var seedTranscripts = map[string][]string{
	ChannelGeneral: {
		"Alice: Welcome to #General",
		"Bob: Push-to-talk test complete.",
	},
	ChannelGaming: {
		"Bob: Anyone up for a match tonight?",
		"Carol: Lobby is open, join when ready.",
	},
	ChannelAFK: {
		"[System] Idle members are moved here automatically.",
	},
}

var seedActivity = []string{
	"[System] UI scaffold ready.",
	"[Hint] Next step: wire audio networking and channel events.",
}

type Session struct {
	current     string
	hostMode    bool
	muted       bool
	deafened    bool
	transcripts map[string][]string
	activity    []string
}

// New returns a session seeded with the canned transcripts and hints.
func New() *Session {
	s := &Session{
		current:     DefaultChannel,
		transcripts: make(map[string][]string, len(seedTranscripts)),
		activity:    append([]string(nil), seedActivity...),
	}
	for name, lines := range seedTranscripts {
		s.transcripts[name] = append([]string(nil), lines...)
	}
	return s
}

func (s *Session) Current() string {
	return s.current
}

func (s *Session) HostMode() bool {
	return s.hostMode
}

func (s *Session) Muted() bool {
	return s.muted
}

func (s *Session) Deafened() bool {
	return s.deafened
}

// Transcript returns a copy of the stored lines for a channel.
func (s *Session) Transcript(channel string) []string {
	return append([]string(nil), s.transcripts[channel]...)
}

// Activity returns a copy of every activity line appended so far.
func (s *Session) Activity() []string {
	return append([]string(nil), s.activity...)
}

// Log appends one line to the activity log.
func (s *Session) Log(message string) {
	s.activity = append(s.activity, message)
}

// Select makes channel current and logs a join notice. Names outside the
// fixed channel set are ignored.
func (s *Session) Select(channel string) (string, bool) {
	if !IsChannel(channel) {
		return "", false
	}
	s.current = channel
	msg := fmt.Sprintf("[Channel] Joined #%s.", channel)
	s.Log(msg)
	return msg, true
}

// Submit appends "You: <text>" to the current channel. Text is trimmed
// first; blank input returns ok=false and changes nothing.
func (s *Session) Submit(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	line := YouPrefix + text
	s.transcripts[s.current] = append(s.transcripts[s.current], line)
	return line, true
}

// SetHostMode records the flag and logs the matching notice. Setting the
// value it already has is a no-op.
func (s *Session) SetHostMode(on bool) (string, bool) {
	if s.hostMode == on {
		return "", false
	}
	s.hostMode = on
	msg := HostModeDisabledText
	if on {
		msg = HostModeEnabledText
	}
	s.Log(msg)
	return msg, true
}

func (s *Session) ToggleMute() string {
	s.muted = !s.muted
	msg := "[Voice] Microphone unmuted."
	if s.muted {
		msg = "[Voice] Microphone muted."
	}
	s.Log(msg)
	return msg
}

func (s *Session) ToggleDeafen() string {
	s.deafened = !s.deafened
	msg := "[Voice] Output undeafened."
	if s.deafened {
		msg = "[Voice] Output deafened."
	}
	s.Log(msg)
	return msg
}

// RequestConnect only records the attempt; this build has no transport.
func (s *Session) RequestConnect(nickname, server string) string {
	nickname = strings.TrimSpace(nickname)
	server = strings.TrimSpace(server)
	if nickname == "" {
		nickname = "GuestUser"
	}
	if server == "" {
		server = "localhost"
	}
	msg := fmt.Sprintf("[System] Connect requested for %s@%s (offline mockup).", nickname, server)
	s.Log(msg)
	return msg
}

func (s *Session) RequestDisconnect() string {
	msg := "[System] Disconnect requested (offline mockup)."
	s.Log(msg)
	return msg
}

func IsChannel(name string) bool {
	for _, c := range Channels {
		if c == name {
			return true
		}
	}
	return false
}
