package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	s := New()

	assert.Equal(t, ChannelGeneral, s.Current())
	assert.False(t, s.HostMode())
	assert.False(t, s.Muted())
	assert.False(t, s.Deafened())
	assert.Equal(t, []string{
		"[System] UI scaffold ready.",
		"[Hint] Next step: wire audio networking and channel events.",
	}, s.Activity())
	for _, name := range Channels {
		assert.NotEmpty(t, s.Transcript(name), "channel %s has no seed lines", name)
	}
}

func TestSelectChannel(t *testing.T) {
	for _, name := range Channels {
		t.Run(name, func(t *testing.T) {
			s := New()
			before := len(s.Activity())

			msg, ok := s.Select(name)
			require.True(t, ok)
			assert.Equal(t, name, s.Current())
			assert.Equal(t, seedTranscripts[name], s.Transcript(name))

			activity := s.Activity()
			require.Len(t, activity, before+1)
			assert.Equal(t, "[Channel] Joined #"+name+".", msg)
			assert.Equal(t, msg, activity[len(activity)-1])
		})
	}
}

func TestSelectUnknownChannelIsNoop(t *testing.T) {
	s := New()
	before := s.Activity()

	_, ok := s.Select("Local Server")
	assert.False(t, ok)
	_, ok = s.Select("")
	assert.False(t, ok)
	assert.Equal(t, ChannelGeneral, s.Current())
	assert.Equal(t, before, s.Activity())
}

func TestSubmitAppendsToCurrentChannelOnly(t *testing.T) {
	s := New()
	gaming := s.Transcript(ChannelGaming)
	afk := s.Transcript(ChannelAFK)

	line, ok := s.Submit("hello")
	require.True(t, ok)
	assert.Equal(t, "You: hello", line)

	general := s.Transcript(ChannelGeneral)
	assert.Equal(t, "You: hello", general[len(general)-1])
	assert.Equal(t, gaming, s.Transcript(ChannelGaming))
	assert.Equal(t, afk, s.Transcript(ChannelAFK))
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	s := New()

	line, ok := s.Submit("  gg wp \t")
	require.True(t, ok)
	assert.Equal(t, "You: gg wp", line)
}

func TestSubmitBlankIsNoop(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "empty", text: ""},
		{name: "spaces", text: "   "},
		{name: "tabs and newlines", text: "\t\n "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			activity := s.Activity()

			line, ok := s.Submit(tt.text)
			assert.False(t, ok)
			assert.Empty(t, line)
			for _, name := range Channels {
				assert.Equal(t, seedTranscripts[name], s.Transcript(name))
			}
			assert.Equal(t, activity, s.Activity())
		})
	}
}

func TestChannelSwitchRestoresTranscript(t *testing.T) {
	s := New()

	s.Submit("first")
	afterA := s.Transcript(ChannelGeneral)

	_, ok := s.Select(ChannelGaming)
	require.True(t, ok)
	s.Submit("in gaming")
	_, ok = s.Select(ChannelGeneral)
	require.True(t, ok)

	assert.Equal(t, afterA, s.Transcript(ChannelGeneral))
	assert.NotContains(t, s.Transcript(ChannelGeneral), "You: in gaming")
	assert.Contains(t, s.Transcript(ChannelGaming), "You: in gaming")
}

func TestSubmitCreatesMissingTranscript(t *testing.T) {
	s := New()
	delete(s.transcripts, ChannelAFK)
	_, ok := s.Select(ChannelAFK)
	require.True(t, ok)

	_, ok = s.Submit("brb")
	require.True(t, ok)
	assert.Equal(t, []string{"You: brb"}, s.Transcript(ChannelAFK))
}

func TestTranscriptIsACopy(t *testing.T) {
	s := New()

	lines := s.Transcript(ChannelGeneral)
	lines[0] = "tampered"

	assert.Equal(t, seedTranscripts[ChannelGeneral], s.Transcript(ChannelGeneral))
}

func TestHostModeToggle(t *testing.T) {
	s := New()
	before := len(s.Activity())

	msg, ok := s.SetHostMode(true)
	require.True(t, ok)
	assert.Equal(t, HostModeEnabledText, msg)
	assert.True(t, s.HostMode())

	msg, ok = s.SetHostMode(false)
	require.True(t, ok)
	assert.Equal(t, HostModeDisabledText, msg)
	assert.False(t, s.HostMode())

	activity := s.Activity()
	require.Len(t, activity, before+2)
	assert.Equal(t, HostModeEnabledText, activity[before])
	assert.Equal(t, HostModeDisabledText, activity[before+1])
}

func TestHostModeSameValueIsNoop(t *testing.T) {
	s := New()
	before := s.Activity()

	_, ok := s.SetHostMode(false)
	assert.False(t, ok)
	assert.Equal(t, before, s.Activity())
}

func TestVoiceToggles(t *testing.T) {
	s := New()

	assert.Equal(t, "[Voice] Microphone muted.", s.ToggleMute())
	assert.True(t, s.Muted())
	assert.Equal(t, "[Voice] Microphone unmuted.", s.ToggleMute())
	assert.False(t, s.Muted())

	assert.Equal(t, "[Voice] Output deafened.", s.ToggleDeafen())
	assert.True(t, s.Deafened())
	assert.Equal(t, "[Voice] Output undeafened.", s.ToggleDeafen())
	assert.False(t, s.Deafened())
}

func TestConnectRequestsOnlyLog(t *testing.T) {
	s := New()
	before := len(s.Activity())

	assert.Equal(t,
		"[System] Connect requested for GuestUser@localhost (offline mockup).",
		s.RequestConnect("", "  "),
	)
	assert.Equal(t,
		"[System] Connect requested for Dana@10.0.0.5 (offline mockup).",
		s.RequestConnect("Dana", "10.0.0.5"),
	)
	assert.Equal(t, "[System] Disconnect requested (offline mockup).", s.RequestDisconnect())

	assert.Len(t, s.Activity(), before+3)
	assert.Equal(t, ChannelGeneral, s.Current())
	assert.False(t, s.HostMode())
}
