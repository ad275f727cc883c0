package audio

import "testing"

// TestToneFor verifies each state maps to a distinct cue and unknown
// names fall back to the default tone.
func TestToneFor(t *testing.T) {
	cases := map[string]float64{
		"main_menu": 440,
		"gameplay":  660,
		"paused":    330,
		"game_over": 220,
		"anything":  523,
	}

	for name, want := range cases {
		if got := toneFor(name); got != want {
			t.Errorf("toneFor(%q): expected %v, got %v", name, want, got)
		}
	}
}

// TestPlayWithoutSpeaker verifies cue playback is a no-op when the
// speaker never initialized.
func TestPlayWithoutSpeaker(t *testing.T) {
	c := &Cues{}
	c.Play("gameplay")

	c.SetMute(true)
	c.Play("gameplay")
}
