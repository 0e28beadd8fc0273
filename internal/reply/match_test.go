package reply

import "testing"

func TestClosest(t *testing.T) {
	options := []string{"Okay", "Got it", "Thanks", "Will do", "Sure thing"}
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"exact", "thanks", "Thanks"},
		{"typo", "thamks", "Thanks"},
		{"partial", "wil d", "Will do"},
		{"case insensitive", "OKAY", "Okay"},
		{"empty picks first", "", "Okay"},
		{"garbage still matches something", "qqqq", "Okay"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Closest(tc.input, options)
			if !ok {
				t.Fatal("expected a match")
			}
			if got != tc.want {
				t.Fatalf("Closest(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestClosestNoOptions(t *testing.T) {
	if got, ok := Closest("hi", nil); ok || got != "" {
		t.Fatalf("Closest with no options = %q, %v", got, ok)
	}
}

func TestComposerRevealsOneRunePerKeystroke(t *testing.T) {
	c := NewComposer([]string{"Got it"})
	for i, r := range "asdfjk" {
		c.Keystroke(r)
		want := []rune("Got it")[:i+1]
		if c.Text() != string(want) {
			t.Fatalf("after %d keystrokes Text() = %q, want %q", i+1, c.Text(), string(want))
		}
	}
	if !c.Done() {
		t.Fatal("expected composer done after enough keystrokes")
	}
}

func TestComposerBackspaceShrinks(t *testing.T) {
	c := NewComposer([]string{"Okay"})
	c.Keystroke('o')
	c.Keystroke('k')
	c.Backspace()
	if c.Text() != "O" {
		t.Fatalf("Text() = %q, want %q", c.Text(), "O")
	}
	c.Backspace()
	c.Backspace()
	if c.Text() != "" {
		t.Fatalf("Text() = %q, want empty", c.Text())
	}
}

func TestComposerResetStartsOver(t *testing.T) {
	c := NewComposer([]string{"Okay"})
	for _, r := range "okay" {
		c.Keystroke(r)
	}
	c.Reset()
	if c.Text() != "" || c.Done() {
		t.Fatalf("after reset Text() = %q done=%v", c.Text(), c.Done())
	}
}
