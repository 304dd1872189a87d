package config

import "testing"

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"", Classic},
		{"classic", Classic},
		{" Duel ", Duel},
		{"SCORED", Scored},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if err != nil {
			t.Fatalf("ParseMode(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseMode("coop"); err == nil {
		t.Fatalf("ParseMode(coop) succeeded, want error")
	}
}

func TestModeFromEnv(t *testing.T) {
	t.Setenv(EnvMode, "duel")
	t.Setenv(EnvMultiHit, "yes")

	m, err := ModeFromEnv()
	if err != nil {
		t.Fatalf("ModeFromEnv: %v", err)
	}
	if m.Players != 2 || !m.Scoring || !m.Ramp || !m.MultiHit {
		t.Fatalf("ModeFromEnv = %+v, want duel with multi-hit", m)
	}
}

func TestGetBool(t *testing.T) {
	t.Setenv("SHOOTER_TEST_BOOL", "off")
	if GetBool("SHOOTER_TEST_BOOL", true) {
		t.Errorf("GetBool(off) = true, want false")
	}
	t.Setenv("SHOOTER_TEST_BOOL", "maybe")
	if !GetBool("SHOOTER_TEST_BOOL", true) {
		t.Errorf("GetBool(maybe) should fall back to true")
	}
	if GetBool("SHOOTER_TEST_UNSET", false) {
		t.Errorf("GetBool(unset) = true, want fallback false")
	}
}
