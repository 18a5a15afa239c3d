package networth

import (
	"testing"
	"time"
)

func TestSettings_FireTarget(t *testing.T) {
	testCases := []struct {
		name     string
		settings Settings
		want     Money
	}{
		{
			name:     "25x rule",
			settings: Settings{MonthlyExpense: TWD(80000), Mode: Rule25x},
			want:     TWD(24000000), // 80000 * 12 * 25
		},
		{
			name:     "custom target wins over expenses",
			settings: Settings{MonthlyExpense: TWD(80000), Mode: CustomTarget, Target: TWD(30000000)},
			want:     TWD(30000000),
		},
		{
			name:     "zero expenses",
			settings: Settings{MonthlyExpense: TWD(0), Mode: Rule25x},
			want:     TWD(0),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.settings.FireTarget(); !got.Equal(tc.want) {
				t.Errorf("FireTarget() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.Mode != Rule25x {
		t.Errorf("Mode = %s, want 25x", s.Mode)
	}
	if !s.FireTarget().Equal(TWD(24000000)) {
		t.Errorf("default target = %s, want 24000000", s.FireTarget())
	}
}

func TestNewNetWorth(t *testing.T) {
	net := NewNetWorth(TWD(1000000), TWD(250000), TWD(150000))
	if !net.NetAssets.Equal(TWD(1100000)) {
		t.Errorf("NetAssets = %s, want 1100000", net.NetAssets)
	}
}

func TestProgress(t *testing.T) {
	net := NewNetWorth(TWD(5000000), TWD(1000000), TWD(0))
	if got := Progress(net, TWD(24000000)); !got.Equal(Percent(25)) {
		t.Errorf("Progress = %s, want 25%%", got)
	}
	// a zero target yields zero progress, not a division error
	if got := Progress(net, TWD(0)); got != 0 {
		t.Errorf("Progress with zero target = %s, want 0", got)
	}
}

func TestNewSnapshot(t *testing.T) {
	on := NewDate(2025, time.June, 1)
	net := NewNetWorth(TWD(100), TWD(50), TWD(30))
	snap := NewSnapshot(on, net)
	if snap.Date != on {
		t.Errorf("Date = %s, want %s", snap.Date, on)
	}
	if !snap.NetAssets.Equal(TWD(120)) {
		t.Errorf("NetAssets = %s, want 120", snap.NetAssets)
	}
}

func TestParseFireMode(t *testing.T) {
	if m, err := ParseFireMode("custom"); err != nil || m != CustomTarget {
		t.Errorf("ParseFireMode(custom) = %v, %v", m, err)
	}
	if _, err := ParseFireMode("yolo"); err == nil {
		t.Error("ParseFireMode(yolo) should fail")
	}
}
