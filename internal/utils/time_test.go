package utils

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	tests := []struct {
		name string
		time time.Time
		want string
	}{
		{
			name: "morning instant",
			time: time.Date(2025, 3, 14, 9, 26, 53, 0, time.Local),
			want: "2025-03-14",
		},
		{
			name: "one second before midnight",
			time: time.Date(2025, 3, 14, 23, 59, 59, 0, time.Local),
			want: "2025-03-14",
		},
		{
			name: "exactly midnight",
			time: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
			want: "2025-03-15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.time); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDayKeySameDay(t *testing.T) {
	a := time.Date(2025, 6, 1, 0, 0, 1, 0, time.Local)
	b := time.Date(2025, 6, 1, 23, 30, 0, 0, time.Local)
	if DayKey(a) != DayKey(b) {
		t.Errorf("instants on the same local day produced different keys: %q vs %q", DayKey(a), DayKey(b))
	}

	c := time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local)
	if DayKey(a) == DayKey(c) {
		t.Errorf("instants on different days produced the same key: %q", DayKey(a))
	}
}

func TestTodayWithFixedClock(t *testing.T) {
	clock := FixedClock{Time: time.Date(2025, 12, 31, 18, 0, 0, 0, time.Local)}
	if got := Today(clock); got != "2025-12-31" {
		t.Errorf("Today() = %q, want %q", got, "2025-12-31")
	}
	// Deterministic: same clock, same answer
	if Today(clock) != Today(clock) {
		t.Error("Today() is not deterministic for a fixed clock")
	}
}

func TestPreviousDay(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{
			name: "mid-month",
			key:  "2025-03-14",
			want: "2025-03-13",
		},
		{
			name: "month boundary",
			key:  "2025-03-01",
			want: "2025-02-28",
		},
		{
			name: "year boundary",
			key:  "2025-01-01",
			want: "2024-12-31",
		},
		{
			name: "leap day",
			key:  "2024-03-01",
			want: "2024-02-29",
		},
		{
			name:    "invalid key",
			key:     "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PreviousDay(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PreviousDay() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("PreviousDay(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestValidDayKey(t *testing.T) {
	valid := []string{"2025-01-01", "1999-12-31", "2024-02-29"}
	for _, key := range valid {
		if !ValidDayKey(key) {
			t.Errorf("ValidDayKey(%q) = false, want true", key)
		}
	}

	invalid := []string{"", "2025-13-01", "2025-02-30", "01-01-2025", "2025/01/01"}
	for _, key := range invalid {
		if ValidDayKey(key) {
			t.Errorf("ValidDayKey(%q) = true, want false", key)
		}
	}
}

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{
			name:     "empty string returns local",
			timezone: "",
			wantErr:  false,
		},
		{
			name:     "Local returns local",
			timezone: "Local",
			wantErr:  false,
		},
		{
			name:     "valid timezone UTC",
			timezone: "UTC",
			wantErr:  false,
		},
		{
			name:     "valid timezone Europe/Athens",
			timezone: "Europe/Athens",
			wantErr:  false,
		},
		{
			name:     "invalid timezone",
			timezone: "Invalid/Timezone",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{1500, "25:00"},
		{61, "01:01"},
		{0, "00:00"},
		{-5, "00:00"},
		{3600, "60:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatFocusTotal(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0h 0m"},
		{59, "0h 59m"},
		{60, "1h 0m"},
		{185, "3h 5m"},
	}

	for _, tt := range tests {
		if got := FormatFocusTotal(tt.minutes); got != tt.want {
			t.Errorf("FormatFocusTotal(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
