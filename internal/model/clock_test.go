package model

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "07:30", want: 450},
		{in: "23:59", want: 1439},
		{in: "7:30", wantErr: true},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("parse %q: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("parse %q: expected %d, got %d", tc.in, tc.want, got)
		}
	}
}

func TestYesterdayKeyCrossesMonth(t *testing.T) {
	now := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.Local)
	if got := YesterdayKey(now); got != "2026-02-28" {
		t.Fatalf("expected 2026-02-28, got %s", got)
	}
	if got := DateKey(now); got != "2026-03-01" {
		t.Fatalf("expected 2026-03-01, got %s", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	st := DefaultState()
	st.Schedules = append(st.Schedules, ClassEntry{ID: "a", Name: "Math"})
	st.Photos["a"] = []string{"data:image/png;base64,AA=="}
	date := "2026-10-18"
	st.Metrics.LastSessionDate = &date

	cp := st.Clone()
	cp.Schedules[0].Name = "Physics"
	cp.Photos["a"][0] = "changed"
	*cp.Metrics.LastSessionDate = "2000-01-01"

	if st.Schedules[0].Name != "Math" {
		t.Fatalf("schedules shared with clone")
	}
	if st.Photos["a"][0] == "changed" {
		t.Fatalf("photos shared with clone")
	}
	if *st.Metrics.LastSessionDate != "2026-10-18" {
		t.Fatalf("last session date shared with clone")
	}
}
