package tracker

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	t.Run("accepts MM/DD/YYYY", func(t *testing.T) {
		got, err := ParseDate("01/20/2024")
		if err != nil {
			t.Fatalf("ParseDate() error = %v", err)
		}
		want := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("ParseDate() = %v, want %v", got, want)
		}
	})

	t.Run("rejects other layouts", func(t *testing.T) {
		for _, s := range []string{"2024-01-20", "20/01/2024", "1/20/24", "tomorrow", ""} {
			if _, err := ParseDate(s); err == nil {
				t.Errorf("ParseDate(%q) accepted", s)
			}
		}
	})

	t.Run("rejects impossible dates", func(t *testing.T) {
		if _, err := ParseDate("13/45/2024"); err == nil {
			t.Error("ParseDate(13/45/2024) accepted")
		}
	})
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2024, 2, 1, 15, 30, 0, 0, time.UTC)
	if got := FormatDate(d); got != "02/01/2024" {
		t.Errorf("FormatDate() = %q, want %q", got, "02/01/2024")
	}
}

func TestMondayOf(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{"wednesday", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"monday itself", time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
		{"sunday belongs to the preceding monday", time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mondayOf(tt.day); !got.Equal(tt.want) {
				t.Errorf("mondayOf(%v) = %v, want %v", tt.day, got, tt.want)
			}
		})
	}
}

func TestParseStatusFilter(t *testing.T) {
	for _, s := range []string{"all", "pending", "completed", "snoozed"} {
		if _, err := ParseStatusFilter(s); err != nil {
			t.Errorf("ParseStatusFilter(%q) error = %v", s, err)
		}
	}
	if _, err := ParseStatusFilter("overdue"); err == nil {
		t.Error("ParseStatusFilter(overdue) accepted; overdue is derived, not stored")
	}
}

func TestParseDateFilter(t *testing.T) {
	for _, s := range []string{"all", "today", "this-week", "next-week"} {
		if _, err := ParseDateFilter(s); err != nil {
			t.Errorf("ParseDateFilter(%q) error = %v", s, err)
		}
	}
	if _, err := ParseDateFilter("tomorrow"); err == nil {
		t.Error("ParseDateFilter(tomorrow) accepted")
	}
}

func TestDateFilter_bounds(t *testing.T) {
	// A Wednesday, with time-of-day noise that must not affect the bounds.
	today := time.Date(2024, 1, 10, 14, 45, 3, 0, time.UTC)

	day := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name     string
		filter   DateFilter
		wantFrom time.Time
		wantTo   time.Time
		wantOK   bool
	}{
		{"all imposes no bounds", DateAll(), time.Time{}, time.Time{}, false},
		{"today", DateToday(), day(10), day(10), true},
		{"this week runs monday through sunday", DateThisWeek(), day(8), day(14), true},
		{"next week is the following monday through sunday", DateNextWeek(), day(15), day(21), true},
		{"custom range", DateBetween("01/05/2024", "01/09/2024"), day(5), day(9), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok, err := tt.filter.bounds(today)
			if err != nil {
				t.Fatalf("bounds() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Fatalf("bounds() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if !from.Equal(tt.wantFrom) || !to.Equal(tt.wantTo) {
				t.Errorf("bounds() = [%v, %v], want [%v, %v]", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}

	t.Run("custom range with a bad date errors", func(t *testing.T) {
		if _, _, _, err := DateBetween("not-a-date", "01/09/2024").bounds(today); err == nil {
			t.Error("bounds() accepted an unparseable range start")
		}
	})
}
