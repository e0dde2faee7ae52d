package date

import (
	"errors"
	"testing"
	"time"
)

func TestMonthsAgo(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Date
	}{
		{
			name: "Mid year",
			in:   New(2024, time.June, 10),
			want: New(2024, time.May, 10),
		},
		{
			name: "Across year boundary",
			in:   New(2024, time.January, 15),
			want: New(2023, time.December, 15),
		},
		{
			name: "Clamped to a leap February",
			in:   New(2024, time.March, 31),
			want: New(2024, time.February, 29),
		},
		{
			name: "Clamped to a short month",
			in:   New(2025, time.May, 31),
			want: New(2025, time.April, 30),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.MonthsAgo(1); got != tc.want {
				t.Errorf("%v.MonthsAgo(1) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestYearsAgo(t *testing.T) {
	got, err := New(2024, time.June, 10).YearsAgo(1)
	if err != nil {
		t.Fatalf("YearsAgo(1) unexpected error: %v", err)
	}
	if want := New(2023, time.June, 10); got != want {
		t.Errorf("YearsAgo(1) = %v, want %v", got, want)
	}

	// Same day, only the year changes.
	got, err = New(2024, time.March, 15).YearsAgo(1)
	if err != nil || got != New(2023, time.March, 15) {
		t.Errorf("YearsAgo(1) = %v, %v want 2023-03-15", got, err)
	}
}

func TestYearsAgo_LeapDay(t *testing.T) {
	_, err := New(2024, time.February, 29).YearsAgo(1)
	if !errors.Is(err, ErrNoSuchDay) {
		t.Errorf("YearsAgo(1) on a leap day: got error %v, want %v", err, ErrNoSuchDay)
	}

	// Four years back lands on a leap year again.
	got, err := New(2024, time.February, 29).YearsAgo(4)
	if err != nil || got != New(2020, time.February, 29) {
		t.Errorf("YearsAgo(4) = %v, %v want 2020-02-29", got, err)
	}
}

func TestPeriodAgo(t *testing.T) {
	on := New(2024, time.January, 15)
	for _, tc := range []struct {
		p    Period
		want Date
	}{
		{Monthly, New(2023, time.December, 15)},
		{Yearly, New(2023, time.January, 15)},
	} {
		got, err := tc.p.Ago(on)
		if err != nil {
			t.Errorf("%v.Ago(%v) unexpected error: %v", tc.p, on, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%v.Ago(%v) = %v, want %v", tc.p, on, got, tc.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	for in, want := range map[string]Period{
		"monthly": Monthly,
		"Month":   Monthly,
		"yearly":  Yearly,
		"YEAR":    Yearly,
	} {
		got, err := ParsePeriod(in)
		if err != nil {
			t.Errorf("ParsePeriod(%q) unexpected error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParsePeriod("weekly"); err == nil {
		t.Errorf("ParsePeriod(%q) expected an error", "weekly")
	}
}
