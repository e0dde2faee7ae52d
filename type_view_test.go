package pricetracker

import "testing"

func TestParseView(t *testing.T) {
	tests := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{"yearly", YearlyView, false},
		{" Monthly ", MonthlyView, false},
		{"vol", VolatilityView, false},
		{"weekly", YearlyView, true},
	}
	for _, tt := range tests {
		got, err := ParseView(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseView(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseView(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, v := range Views {
		if got, err := ParseView(v.String()); err != nil || got != v {
			t.Errorf("ParseView(%q) = %v, %v, want %v", v.String(), got, err, v)
		}
	}
}
