package model

import (
	"reflect"
	"testing"
)

func TestCanonicalDays(t *testing.T) {
	tests := []struct {
		name string
		in   []Day
		want []Day
	}{
		{
			name: "reorders into week order",
			in:   []Day{DaySunday, DayFriday, DaySaturday},
			want: []Day{DayFriday, DaySaturday, DaySunday},
		},
		{
			name: "drops duplicates",
			in:   []Day{DaySaturday, DaySaturday, DaySunday},
			want: []Day{DaySaturday, DaySunday},
		},
		{
			name: "empty input",
			in:   nil,
			want: nil,
		},
		{
			name: "ignores unknown days",
			in:   []Day{"someday", DaySunday},
			want: []Day{DaySunday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalDays(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CanonicalDays(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
