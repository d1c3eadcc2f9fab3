package rules

import "testing"

func TestNext(t *testing.T) {
	tests := []struct {
		alive     bool
		neighbors uint8
		want      bool
	}{
		{true, 0, false},
		{true, 1, false},
		{true, 2, true},
		{true, 3, true},
		{true, 4, false},
		{true, 8, false},
		{false, 0, false},
		{false, 2, false},
		{false, 3, true},
		{false, 4, false},
		{false, 8, false},
	}

	for _, tt := range tests {
		if got := Next(tt.alive, tt.neighbors); got != tt.want {
			t.Errorf("Next(%v, %d) = %v, want %v", tt.alive, tt.neighbors, got, tt.want)
		}
	}
}
