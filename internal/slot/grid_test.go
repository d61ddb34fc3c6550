package slot

import (
	"reflect"
	"testing"
)

func TestDefaultGrid(t *testing.T) {
	grid := DefaultGrid()
	if len(grid) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(grid))
	}
	if grid[0] != "08:00" {
		t.Errorf("first slot = %q, want 08:00", grid[0])
	}
	if grid[len(grid)-1] != "17:30" {
		t.Errorf("last slot = %q, want 17:30", grid[len(grid)-1])
	}
}

func TestOnDefaultGrid(t *testing.T) {
	tests := []struct {
		time string
		want bool
	}{
		{"08:00", true},
		{"17:30", true},
		{"09:30", true},
		{"18:00", false},
		{"07:30", false},
		{"09:15", false},
		{"garbage", false},
	}
	for _, tt := range tests {
		if got := OnDefaultGrid(tt.time); got != tt.want {
			t.Errorf("OnDefaultGrid(%q) = %v, want %v", tt.time, got, tt.want)
		}
	}
}

func TestTemplateGrid(t *testing.T) {
	got := TemplateGrid("09:00", "12:00", 45, 15)
	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TemplateGrid = %v, want %v", got, want)
	}

	// No break between appointments.
	got = TemplateGrid("08:00", "10:00", 30, 0)
	want = []string{"08:00", "08:30", "09:00", "09:30"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TemplateGrid = %v, want %v", got, want)
	}

	// A slot whose appointment would overrun the window is not emitted.
	got = TemplateGrid("09:00", "10:00", 40, 0)
	want = []string{"09:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TemplateGrid = %v, want %v", got, want)
	}

	// The last slot may end exactly at the window end.
	got = TemplateGrid("09:00", "10:20", 40, 0)
	want = []string{"09:00", "09:40"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TemplateGrid = %v, want %v", got, want)
	}

	if got := TemplateGrid("10:00", "09:00", 30, 0); got != nil {
		t.Errorf("inverted window should yield no slots, got %v", got)
	}
	if got := TemplateGrid("09:00", "12:00", 0, 0); got != nil {
		t.Errorf("zero duration should yield no slots, got %v", got)
	}
	if got := TemplateGrid("bogus", "12:00", 30, 0); got != nil {
		t.Errorf("malformed start should yield no slots, got %v", got)
	}
}
