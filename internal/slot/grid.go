package slot

import "fmt"

// Grid bounds for the house booking grid: 30-minute slots from 08:00 up to
// and including 17:30.
const (
	defaultGridStart = 8 * 60
	defaultGridEnd   = 17*60 + 30
	defaultGridStep  = 30
)

// DefaultGrid returns the house booking grid as canonical HH:MM strings.
func DefaultGrid() []string {
	var grid []string
	for m := defaultGridStart; m <= defaultGridEnd; m += defaultGridStep {
		grid = append(grid, formatMinutes(m))
	}
	return grid
}

// OnDefaultGrid reports whether the time is one of the house grid slots.
func OnDefaultGrid(timeOfDay string) bool {
	m, err := ParseMinutes(timeOfDay)
	if err != nil {
		return false
	}
	return m >= defaultGridStart && m <= defaultGridEnd && (m-defaultGridStart)%defaultGridStep == 0
}

// TemplateGrid derives the bookable slot starts for one veterinarian from a
// recurring availability template. Slots start at the template's start time
// and advance by appointment duration plus break time; a slot is emitted
// only when the full appointment fits before the end time. Malformed or
// degenerate templates yield an empty grid.
func TemplateGrid(startTime, endTime string, appointmentDuration, breakTime int) []string {
	start, err := ParseMinutes(startTime)
	if err != nil {
		return nil
	}
	end, err := ParseMinutes(endTime)
	if err != nil {
		return nil
	}
	if appointmentDuration <= 0 || breakTime < 0 {
		return nil
	}

	step := appointmentDuration + breakTime
	var grid []string
	for m := start; m+appointmentDuration <= end; m += step {
		grid = append(grid, formatMinutes(m))
	}
	return grid
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}
