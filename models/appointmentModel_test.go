package models

import "testing"

func TestValidStatus(t *testing.T) {
	for _, status := range []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		if !ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = false", status)
		}
	}
	for _, status := range []string{"", "rescheduled", "PENDING", "done"} {
		if ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = true", status)
		}
	}
}

func TestTerminalStatus(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusPending, false},
		{StatusConfirmed, false},
		{StatusCompleted, true},
		{StatusCancelled, true},
	}
	for _, tt := range tests {
		if got := TerminalStatus(tt.status); got != tt.want {
			t.Errorf("TerminalStatus(%q) = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestAppointmentOpen(t *testing.T) {
	for _, tt := range []struct {
		status string
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCompleted, false},
		{StatusCancelled, false},
	} {
		a := Appointment{Status: tt.status}
		if got := a.Open(); got != tt.want {
			t.Errorf("Open() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
