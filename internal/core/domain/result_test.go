package domain

import "testing"

func TestResultStarted(t *testing.T) {
	tests := []struct {
		name  string
		state RunState
		want  bool
	}{
		{"zero value", "", false},
		{"not started", StateNotStarted, false},
		{"writing", StateWritingFiles, true},
		{"completed", StateCompleted, true},
		{"failed", StateFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (Result{State: tt.state}).Started(); got != tt.want {
				t.Errorf("Started() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResultSuccess(t *testing.T) {
	tests := []struct {
		name string
		res  Result
		want bool
	}{
		{"all written", Result{Requested: 2, Written: 2}, true},
		{"partial", Result{Requested: 3, Written: 1}, false},
		{"no hosts", Result{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.res.Success(); got != tt.want {
				t.Errorf("Success() = %v, want %v", got, tt.want)
			}
		})
	}
}
