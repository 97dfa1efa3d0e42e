package protocol

import "testing"

func TestPhase_CanTransition(t *testing.T) {
	tests := []struct {
		from, to Phase
		want     bool
	}{
		{PhaseHandshake, PhaseStatus, true},
		{PhaseHandshake, PhaseLogin, true},
		{PhaseHandshake, PhasePlay, false},
		{PhaseLogin, PhaseConfiguration, true},
		{PhaseLogin, PhasePlay, false},
		{PhaseConfiguration, PhasePlay, true},
		{PhaseConfiguration, PhaseLogin, false},
		{PhasePlay, PhaseConfiguration, false},
		{PhaseStatus, PhaseLogin, false},
	}
	for _, tt := range tests {
		if got := tt.from.CanTransition(tt.to); got != tt.want {
			t.Errorf("%v -> %v = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestPhase_DisconnectedReachableFromAll(t *testing.T) {
	for _, from := range []Phase{PhaseHandshake, PhaseStatus, PhaseLogin, PhaseConfiguration, PhasePlay} {
		if !from.CanTransition(PhaseDisconnected) {
			t.Errorf("%v should be able to transition to DISCONNECTED", from)
		}
	}
}

func TestPhase_DisconnectedIsTerminal(t *testing.T) {
	for next := PhaseHandshake; next <= PhaseDisconnected; next++ {
		if PhaseDisconnected.CanTransition(next) {
			t.Errorf("DISCONNECTED -> %v should be illegal", next)
		}
	}
	if !PhaseDisconnected.Terminal() {
		t.Error("DISCONNECTED should be terminal")
	}
}
