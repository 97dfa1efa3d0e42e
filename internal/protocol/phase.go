package protocol

// Phase represents the connection protocol phase. Each phase restricts
// which packet types the server may legally send.
type Phase int

const (
	PhaseHandshake Phase = iota // TCP connected, intention not yet sent
	PhaseStatus                 // server list ping flow
	PhaseLogin                  // authentication and compression negotiation
	PhaseConfiguration          // registry sync before entering the world
	PhasePlay                   // in the world
	PhaseDisconnected           // terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseHandshake:
		return "HANDSHAKE"
	case PhaseStatus:
		return "STATUS"
	case PhaseLogin:
		return "LOGIN"
	case PhaseConfiguration:
		return "CONFIGURATION"
	case PhasePlay:
		return "PLAY"
	case PhaseDisconnected:
		return "DISCONNECTED"
	default:
		return "UNKNOWN"
	}
}

// CanTransition reports whether moving from p to next is a legal phase
// transition. Disconnected is reachable from every phase and is terminal.
func (p Phase) CanTransition(next Phase) bool {
	if next == PhaseDisconnected {
		return p != PhaseDisconnected
	}
	switch p {
	case PhaseHandshake:
		return next == PhaseStatus || next == PhaseLogin
	case PhaseLogin:
		return next == PhaseConfiguration
	case PhaseConfiguration:
		return next == PhasePlay
	default:
		return false
	}
}

// Terminal reports whether the phase admits no further packets.
func (p Phase) Terminal() bool {
	return p == PhaseDisconnected
}
