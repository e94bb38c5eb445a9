package session

// State is the lifecycle stage of a single Session. Sessions are
// single-use: once CLOSED, a Session never transitions again, and a
// fresh Connect call builds a brand new one.
type State int

const (
	StateClosed State = iota
	StateHandshaking
	StateAuthenticating
	StateConnected
	StateLost
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateHandshaking:
		return "HANDSHAKING"
	case StateAuthenticating:
		return "AUTHENTICATING"
	case StateConnected:
		return "CONNECTED"
	case StateLost:
		return "LOST"
	default:
		return "UNKNOWN"
	}
}
