package callflow

// State identifies where the call conversation stands. The caller keeps
// the state between turns; the service itself holds nothing.
type State string

const (
	StateIdle           State = "idle"
	StateGreeting       State = "greeting"
	StateWaitingProblem State = "waiting_problem"
	StateClarifying     State = "clarifying"
	StateWaitingName    State = "waiting_name"
	StateWaitingAddress State = "waiting_address"
	StateWaitingPhone   State = "waiting_phone"
	StateEnded          State = "ended"
)

func (s State) Valid() bool {
	switch s {
	case StateIdle, StateGreeting, StateWaitingProblem, StateClarifying,
		StateWaitingName, StateWaitingAddress, StateWaitingPhone, StateEnded:
		return true
	}
	return false
}

// Slots holds everything collected during one call. It lives only for the
// duration of the call and is threaded through every turn by the caller.
type Slots struct {
	Problem string `json:"problem,omitempty"`
	Name    string `json:"name,omitempty"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Urgent  bool   `json:"urgent,omitempty"`
}

// Turn is the outcome of one user utterance: what to say, the state to
// resume from next turn and the updated slots.
type Turn struct {
	Response string
	Next     State
	Slots    Slots
}
