package state

import "time"

// Run records one install attempt for the journal. Observability only;
// the install logic never consults past runs.
type Run struct {
	ID       string    `json:"id"`
	Time     time.Time `json:"time"`
	Host     string    `json:"host,omitempty"` // empty for the local interpreter
	Strategy string    `json:"strategy,omitempty"`
	Missing  []string  `json:"missing,omitempty"` // pip names missing at run start
	Outcome  string    `json:"outcome"`
}

// State, tüm sistemin o anki snapshot'ıdır.
type State struct {
	Version string    `json:"version"`
	LastRun time.Time `json:"last_run"`
	// Satisfied holds the module names that resolved after the last run
	// that left the environment complete. Input for the drift diff.
	Satisfied []string `json:"satisfied,omitempty"`
	Runs      []Run    `json:"runs,omitempty"`
}

func NewState() *State {
	return &State{Version: "1.0"}
}
