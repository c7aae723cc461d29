package flow

// SolveRecord describes one solved level of a play run.
type SolveRecord struct {
	RunID      string
	LevelID    string
	LevelIndex int
	Seed       int64
	Moves      int
	Par        int // -1 when the solver could not determine it
	Hints      int
	Ticks      int
	Score      int
}

// SolveRecorder receives a record each time a level is solved.
type SolveRecorder interface {
	RecordSolve(rec SolveRecord) error
}

// SolveRecorderFunc adapts a function to SolveRecorder.
type SolveRecorderFunc func(rec SolveRecord) error

// RecordSolve calls f(rec).
func (f SolveRecorderFunc) RecordSolve(rec SolveRecord) error {
	return f(rec)
}
