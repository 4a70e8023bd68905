package core

// Solution is emitted when an attempt is solved.
type Solution struct {
	PlayerName string
	LevelName  string
	Moves      int
	Attempts   int
	Sequence   []Dir
	Result     AttemptResult
}

// Recorder receives solved attempts. Implementations decide whether the
// recording is local or remote; the session does not wait on the outcome.
type Recorder interface {
	RecordSolution(Solution)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(Solution)

// RecordSolution calls f(s).
func (f RecorderFunc) RecordSolution(s Solution) { f(s) }

// NopRecorder discards solutions.
type NopRecorder struct{}

// RecordSolution does nothing.
func (NopRecorder) RecordSolution(Solution) {}
