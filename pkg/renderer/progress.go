package renderer

// ProgressReporter is informed each time a row of the frame is finished.
// Calls are serialized, so implementations need no locking of their own.
type ProgressReporter interface {
	RowCompleted(done, total int)
}

// ProgressFunc adapts a plain function to ProgressReporter
type ProgressFunc func(done, total int)

// RowCompleted calls f(done, total)
func (f ProgressFunc) RowCompleted(done, total int) {
	f(done, total)
}

type noProgress struct{}

func (noProgress) RowCompleted(int, int) {}
