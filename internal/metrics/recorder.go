package metrics

// KeyResult labels the outcome of a key press
type KeyResult string

const (
	KeyResultOK              KeyResult = "ok"
	KeyResultInvalidArgument KeyResult = "invalid_argument"
)

// Recorder receives calculator observability events. Implementations must be safe for
// concurrent use.
type Recorder interface {
	IncKeyPress(key string, result KeyResult)
	IncErrorDisplay()
	SetOpenSessions(n int)
}

// NoopRecorder is a Recorder that does nothing (default when metrics are not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncKeyPress(string, KeyResult) {}
func (NoopRecorder) IncErrorDisplay()              {}
func (NoopRecorder) SetOpenSessions(int)           {}
