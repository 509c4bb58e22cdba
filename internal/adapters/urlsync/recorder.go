// Package urlsync provides URL synchronizer implementations for the
// filter state machine.
package urlsync

// Recorder collects every visible-path update of one session in order.
// The REST boundary replays filter actions server-side and echoes the
// path history so the client can mirror it into the address bar.
type Recorder struct {
	paths []string
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) SetVisiblePath(path string) {
	r.paths = append(r.paths, path)
}

// Paths returns the recorded updates, oldest first.
func (r *Recorder) Paths() []string {
	return r.paths
}
