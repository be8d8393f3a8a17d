package launch

// Kind identifies which external program a launch targeted.
type Kind string

const (
	KindFileManager Kind = "file-manager"
	KindEditor      Kind = "editor"
	KindTerminal    Kind = "terminal"
)

// Call is one recorded launch.
type Call struct {
	Kind Kind
	Path string
}

// Recorder implements Launcher by recording calls instead of starting
// processes. If Err is set every call returns it (and is still recorded).
type Recorder struct {
	Calls []Call
	Err   error
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// OpenFileManager records a file manager launch.
func (r *Recorder) OpenFileManager(path string) error {
	return r.record(KindFileManager, path)
}

// OpenEditor records an editor launch.
func (r *Recorder) OpenEditor(path string) error {
	return r.record(KindEditor, path)
}

// OpenTerminal records a terminal launch.
func (r *Recorder) OpenTerminal(path string) error {
	return r.record(KindTerminal, path)
}

func (r *Recorder) record(kind Kind, path string) error {
	r.Calls = append(r.Calls, Call{Kind: kind, Path: path})
	return r.Err
}

var (
	_ Launcher = (*OSLauncher)(nil)
	_ Launcher = (*Recorder)(nil)
)
