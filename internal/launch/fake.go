package launch

// Launched records a single command invocation.
type Launched struct {
	Path string
	Args []string
}

// Fake records launched commands for test assertions.
type Fake struct {
	// Launches contains every command handed to Launch, in order.
	Launches []Launched

	// Err, if set, is returned by Launch (the command is still recorded).
	Err error
}

// NewFake creates a Fake launcher.
func NewFake() *Fake {
	return &Fake{}
}

// Launch records the invocation.
func (f *Fake) Launch(path string, args []string) error {
	f.Launches = append(f.Launches, Launched{Path: path, Args: args})
	return f.Err
}

// Reset clears recorded launches.
func (f *Fake) Reset() {
	f.Launches = nil
	f.Err = nil
}
