// Package launch executes resolved action commands with process
// abstraction. The real implementation uses os/exec; the fake records
// launches for test assertions.
package launch

// Launcher starts an external command without waiting for it to
// finish. Launch failures are reported for logging only — an action
// that cannot run must never destabilize the daemon, and a non-zero
// exit from an action script is not an error at all.
type Launcher interface {
	Launch(path string, args []string) error
}
