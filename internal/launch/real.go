package launch

import (
	"fmt"
	"os"
	"os/exec"
)

// Exec launches commands as real OS processes, fire-and-forget.
type Exec struct{}

// Launch hands the command to the OS and returns as soon as it has
// started. The process is reaped in the background; its exit status is
// deliberately ignored.
func (Exec) Launch(path string, args []string) error {
	cmd := exec.Command(path, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", path, err)
	}
	go cmd.Wait()
	return nil
}
