package tmux

import "fmt"

// SetBuffer stores data in the named paste buffer, creating it if needed.
func SetBuffer(socketPath, name, data string) error {
	args := []string{"set-buffer"}
	if name != "" {
		args = append(args, "-b", name)
	}
	args = append(args, "--", data)
	if err := run(socketPath, args...); err != nil {
		return fmt.Errorf("failed to set buffer %q: %w", name, err)
	}
	return nil
}
