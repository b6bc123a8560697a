//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package internal

import "golang.org/x/sys/unix"

// isatty reports whether fd refers to a terminal.
func isatty(fd int) bool {
	_, err := unix.IoctlGetTermios(fd, unix.TIOCGETA)
	return err == nil
}
