//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd

package internal

// isatty always reports false. Output on these platforms is line-flushed only
// when configured explicitly.
func isatty(fd int) bool {
	return false
}
