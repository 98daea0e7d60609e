// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris
// +build aix darwin dragonfly freebsd linux netbsd openbsd solaris

package history

import (
	"os"
	"path"

	"golang.org/x/sys/unix"
)

// The history file is only readable by its owner.
func create(p string) (*os.File, error) {
	mask := unix.Umask(0o077)
	defer unix.Umask(mask)

	return os.Create(p)
}

func file(op func(string) (*os.File, error)) (*os.File, error) {
	return op(path.Join(os.Getenv("HOME"), name))
}
