//go:build !linux

package probe

import "errors"

func pinCurrentThread() error {
	return errors.New("thread pinning is not supported on this platform")
}
