//go:build !unix

package terminal

import "fmt"

func newANSISurface() (Surface, error) {
	return nil, fmt.Errorf("terminal backend %q: %w", BackendANSI, ErrUnsupported)
}
