package window

import "fmt"

func errInvalidBlockSize(n int) error {
	return fmt.Errorf("window: block size must be even and > 0: %d", n)
}

func errUnknownWindow(name string) error {
	return fmt.Errorf("window: unknown window type: %q", name)
}

func errInsufficientHops(t Type, nHops int) error {
	return fmt.Errorf("window: %s window requires nHops >= %d: got %d", t, MinHops(t), nHops)
}
