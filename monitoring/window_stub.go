//go:build !windows
// +build !windows

package monitoring

// stubAPI reports no foreground window, ever. It keeps the module
// building on platforms without the Win32 windowing model; the tracker
// simply never observes a focus change.
type stubAPI struct{}

// NewWindowAPI returns a stub window API (focus tracking is
// Windows-only).
func NewWindowAPI() WindowAPI {
	return stubAPI{}
}

func (stubAPI) ForegroundWindow() (Handle, bool) { return 0, false }

func (stubAPI) WindowTitle(Handle) (string, bool) { return "", false }

func (stubAPI) WindowOwnerPID(Handle) (uint32, bool) { return 0, false }
