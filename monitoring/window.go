package monitoring

// Handle identifies an on-screen window. Handles are only ever compared
// for equality; a handle can go stale at any moment once its window
// closes, so every query taking one must tolerate that.
type Handle uintptr

// WindowAPI is the narrow, read-only slice of the platform windowing
// API the tracker depends on.
type WindowAPI interface {
	// ForegroundWindow returns the handle of the window that currently
	// has input focus, or false if the platform reports none.
	ForegroundWindow() (Handle, bool)

	// WindowTitle returns the window's title text, decoded and with
	// trailing terminators trimmed. It returns false for windows with
	// no title and for handles that no longer resolve.
	WindowTitle(h Handle) (string, bool)

	// WindowOwnerPID returns the id of the process owning the window,
	// or false if the platform reports no owner.
	WindowOwnerPID(h Handle) (uint32, bool)
}
