package monitoring

import (
	"testing"
)

func TestRefreshAndLookup(t *testing.T) {
	prober := fakeProber{procs: map[uint32]ProcessRecord{
		100: {PID: 100, ExePath: `C:\Windows\notepad.exe`, HasPath: true},
	}}
	ix := newProcessIndex(prober)

	if _, ok := ix.Lookup(100); ok {
		t.Fatal("Expected empty index before refresh")
	}

	ix.RefreshOne(100, true)
	rec, ok := ix.Lookup(100)
	if !ok {
		t.Fatal("Expected record after refresh")
	}
	if rec.ExePath != `C:\Windows\notepad.exe` || !rec.HasPath {
		t.Errorf("Unexpected record: %+v", rec)
	}
}

func TestRefreshRemovesDead(t *testing.T) {
	prober := fakeProber{procs: map[uint32]ProcessRecord{
		100: {PID: 100, ExePath: "/bin/app", HasPath: true},
	}}
	ix := newProcessIndex(prober)

	ix.RefreshOne(100, true)
	if _, ok := ix.Lookup(100); !ok {
		t.Fatal("Expected record after refresh")
	}

	// Process exits.
	delete(prober.procs, 100)

	ix.RefreshOne(100, true)
	if _, ok := ix.Lookup(100); ok {
		t.Error("Expected dead pid to be dropped from the index")
	}
}

func TestRefreshKeepsDeadWhenNotRemoving(t *testing.T) {
	prober := fakeProber{procs: map[uint32]ProcessRecord{
		100: {PID: 100, ExePath: "/bin/app", HasPath: true},
	}}
	ix := newProcessIndex(prober)

	ix.RefreshOne(100, true)
	delete(prober.procs, 100)

	ix.RefreshOne(100, false)
	if _, ok := ix.Lookup(100); !ok {
		t.Error("Expected stale record to survive refresh without removeIfDead")
	}
}

func TestRefreshUnknownPath(t *testing.T) {
	prober := fakeProber{procs: map[uint32]ProcessRecord{
		// Alive but exe path unreadable.
		200: {PID: 200},
	}}
	ix := newProcessIndex(prober)

	ix.RefreshOne(200, true)
	rec, ok := ix.Lookup(200)
	if !ok {
		t.Fatal("Expected record for live process")
	}
	if rec.HasPath {
		t.Errorf("Expected HasPath=false, got %+v", rec)
	}
}

func TestRefreshMissingPID(t *testing.T) {
	ix := newProcessIndex(fakeProber{})

	// Refreshing a pid that never existed is a no-op.
	ix.RefreshOne(31337, true)
	if _, ok := ix.Lookup(31337); ok {
		t.Error("Expected no record for unknown pid")
	}
}
