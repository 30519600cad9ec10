package monitoring

import (
	"github.com/shirou/gopsutil/process"
)

// ProcessRecord is what the index knows about one process at the time
// it was last refreshed.
type ProcessRecord struct {
	PID     uint32
	ExePath string
	// HasPath is false when the executable path could not be read,
	// e.g. under permission restrictions on system processes.
	HasPath bool
}

// processProber answers liveness and exe-path queries for a single pid.
// The production prober asks the OS through gopsutil; tests substitute
// scripted ones.
type processProber interface {
	probe(pid uint32) (ProcessRecord, bool)
}

type gopsutilProber struct{}

func (gopsutilProber) probe(pid uint32) (ProcessRecord, bool) {
	alive, err := process.PidExists(int32(pid))
	if err != nil || !alive {
		return ProcessRecord{}, false
	}

	rec := ProcessRecord{PID: pid}
	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return ProcessRecord{}, false
	}
	if exe, err := p.Exe(); err == nil && exe != "" {
		rec.ExePath = exe
		rec.HasPath = true
	}
	return rec, true
}

// ProcessIndex is a refreshable snapshot of process state. It is
// updated one pid at a time, so the polling hot path never pays for a
// full process-table rescan.
type ProcessIndex struct {
	prober processProber
	procs  map[uint32]ProcessRecord
}

// NewProcessIndex returns an empty index backed by OS process queries.
func NewProcessIndex() *ProcessIndex {
	return newProcessIndex(gopsutilProber{})
}

func newProcessIndex(p processProber) *ProcessIndex {
	return &ProcessIndex{
		prober: p,
		procs:  make(map[uint32]ProcessRecord),
	}
}

// RefreshOne updates the index's knowledge of exactly one pid. When the
// process is gone and removeIfDead is set, the pid is dropped from the
// index.
func (ix *ProcessIndex) RefreshOne(pid uint32, removeIfDead bool) {
	rec, alive := ix.prober.probe(pid)
	if !alive {
		if removeIfDead {
			delete(ix.procs, pid)
		}
		return
	}
	ix.procs[pid] = rec
}

// Lookup returns the indexed record for pid, if any.
func (ix *ProcessIndex) Lookup(pid uint32) (ProcessRecord, bool) {
	rec, ok := ix.procs[pid]
	return rec, ok
}
