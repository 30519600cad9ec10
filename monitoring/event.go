package monitoring

import (
	"fmt"
	"time"
)

// Placeholders for fields that failed to resolve.
const (
	unknownTitle = "未知窗口"
	unknownPath  = "未知路径"
)

const timeLayout = "2006-01-02 15:04:05"

// Event is one observed focus change, resolved best-effort at
// observation time. Later process exits or title changes are not
// reflected in an already-built event.
type Event struct {
	Time    time.Time
	PID     uint32
	Title   string
	ExePath string
	// Alive is false when the owning process had already exited by the
	// time the process index was consulted. Dead events carry only the
	// timestamp and pid.
	Alive bool
}

// Line renders the event in the single-line sink schema.
func (e Event) Line() string {
	ts := e.Time.Format(timeLayout)
	if !e.Alive {
		return fmt.Sprintf("%s | 进程ID: %d 不存在或已结束", ts, e.PID)
	}
	return fmt.Sprintf("%s | 进程ID: %d | 窗口标题: %s | 执行路径: %s",
		ts, e.PID, e.Title, e.ExePath)
}
