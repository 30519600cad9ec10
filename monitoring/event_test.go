package monitoring

import (
	"testing"
	"time"
)

func TestLiveEventLine(t *testing.T) {
	ev := Event{
		Time:    time.Date(2024, 5, 1, 9, 30, 0, 0, time.Local),
		PID:     4242,
		Title:   "Notepad",
		ExePath: "/bin/notepad",
		Alive:   true,
	}

	want := "2024-05-01 09:30:00 | 进程ID: 4242 | 窗口标题: Notepad | 执行路径: /bin/notepad"
	if got := ev.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestDeadEventLine(t *testing.T) {
	ev := Event{
		Time: time.Date(2024, 5, 1, 23, 59, 59, 0, time.Local),
		PID:  917,
	}

	want := "2024-05-01 23:59:59 | 进程ID: 917 不存在或已结束"
	if got := ev.Line(); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}
