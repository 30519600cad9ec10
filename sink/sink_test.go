package sink

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	s.Emit("first line")
	s.Emit("second line")

	assert.Equal(t, "first line\nsecond line\n", buf.String())
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	s := NewZapSink(zap.New(core))

	s.Emit("2024-05-01 09:30:00 | 进程ID: 4242 | 窗口标题: Notepad | 执行路径: /bin/notepad")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, "2024-05-01 09:30:00 | 进程ID: 4242 | 窗口标题: Notepad | 执行路径: /bin/notepad",
		entries[0].Message)
}
