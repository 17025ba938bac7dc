package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]LogLevel{
		"trace":   TRACE,
		"DEBUG":   DEBUG,
		"":        INFO,
		" warn ":  WARN,
		"warning": WARN,
		"Error":   ERROR,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, "уровень %q", in)
		assert.Equal(t, want, got, "уровень %q", in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: WARN, Console: &buf})
	defer Configure(DefaultOptions())

	l, err := NewLogger("test")
	require.NoError(t, err)

	l.Info("не должно попасть")
	l.Warn("предупреждение %d", 1)
	l.Error("ошибка")

	out := buf.String()
	assert.NotContains(t, out, "не должно попасть")
	assert.Contains(t, out, "[WARN] [test] предупреждение 1")
	assert.Contains(t, out, "[ERROR] [test] ошибка")
	assert.Equal(t, "test", l.Component())
}

func TestLoggerWritesFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	Configure(Options{Dir: dir, ToFile: true, ConsoleLevel: ERROR, FileLevel: DEBUG, Console: &buf})
	defer Configure(DefaultOptions())

	l, err := NewLogger("filetest")
	require.NoError(t, err)
	l.Debug("в файл")
	require.NoError(t, l.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "filetest_*.log"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "[DEBUG] [filetest] в файл")
	assert.Empty(t, buf.String(), "DEBUG не должен попасть в консоль с уровнем ERROR")
}

func TestLoggerManager(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{ConsoleLevel: INFO, Console: &buf})
	defer Configure(DefaultOptions())

	lm := &LoggerManager{loggers: make(map[string]*Logger)}

	a := lm.Logger(ComponentWorld)
	assert.Same(t, a, lm.Logger(ComponentWorld), "менеджер должен кешировать логгеры")
	assert.NotSame(t, a, lm.Logger(ComponentAPI))
	assert.Equal(t, ComponentWorld, a.Component())

	a.Info("мир готов")
	assert.Contains(t, buf.String(), "[INFO] [world] мир готов")

	require.NoError(t, lm.CloseAll())
	assert.NotSame(t, a, lm.Logger(ComponentWorld), "после CloseAll логгер создаётся заново")
}

func TestLoggerManagerFileFallback(t *testing.T) {
	// Файл на месте директории логов не даёт открыть файл компонента
	dir := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(dir, nil, 0644))

	var buf bytes.Buffer
	Configure(Options{Dir: dir, ToFile: true, ConsoleLevel: INFO, FileLevel: DEBUG, Console: &buf})
	defer Configure(DefaultOptions())

	lm := &LoggerManager{loggers: make(map[string]*Logger)}
	l := lm.Logger(ComponentAPI)
	require.NotNil(t, l)

	l.Info("только консоль")
	assert.Contains(t, buf.String(), "[INFO] [api] только консоль")
	require.NoError(t, lm.CloseAll())
}
