package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

type testTag struct{}

func (testTag) String() string { return "tagged" }

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		require.Equal(t, name, level.String())
	}

	level, err := ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, LevelDebug, level)

	_, err = ParseLevel("LOUD")
	require.ErrorIs(t, err, ErrInvalidLevel)

	var l Level
	require.NoError(t, l.UnmarshalText([]byte("warn")))
	require.Equal(t, LevelWarn, l)
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf)

	l.Debug(nil, "hidden")
	require.Empty(t, buf.String())

	l.Info(testTag{}, "shown", "k", 1)
	require.Contains(t, buf.String(), "level=INFO")
	require.Contains(t, buf.String(), "tag=tagged")
	require.Contains(t, buf.String(), "k=1")

	prev := l.SetLevel(LevelError)
	require.Equal(t, LevelInfo, prev)
	buf.Reset()
	l.Warn(nil, "hidden")
	require.Empty(t, buf.String())
}

func TestFatalExits(t *testing.T) {
	var buf bytes.Buffer
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = osExit }()

	NewJson(&buf).Fatal("arc", "boom")
	require.Equal(t, 1, code)
	require.Contains(t, buf.String(), `"level":"FATAL"`)
}

func TestNewByFormat(t *testing.T) {
	var buf bytes.Buffer
	for _, f := range []string{"text", "json", "tint"} {
		l, err := New(&buf, f)
		require.NoError(t, err)
		require.NotNil(t, l)
	}
	_, err := New(&buf, "xml")
	require.ErrorIs(t, err, ErrInvalidFormat)
}
