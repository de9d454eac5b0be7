package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFiltering(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, WARN)

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	l.Errorf("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown 2")
	assert.Contains(t, out, "[ERROR] also shown")
}

func TestSetLevel(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := New(&buf, INFO)

	l.Debugf("before")
	l.SetLevel(DEBUG)
	l.Debugf("after")

	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "[DEBUG] after")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   DEBUG,
		"":        INFO,
		"Info":    INFO,
		"warning": WARN,
		"ERROR":   ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestDefaultLogger(t *testing.T) {
	l := Default()

	assert.Same(t, l, Default())
	assert.True(t, l.Enabled(INFO))
}
