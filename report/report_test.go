package report

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/wippyai/memplan"
)

func TestZap_LogsAtErrorLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := Zap(zap.New(core))

	r.Report("buffer index %d is outside range 0 to %d", 3, 3)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "buffer index 3 is outside range 0 to 3", entries[0].Message)
}

func TestZap_NilLogger(t *testing.T) {
	r := Zap(nil)
	require.NotNil(t, r)
	assert.NotPanics(t, func() { r.Report("ignored %d", 1) })
}

func TestCapture(t *testing.T) {
	c := NewCapture()
	assert.Equal(t, "", c.Last())
	assert.Equal(t, 0, c.Len())

	c.Report("Unsupported operation")
	c.Report("buffer index %d is outside range 0 to %d", 5, 2)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{
		"Unsupported operation",
		"buffer index 5 is outside range 0 to 2",
	}, c.Messages())
	assert.Equal(t, "buffer index 5 is outside range 0 to 2", c.Last())

	msgs := c.Messages()
	msgs[0] = "mutated"
	assert.Equal(t, "Unsupported operation", c.Messages()[0], "Messages must return a copy")

	c.Reset()
	assert.Equal(t, 0, c.Len())
}

func TestCapture_Concurrent(t *testing.T) {
	c := NewCapture()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				c.Report("worker %d msg %d", i, j)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16*50, c.Len())
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard.Report("%s", "nothing") })
}

func TestMulti(t *testing.T) {
	a, b := NewCapture(), NewCapture()
	var fn []string
	r := Multi(a, nil, b, memplan.ReporterFunc(func(format string, args ...any) {
		fn = append(fn, fmt.Sprintf(format, args...))
	}))

	r.Report("index %d", 4)

	assert.Equal(t, []string{"index 4"}, a.Messages())
	assert.Equal(t, []string{"index 4"}, b.Messages())
	assert.Equal(t, []string{"index 4"}, fn)
}

func TestMulti_Empty(t *testing.T) {
	assert.NotPanics(t, func() { Multi().Report("x") })
	assert.NotPanics(t, func() { Multi(nil, nil).Report("x") })
}
