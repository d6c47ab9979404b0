package offline

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestEncode_Layout(t *testing.T) {
	plan := Encode(0, 64, 192)
	require.Len(t, plan, 3*EntrySize)
	assert.Equal(t, []byte{
		0x00, 0x00, 0x00, 0x00,
		0x40, 0x00, 0x00, 0x00,
		0xC0, 0x00, 0x00, 0x00,
	}, plan)
}

func TestEncode_Negative(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, Encode(-1))
}

func TestEncode_Empty(t *testing.T) {
	plan := Encode()
	assert.Empty(t, plan)
	assert.Equal(t, 0, New(plan).BufferCount())
}

func TestAppendEntries(t *testing.T) {
	prefix := []byte{0xDE, 0xAD}
	out := AppendEntries(prefix, binary.BigEndian, 1, 256)
	assert.Equal(t, []byte{0xDE, 0xAD, 0, 0, 0, 1, 0, 0, 1, 0}, out)

	assert.Equal(t, Encode(7, 9), AppendEntries(nil, nil, 7, 9), "nil order is little endian")
}

func TestLogger_PartialEntryWarning(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	New(append(Encode(0, 4), 0x00, 0x01))

	warn := logs.FilterMessage("plan has partial trailing entry").All()
	require.Len(t, warn, 1)
	assert.Equal(t, zapcore.WarnLevel, warn[0].Level)
	fields := warn[0].ContextMap()
	assert.EqualValues(t, 10, fields["length"])
	assert.EqualValues(t, 2, fields["trailing"])

	loaded := logs.FilterMessage("offline plan loaded").All()
	require.Len(t, loaded, 1)
	assert.EqualValues(t, 2, loaded[0].ContextMap()["buffers"])
}

func TestLogger_StrictDoesNotWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(prev) })

	_, err := NewWithConfig([]byte{1}, &Config{Strict: true})
	require.Error(t, err)
	assert.Equal(t, 0, logs.Len())
}

func TestSetLogger_NilRestoresNop(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	require.NotNil(t, Logger())
	assert.NotPanics(t, func() { New([]byte{1}) })
}

func TestLookup_NoAllocations(t *testing.T) {
	p := New(Encode(0, 64, 192, 512))

	allocs := testing.AllocsPerRun(1000, func() {
		for i := 0; i < p.BufferCount(); i++ {
			if _, err := p.OffsetForBuffer(nil, i); err != nil {
				t.Fatal(err)
			}
		}
		_ = p.MaximumMemorySize()
	})
	assert.Zero(t, allocs)
}

func BenchmarkOffsetForBuffer(b *testing.B) {
	offsets := make([]int32, 1024)
	for i := range offsets {
		offsets[i] = int32(i * 64)
	}
	p := New(Encode(offsets...))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := p.OffsetForBuffer(nil, i&1023); err != nil {
			b.Fatal(err)
		}
	}
}
