package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Render(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
		want    string
	}{
		{"empty", 0, 0, "[          ] 0/0 (0%)"},
		{"half", 10, 5, "[=====     ] 5/10 (50%)"},
		{"full", 4, 4, "[==========] 4/4 (100%)"},
		{"overflow clamps", 4, 9, "[==========] 9/4 (100%)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := NewProgressBar(tt.total, 10, false)
			pb.Update(tt.current)
			assert.Equal(t, tt.want, pb.Render())
		})
	}
}

func TestProgressBar_DefaultWidthAndPrefix(t *testing.T) {
	pb := NewProgressBar(2, 0, false)
	pb.SetPrefix("N=10 ")
	pb.Increment()

	assert.Equal(t, 1, pb.Current())
	assert.Equal(t, 50, pb.Percentage())
	assert.Equal(t, "N=10 [=====     ] 1/2 (50%)", pb.Render())
}

func TestProgressReporter(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf, 10, false)

	p.LogSizeStart(10_000, 1, 1)
	for i := 1; i <= 4; i++ {
		p.LogRepetition(10_000, i, 4)
	}
	p.LogSizeComplete(sampleRecord())

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "\r"))
	assert.Contains(t, out, "N=10,000")
	assert.True(t, strings.HasSuffix(out, "4/4 (100%)\n"))
}

func TestProgressReporter_SkipsUnchangedPercentage(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf, 10, false)

	p.LogSizeStart(1_000_000, 1, 1)
	for i := 1; i <= 1000; i++ {
		p.LogRepetition(1_000_000, i, 1000)
	}

	assert.Equal(t, 101, strings.Count(buf.String(), "\r"))
}
