package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harrison/searchbench/internal/models"
)

// ProgressBar represents an ASCII progress bar with color support
type ProgressBar struct {
	current     int
	total       int
	width       int
	enableColor bool
	prefix      string
	mu          sync.RWMutex
}

// NewProgressBar creates a new progress bar
func NewProgressBar(total, width int, enableColor bool) *ProgressBar {
	if width < 1 {
		width = 10
	}
	return &ProgressBar{
		total:       total,
		width:       width,
		enableColor: enableColor,
	}
}

// Reset starts the bar over with a new total
func (pb *ProgressBar) Reset(total int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = 0
	pb.total = total
}

// Update sets the current progress value
func (pb *ProgressBar) Update(current int) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current = current
}

// Increment increments the current progress by 1
func (pb *ProgressBar) Increment() {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.current++
}

// Current returns the current progress value
func (pb *ProgressBar) Current() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.current
}

// Percentage returns the progress percentage (0-100)
func (pb *ProgressBar) Percentage() int {
	pb.mu.RLock()
	defer pb.mu.RUnlock()
	return pb.percentage()
}

func (pb *ProgressBar) percentage() int {
	if pb.total == 0 {
		return 0
	}
	perc := (pb.current * 100) / pb.total
	return min(max(perc, 0), 100)
}

// SetPrefix sets a custom prefix for the progress bar
func (pb *ProgressBar) SetPrefix(prefix string) {
	pb.mu.Lock()
	defer pb.mu.Unlock()
	pb.prefix = prefix
}

// Render generates the ASCII progress bar string
func (pb *ProgressBar) Render() string {
	pb.mu.RLock()
	defer pb.mu.RUnlock()

	perc := pb.percentage()
	filled := min((perc*pb.width)/100, pb.width)

	bar := "[" + strings.Repeat("=", filled) + strings.Repeat(" ", pb.width-filled) + "]"
	result := fmt.Sprintf("%s%s %d/%d (%d%%)", pb.prefix, bar, pb.current, pb.total, perc)

	if pb.enableColor {
		if perc < 100 {
			result = color.New(color.FgCyan).Sprint(result)
		} else {
			result = color.New(color.FgGreen).Sprint(result)
		}
	}

	return result
}

// ProgressReporter redraws a ProgressBar in place for each benchmark repetition.
// It implements bench.Observer.
type ProgressReporter struct {
	writer io.Writer
	bar    *ProgressBar
	last   int
}

// NewProgressReporter creates a reporter drawing a bar of the given width to w.
func NewProgressReporter(w io.Writer, width int, enableColor bool) *ProgressReporter {
	return &ProgressReporter{
		writer: w,
		bar:    NewProgressBar(0, width, enableColor),
		last:   -1,
	}
}

// LogSizeStart resets the bar for a new size bucket.
func (p *ProgressReporter) LogSizeStart(size, index, total int) {
	p.bar.Reset(0)
	p.bar.SetPrefix(fmt.Sprintf("N=%-12s ", humanize.Comma(int64(size))))
	p.last = -1
}

// LogRepetition redraws the bar when the percentage changes.
func (p *ProgressReporter) LogRepetition(size, done, total int) {
	p.bar.Reset(total)
	p.bar.Update(done)

	if perc := p.bar.Percentage(); perc != p.last {
		p.last = perc
		fmt.Fprintf(p.writer, "\r%s", p.bar.Render())
	}
}

// LogSizeComplete ends the line of the finished bar.
func (p *ProgressReporter) LogSizeComplete(models.Record) {
	fmt.Fprintln(p.writer)
}
