// Package logger provides logging implementations for searchbench runs.
//
// The logger package offers leveled logging of benchmark progress at the size
// and run level. Implementations are thread-safe and support various output
// destinations (console, file). Every logger doubles as a bench.Observer.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/harrison/searchbench/internal/models"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger is the logging surface used by the commands.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogInfo(message string)
	LogWarn(message string)
	LogError(message string)
	LogSizeStart(size, index, total int)
	LogRepetition(size, done, total int)
	LogSizeComplete(record models.Record)
	LogSummary(report *models.Report)
}

// ConsoleLogger logs benchmark progress to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// It supports log level filtering to control message verbosity.
// Color output is automatically enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// SetColor overrides terminal detection.
func (cl *ConsoleLogger) SetColor(enabled bool) {
	cl.mutex.Lock()
	defer cl.mutex.Unlock()
	cl.colorOutput = enabled
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// color.NoColor is false only for a TTY without NO_COLOR set
		return !color.NoColor
	}

	return false
}

// normalizeLogLevel converts a log level string to lowercase and validates it.
// Returns "info" as default for empty or invalid levels.
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "trace", "debug", "info", "warn", "error":
		return normalized
	}
	return "info"
}

// logLevelToInt converts a log level string to its numeric value.
func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// shouldLog checks if a message at the given level should be logged.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

// LogTrace logs a trace-level message (most verbose).
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogInfo logs an info-level message.
func (cl *ConsoleLogger) LogInfo(message string) {
	cl.logWithLevel("INFO", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

// logWithLevel writes "[HH:MM:SS] [LEVEL] message" if filtering allows it.
func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, colorLevel(level), message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func colorLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

// LogSizeStart logs the start of a size bucket at INFO level.
// Format: "[HH:MM:SS] Measuring N=10,000 (1/4)"
func (cl *ConsoleLogger) LogSizeStart(size, index, total int) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	n := "N=" + humanize.Comma(int64(size))
	if cl.colorOutput {
		n = color.New(color.Bold).Sprint(n)
	}
	fmt.Fprintf(cl.writer, "[%s] Measuring %s (%d/%d)\n", timestamp(), n, index, total)
}

// LogRepetition logs each completed repetition at TRACE level.
func (cl *ConsoleLogger) LogRepetition(size, done, total int) {
	if !cl.shouldLog("trace") {
		return
	}
	cl.LogTrace(fmt.Sprintf("N=%s repetition %d/%d", humanize.Comma(int64(size)), done, total))
}

// LogSizeComplete logs the aggregated record of a size bucket at INFO level.
// Format: "[HH:MM:SS] N=10,000 complete: linear 0.000437s (5,110 steps), binary 0.000003s (12 steps), speedup 146x"
func (cl *ConsoleLogger) LogSizeComplete(record models.Record) {
	if cl.writer == nil || !cl.shouldLog("info") {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	var body string
	if cl.colorOutput {
		body = formatColorizedRecord(record, newColorScheme())
	} else {
		body = formatRecord(record)
	}
	fmt.Fprintf(cl.writer, "[%s] %s\n", timestamp(), body)
}

// LogSummary logs the end of a run at INFO level.
func (cl *ConsoleLogger) LogSummary(report *models.Report) {
	if report == nil {
		return
	}
	cl.LogInfo(summaryLine(report))
}

// timestamp returns the current time formatted as "15:04:05" (HH:MM:SS).
func timestamp() string {
	return time.Now().Format("15:04:05")
}

func formatRecord(r models.Record) string {
	return fmt.Sprintf("N=%s complete: linear %.6fs (%s steps), binary %.6fs (%s steps), speedup %s",
		humanize.Comma(int64(r.Size)),
		r.LinearTime.Seconds(), humanize.Commaf(roundSteps(r.LinearSteps)),
		r.BinaryTime.Seconds(), humanize.Commaf(roundSteps(r.BinarySteps)),
		formatSpeedup(r))
}

func summaryLine(report *models.Report) string {
	return fmt.Sprintf("Run %s finished: %d size(s), %d repetition(s) each, seed %d, took %s",
		report.RunID, len(report.Records), report.Repetitions, report.Seed, formatDuration(report.Duration))
}

func roundSteps(v float64) float64 {
	return float64(int64(v + 0.5))
}

func formatSpeedup(r models.Record) string {
	if r.Unbounded() {
		return "∞x"
	}
	return humanize.Comma(int64(r.Speedup+0.5)) + "x"
}

// formatDuration converts a time.Duration to a human-readable string.
// Examples: "850ms", "5s", "1m30s", "2h15m"
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Hour:
		hours := d / time.Hour
		minutes := (d % time.Hour) / time.Minute
		if minutes == 0 {
			return fmt.Sprintf("%dh", hours)
		}
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case d >= time.Minute:
		minutes := d / time.Minute
		seconds := (d % time.Minute) / time.Second
		if seconds == 0 {
			return fmt.Sprintf("%dm", minutes)
		}
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case d >= time.Second:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	default:
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
}

// NoOpLogger is a Logger implementation that discards all log messages.
type NoOpLogger struct{}

// NewNoOpLogger creates a NoOpLogger instance.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (n *NoOpLogger) LogTrace(string)                     {}
func (n *NoOpLogger) LogDebug(string)                     {}
func (n *NoOpLogger) LogInfo(string)                      {}
func (n *NoOpLogger) LogWarn(string)                      {}
func (n *NoOpLogger) LogError(string)                     {}
func (n *NoOpLogger) LogSizeStart(size, index, total int) {}
func (n *NoOpLogger) LogRepetition(size, done, total int) {}
func (n *NoOpLogger) LogSizeComplete(models.Record)       {}
func (n *NoOpLogger) LogSummary(*models.Report)           {}

// MultiLogger forwards every call to each of its loggers.
type MultiLogger []Logger

func (m MultiLogger) LogTrace(msg string) {
	for _, l := range m {
		l.LogTrace(msg)
	}
}

func (m MultiLogger) LogDebug(msg string) {
	for _, l := range m {
		l.LogDebug(msg)
	}
}

func (m MultiLogger) LogInfo(msg string) {
	for _, l := range m {
		l.LogInfo(msg)
	}
}

func (m MultiLogger) LogWarn(msg string) {
	for _, l := range m {
		l.LogWarn(msg)
	}
}

func (m MultiLogger) LogError(msg string) {
	for _, l := range m {
		l.LogError(msg)
	}
}

func (m MultiLogger) LogSizeStart(size, index, total int) {
	for _, l := range m {
		l.LogSizeStart(size, index, total)
	}
}

func (m MultiLogger) LogRepetition(size, done, total int) {
	for _, l := range m {
		l.LogRepetition(size, done, total)
	}
}

func (m MultiLogger) LogSizeComplete(record models.Record) {
	for _, l := range m {
		l.LogSizeComplete(record)
	}
}

func (m MultiLogger) LogSummary(report *models.Report) {
	for _, l := range m {
		l.LogSummary(report)
	}
}
