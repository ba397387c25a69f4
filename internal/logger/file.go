package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/harrison/searchbench/internal/filelock"
	"github.com/harrison/searchbench/internal/models"
)

// FileLogger logs benchmark events to a timestamped per-run log file and
// maintains a latest.log symlink pointing to the most recent run.
// It is thread-safe and supports log level filtering.
type FileLogger struct {
	logDir   string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLoggerWithDir creates a new FileLogger with default log level "info".
func NewFileLoggerWithDir(logDir string) (*FileLogger, error) {
	return NewFileLoggerWithDirAndLevel(logDir, "info")
}

// NewFileLoggerWithDirAndLevel creates a new FileLogger with a custom log directory and log level.
func NewFileLoggerWithDirAndLevel(logDir string, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Generate timestamped filename: run-YYYYMMDD-HHMMSS.log
	ts := time.Now().Format("20060102-150405")
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s.log", ts))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := updateLatestLink(logDir, runFile); err != nil {
		file.Close()
		return nil, err
	}

	logger := &FileLogger{
		logDir:   logDir,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	logger.writeRunLog("=== searchbench Run Log ===\n")
	logger.writeRunLog(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))

	return logger, nil
}

// updateLatestLink points logDir/latest.log at runFile.
// Concurrent runs sharing a log directory serialize on logDir/.latest.lock.
func updateLatestLink(logDir, runFile string) error {
	lock := filelock.NewFileLock(filepath.Join(logDir, ".latest.lock"))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	symlinkPath := filepath.Join(logDir, "latest.log")

	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			return fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}

	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// RunFile returns the path of the current run log.
func (fl *FileLogger) RunFile() string {
	return fl.runFile
}

// shouldLog checks if a message at the given level should be logged.
func (fl *FileLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(fl.logLevel)
}

func (fl *FileLogger) LogTrace(message string) { fl.logWithLevel("TRACE", message) }
func (fl *FileLogger) LogDebug(message string) { fl.logWithLevel("DEBUG", message) }
func (fl *FileLogger) LogInfo(message string)  { fl.logWithLevel("INFO", message) }
func (fl *FileLogger) LogWarn(message string)  { fl.logWithLevel("WARN", message) }
func (fl *FileLogger) LogError(message string) { fl.logWithLevel("ERROR", message) }

func (fl *FileLogger) logWithLevel(level string, message string) {
	if !fl.shouldLog(strings.ToLower(level)) {
		return
	}
	fl.writeRunLog(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

// LogSizeStart logs the start of a size bucket at INFO level.
func (fl *FileLogger) LogSizeStart(size, index, total int) {
	fl.LogInfo(fmt.Sprintf("Measuring N=%d (%d/%d)", size, index, total))
}

// LogRepetition is a no-op: per-repetition lines would dwarf the run log.
func (fl *FileLogger) LogRepetition(size, done, total int) {}

// LogSizeComplete logs the aggregated record at INFO level.
func (fl *FileLogger) LogSizeComplete(record models.Record) {
	fl.LogInfo(formatRecord(record))
}

// LogSummary writes the run summary and the full record table at INFO level.
func (fl *FileLogger) LogSummary(report *models.Report) {
	if report == nil || !fl.shouldLog("info") {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n=== Summary ===\n%s\n", summaryLine(report))
	for _, r := range report.Records {
		fmt.Fprintf(&b, "  N=%d linear=%s/%.0f binary=%s/%.0f speedup=%s\n",
			r.Size, r.LinearTime, r.LinearSteps, r.BinaryTime, r.BinarySteps, formatSpeedup(r))
	}
	fl.writeRunLog(b.String())
}

// Close flushes and closes the run log file.
func (fl *FileLogger) Close() error {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		if err := fl.runLog.Sync(); err != nil {
			return fmt.Errorf("failed to sync run log: %w", err)
		}
		if err := fl.runLog.Close(); err != nil {
			return fmt.Errorf("failed to close run log: %w", err)
		}
		fl.runLog = nil
	}

	return nil
}

// writeRunLog is a thread-safe helper to write to the run log file.
func (fl *FileLogger) writeRunLog(message string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()

	if fl.runLog != nil {
		fl.runLog.WriteString(message)
		fl.runLog.Sync()
	}
}
