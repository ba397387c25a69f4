package bench

import "github.com/harrison/searchbench/internal/models"

// Observer receives progress notifications from a Harness run.
// Implementations must be cheap: LogRepetition is called inside the measured loop,
// between timed calls.
type Observer interface {
	LogSizeStart(size, index, total int)
	LogRepetition(size, done, total int)
	LogSizeComplete(record models.Record)
}

// NopObserver discards every notification.
type NopObserver struct{}

func (NopObserver) LogSizeStart(size, index, total int) {}
func (NopObserver) LogRepetition(size, done, total int) {}
func (NopObserver) LogSizeComplete(models.Record)       {}

// MultiObserver fans notifications out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) LogSizeStart(size, index, total int) {
	for _, o := range m {
		o.LogSizeStart(size, index, total)
	}
}

func (m MultiObserver) LogRepetition(size, done, total int) {
	for _, o := range m {
		o.LogRepetition(size, done, total)
	}
}

func (m MultiObserver) LogSizeComplete(record models.Record) {
	for _, o := range m {
		o.LogSizeComplete(record)
	}
}
