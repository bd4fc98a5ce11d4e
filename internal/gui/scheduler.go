package gui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// TickerScheduler drives recurring callbacks from a time.Ticker and runs each
// of them on the UI goroutine, waiting for one to finish before the next.
type TickerScheduler struct {
	runOnUI func(func())
}

func NewTickerScheduler() *TickerScheduler {
	return &TickerScheduler{runOnUI: fyne.DoAndWait}
}

func (s *TickerScheduler) Every(interval time.Duration, fn func()) func() {
	stop := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.runOnUI(func() {
					// cancel may have run on the UI goroutine while this tick was queued
					select {
					case <-stop:
						return
					default:
					}
					fn()
				})
			}
		}
	}()

	return func() {
		once.Do(func() { close(stop) })
	}
}
