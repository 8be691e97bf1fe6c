package main

import (
	"testing"
	"time"

	"subshift/internal/driver"
)

// Воркеры продолжают слать события и после того, как пользователь закрыл
// TUI; исход пакета должен прийти, даже когда буфер канала меньше их числа.
func TestAwaitBatchDrainsAbandonedEvents(t *testing.T) {
	events := make(chan driver.Event, 1)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		sink := driver.ChannelSink{Ch: events}
		for i := 0; i < 300; i++ {
			sink.Send(driver.Event{Path: "movie.srt", Stage: driver.StageShifting})
		}
		outcomeCh <- batchOutcome{}
		close(events)
	}()

	done := make(chan struct{})
	go func() {
		awaitBatch(events, outcomeCh)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("batch outcome never arrived: abandoned events were not drained")
	}
}
