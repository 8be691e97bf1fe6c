package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"subshift/internal/driver"
	"subshift/internal/ui"
)

type batchOutcome struct {
	results []driver.BatchFileResult
	err     error
}

func runBatchWithUI(ctx context.Context, title string, files []string, req *driver.BatchRequest) ([]driver.BatchFileResult, error) {
	if req == nil {
		return nil, fmt.Errorf("missing batch request")
	}
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan batchOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.ShiftDir(ctx, &reqCopy)
		outcomeCh <- batchOutcome{results: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := awaitBatch(events, outcomeCh)
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}

// awaitBatch дожидается исхода пакета, продолжая вычитывать события: после
// выхода из TUI канал больше никто не читает, и без дренажа воркеры встали
// бы на заполненном буфере.
func awaitBatch(events <-chan driver.Event, outcomeCh <-chan batchOutcome) batchOutcome {
	go func() {
		for range events {
		}
	}()
	return <-outcomeCh
}
