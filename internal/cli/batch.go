package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/schollz/progressbar/v3"
)

// BatchFailure is one item of a batch that returned an error.
type BatchFailure struct {
	Err error
	ID  int64
}

// BatchResult reports the outcome of RunBatch.
type BatchResult struct {
	Succeeded []int64
	Failed    []BatchFailure
	// Skipped holds the items not attempted because ctx was canceled.
	Skipped []int64
}

// RunBatch calls action for each id in order, drawing a progress bar on w.
// A failing item does not stop the batch; cancellation of ctx does. An item
// whose action was cut short by the cancellation counts as skipped.
func RunBatch(ctx context.Context, w io.Writer, description string, ids []int64, action func(context.Context, int64) error) BatchResult {
	var result BatchResult

	bar := progressbar.NewOptions(len(ids),
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	for i, id := range ids {
		if ctx.Err() != nil {
			result.Skipped = append(result.Skipped, ids[i:]...)
			break
		}

		err := action(ctx, id)
		if err != nil && ctx.Err() != nil {
			slog.Debug("Batch item canceled", "id", id, "error", err)
			result.Skipped = append(result.Skipped, ids[i:]...)
			break
		}
		if err != nil {
			slog.Debug("Batch item failed", "id", id, "error", err)
			result.Failed = append(result.Failed, BatchFailure{ID: id, Err: err})
		} else {
			result.Succeeded = append(result.Succeeded, id)
		}

		if err := bar.Add(1); err != nil {
			slog.Warn("Failed to update progress bar", "error", err)
		}
	}

	return result
}

// Summary renders a one-line outcome of the batch.
func (r BatchResult) Summary(noun string) string {
	msg := fmt.Sprintf("%d %s succeeded, %d failed", len(r.Succeeded), noun, len(r.Failed))
	if len(r.Skipped) > 0 {
		msg += fmt.Sprintf(", %d skipped", len(r.Skipped))
	}
	if len(r.Failed) > 0 || len(r.Skipped) > 0 {
		return FormatWarning(msg)
	}
	return FormatSuccess(msg)
}
