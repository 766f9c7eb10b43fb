package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/italianiroberto75-cyber/FRIGO/internal/engine"
)

// Prompter handles interactive confirmations and bulk-add progress.
type Prompter struct {
	startTime   time.Time
	writer      io.Writer
	reader      *NonBlockingReader
	progressBar *progressbar.ProgressBar
}

// NewCLIPrompter creates a new CLI prompter with the given reader and writer.
func NewCLIPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader:    NewNonBlockingReader(reader),
		writer:    writer,
		startTime: time.Now(),
	}
}

// Confirm asks a yes/no question. Anything but y or yes is a no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	if _, err := fmt.Fprintf(p.writer, "%s", FormatPrompt(question+" [y/N]")); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	answer, err := p.reader.ReadLine(ctx)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Progress advances the bulk-add progress bar. Its signature matches
// engine.ProgressFunc.
func (p *Prompter) Progress(done, total int) {
	if p.progressBar == nil {
		p.initProgressBar(total)
	}
	if err := p.progressBar.Set(done); err != nil {
		slog.Warn("Failed to update progress bar", "error", err)
	}
}

func (p *Prompter) initProgressBar(total int) {
	p.startTime = time.Now()
	p.progressBar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(p.writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Asking about shelf life...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(p.writer); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// ShowBatchSummary prints the outcome of a bulk add.
func (p *Prompter) ShowBatchSummary(summary *engine.BatchSummary) {
	if summary == nil {
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  • Items added: %d\n", len(summary.Added))
	if len(summary.Skipped) > 0 {
		fmt.Fprintf(&b, "  • Blank lines skipped: %d\n", len(summary.Skipped))
	}
	if summary.FallbackCount > 0 {
		fmt.Fprintf(&b, "  • Default shelf life used: %d\n", summary.FallbackCount)
	}
	fmt.Fprintf(&b, "  • Time taken: %s %s", summary.ProcessingTime.Round(time.Millisecond), RobotIcon)

	if _, err := fmt.Fprintln(p.writer, RenderBox("Fridge Stocked", b.String())); err != nil {
		slog.Warn("Failed to write summary box", "error", err)
	}
}
