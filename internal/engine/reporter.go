package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pngopt/internal/models"
	"pngopt/internal/settings"

	"github.com/dustin/go-humanize"
)

// Reporter is an Optimizer that only inspects its input and reports what
// would be processed. It stands in where no image pipeline is linked.
//
// Without a decoder it cannot tell animated GIFs from still ones, so with
// IgnoreAnimatedGifs set every .gif file is skipped.
type Reporter struct {
	Sink Sink
}

// NewReporter returns a Reporter writing to sink, or to the logger when nil.
func NewReporter(sink Sink) *Reporter {
	if sink == nil {
		sink = LogSink{}
	}
	return &Reporter{Sink: sink}
}

// OptimizeFiles implements Optimizer.
func (r *Reporter) OptimizeFiles(ctx context.Context, st models.Settings, paths []string) error {
	for _, line := range settings.Describe(st) {
		r.Sink.Notify(TextDebug, line)
	}

	var failed int
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}

		info, err := os.Stat(p)
		switch {
		case err != nil:
			failed++
			r.Sink.Notify(TextError, fmt.Sprintf("%s: %v", p, err))
			continue
		case info.IsDir():
			r.Sink.Notify(TextWarning, fmt.Sprintf("%s: is a directory, skipped", p))
			continue
		}

		if st.IgnoreAnimatedGifs && strings.EqualFold(filepath.Ext(p), ".gif") {
			r.Sink.Notify(TextInfo, fmt.Sprintf("%s (%s): GIFs ignored", p, humanize.Bytes(uint64(info.Size()))))
			continue
		}

		msg := fmt.Sprintf("%s (%s)", p, humanize.Bytes(uint64(info.Size())))
		if st.BackupOldPngFiles {
			msg += ", backup kept"
		}
		r.Sink.Notify(TextSuccess, msg)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(paths))
	}
	return nil
}
