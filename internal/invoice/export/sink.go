package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Sink consumes a completed artifact. Share/save and print sinks both
// receive identical bytes.
type Sink interface {
	Deliver(ctx context.Context, artifact Artifact) error
}

// FileSink writes artifacts into a destination directory. The write goes to
// a temporary file first and only renames into place on success, so an
// abandoned export never leaves a partial file at the final path.
type FileSink struct {
	Dir string
}

func (s FileSink) Deliver(ctx context.Context, artifact Artifact) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("document %d: %w: %v", artifact.Number, ErrExportFailed, err)
	}

	tmp, err := os.CreateTemp(s.Dir, ".export-*")
	if err != nil {
		return fmt.Errorf("document %d: %w: %v", artifact.Number, ErrExportFailed, err)
	}
	tmpPath := tmp.Name()

	_, werr := tmp.Write(artifact.Bytes)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("document %d: %w", artifact.Number, ErrExportFailed)
	}

	if err := ctx.Err(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	final := filepath.Join(s.Dir, artifact.Filename)
	if err := os.Rename(tmpPath, final); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("document %d: %w: %v", artifact.Number, ErrExportFailed, err)
	}
	return nil
}

// WriterSink streams the artifact to an already-open destination, used for
// print spooling and HTTP downloads.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Deliver(ctx context.Context, artifact Artifact) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.W.Write(artifact.Bytes); err != nil {
		return fmt.Errorf("document %d: %w: %v", artifact.Number, ErrExportFailed, err)
	}
	return nil
}
