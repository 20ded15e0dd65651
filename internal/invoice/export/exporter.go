package export

import (
	"context"
	"sync"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/layout"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Result reports one finished export back to the caller.
type Result struct {
	Artifact Artifact
	Err      error
}

// Exporter runs exports off the caller goroutine and serializes exports of
// the same document number so two runs never race on one destination file.
type Exporter struct {
	log *zap.Logger

	mu    sync.Mutex
	locks map[int64]*numberLock
}

// numberLock is a reference-counted mutex; the last release removes it from
// the map so the map stays bounded by in-flight exports.
type numberLock struct {
	sync.Mutex
	refs int
}

type Params struct {
	fx.In

	Log *zap.Logger
}

func NewExporter(p Params) *Exporter {
	return &Exporter{
		log:   p.Log.Named("invoice.export"),
		locks: make(map[int64]*numberLock),
	}
}

// Export renders and delivers synchronously under the per-document lock.
func (e *Exporter) Export(ctx context.Context, doc document.Document, l *layout.Layout, sink Sink) (Artifact, error) {
	lock := e.acquire(doc.Number)
	defer e.release(doc.Number, lock)

	if err := ctx.Err(); err != nil {
		return Artifact{}, err
	}

	artifact, err := RenderPDF(doc, l)
	if err != nil {
		e.log.Warn("render failed", zap.Int64("number", doc.Number), zap.Error(err))
		return Artifact{}, err
	}
	if err := sink.Deliver(ctx, artifact); err != nil {
		e.log.Warn("delivery failed", zap.Int64("number", doc.Number), zap.Error(err))
		return Artifact{}, err
	}

	e.log.Info("document exported",
		zap.Int64("number", doc.Number),
		zap.String("filename", artifact.Filename),
		zap.Int("bytes", len(artifact.Bytes)),
	)
	return artifact, nil
}

// ExportAsync runs Export on its own goroutine and reports over the returned
// channel. The caller may abandon the channel; cancellation of ctx stops the
// delivery before anything reaches the final destination path.
func (e *Exporter) ExportAsync(ctx context.Context, doc document.Document, l *layout.Layout, sink Sink) <-chan Result {
	out := make(chan Result, 1)
	go func() {
		defer close(out)
		artifact, err := e.Export(ctx, doc, l, sink)
		out <- Result{Artifact: artifact, Err: err}
	}()
	return out
}

func (e *Exporter) acquire(number int64) *numberLock {
	e.mu.Lock()
	lock, ok := e.locks[number]
	if !ok {
		lock = &numberLock{}
		e.locks[number] = lock
	}
	lock.refs++
	e.mu.Unlock()

	lock.Lock()
	return lock
}

func (e *Exporter) release(number int64, lock *numberLock) {
	lock.Unlock()

	e.mu.Lock()
	lock.refs--
	if lock.refs == 0 {
		delete(e.locks, number)
	}
	e.mu.Unlock()
}

var Module = fx.Module("invoice.export",
	fx.Provide(NewExporter),
)
