package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/document"
	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
	"github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/layout"
)

func sampleDocument(lines int) (document.Document, *layout.Layout) {
	inv := &domain.Invoice{
		Number:   12,
		Kind:     domain.KindInvoice,
		Currency: "USD",
	}
	for i := 0; i < lines; i++ {
		inv.Items = append(inv.Items, domain.LineItem{Name: "Work", Price: 25, Quantity: 1})
	}
	doc := document.Build(inv, nil, nil, "$")
	return doc, layout.Compose(doc)
}

func newTestExporter() *Exporter {
	return NewExporter(Params{Log: zap.NewNop()})
}

func TestFilename(t *testing.T) {
	if got := Filename(domain.KindInvoice, 12); got != "Invoice-12.pdf" {
		t.Fatalf("filename = %q", got)
	}
	if got := Filename(domain.KindEstimate, 3); got != "Estimate-3.pdf" {
		t.Fatalf("filename = %q", got)
	}
}

func TestRenderPDFProducesArtifact(t *testing.T) {
	doc, l := sampleDocument(3)

	artifact, err := RenderPDF(doc, l)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(artifact.Bytes) == 0 {
		t.Fatal("artifact has no bytes")
	}
	if artifact.Filename != "Invoice-12.pdf" {
		t.Fatalf("filename = %q", artifact.Filename)
	}
}

func TestRenderPDFRejectsOverflow(t *testing.T) {
	doc, l := sampleDocument(30)

	_, err := RenderPDF(doc, l)
	if !errors.Is(err, ErrPageOverflow) {
		t.Fatalf("err = %v, want ErrPageOverflow", err)
	}
}

func TestFileSinkWritesAtomically(t *testing.T) {
	dir := t.TempDir()
	doc, l := sampleDocument(2)
	artifact, err := RenderPDF(doc, l)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	sink := FileSink{Dir: dir}
	if err := sink.Deliver(context.Background(), artifact); err != nil {
		t.Fatalf("deliver: %v", err)
	}

	final := filepath.Join(dir, artifact.Filename)
	info, err := os.Stat(final)
	if err != nil {
		t.Fatalf("final artifact missing: %v", err)
	}
	if info.Size() != int64(len(artifact.Bytes)) {
		t.Fatalf("final size = %d, want %d", info.Size(), len(artifact.Bytes))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("leftover files in export dir: %d entries", len(entries))
	}
}

func TestFileSinkCancelledLeavesNoFile(t *testing.T) {
	dir := t.TempDir()
	doc, l := sampleDocument(2)
	artifact, err := RenderPDF(doc, l)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := FileSink{Dir: dir}
	if err := sink.Deliver(ctx, artifact); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("abandoned export left %d files behind", len(entries))
	}
}

func TestExportAsyncReportsResult(t *testing.T) {
	dir := t.TempDir()
	doc, l := sampleDocument(1)

	e := newTestExporter()
	result := <-e.ExportAsync(context.Background(), doc, l, FileSink{Dir: dir})
	if result.Err != nil {
		t.Fatalf("export: %v", result.Err)
	}
	if _, err := os.Stat(filepath.Join(dir, result.Artifact.Filename)); err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
}

func TestExportCancelledBeforeStart(t *testing.T) {
	dir := t.TempDir()
	doc, l := sampleDocument(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestExporter()
	if _, err := e.Export(ctx, doc, l, FileSink{Dir: dir}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestExportsSerializePerDocument(t *testing.T) {
	dir := t.TempDir()
	doc, l := sampleDocument(1)
	e := newTestExporter()

	done := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_, err := e.Export(context.Background(), doc, l, FileSink{Dir: dir})
			done <- err
		}()
	}
	for i := 0; i < 2; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent export: %v", err)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly the final artifact, got %d entries", len(entries))
	}
}

func TestExporterDropsIdleLocks(t *testing.T) {
	dir := t.TempDir()
	e := newTestExporter()

	done := make(chan error, 6)
	for number := int64(1); number <= 3; number++ {
		doc, l := sampleDocument(1)
		doc.Number = number
		for i := 0; i < 2; i++ {
			go func() {
				_, err := e.Export(context.Background(), doc, l, FileSink{Dir: dir})
				done <- err
			}()
		}
	}
	for i := 0; i < 6; i++ {
		if err := <-done; err != nil {
			t.Fatalf("export: %v", err)
		}
	}

	e.mu.Lock()
	remaining := len(e.locks)
	e.mu.Unlock()
	if remaining != 0 {
		t.Fatalf("lock map holds %d entries after all exports finished", remaining)
	}
}
