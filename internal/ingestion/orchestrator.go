// Package ingestion composes document decoding, the scan heuristic, page
// rasterization, and OCR into a single file-to-text operation with a typed
// error taxonomy. The orchestrator is an explicit state machine decoupled
// from any presentation state: events in, state snapshots out.
package ingestion

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/cv-optimizer/internal/document"
)

// State is the orchestrator's phase within one ingestion attempt.
type State string

// Ingestion states. Terminal states are StateDone and StateFailed; StateIdle
// is re-entered only by Clear.
const (
	StateIdle       State = "idle"
	StateExtracting State = "extracting"
	StateScanning   State = "scanning"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Snapshot is an immutable view of the orchestrator's state. Text and
// Warnings are populated only in StateDone, Err only in StateFailed.
type Snapshot struct {
	State    State
	Attempt  uuid.UUID
	Text     string
	Warnings []string
	Err      *Error
}

// Rasterizer renders PDF pages to encoded page images.
type Rasterizer interface {
	Rasterize(ctx context.Context, data []byte, maxPages int) ([]document.PageImage, error)
}

// TextRecognizer reconstructs text from ordered page images.
type TextRecognizer interface {
	ExtractText(ctx context.Context, pages []document.PageImage) (string, error)
}

// Orchestrator runs the file-to-text pipeline. Each Ingest call is one
// attempt with its own generation token; a stale, slower-finishing attempt
// can never overwrite the state established by a newer one.
type Orchestrator struct {
	extract    func(document.SourceDocument) (document.ExtractionResult, error)
	rasterizer Rasterizer
	recognizer TextRecognizer
	maxPages   int

	mu      sync.Mutex
	attempt uuid.UUID
	current Snapshot
}

// NewOrchestrator creates an Orchestrator using the package-level document
// decoder and the given rasterizer and recognizer.
func NewOrchestrator(rasterizer Rasterizer, recognizer TextRecognizer) *Orchestrator {
	return &Orchestrator{
		extract:    document.Extract,
		rasterizer: rasterizer,
		recognizer: recognizer,
		maxPages:   document.MaxOCRPages,
		current:    Snapshot{State: StateIdle},
	}
}

// Current returns the latest published snapshot.
func (o *Orchestrator) Current() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.current
}

// Clear cancels the observable state of any in-flight or completed attempt
// and resets to Idle. Derived state (text, errors) is discarded
// unconditionally; a cleared attempt's late result is dropped.
func (o *Orchestrator) Clear() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.attempt = uuid.Nil
	o.current = Snapshot{State: StateIdle}
}

// Ingest runs one ingestion attempt and returns its final snapshot. The
// shared observable state is only updated while this attempt is still the
// newest one; the returned snapshot always describes this attempt.
func (o *Orchestrator) Ingest(ctx context.Context, doc document.SourceDocument) Snapshot {
	attempt := uuid.New()

	o.mu.Lock()
	o.attempt = attempt
	o.current = Snapshot{State: StateExtracting, Attempt: attempt}
	o.mu.Unlock()

	final := o.run(ctx, doc, attempt)
	o.publish(final)
	return final
}

// publish installs a snapshot as the observable state unless its attempt has
// been superseded.
func (o *Orchestrator) publish(s Snapshot) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if s.Attempt == o.attempt {
		o.current = s
	}
}

func (o *Orchestrator) run(ctx context.Context, doc document.SourceDocument, attempt uuid.UUID) Snapshot {
	if _, err := document.ParseFormat(string(doc.Format)); err != nil {
		return Snapshot{State: StateFailed, Attempt: attempt, Err: mapExtractionError(err)}
	}

	res, err := o.extract(doc)
	if err != nil {
		// Partial extraction state is discarded; only the error survives.
		return Snapshot{State: StateFailed, Attempt: attempt, Err: mapExtractionError(err)}
	}

	if document.IsScanned(res, doc.Format) {
		return o.runScanned(ctx, doc, res, attempt)
	}

	return Snapshot{
		State:   StateDone,
		Attempt: attempt,
		Text:    NormalizeText(res.Text),
	}
}

// runScanned replaces the near-empty text layer with OCR output. Any failure
// in this branch discards the original extraction too: falling back to the
// low-confidence text layer would present a false success.
func (o *Orchestrator) runScanned(ctx context.Context, doc document.SourceDocument, res document.ExtractionResult, attempt uuid.UUID) Snapshot {
	o.publish(Snapshot{State: StateScanning, Attempt: attempt})

	pages, err := o.rasterizer.Rasterize(ctx, doc.Data, o.maxPages)
	if err != nil {
		return Snapshot{State: StateFailed, Attempt: attempt, Err: mapScanError(err)}
	}

	text, err := o.recognizer.ExtractText(ctx, pages)
	if err != nil {
		return Snapshot{State: StateFailed, Attempt: attempt, Err: mapScanError(err)}
	}

	if strings.TrimSpace(text) == "" {
		return Snapshot{
			State:   StateFailed,
			Attempt: attempt,
			Err:     &Error{Category: CategoryOCREmptyResult},
		}
	}

	var warnings []string
	if res.PageCount > o.maxPages {
		warnings = append(warnings, fmt.Sprintf(
			"only the first %d of %d pages were processed for text recognition",
			o.maxPages, res.PageCount))
	}

	return Snapshot{
		State:    StateDone,
		Attempt:  attempt,
		Text:     NormalizeText(text),
		Warnings: warnings,
	}
}
