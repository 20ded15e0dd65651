package events

// Document event types recorded by the outbox.
const (
	EventInvoiceCreated    = "invoice_created"
	EventInvoicePaid       = "invoice_paid"
	EventInvoiceDeleted    = "invoice_deleted"
	EventEstimateConverted = "estimate_converted"
	EventDocumentExported  = "document_exported"
)

// DocumentPayload captures the minimal data needed to trace a document event.
type DocumentPayload struct {
	DocumentID string `json:"document_id"`
	Number     int64  `json:"number"`
	Kind       string `json:"kind,omitempty"`
}

// ToMap converts a payload into an outbox-friendly map.
func (p DocumentPayload) ToMap() map[string]any {
	payload := map[string]any{
		"document_id": p.DocumentID,
		"number":      p.Number,
	}
	if p.Kind != "" {
		payload["kind"] = p.Kind
	}
	return payload
}
