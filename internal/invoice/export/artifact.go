package export

import (
	"fmt"

	domain "github.com/WotanCode88/Estimate-Invoice-Pro/internal/invoice/domain"
)

// Artifact is a fully generated document ready for a sink. Bytes are
// complete before any sink sees them; sinks never receive partial output.
type Artifact struct {
	Bytes    []byte
	Filename string
	Number   int64
}

// Filename derives the suggested artifact name from the document kind and
// number, e.g. "Invoice-12.pdf".
func Filename(kind domain.Kind, number int64) string {
	return fmt.Sprintf("%s-%d.pdf", kind.Label(), number)
}
