// Package present shapes a formatted carrier document for delivery: empty
// leaves become a sentinel, untouched intake sections are carried along, and
// a metadata block identifies the run.
package present

import (
	"time"

	"github.com/google/uuid"

	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
)

// NA replaces empty and null leaves in delivered documents.
const NA = "NA"

// Metadata describes one formatting run.
type Metadata struct {
	ApplicationID  string    `json:"application_id"`
	Carrier        string    `json:"carrier"`
	FormattedAt    time.Time `json:"formatted_at"`
	OriginalStatus string    `json:"original_status"`
	ApplicantEmail string    `json:"applicant_email"`
	RunID          string    `json:"run_id"`
}

// Envelope is the delivered form of a carrier document.
type Envelope struct {
	Success  bool           `json:"success"`
	Data     map[string]any `json:"data"`
	Metadata Metadata       `json:"metadata"`
}

// Presenter builds envelopes. now is replaceable in tests.
type Presenter struct {
	now func() time.Time
}

// New returns a Presenter stamping envelopes with the current UTC time.
func New() *Presenter {
	return &Presenter{now: func() time.Time { return time.Now().UTC() }}
}

// Wrap substitutes NA for empty leaves of doc, adds every intake section the
// carrier document does not already contain, and attaches run metadata.
// doc is not modified.
func (p *Presenter) Wrap(app *model.Application, carrier model.Carrier, doc model.Document) Envelope {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = FillNA(v)
	}

	// Malformed intake has already been reported by the formatter.
	data, _ := normalize.ParseJSONData(app.Data)
	for section, content := range data {
		if _, ok := out[section]; !ok {
			out[section] = FillNA(content)
		}
	}

	return Envelope{
		Success: true,
		Data:    out,
		Metadata: Metadata{
			ApplicationID:  app.ID,
			Carrier:        string(carrier),
			FormattedAt:    p.now(),
			OriginalStatus: orNA(app.Status),
			ApplicantEmail: orNA(app.Email),
			RunID:          uuid.NewString(),
		},
	}
}

// FillNA returns a copy of v with nil, "" and "undefined" leaves replaced by
// NA at every nesting level.
func FillNA(v any) any {
	switch t := v.(type) {
	case nil:
		return NA
	case string:
		return orNA(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[k] = FillNA(e)
		}
		return out
	case model.Document:
		return FillNA(map[string]any(t))
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = FillNA(e)
		}
		return out
	default:
		return v
	}
}

func orNA(s string) string {
	if s == "" || s == "undefined" {
		return NA
	}
	return s
}
