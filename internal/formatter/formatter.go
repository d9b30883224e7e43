package formatter

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/medsupp/appformat/internal/medicare"
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
	"github.com/medsupp/appformat/internal/refdata"
	"github.com/medsupp/appformat/internal/routing"
)

// Stages reported in FormatError.
const (
	StageDispatch    = "dispatch"
	StageEligibility = "eligibility"
	StageBuild       = "build"
	StageCoverage    = "existing_coverage"
)

const (
	defaultBankTimeout = 5 * time.Second
	maxSnapshotBytes   = 2048
)

// ErrUnsupportedCarrier is returned for a carrier with no registered formatter.
var ErrUnsupportedCarrier = errors.New("unsupported carrier")

// FormatError wraps an error with the stage and application it occurred in.
type FormatError struct {
	Stage         string
	Carrier       model.Carrier
	ApplicationID string
	Err           error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format %s application %q: %s: %s", e.Carrier, e.ApplicationID, e.Stage, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Reference is the read-only reference data a formatting run consults.
// *refdata.Store satisfies it.
type Reference interface {
	Producer() refdata.Producer
	ResolveZip(zip5 string) refdata.Place
	NAICCode(companyName string) string
}

// BankLookup resolves a bank routing number to an institution.
// *routing.Client satisfies it.
type BankLookup interface {
	Lookup(ctx context.Context, routingNumber string) (routing.Bank, error)
}

// Formatter turns intake applications into carrier documents. It holds no
// per-call state and is safe for concurrent use.
type Formatter struct {
	ref         Reference
	banks       BankLookup
	log         zerolog.Logger
	bankTimeout time.Duration
}

// New returns a Formatter. banks may be nil, which disables bank-name enrichment.
func New(ref Reference, banks BankLookup, log zerolog.Logger) *Formatter {
	return &Formatter{
		ref:         ref,
		banks:       banks,
		log:         log,
		bankTimeout: defaultBankTimeout,
	}
}

// WithBankTimeout bounds each bank-name lookup. Non-positive values keep the default.
func (f *Formatter) WithBankTimeout(d time.Duration) *Formatter {
	if d > 0 {
		f.bankTimeout = d
	}
	return f
}

// Format builds the carrier document for app. An unsupported carrier, an
// unparseable birth or effective date, and any failure inside the carrier
// builder abort the call; no partial document is returned. Bank-name
// enrichment is best-effort.
func (f *Formatter) Format(ctx context.Context, app *model.Application, carrier model.Carrier) (model.Document, error) {
	if app == nil {
		return nil, &FormatError{Stage: StageDispatch, Carrier: carrier, Err: errors.New("application is nil")}
	}
	log := f.log.With().Str("application_id", app.ID).Str("carrier", string(carrier)).Logger()

	v, ok := lookupVariant(carrier)
	if !ok {
		return nil, f.fail(log, &FormatError{
			Stage:         StageDispatch,
			Carrier:       carrier,
			ApplicationID: app.ID,
			Err:           fmt.Errorf("%w: %q", ErrUnsupportedCarrier, carrier),
		}, nil, nil)
	}

	data, err := normalize.ParseJSONData(app.Data)
	if err != nil {
		log.Warn().Err(err).Msg("application data is malformed, continuing with empty data")
	}

	in := &intake{
		app:      app,
		data:     data,
		producer: f.ref.Producer(),
		ref:      f.ref,
	}
	in.applicant = in.section(model.SectionApplicantInfo)
	in.medicare = in.section(model.SectionMedicareInformation)
	in.payment = in.section(model.SectionPayment)

	in.facts, err = medicare.CalculateDates(
		str(in.applicant, "applicant_dob"),
		str(in.applicant, "effective_date"),
		str(in.medicare, "medicare_part_a"),
		str(in.medicare, "medicare_part_b"),
	)
	if err != nil {
		return nil, f.fail(log, &FormatError{Stage: StageEligibility, Carrier: carrier, ApplicationID: app.ID, Err: err}, data, nil)
	}

	doc, stack, err := build(v, in)
	if err != nil {
		return nil, f.fail(log, &FormatError{Stage: StageBuild, Carrier: carrier, ApplicationID: app.ID, Err: err}, data, stack)
	}

	if _, ok := data[model.SectionExistingCoverage]; ok {
		effective, err := normalize.ParseDay(str(in.applicant, "effective_date"))
		if err != nil {
			return nil, f.fail(log, &FormatError{Stage: StageCoverage, Carrier: carrier, ApplicationID: app.ID, Err: err}, data, nil)
		}
		if ec := existingCoverage(in, effective); ec != nil {
			doc[model.SectionExistingCoverage] = ec
		} else {
			log.Debug().Str("medicare_status", app.MedicareStatus()).Msg("no existing coverage block for medicare status")
		}
	}

	// Prune copies, so the document shares no maps with app.Data.
	doc = model.Prune(doc)
	f.enrichBank(ctx, log, doc)

	log.Debug().Int("sections", len(doc)).Msg("application formatted")
	return doc, nil
}

// build runs the carrier builder, turning a panic into an error plus stack.
func build(v variant, in *intake) (doc model.Document, stack []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			doc = nil
			stack = debug.Stack()
			err = fmt.Errorf("carrier builder panicked: %v", r)
		}
	}()
	return v.build(in), nil, nil
}

// enrichBank fills payment.bank_name from the routing number when the intake
// did not supply one. Failures leave the section untouched.
func (f *Formatter) enrichBank(ctx context.Context, log zerolog.Logger, doc model.Document) {
	if f.banks == nil {
		return
	}
	payment, ok := doc[model.SectionPayment].(map[string]any)
	if !ok {
		return
	}
	rn := str(payment, "bank_routing_number")
	if rn == "" || str(payment, "bank_name") != "" {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, f.bankTimeout)
	defer cancel()

	bank, err := f.banks.Lookup(ctx, rn)
	if err != nil {
		log.Warn().Err(err).Msg("bank name lookup failed, leaving payment without bank name")
		return
	}
	payment["bank_name"] = bank.Name
}

// fail logs err with the input snapshot and optional stack, then returns it.
func (f *Formatter) fail(log zerolog.Logger, err *FormatError, data map[string]any, stack []byte) error {
	ev := log.Error().Err(err.Err).Str("stage", err.Stage)
	if data != nil {
		ev = ev.Str("input", snapshot(data))
	}
	if stack != nil {
		ev = ev.Bytes("stack", stack)
	}
	ev.Msg("formatting failed")
	return err
}

// redacted lists identifiers that never reach the logs.
var redacted = map[string]bool{
	"max_ssn":        true,
	"medicareNumber": true,
	"account_number": true,
}

// snapshot renders the intake for logging, truncated and with identifiers masked.
func snapshot(data map[string]any) string {
	b, err := json.Marshal(mask(data))
	if err != nil {
		return fmt.Sprintf("<unencodable: %v>", err)
	}
	if len(b) > maxSnapshotBytes {
		return string(b[:maxSnapshotBytes]) + "...(truncated)"
	}
	return string(b)
}

func mask(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		if redacted[k] {
			out[k] = "***"
			continue
		}
		out[k] = maskValue(v)
	}
	return out
}

func maskValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return mask(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = maskValue(e)
		}
		return out
	default:
		return v
	}
}
