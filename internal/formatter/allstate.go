package formatter

import (
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
)

type allstateVariant struct{}

func (allstateVariant) carrierKey() string { return "allstate" }

func (v allstateVariant) build(in *intake) model.Document {
	applicant := applicantSection(in, str(in.applicant, "phone"))
	if t := tobacco(in.applicant); t != nil && !normalize.Truthy(t) {
		delete(applicant, "last_tobacco_use_date")
	} else {
		applicant["last_tobacco_use_date"] = date(in.applicant, "last_tobacco_use_date")
	}

	medicare := merge(medicareSection(in), map[string]any{
		"disabled_esrd":    false,
		"received_outline": true,
	})

	producer := merge(producerContact(in), map[string]any{
		"producer_writing_number":     nonEmpty(in.producer.WritingNumber(v.carrierKey())),
		"sale":                        "internet",
		"other_sale_type_description": "",
		"has_other_inforce_policies":  false,
		"deliver_policy_to":           "applicant",
		"additional_witness":          false,
		"agent_related":               false,
		"agent_reviewed":              true,
		"applicant_reviewed":          true,
	})

	payment := paymentSection(in)
	if payment == nil {
		payment = map[string]any{}
	}
	payment["payment_mode"] = "monthly"

	// Both spellings are kept; downstream consumers may read either.
	hhd := copySection(in.section(model.SectionHHDInformation))
	setDefault(hhd, "activity_tracker", false)
	setDefault(hhd, "activity_tacker", false)

	return model.Document{
		model.SectionApplicantInfo:       applicant,
		model.SectionMedicareInformation: medicare,
		model.SectionProducer:            producer,
		model.SectionPayment:             payment,
		model.SectionMedicationInfo:      medicationSection(in, true),
		model.SectionHealthHistory:       healthHistorySection(in),
		model.SectionHHDInformation:      hhd,
	}
}
