package formatter

import (
	"github.com/medsupp/appformat/internal/model"
)

type aetnaVariant struct{}

func (aetnaVariant) carrierKey() string { return "aetna" }

func (v aetnaVariant) build(in *intake) model.Document {
	producer := merge(producerContact(in), map[string]any{
		"producer_writing_number":          nonEmpty(in.producer.WritingNumber(v.carrierKey())),
		"deliver_policy_to":                "applicant",
		"e_delivery":                       false,
		"accurate_recording":               true,
		"interviewed_applicants":           true,
		"application_provided":             true,
		"replacement_notice":               true,
		"agent_requests_split_commissions": false,
	})

	doc := model.Document{
		model.SectionApplicantInfo:       applicantSection(in, str(in.applicant, "phone")),
		model.SectionMedicareInformation: medicareSection(in),
		model.SectionProducer:            producer,
		model.SectionPayment:             paymentSection(in),
		model.SectionPhysicianInfo:       physicianSection(in),
		model.SectionMedicationInfo:      medicationSection(in, false),
		model.SectionHealthHistory:       healthHistorySection(in),
	}

	hhd := copySection(in.section(model.SectionHHDInformation))
	setDefault(hhd, "household_resident", false)
	setDefault(hhd, "spouse_household_resident", false)
	doc[model.SectionHHDInformation] = hhd
	return doc
}

// physicianSection copies the physician details and fills the city and state
// from the physician zip, falling back to the applicant zip.
func physicianSection(in *intake) map[string]any {
	src := in.section(model.SectionPhysicianInfo)
	if len(src) == 0 {
		return nil
	}
	out := copySection(src)
	zip := str(src, "physician_zip5")
	if zip == "" {
		zip = str(src, "zip5")
	}
	if zip != "" {
		place := in.ref.ResolveZip(zip)
		setDefault(out, "physician_address_city", nonEmpty(place.City))
		setDefault(out, "physician_address_state", nonEmpty(place.State))
	}
	return out
}
