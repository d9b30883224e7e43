package formatter

import (
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
)

type aceVariant struct{}

func (aceVariant) carrierKey() string { return "ace" }

func (aceVariant) build(in *intake) model.Document {
	phone := normalize.String(normalize.FirstPresent(in.applicant, "phone", "phone_number"))

	medicare := merge(medicareSection(in), map[string]any{
		"enroll_part_b_more_than_once": false,
		"renal_failure":                false,
		"Electronic_Combined":          false,
	})

	p := in.producer
	producer := merge(producerContact(in), map[string]any{
		"business_type":              "new",
		"has_other_inforce_policies": false,
		"deliver_policy_to":          "APP",
		"policy_delivery_type":       "paper",
		"agent_address_line1":        nonEmpty(p.AddressLine1),
		"agent_zip5":                 nonEmpty(p.AddressZip5),
		"agent_address_city":         nonEmpty(p.AddressCity),
		"agent_address_state":        nonEmpty(p.AddressState),
		"replacement_notice":         true,
	})

	hhd := copySection(in.section(model.SectionHHDInformation))
	setDefault(hhd, "hhd", false)

	return model.Document{
		model.SectionApplicantInfo:       applicantSection(in, phone),
		model.SectionMedicareInformation: medicare,
		model.SectionProducer:            producer,
		model.SectionPayment:             paymentSection(in),
		model.SectionHHDInformation:      hhd,
	}
}
