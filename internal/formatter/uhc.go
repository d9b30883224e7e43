package formatter

import (
	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
)

type uhcVariant struct{}

func (uhcVariant) carrierKey() string { return "uhc" }

func (v uhcVariant) build(in *intake) model.Document {
	a := in.applicant
	applicant := map[string]any{
		"poa":             true,
		"enroll_kit":      true,
		"applicant_plan":  normalize.FirstPresent(a, "plan", "applicant_plan"),
		"effective_date":  date(a, "effective_date"),
		"f_name":          a["f_name"],
		"l_name":          a["l_name"],
		"address_line1":   a["address_line1"],
		"zip5":            a["zip5"],
		"applicant_phone": normalize.FormatPhone(str(a, "phone")).Map(),
		"applicant_dob":   date(a, "applicant_dob"),
		"gender":          a["gender"],
		"tobacco_usage":   tobacco(a),
	}
	if zip := str(a, "zip5"); zip != "" {
		place := in.ref.ResolveZip(zip)
		applicant["address_city"] = nonEmpty(place.City)
		applicant["address_state"] = nonEmpty(place.State)
	}

	m := in.medicare
	// UHC takes the Part A/B dates as entered.
	medicare := map[string]any{
		"medicareNumber":  m["medicareNumber"],
		"medicare_part_a": m["medicare_part_a"],
		"medicare_part_b": m["medicare_part_b"],
		"max_ssn":         m["max_ssn"],
		"medicare_active": true,
	}

	p := in.producer
	producer := map[string]any{
		"agent_first_name":        nonEmpty(p.FirstName),
		"agent_last_name":         nonEmpty(p.LastName),
		"producer_phone":          normalize.FormatPhone(p.Phone).Map(),
		"producer_email":          nonEmpty(p.Email),
		"producer_writing_number": nonEmpty(p.WritingNumber(v.carrierKey())),
	}

	return model.Document{
		model.SectionApplicantInfo:       applicant,
		model.SectionMedicareInformation: medicare,
		model.SectionProducer:            producer,
		model.SectionPayment:             paymentSection(in),
		model.SectionPlanDocuments:       map[string]any{"policy_delivery_type": "Mail"},
	}
}
