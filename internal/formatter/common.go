package formatter

import (
	"github.com/medsupp/appformat/internal/normalize"
)

// applicantSection holds the applicant fields shared by Chubb/ACE, Aetna and Allstate.
func applicantSection(in *intake, phone string) map[string]any {
	a := in.applicant
	return map[string]any{
		"f_name":          a["f_name"],
		"l_name":          a["l_name"],
		"address_line1":   a["address_line1"],
		"zip5":            a["zip5"],
		"applicant_phone": normalize.FormatPhone(phone).Map(),
		"applicant_dob":   date(a, "applicant_dob"),
		"gender":          a["gender"],
		"effective_date":  date(a, "effective_date"),
		"tobacco_usage":   tobacco(a),
	}
}

// medicareSection holds the Medicare fields shared by Chubb/ACE, Aetna and Allstate.
func medicareSection(in *intake) map[string]any {
	m := in.medicare
	hasA := normalize.Truthy(m["medicare_part_a"])
	hasB := normalize.Truthy(m["medicare_part_b"])
	return map[string]any{
		"medicare_information_claim_number": m["medicareNumber"],
		"medicare_information_ssn":          m["max_ssn"],
		"medicare_part_a_coverage":          hasA,
		"medicare_part_b_coverage":          hasB,
		"medicare_part_a_b_coverage":        hasA && hasB,
		"medicare_part_a_eff_date":          date(m, "medicare_part_a"),
		"medicare_part_b_eff_date":          date(m, "medicare_part_b"),
		"did_turn_65_in_last_six_mo":        in.facts.T65SixMonths,
		"enroll_part_b_last_6_mo":           optBool(in.facts.PartBSixMonths),
		"effective_after_65":                in.facts.EffectiveAfter65,
	}
}

// producerContact holds the agent contact fields every carrier receives.
func producerContact(in *intake) map[string]any {
	p := in.producer
	return map[string]any{
		"producer_first_name": nonEmpty(p.FirstName),
		"producer_last_name":  nonEmpty(p.LastName),
		"producer_phone":      normalize.FormatPhone(p.Phone).Map(),
		"producer_email":      nonEmpty(p.Email),
	}
}

// paymentSection copies the intake payment section, folding the legacy
// routing_number key into bank_routing_number. Returns nil when there is no
// payment data.
func paymentSection(in *intake) map[string]any {
	if len(in.payment) == 0 {
		return nil
	}
	p := copySection(in.payment)
	if rn, ok := p["routing_number"]; ok {
		setDefault(p, "bank_routing_number", rn)
		delete(p, "routing_number")
	}
	return p
}

// merge copies extra into dst, overwriting existing keys.
func merge(dst, extra map[string]any) map[string]any {
	for k, v := range extra {
		dst[k] = v
	}
	return dst
}
