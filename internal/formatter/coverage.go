package formatter

import (
	"strings"
	"time"

	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
	"github.com/medsupp/appformat/internal/replacement"
)

const (
	reasonOtherText         = "More Comprehensive Coverage"
	disenrollmentReason     = "Now covered by Medicare"
	placeholderCarrierPhone = "1234567890"
)

// existingCoverage derives the carrier-agnostic existing_coverage block for
// the applicant's current Medicare status. It returns nil for an unknown or
// absent status. effective is the new policy's effective date; the prior
// coverage terminates the day before.
func existingCoverage(in *intake, effective time.Time) map[string]any {
	ec := in.section(model.SectionExistingCoverage)
	term := stamp(normalize.DayBefore(effective))

	var out map[string]any
	switch in.app.MedicareStatus() {
	case model.StatusAdvantagePlan:
		out = advantageCoverage(ec, term)
	case model.StatusSupplementalPlan:
		out = supplementalCoverage(in, ec, term)
	case model.StatusNoPlan:
		out = noPlanCoverage(ec, term)
	default:
		return nil
	}

	out["state_covered_medical_assistance"] = ec["state_covered_medical_assistance"]
	for _, k := range []string{"medicaid_pay_premiums", "received_medicaid_benefits"} {
		if normalize.Truthy(ec[k]) {
			out[k] = ec[k]
		}
	}
	out["apply_guaranteed_issue"] = false
	return out
}

func advantageCoverage(ec map[string]any, term any) map[string]any {
	company := str(ec, "advantage_company")
	return map[string]any{
		"existing_coverage_medicare_plan":                       true,
		"existing_coverage_medicare_plan_is_active":             true,
		"existing_coverage_medicare_plan_start_date":            date(ec, "advantage_start_date"),
		"existing_coverage_medicare_plan_end_date":              term,
		"existing_coverage_medicare_plan_replacement_indicator": true,
		"existing_coverage_medicare_plan_repl_notice_copy":      true,
		"existing_coverage_medicare_plan_company":               nonEmpty(company),
		"existing_coverage_medicare_plan_policy_number":         label(company, "Advantage Plan"),
		"existing_coverage_medicare_plan_planned_term_date":     term,
		"existing_coverage_medicare_plan_was_first_enrollment":  true,
		"existing_coverage_medicare_plan_was_dropped":           false,
		"existing_coverage_medicare_plan_reason":                string(replacement.Other),
		"existing_coverage_medicare_plan_reason_other":          reasonOtherText,
		"existing_ms_inforce_policy":                            false,
	}
}

func supplementalCoverage(in *intake, ec map[string]any, term any) map[string]any {
	company := str(ec, "supplemental_company")
	product := normalize.String(normalize.FirstPresent(ec,
		"supplemental_other_ms_carrier_product_code", "other_ms_carrier_product_code", "supplemental_plan"))
	newPlan := normalize.String(normalize.FirstPresent(in.applicant, "applicant_plan", "plan"))

	return map[string]any{
		"existing_ms_inforce_policy":                   true,
		"intend_to_replace_existing_ms_inforce_policy": true,
		"existing_ms_inforce_repl_notice_copy":         true,
		"existing_coverage_medicare_plan":              false,
		"replacement_reason":                           string(replacement.PlanSwitchReason(newPlan, product)),
		"replacement_reason_other":                     reasonOtherText,
		"other_ms_carrier_start_date":                  date(ec, "supplemental_start_date"),
		"other_ms_carrier_term":                        term,
		"other_ms_carrier":                             nonEmpty(company),
		"other_ms_carrier_naic":                        nonEmpty(in.ref.NAICCode(company)),
		"other_ms_carrier_product_code":                nonEmpty(product),
		"other_ms_carrier_policy_number":               label(company, product),
	}
}

func noPlanCoverage(ec map[string]any, term any) map[string]any {
	company := str(ec, "other_insurance_company")
	planType := str(ec, "other_insurance_plan_type")

	var policy any
	if company != "" {
		policy = strings.TrimSpace(planType + " " + company)
	}
	return map[string]any{
		"existing_ms_inforce_policy":                    false,
		"existing_coverage_medicare_plan":               false,
		"other_health_ins_past_x_days":                  ec["other_insurance"],
		"other_health_ins_coverage_active":              ec["other_insurance_coverage_active"],
		"other_health_ins_carrier_eff_date":             date(ec, "other_insurance_start_date"),
		"other_health_ins_carrier_end_date":             term,
		"other_health_ins_carrier_company":              nonEmpty(company),
		"other_health_ins_carrier_phone_number":         normalize.FormatPhone(placeholderCarrierPhone).Map(),
		"other_health_ins_carrier_product_code":         nonEmpty(planType),
		"other_health_ins_carrier_policy_number":        policy,
		"other_health_ins_carrier_disenrollment_reason": disenrollmentReason,
		"other_health_ins_carrier_term_date":            term,
	}
}

// label joins a company name with a suffix, or returns nil when the company
// is unknown so no half-empty label reaches the carrier.
func label(company, suffix string) any {
	if company == "" {
		return nil
	}
	return strings.TrimSpace(company + " " + suffix)
}
