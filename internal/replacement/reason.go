package replacement

import "strings"

// Reason is the categorical justification for replacing an existing
// Medicare-supplement plan.
type Reason string

const (
	Other                      Reason = "other"
	LowerPremiums              Reason = "lower_premiums"
	FewerBenefitsLowerPremiums Reason = "fewer_benefits_lower_premiums"
	AdditionalBenefits         Reason = "additional_benefits"
)

const selectPrefix = "Select Plan "

type family map[string]struct{}

func newFamily(codes ...string) family {
	f := make(family, len(codes))
	for _, c := range codes {
		f[c] = struct{}{}
	}
	return f
}

func (f family) has(code string) bool {
	_, ok := f[code]
	return ok
}

// Plan families are disjoint.
var (
	comprehensive = newFamily("A", "B", "C", "D", "F", "G", "High Deductible Plan F", "Extended")
	basic         = newFamily("K", "L", "M", "Basic", "50% Part A Deductible")
	legacy        = newFamily("E", "H", "I", "J", "Pre-Standardized")

	basicOrN    = newFamily("K", "L", "M", "Basic", "50% Part A Deductible", "N")
	richerThanG = newFamily("C", "F", "High Deductible Plan F", "Extended")
)

// PlanSwitchReason classifies a move from currentPlan to targetPlan.
func PlanSwitchReason(targetPlan, currentPlan string) Reason {
	if currentPlan == "" {
		return Other
	}
	if targetPlan == currentPlan {
		return LowerPremiums
	}

	current := strings.ReplaceAll(currentPlan, selectPrefix, "")

	switch targetPlan {
	case "N":
		switch {
		case comprehensive.has(current):
			return FewerBenefitsLowerPremiums
		case basic.has(current):
			return AdditionalBenefits
		}
	case "G":
		switch {
		case basicOrN.has(current):
			return AdditionalBenefits
		case richerThanG.has(current):
			return FewerBenefitsLowerPremiums
		}
	}
	return Other
}
