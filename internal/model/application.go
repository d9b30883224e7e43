package model

// Medicare status values recorded during onboarding. They select which
// existing-coverage block is derived.
const (
	StatusAdvantagePlan    = "advantage-plan"
	StatusSupplementalPlan = "supplemental-plan"
	StatusNoPlan           = "no-plan"
)

// Intake section names.
const (
	SectionApplicantInfo       = "applicant_info"
	SectionMedicareInformation = "medicare_information"
	SectionPayment             = "payment"
	SectionExistingCoverage    = "existing_coverage"
	SectionHealthHistory       = "health_history"
	SectionMedicationInfo      = "medication_information"
	SectionPhysicianInfo       = "physician_information"
	SectionHHDInformation      = "hhd_information"
	SectionProducer            = "producer"
	SectionPlanDocuments       = "plan_documents"
)

// OnboardingData is the subset of onboarding answers the formatter reads.
type OnboardingData struct {
	MedicareStatus string `json:"medicare_status"`
}

// Application is a stored intake application.
type Application struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	NAIC   string `json:"naic"`
	Zip    string `json:"zip"`
	County string `json:"county"`
	DOB    string `json:"dob"`
	Email  string `json:"email,omitempty"`
	// Data is either a JSON-encoded string or an already-decoded mapping.
	Data       any             `json:"data"`
	Onboarding *OnboardingData `json:"onboarding_data,omitempty"`
}

// MedicareStatus returns the onboarding medicare status, or "" when absent.
func (a *Application) MedicareStatus() string {
	if a == nil || a.Onboarding == nil {
		return ""
	}
	return a.Onboarding.MedicareStatus
}
