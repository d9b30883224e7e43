package formatter

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/medsupp/appformat/internal/model"
	"github.com/medsupp/appformat/internal/normalize"
)

// drugList returns the prescription list from the medication section, or
// from health history when the medication section has none.
func drugList(in *intake) []any {
	for _, section := range []string{model.SectionMedicationInfo, model.SectionHealthHistory} {
		if l := normalize.List(in.section(section)["prescription_drug_list"]); len(l) > 0 {
			return l
		}
	}
	return nil
}

// drugName extracts the free-text drug name from a list entry, which is either
// {"drug": {"drugName": ...}}, {"drugName": ...} or a bare string.
func drugName(entry any) string {
	switch e := entry.(type) {
	case string:
		return e
	case map[string]any:
		if name := str(normalize.Map(e["drug"]), "drugName"); name != "" {
			return name
		}
		return str(e, "drugName")
	}
	return ""
}

// splitDrugName separates a name like "Lisinopril TAB 10MG" into the words
// before the first all-uppercase token ("Lisinopril") and the words after it
// ("10MG"). The uppercase token is the dosage form and is discarded. When no
// leading lowercase words exist the whole string is the name.
func splitDrugName(full string) (name, dosage string) {
	tokens := strings.Fields(full)
	idx := -1
	for i, tok := range tokens {
		if isUpperToken(tok) {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return strings.Join(tokens, " "), ""
	}
	return strings.Join(tokens[:idx], " "), strings.Join(tokens[idx+1:], " ")
}

// isUpperToken reports whether tok has at least one letter and no lowercase letters.
func isUpperToken(tok string) bool {
	hasLetter := false
	for _, r := range tok {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// prescribedMedications restructures the drug list into an index-keyed
// mapping. withDosage keeps the text after the dosage form, with "/"
// separators rewritten as ";".
func prescribedMedications(list []any, withDosage bool) map[string]any {
	out := make(map[string]any, len(list))
	for i, entry := range list {
		name, dosage := splitDrugName(drugName(entry))
		med := map[string]any{"med_name": name}
		if withDosage {
			med["dosage"] = strings.ReplaceAll(dosage, "/", ";")
		}
		if m, ok := entry.(map[string]any); ok {
			med["frequency"] = m["frequency"]
			med["quantity"] = m["quantity"]
		}
		out[strconv.Itoa(i)] = med
	}
	return out
}

// medicationSection builds the carrier medication section from the intake.
// It returns nil when the applicant lists no prescriptions and supplied no
// medication section.
func medicationSection(in *intake, withDosage bool) map[string]any {
	src := in.section(model.SectionMedicationInfo)
	list := drugList(in)
	if len(list) == 0 && len(src) == 0 {
		return nil
	}
	out := copySection(src)
	delete(out, "prescription_drug_list")
	out["taking_prescriptions"] = len(list) > 0
	if len(list) > 0 {
		out["prescribed_medications"] = prescribedMedications(list, withDosage)
	}
	return out
}

// healthHistorySection copies health history without the raw drug list,
// which is carried in the medication section instead.
func healthHistorySection(in *intake) map[string]any {
	hh := in.section(model.SectionHealthHistory)
	if len(hh) == 0 {
		return nil
	}
	out := copySection(hh)
	delete(out, "prescription_drug_list")
	return out
}
