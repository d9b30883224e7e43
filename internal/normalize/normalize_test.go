package normalize

import (
	"errors"
	"testing"
	"time"
)

func TestFormatPhone_TenDigits(t *testing.T) {
	for _, in := range []string{"5551234567", "0000000000", "9998887777"} {
		p := FormatPhone(in)
		if got := p.AreaCode + p.CentralOfficeCode + p.StationCode; got != in {
			t.Errorf("FormatPhone(%q) parts join to %q", in, got)
		}
		if len(p.AreaCode) != 3 || len(p.CentralOfficeCode) != 3 || len(p.StationCode) != 4 {
			t.Errorf("FormatPhone(%q) unexpected part lengths: %+v", in, p)
		}
	}
}

func TestFormatPhone_WrongLength(t *testing.T) {
	for _, in := range []string{"", "555123456", "55512345678", "+15551234567"} {
		if p := FormatPhone(in); p != (Phone{}) {
			t.Errorf("FormatPhone(%q) = %+v, want all empty", in, p)
		}
	}
}

func TestFormatPhone_NonDigits(t *testing.T) {
	if p := FormatPhone("555-123-45"); p != (Phone{}) {
		t.Errorf("expected empty phone for non-digit input, got %+v", p)
	}
}

func TestFormatDate(t *testing.T) {
	if FormatDate("") != nil {
		t.Error("expected nil for empty date")
	}
	got := FormatDate("2025-03-01")
	if got == nil || *got != "2025-03-01T00:00:00" {
		t.Errorf("FormatDate: got %v", got)
	}
}

func TestParseDay_Invalid(t *testing.T) {
	if _, err := ParseDay("03/01/2025"); err == nil {
		t.Fatal("expected error for non-ISO date")
	}
}

func TestDayBefore_CrossesMonth(t *testing.T) {
	d := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	if got := DayBefore(d); got != "2025-02-28T00:00:00" {
		t.Errorf("DayBefore: got %s", got)
	}
}

func TestParseJSONData_String(t *testing.T) {
	m, err := ParseJSONData(`{"applicant_info":{"f_name":"Ada"}}`)
	if err != nil {
		t.Fatalf("ParseJSONData: %v", err)
	}
	if Map(m["applicant_info"])["f_name"] != "Ada" {
		t.Errorf("unexpected decode: %v", m)
	}
}

func TestParseJSONData_Mapping(t *testing.T) {
	in := map[string]any{"a": 1.0}
	m, err := ParseJSONData(in)
	if err != nil || m["a"] != 1.0 {
		t.Errorf("expected mapping passthrough, got %v, %v", m, err)
	}
}

func TestParseJSONData_Malformed(t *testing.T) {
	m, err := ParseJSONData("{not json")
	if !errors.Is(err, ErrMalformedData) {
		t.Fatalf("expected ErrMalformedData, got %v", err)
	}
	if m == nil || len(m) != 0 {
		t.Errorf("expected empty map on failure, got %v", m)
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Mutual  of Omaha, Inc. "); got != "mutual of omaha inc" {
		t.Errorf("NormalizeName: got %q", got)
	}
	if got := NormalizeName("   "); got != "" {
		t.Errorf("NormalizeName blank: got %q", got)
	}
}

func TestFirstPresent_FalseCounts(t *testing.T) {
	m := map[string]any{"tobacco_usage": false, "tobacco": true}
	if v := FirstPresent(m, "tobacco_usage", "tobacco"); v != false {
		t.Errorf("expected false from first key, got %v", v)
	}
	m = map[string]any{"tobacco_usage": "", "tobacco": true}
	if v := FirstPresent(m, "tobacco_usage", "tobacco"); v != true {
		t.Errorf("expected fallback to second key, got %v", v)
	}
}

func TestString_NumericPhone(t *testing.T) {
	if got := String(5551234567.0); got != "5551234567" {
		t.Errorf("String: got %q", got)
	}
}
