package company

import "testing"

var testDirectory = []Entry{
	{Name: "UnitedHealthcare Insurance Company", Code: "79413"},
	{Name: "Mutual of Omaha Insurance Company", Code: "71412"},
	{Name: "Aetna Health and Life Insurance Company", Code: "78700"},
	{Name: "Continental General Insurance Company", Code: "71404"},
}

func TestCode_Empty(t *testing.T) {
	r := NewResolver(testDirectory)
	if got := r.Code(""); got != "" {
		t.Errorf("Code(\"\") = %q, want empty", got)
	}
	if got := r.Code("   "); got != "" {
		t.Errorf("Code(blank) = %q, want empty", got)
	}
}

func TestMatch_ExactAnyCase(t *testing.T) {
	r := NewResolver(testDirectory)
	for _, in := range []string{"Mutual of Omaha Insurance Company", "MUTUAL OF OMAHA INSURANCE COMPANY", "mutual of omaha insurance company"} {
		m, ok := r.Match(in)
		if !ok {
			t.Fatalf("Match(%q): no match", in)
		}
		if !m.Exact || m.Score != 100 || m.Code != "71412" {
			t.Errorf("Match(%q) = %+v, want exact 71412 at 100", in, m)
		}
	}
}

func TestMatch_FuzzySubstring(t *testing.T) {
	r := NewResolver(testDirectory)
	m, ok := r.Match("Mutual of Omaha")
	if !ok {
		t.Fatal("expected fuzzy match")
	}
	if m.Exact {
		t.Error("did not expect exact match")
	}
	if m.Code != "71412" {
		t.Errorf("Code = %q, want 71412", m.Code)
	}
}

func TestMatch_Alias(t *testing.T) {
	r := NewResolver(testDirectory)
	if got := r.Code("UHC"); got != "79413" {
		t.Errorf("Code(UHC) = %q, want 79413", got)
	}
}

func TestMatch_LowConfidence(t *testing.T) {
	r := NewResolver(testDirectory)
	m, ok := r.Match("Zzyzx Widgets Ltd")
	if ok {
		t.Fatalf("expected no match, got %+v", m)
	}
	if m.Code != "" {
		t.Errorf("expected empty code, got %q", m.Code)
	}
	// cached result stays a miss
	if got := r.Code("Zzyzx Widgets Ltd"); got != "" {
		t.Errorf("cached Code = %q, want empty", got)
	}
}

func TestMatch_NilResolver(t *testing.T) {
	var r *Resolver
	if got := r.Code("Aetna"); got != "" {
		t.Errorf("nil resolver Code = %q, want empty", got)
	}
}

func TestScorer_Ratios(t *testing.T) {
	s := newScorer()
	if got := s.ratio("abc", "abc"); got != 100 {
		t.Errorf("ratio identical = %v", got)
	}
	if got := s.ratio("abcd", "abce"); got != 75 {
		t.Errorf("ratio abcd/abce = %v, want 75", got)
	}
	if got := s.tokenSortRatio("omaha mutual", "mutual omaha"); got != 100 {
		t.Errorf("tokenSortRatio = %v, want 100", got)
	}
	if got := s.partialRatio("omaha", "mutual of omaha insurance"); got != 100 {
		t.Errorf("partialRatio = %v, want 100", got)
	}
}
