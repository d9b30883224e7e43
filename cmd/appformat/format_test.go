package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/medsupp/appformat/internal/config"
	"github.com/medsupp/appformat/internal/exitcode"
	"github.com/medsupp/appformat/internal/formatter"
	"github.com/medsupp/appformat/internal/model"
)

func TestResolveCarrier(t *testing.T) {
	cfg = &config.Config{NAICCarriers: map[string]string{"11111": "Aetna"}}

	tests := []struct {
		override string
		naic     string
		want     model.Carrier
		wantErr  bool
	}{
		{naic: "79413", want: model.UnitedHealthcare},
		{naic: "20699", want: model.Chubb},
		{naic: "11111", want: model.Aetna},
		{override: "ACE", naic: "79413", want: model.ACE},
		{naic: "00000", wantErr: true},
		{override: "Foo", naic: "79413", wantErr: true},
	}
	for _, tt := range tests {
		cfg.Carrier = tt.override
		got, err := resolveCarrier(&model.Application{NAIC: tt.naic})
		if tt.wantErr {
			if err == nil {
				t.Errorf("override=%q naic=%s: expected error, got %s", tt.override, tt.naic, got)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("override=%q naic=%s: got %s, %v; want %s", tt.override, tt.naic, got, err, tt.want)
		}
	}
}

func TestFormatExitCode(t *testing.T) {
	if got := formatExitCode(&formatter.FormatError{Stage: formatter.StageDispatch, Err: formatter.ErrUnsupportedCarrier}); got != exitcode.ValidationError {
		t.Errorf("dispatch: got %d", got)
	}
	if got := formatExitCode(&formatter.FormatError{Stage: formatter.StageEligibility, Err: errors.New("bad date")}); got != exitcode.ValidationError {
		t.Errorf("eligibility: got %d", got)
	}
	if got := formatExitCode(&formatter.FormatError{Stage: formatter.StageBuild, Err: errors.New("panic")}); got != exitcode.FormatError {
		t.Errorf("build: got %d", got)
	}
}

func TestReadApplicationFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.json")
	body := `{"id":"app-9","naic":"78700","data":"{\"applicant_info\":{}}","onboarding_data":{"medicare_status":"no-plan"}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	app, err := readApplicationFile(path)
	if err != nil {
		t.Fatalf("readApplicationFile: %v", err)
	}
	if app.ID != "app-9" || app.NAIC != "78700" {
		t.Errorf("app = %+v", app)
	}
	if _, ok := app.Data.(string); !ok {
		t.Errorf("string-encoded data should stay a string, got %T", app.Data)
	}
	if app.MedicareStatus() != model.StatusNoPlan {
		t.Errorf("MedicareStatus = %q", app.MedicareStatus())
	}
}
