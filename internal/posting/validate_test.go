package posting

import (
	"encoding/json"
	"strings"
	"testing"
)

// validRecordJSON is a minimal record that passes shape validation.
const validRecordJSON = `{
	"id": "t-bank-junior-backend",
	"company": "T-Bank",
	"roleTitle": "Junior Backend Intern",
	"salaryLabel": "от 50 000 ₽",
	"salaryMin": 50000,
	"paid": "Paid",
	"format": "Hybrid",
	"city": "Moscow",
	"direction": "backend",
	"universities": ["HSE"],
	"programs": [],
	"stack": ["Go", "SQL"],
	"season": "Весна 2026",
	"duration": "6-12 недель",
	"locationLabel": "Москва",
	"postedAtISO": "2026-08-01",
	"shortPitch": "Команда платежей.",
	"about": "Команда платежей.",
	"responsibilities": ["Писать код"],
	"requirements": ["Go"],
	"niceToHave": ["Docker"],
	"apply": {"telegramUrl": "https://t.me/tbank", "email": "hr@tbank.example"}
}`

func TestValidateRecord_Valid(t *testing.T) {
	res := ValidateRecord(json.RawMessage(validRecordJSON))
	if !res.Valid() {
		t.Fatalf("record rejected: %s", res.Reason)
	}
	p := res.Posting
	if p.ID != "t-bank-junior-backend" {
		t.Errorf("ID = %q", p.ID)
	}
	if !p.UserCreated {
		t.Error("UserCreated = false, want true (loader provenance)")
	}
	if p.SalaryMin == nil || *p.SalaryMin != 50000 {
		t.Errorf("SalaryMin = %v, want 50000", p.SalaryMin)
	}
}

func TestValidateRecord_MissingField(t *testing.T) {
	raw := strings.Replace(validRecordJSON, `"company": "T-Bank",`, "", 1)
	res := ValidateRecord(json.RawMessage(raw))
	if res.Valid() {
		t.Fatal("record with missing company accepted")
	}
	if !strings.Contains(res.Reason, "company") {
		t.Errorf("Reason = %q, want mention of company", res.Reason)
	}
}

func TestValidateRecord_WrongTypes(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"numeric id", `"id": "t-bank-junior-backend"`, `"id": 42`},
		{"string stack", `"stack": ["Go", "SQL"]`, `"stack": "Go"`},
		{"null universities", `"universities": ["HSE"]`, `"universities": null`},
		{"apply missing email", `"apply": {"telegramUrl": "https://t.me/tbank", "email": "hr@tbank.example"}`, `"apply": {"telegramUrl": "https://t.me/tbank"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := strings.Replace(validRecordJSON, tt.old, tt.new, 1)
			if raw == validRecordJSON {
				t.Fatal("replacement did not apply")
			}
			if res := ValidateRecord(json.RawMessage(raw)); res.Valid() {
				t.Error("malformed record accepted")
			}
		})
	}
}

func TestValidateRecord_NotAnObject(t *testing.T) {
	for _, raw := range []string{`[]`, `"text"`, `42`, `null`} {
		if res := ValidateRecord(json.RawMessage(raw)); res.Valid() {
			t.Errorf("ValidateRecord(%s) accepted", raw)
		}
	}
}
