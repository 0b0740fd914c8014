package posting

import "encoding/json"

// RecordResult is the outcome of validating one persisted record:
// either a valid Posting or a rejection reason. Rejected records are
// dropped by the loader, but the reason stays inspectable for tests.
type RecordResult struct {
	Posting *Posting
	Reason  string
}

// Valid reports whether the record passed validation.
func (r RecordResult) Valid() bool {
	return r.Posting != nil
}

func rejected(reason string) RecordResult {
	return RecordResult{Reason: reason}
}

// requiredStrings lists the string-typed fields a stored record must carry.
var requiredStrings = []string{
	"id", "company", "roleTitle", "salaryLabel", "locationLabel",
	"paid", "format", "city", "direction",
	"postedAtISO", "shortPitch", "about",
}

// requiredLists lists the array-typed fields a stored record must carry.
var requiredLists = []string{
	"universities", "programs", "stack",
	"responsibilities", "requirements", "niceToHave",
}

// ValidateRecord checks one persisted record against the required shape
// before admitting it. Validation is structural: field presence and JSON
// types, not value ranges. Records that pass are decoded into a Posting
// with the user-submitted provenance flag set.
func ValidateRecord(raw json.RawMessage) RecordResult {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return rejected("record is not an object")
	}

	for _, key := range requiredStrings {
		if !isJSONString(fields[key]) {
			return rejected("missing or non-string field: " + key)
		}
	}
	for _, key := range requiredLists {
		if !isJSONArray(fields[key]) {
			return rejected("missing or non-array field: " + key)
		}
	}

	var contact struct {
		TelegramURL *string `json:"telegramUrl"`
		Email       *string `json:"email"`
	}
	applyRaw, ok := fields["apply"]
	if !ok || json.Unmarshal(applyRaw, &contact) != nil {
		return rejected("missing or malformed apply contact")
	}
	if contact.TelegramURL == nil || contact.Email == nil {
		return rejected("apply contact requires telegramUrl and email")
	}

	var p Posting
	if err := json.Unmarshal(raw, &p); err != nil {
		return rejected("record does not decode: " + err.Error())
	}
	p.UserCreated = true
	return RecordResult{Posting: &p}
}

func isJSONString(raw json.RawMessage) bool {
	// json.Unmarshal treats "null" as a no-op success, so reject it first.
	if raw == nil || string(raw) == "null" {
		return false
	}
	var s string
	return json.Unmarshal(raw, &s) == nil
}

func isJSONArray(raw json.RawMessage) bool {
	if raw == nil || string(raw) == "null" {
		return false
	}
	var a []json.RawMessage
	return json.Unmarshal(raw, &a) == nil
}
