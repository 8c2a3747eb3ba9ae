//go:build go1.18

package domain

import (
	"testing"
)

// FuzzParseUserID tests that parsing never panics on arbitrary input and
// always returns either a valid ID or an error.
//
// Justification: Trust boundary functions must handle arbitrary input safely.
func FuzzParseUserID(f *testing.F) {
	f.Add("")
	f.Add("550e8400-e29b-41d4-a716-446655440000")
	f.Add("00000000-0000-0000-0000-000000000000")
	f.Add("not-a-uuid")
	f.Add("'; DROP TABLE user_records;--")
	f.Add(string([]byte{0x00, 0x01, 0x02}))
	f.Add("550e8400-e29b-41d4-a716-446655440000\x00suffix")

	f.Fuzz(func(t *testing.T, input string) {
		id, err := ParseUserID(input)

		if err == nil {
			// A parsed ID is never nil and must round-trip unchanged.
			if id.IsNil() {
				t.Error("Parse accepted the nil UUID")
			}
			roundTrip, err2 := ParseUserID(id.String())
			if err2 != nil {
				t.Errorf("Valid ID failed round-trip: %v", err2)
			}
			if roundTrip != id {
				t.Error("Round-trip changed ID value")
			}
		}
	})
}

// FuzzParseDataClassification verifies the tier allowlist holds for
// arbitrary input.
func FuzzParseDataClassification(f *testing.F) {
	f.Add("public")
	f.Add("special_category")
	f.Add("")
	f.Add("PUBLIC")
	f.Add("financial ")

	f.Fuzz(func(t *testing.T, input string) {
		c, err := ParseDataClassification(input)
		if err == nil && !c.IsValid() {
			t.Errorf("Parse accepted invalid classification %q", input)
		}
		if err == nil && !validClassifications[c] {
			t.Errorf("Parsed classification %q not in allowlist", input)
		}
	})
}
