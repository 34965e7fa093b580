package payment

import "testing"

func TestMapStatus(t *testing.T) {
	cases := []struct {
		txStatus    string
		fraudStatus string
		want        Outcome
	}{
		{"capture", "accept", OutcomeSuccess},
		{"settlement", "accept", OutcomeSuccess},
		{"cancel", "accept", OutcomeFailed},
		{"deny", "accept", OutcomeFailed},
		{"expire", "accept", OutcomeFailed},
		{"pending", "accept", OutcomeIgnore},
		{"refund", "accept", OutcomeIgnore},
		{"", "accept", OutcomeIgnore},
		// fraud check not accepted: never transition, whatever the status
		{"settlement", "challenge", OutcomeIgnore},
		{"capture", "deny", OutcomeIgnore},
		{"cancel", "", OutcomeIgnore},
	}
	for _, tc := range cases {
		got := MapStatus(tc.txStatus, tc.fraudStatus)
		if got != tc.want {
			t.Errorf("MapStatus(%q, %q) = %v, want %v", tc.txStatus, tc.fraudStatus, got, tc.want)
		}
	}
}
