package validators

import "testing"

func TestIsEmailDomainValid_MalformedAddresses(t *testing.T) {
	// Only offline cases: addresses rejected before any DNS lookup.
	tests := []string{
		"",
		"no-at-sign",
		"trailing@",
	}

	for _, email := range tests {
		if IsEmailDomainValid(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}
