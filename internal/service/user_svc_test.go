package service

import "testing"

func TestResolveRole(t *testing.T) {
	cases := []struct {
		name         string
		role         string
		wantCreator  bool
		wantConsumer bool
	}{
		{"creator lowercase", "creator", true, false},
		{"creator mixed case", "CREATOR", true, false},
		{"creator padded", "  Creator  ", true, false},
		{"consumer explicit", "consumer", false, true},
		{"empty defaults to consumer", "", false, true},
		{"unrecognized defaults to consumer", "admin", false, true},
		{"superuser not a role", "superuser", false, true},
		{"near miss defaults to consumer", "creators", false, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			isCreator, isConsumer := resolveRole(tc.role)
			if isCreator != tc.wantCreator || isConsumer != tc.wantConsumer {
				t.Errorf("resolveRole(%q) = (%v, %v), want (%v, %v)",
					tc.role, isCreator, isConsumer, tc.wantCreator, tc.wantConsumer)
			}
			// Exactly one flag is always set.
			if isCreator == isConsumer {
				t.Errorf("resolveRole(%q) must set exactly one flag", tc.role)
			}
		})
	}
}
