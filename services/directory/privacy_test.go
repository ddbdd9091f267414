package directory

import (
	"testing"

	"communitysync/lib/officernd"

	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestProfileHidden(t *testing.T) {
	testCases := []struct {
		name    string
		privacy *officernd.Privacy
		hidden  bool
	}{
		{name: "absent privacy object", privacy: nil, hidden: false},
		{name: "empty privacy object", privacy: &officernd.Privacy{}, hidden: false},
		{name: "explicit visible", privacy: &officernd.Privacy{IsVisible: boolPtr(true)}, hidden: false},
		{name: "explicit hidden", privacy: &officernd.Privacy{IsVisible: boolPtr(false)}, hidden: true},
		{
			name:    "hidden contact details do not hide the profile",
			privacy: &officernd.Privacy{ShowContactDetails: boolPtr(false)},
			hidden:  false,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.hidden, profileHidden(test.privacy))
		})
	}
}

func TestPrivacyOptions(t *testing.T) {
	testCases := []struct {
		name     string
		privacy  *officernd.Privacy
		expected privacyFlags
	}{
		{
			name:     "absent privacy object shows everything",
			privacy:  nil,
			expected: privacyFlags{},
		},
		{
			name:     "empty privacy object shows everything",
			privacy:  &officernd.Privacy{},
			expected: privacyFlags{},
		},
		{
			name:     "explicit opt-outs are inverted",
			privacy:  &officernd.Privacy{ShowContactDetails: boolPtr(false), ShowSocialProfiles: boolPtr(false)},
			expected: privacyFlags{HideContactDetails: true, HidePublicProfiles: true},
		},
		{
			name:     "explicit trues change nothing",
			privacy:  &officernd.Privacy{ShowContactDetails: boolPtr(true), ShowSocialProfiles: boolPtr(true)},
			expected: privacyFlags{},
		},
		{
			name:     "flags are independent",
			privacy:  &officernd.Privacy{ShowSocialProfiles: boolPtr(false)},
			expected: privacyFlags{HidePublicProfiles: true},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, privacyOptions(test.privacy))
		})
	}
}
