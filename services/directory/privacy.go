package directory

import "communitysync/lib/officernd"

// privacyFlags is the display-side inversion of the API's consent flags:
// the API says what to show, the renderer wants to know what to hide.
type privacyFlags struct {
	HideContactDetails bool
	HidePublicProfiles bool
}

// profileHidden decides record visibility. The privacy object is opt-out:
// a record is hidden only by an explicit isVisible=false; an absent object
// or absent flag means visible.
func profileHidden(p *officernd.Privacy) bool {
	return p != nil && p.IsVisible != nil && !*p.IsVisible
}

// privacyOptions inverts the show-flags into hide-flags under the same
// opt-out rule: only an explicit false hides anything.
func privacyOptions(p *officernd.Privacy) privacyFlags {
	if p == nil {
		return privacyFlags{}
	}
	return privacyFlags{
		HideContactDetails: p.ShowContactDetails != nil && !*p.ShowContactDetails,
		HidePublicProfiles: p.ShowSocialProfiles != nil && !*p.ShowSocialProfiles,
	}
}
