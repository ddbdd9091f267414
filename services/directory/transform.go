package directory

import (
	"context"
	"log/slog"

	"communitysync/lib/officernd"
	"communitysync/lib/slugutil"
	"communitysync/lib/urlutil"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// memberSocials resolves the social links for a member: prefer the structured
// socialProfiles map, fall back to the legacy flat fields that predate it.
// Instagram and facebook only ever existed in the structured map.
func memberSocials(raw officernd.Member) SocialLinks {
	var structured officernd.SocialProfiles
	if raw.SocialProfiles != nil {
		structured = *raw.SocialProfiles
	}
	return SocialLinks{
		Twitter:   firstNonEmpty(structured.Twitter, raw.TwitterHandle),
		LinkedIn:  firstNonEmpty(structured.LinkedIn, raw.LinkedIn),
		Instagram: structured.Instagram,
		Facebook:  structured.Facebook,
	}
}

// companySocials is the company-side fallback chain. Companies never had a
// legacy linkedin field, only twitter.
func companySocials(raw officernd.Company) SocialLinks {
	var structured officernd.SocialProfiles
	if raw.SocialProfiles != nil {
		structured = *raw.SocialProfiles
	}
	return SocialLinks{
		Twitter:   firstNonEmpty(structured.Twitter, raw.TwitterHandle),
		LinkedIn:  structured.LinkedIn,
		Instagram: structured.Instagram,
		Facebook:  structured.Facebook,
	}
}

// TransformMember converts one raw member record into its display form, or
// nil when the record is suppressed. Suppression never errors: a hidden
// profile is the member's choice, a missing team leaves nothing to attribute
// the membership to.
func TransformMember(ctx context.Context, raw officernd.Member) *Member {
	if profileHidden(raw.Privacy) {
		return nil
	}
	if raw.Team == nil {
		// some records carry a bare company id without the embedded team
		// object; those cannot be placed on any team page.
		slog.DebugContext(ctx, "dropping member without embedded team",
			"member", raw.ID, "company_ref", raw.Company)
		return nil
	}

	flags := privacyOptions(raw.Privacy)
	return &Member{
		Slug:          slugutil.Slug(raw.Name),
		Name:          raw.Name,
		Email:         raw.Email,
		Phone:         raw.Phone,
		Image:         urlutil.TransformImageURL(raw.Image),
		ImagePriority: urlutil.ImagePriority(raw.Image),
		Tags:          raw.Tags,
		CreatedAt:     raw.CreatedAt,
		Bio:           raw.Description,

		SDGs:           raw.SDGs(),
		SocialProfiles: memberSocials(raw),

		HideContactDetails: flags.HideContactDetails,
		HidePublicProfiles: flags.HidePublicProfiles,

		TeamName: raw.Team.Name,
		TeamSlug: slugutil.Slug(raw.Team.Name),
	}
}

// TransformCompany converts one raw company record into its display form, or
// nil when suppressed. The full raw member list is scanned to attach visible
// members whose embedded team points at this company; input order is kept.
func TransformCompany(ctx context.Context, raw officernd.Company, allMembers []officernd.Member) *Company {
	if profileHidden(raw.Privacy) {
		return nil
	}

	team := make([]MemberRef, 0)
	for _, m := range allMembers {
		if profileHidden(m.Privacy) {
			continue
		}
		if m.Team == nil || m.Team.ID != raw.ID {
			continue
		}
		team = append(team, MemberRef{
			Name: m.Name,
			Slug: slugutil.Slug(m.Name),
		})
	}

	var fixedURL string
	if u := urlutil.FixURL(raw.URL); u != nil {
		fixedURL = *u
	}

	flags := privacyOptions(raw.Privacy)
	return &Company{
		Slug:          slugutil.Slug(raw.Name),
		Name:          raw.Name,
		CreatedAt:     raw.CreatedAt,
		Bio:           raw.Description,
		URL:           fixedURL,
		Image:         urlutil.TransformImageURL(raw.Image),
		ImagePriority: urlutil.ImagePriority(raw.Image),

		SDGs:           raw.SDGs(),
		SocialProfiles: companySocials(raw),

		HideContactDetails: flags.HideContactDetails,
		HidePublicProfiles: flags.HidePublicProfiles,

		TeamMembers: team,
	}
}

// TransformAllMembers maps the member transform over a raw collection,
// dropping suppressed records and preserving input order among survivors.
func TransformAllMembers(ctx context.Context, raws []officernd.Member) []Member {
	out := make([]Member, 0, len(raws))
	for _, raw := range raws {
		if m := TransformMember(ctx, raw); m != nil {
			out = append(out, *m)
		}
	}
	return out
}

// TransformAllCompanies maps the company transform over a raw collection.
func TransformAllCompanies(ctx context.Context, raws []officernd.Company, allMembers []officernd.Member) []Company {
	out := make([]Company, 0, len(raws))
	for _, raw := range raws {
		if c := TransformCompany(ctx, raw, allMembers); c != nil {
			out = append(out, *c)
		}
	}
	return out
}
