package urlutil

import "strings"

const (
	// path marker of the workspace platform's legacy image host. everything
	// up to and including the marker is replaced by the site CDN base.
	legacyImageMarker = "officernd/"
	imageCDNBase     = "https://socentral.imgix.net/"
	imageResizeQuery = "?h=640"

	// avatars imported from social platforms count as real photos for
	// sort ordering.
	avatarHostPrefix = "https://pbs.twimg.com/"
)

// DefaultImageURL is served for records without an uploaded image.
const DefaultImageURL = imageCDNBase + "default-profile.png" + imageResizeQuery

// Image sort priorities. Lower sorts first, so profiles with likely-real
// photos surface ahead of generic or missing ones.
const (
	ImagePriorityPhoto   = 1
	ImagePriorityGeneric = 2
	ImagePriorityMissing = 3
)

// TransformImageURL rewrites a raw image reference onto the site CDN with a
// fixed resize. A nil input falls back to the default image; an input without
// the legacy host marker is treated as a bare path and rewritten the same way.
func TransformImageURL(raw *string) string {
	if raw == nil {
		return DefaultImageURL
	}
	path := *raw
	if i := strings.Index(path, legacyImageMarker); i >= 0 {
		path = path[i+len(legacyImageMarker):]
	}
	return imageCDNBase + path + imageResizeQuery
}

// ImagePriority scores a raw image reference for sort ordering. It is total:
// every input maps to exactly one priority.
func ImagePriority(raw *string) int {
	if raw == nil || *raw == "" {
		return ImagePriorityMissing
	}
	if strings.HasPrefix(*raw, "//") || strings.HasPrefix(*raw, avatarHostPrefix) {
		return ImagePriorityPhoto
	}
	return ImagePriorityGeneric
}

// FixURL makes a user-entered website address browser-resolvable. Addresses
// that already carry a scheme pass through; anything else becomes
// scheme-relative.
func FixURL(raw *string) *string {
	if raw == nil {
		return nil
	}
	if strings.HasPrefix(*raw, "http") {
		return raw
	}
	fixed := "//" + *raw
	return &fixed
}
