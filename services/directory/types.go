package directory

// SocialLinks is the normalized social-profile map handed to the renderer.
// It is the structured API map with legacy flat fields already folded in.
type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// MemberRef is the name/slug pair a company page links its members with.
type MemberRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Member is the display-ready member entity. Derived, never mutated after
// construction.
type Member struct {
	Slug          string   `json:"slug"`
	Name          string   `json:"name"`
	Email         string   `json:"email,omitempty"`
	Phone         string   `json:"phone,omitempty"`
	Image         string   `json:"image"`
	ImagePriority int      `json:"imagePriority"`
	Tags          []string `json:"tags,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	Bio           string   `json:"bio,omitempty"`

	SDGs           []string    `json:"sdgs"`
	SocialProfiles SocialLinks `json:"socialProfiles"`

	HideContactDetails bool `json:"hideContactDetails"`
	HidePublicProfiles bool `json:"hidePublicProfiles"`

	TeamName string `json:"teamName"`
	TeamSlug string `json:"teamSlug"`
}

// Company is the display-ready company entity.
type Company struct {
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	CreatedAt     string `json:"createdAt,omitempty"`
	Bio           string `json:"bio,omitempty"`
	URL           string `json:"url,omitempty"`
	Image         string `json:"image"`
	ImagePriority int    `json:"imagePriority"`

	SDGs           []string    `json:"sdgs"`
	SocialProfiles SocialLinks `json:"socialProfiles"`

	HideContactDetails bool `json:"hideContactDetails"`
	HidePublicProfiles bool `json:"hidePublicProfiles"`

	TeamMembers []MemberRef `json:"teamMembers"`
}

// Directory is the full renderer handover: both display arrays, in the order
// the API returned the surviving records.
type Directory struct {
	Members   []Member  `json:"members"`
	Companies []Company `json:"companies"`
}
