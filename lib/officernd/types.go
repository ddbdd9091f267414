package officernd

// Privacy carries the API's consent flags. The model is opt-out: an absent
// object or an absent flag means visible/shown, only an explicit false hides.
type Privacy struct {
	IsVisible          *bool `json:"isVisible,omitempty"`
	ShowContactDetails *bool `json:"showContactDetails,omitempty"`
	ShowSocialProfiles *bool `json:"showSocialProfiles,omitempty"`
}

// SocialProfiles is the structured social link map. Members and companies
// also carry legacy flat fields that predate it (see Member, Company).
type SocialProfiles struct {
	Twitter   string `json:"twitter,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

// Team is the company reference the API embeds on member records.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Member status values returned by the API.
const (
	MemberStatusActive      = "active"
	MemberStatusFormer      = "former"
	MemberStatusPending     = "pending"
	MemberStatusContact     = "contact"
	MemberStatusNotApproved = "not_approved"
	MemberStatusDropIn      = "drop-in"
	MemberStatusLead        = "lead"
)

// Company status values returned by the API.
const (
	CompanyStatusActive  = "active"
	CompanyStatusFormer  = "former"
	CompanyStatusPending = "pending"
	CompanyStatusLead    = "lead"
)

type Member struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      string         `json:"status"`
	Location    string         `json:"location,omitempty"`
	StartDate   string         `json:"startDate,omitempty"`
	Email       string         `json:"email,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	Image       *string        `json:"image,omitempty"`
	Description string         `json:"description,omitempty"`
	Company     string         `json:"company,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`

	Privacy        *Privacy        `json:"privacy,omitempty"`
	SocialProfiles *SocialProfiles `json:"socialProfiles,omitempty"`

	// legacy flat social fields, superseded by SocialProfiles
	TwitterHandle string `json:"twitterHandle,omitempty"`
	LinkedIn      string `json:"linkedin,omitempty"`

	Team *Team `json:"team,omitempty"`
}

type Company struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Status      string         `json:"status"`
	Location    string         `json:"location,omitempty"`
	StartDate   string         `json:"startDate,omitempty"`
	Description string         `json:"description,omitempty"`
	Email       string         `json:"email,omitempty"`
	Image       *string        `json:"image,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Properties  map[string]any `json:"properties,omitempty"`
	Tags        []string       `json:"tags,omitempty"`
	CreatedAt   string         `json:"createdAt,omitempty"`

	Privacy        *Privacy        `json:"privacy,omitempty"`
	SocialProfiles *SocialProfiles `json:"socialProfiles,omitempty"`

	// legacy flat twitter field, superseded by SocialProfiles
	TwitterHandle string `json:"twitterHandle,omitempty"`
}

// SDGs extracts the recognized `sdg` key from the open properties map.
// Absent key, wrong type or empty list all yield an empty slice.
func (m Member) SDGs() []string { return sdgList(m.Properties) }

// SDGs extracts the recognized `sdg` key from the open properties map.
func (c Company) SDGs() []string { return sdgList(c.Properties) }

func sdgList(properties map[string]any) []string {
	out := []string{}
	raw, ok := properties["sdg"].([]any)
	if !ok {
		return out
	}
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// page is the envelope every list endpoint responds with.
type page[T any] struct {
	RangeStart int    `json:"rangeStart"`
	RangeEnd   int    `json:"rangeEnd"`
	CursorNext string `json:"cursorNext,omitempty"`
	CursorPrev string `json:"cursorPrev,omitempty"`
	Results    []T    `json:"results"`
}
