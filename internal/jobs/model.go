package jobs

// Posting is a job record as supplied by the upstream source. Two field-naming
// schemes coexist in storage: the legacy one (title, company, location, type,
// description, requirements) and the current one (organization,
// locations_derived, employment_type, description_text, seniority,
// remote_derived). A record carries one scheme or the other, occasionally a
// mix; optional fields are pointers so absence and emptiness stay distinct.
type Posting struct {
	ID int64 `json:"id"`

	Title            *string  `json:"title,omitempty"`
	Company          *string  `json:"company,omitempty"`
	Location         *string  `json:"location,omitempty"`
	Type             *string  `json:"type,omitempty"`
	Description      *string  `json:"description,omitempty"`
	Requirements     []string `json:"requirements,omitempty"`
	ApplicationEmail *string  `json:"application_email,omitempty"`

	Organization     *string  `json:"organization,omitempty"`
	LocationsDerived []string `json:"locations_derived,omitempty"`
	EmploymentType   []string `json:"employment_type,omitempty"`
	DescriptionText  *string  `json:"description_text,omitempty"`
	Seniority        *string  `json:"seniority,omitempty"`
	RemoteDerived    *bool    `json:"remote_derived,omitempty"`
}
