package profile

// Experience is a single work-history entry.
type Experience struct {
	Title   string `json:"title"`
	Company string `json:"company"`
}

// Education is a single education entry. Institution is left blank by the
// extractor; there is no separate institution parser.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
}

// Profile holds structured fields extracted from resume text. Every field
// defaults to its empty value; extraction never fails the whole profile for
// a missing sub-field.
type Profile struct {
	Name       string       `json:"name"`
	Email      string       `json:"email"`
	Phone      string       `json:"phone"`
	Skills     []string     `json:"skills"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Languages  []string     `json:"languages"`
	RawText    string       `json:"raw_text"`
}
