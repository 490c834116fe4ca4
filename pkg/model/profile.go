package model

// Project is one project entry extracted from a resume.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CandidateProfile is the normalized resume information for one
// candidate. It is immutable once attached to a session.
type CandidateProfile struct {
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Experience string    `json:"experience"`
	Skills     []string  `json:"skills"`
	Projects   []Project `json:"projects"`
	Education  string    `json:"education,omitempty"`
	RawText    string    `json:"raw_text"`
}

// DisplayName returns the candidate's name or the generic fallback used
// in the interview greeting.
func (p CandidateProfile) DisplayName() string {
	if p.Name == "" {
		return "Candidate"
	}
	return p.Name
}
