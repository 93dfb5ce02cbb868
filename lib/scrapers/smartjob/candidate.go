package smartjob

import "encoding/json"

// SocialLink is one social anchor found on a listing card. Platform is
// "linkedin", "github" or "other", classified in that order.
type SocialLink struct {
	Platform string `json:"platform"`
	Url      string `json:"url"`
}

type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type Education struct {
	Level       string `json:"level,omitempty"`
	Institution string `json:"institution,omitempty"`
	Year        string `json:"year,omitempty"`
	Faculty     string `json:"faculty,omitempty"`
	Field       string `json:"field,omitempty"`
}

type Experience struct {
	Company  string `json:"company,omitempty"`
	Duration string `json:"duration,omitempty"`
	Position string `json:"position,omitempty"`
}

// Candidate is one résumé record. The listing page populates the
// identity and summary fields, the profile page fills in the rest.
// A missing scalar stays absent, a missing section leaves its list
// empty. Nil lists mean the profile page was never reached and stay
// out of the serialized form entirely.
type Candidate struct {
	Name       string `json:"name,omitempty"`
	ProfileUrl string `json:"profile_url,omitempty"`
	ResumeId   string `json:"resume_id,omitempty"`

	JobCategory  string       `json:"job_category,omitempty"`
	CategoryName string       `json:"category_name,omitempty"`
	LastUpdated  string       `json:"last_updated,omitempty"`
	Salary       string       `json:"salary,omitempty"`
	SocialLinks  []SocialLink `json:"social_links"`

	About      string       `json:"about,omitempty"`
	Languages  []Language   `json:"languages"`
	Education  []Education  `json:"education"`
	Experience []Experience `json:"experience"`
	Skills     []string     `json:"skills"`

	Phone          string `json:"phone,omitempty"`
	Age            string `json:"age,omitempty"`
	WorkExperience string `json:"work_experience,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
}

// jsonCandidate mirrors Candidate with pointer lists, so a nil section
// drops its key instead of rendering as null. An empty non-nil section
// still serializes as [].
type jsonCandidate struct {
	Name       string `json:"name,omitempty"`
	ProfileUrl string `json:"profile_url,omitempty"`
	ResumeId   string `json:"resume_id,omitempty"`

	JobCategory  string        `json:"job_category,omitempty"`
	CategoryName string        `json:"category_name,omitempty"`
	LastUpdated  string        `json:"last_updated,omitempty"`
	Salary       string        `json:"salary,omitempty"`
	SocialLinks  *[]SocialLink `json:"social_links,omitempty"`

	About      string        `json:"about,omitempty"`
	Languages  *[]Language   `json:"languages,omitempty"`
	Education  *[]Education  `json:"education,omitempty"`
	Experience *[]Experience `json:"experience,omitempty"`
	Skills     *[]string     `json:"skills,omitempty"`

	Phone          string `json:"phone,omitempty"`
	Age            string `json:"age,omitempty"`
	WorkExperience string `json:"work_experience,omitempty"`
	EducationLevel string `json:"education_level,omitempty"`
}

func (c Candidate) MarshalJSON() ([]byte, error) {
	out := jsonCandidate{
		Name:           c.Name,
		ProfileUrl:     c.ProfileUrl,
		ResumeId:       c.ResumeId,
		JobCategory:    c.JobCategory,
		CategoryName:   c.CategoryName,
		LastUpdated:    c.LastUpdated,
		Salary:         c.Salary,
		About:          c.About,
		Phone:          c.Phone,
		Age:            c.Age,
		WorkExperience: c.WorkExperience,
		EducationLevel: c.EducationLevel,
	}
	if c.SocialLinks != nil {
		out.SocialLinks = &c.SocialLinks
	}
	if c.Languages != nil {
		out.Languages = &c.Languages
	}
	if c.Education != nil {
		out.Education = &c.Education
	}
	if c.Experience != nil {
		out.Experience = &c.Experience
	}
	if c.Skills != nil {
		out.Skills = &c.Skills
	}
	return json.Marshal(out)
}
