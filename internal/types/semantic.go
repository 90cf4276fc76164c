package types

// SemanticAnalysis is the structured output of the external LLM analyzer.
// It supplements the deterministic factors and is always optional: the
// deterministic scorers run and report regardless of whether this was
// produced.
type SemanticAnalysis struct {
	SkillMatch      SemanticSkillMatch      `json:"skill_match"`
	ExperienceMatch SemanticExperienceMatch `json:"experience_match"`
	JobAnalysis     SemanticJobAnalysis     `json:"job_analysis"`
	ResumeParsed    SemanticResumeParsed    `json:"resume_parsed"`
}

// SemanticSkillMatch is the LLM's view of skill overlap, including
// transferable skills the deterministic matcher cannot infer.
type SemanticSkillMatch struct {
	Matched      []string `json:"matched"`
	Missing      []string `json:"missing"`
	Transferable []string `json:"transferable"`
	MatchScore   int      `json:"match_score"`
}

// SemanticExperienceMatch is the LLM's view of the experience comparison.
type SemanticExperienceMatch struct {
	YourExperience     string `json:"your_experience"`
	RequiredExperience string `json:"required_experience"`
	Score              int    `json:"score"`
	Explanation        string `json:"explanation"`
}

// SemanticJobAnalysis is the LLM's parse of the job posting.
type SemanticJobAnalysis struct {
	Location          string `json:"location"`
	RequiredEducation string `json:"required_education"`
	RoleTitle         string `json:"role_title"`
}

// SemanticResumeParsed is the LLM's parse of the resume.
type SemanticResumeParsed struct {
	Education string `json:"education"`
	Location  string `json:"location"`
}
