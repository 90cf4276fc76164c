package types

// RoleType is the category of role a job posting is hiring for.
type RoleType string

// Role type constants cover the six detectable categories plus General,
// used when no category's trigger phrases appear in the job text.
const (
	RoleProductManager RoleType = "Product Manager"
	RoleEngineering    RoleType = "Engineering"
	RoleDataScience    RoleType = "Data Science"
	RoleDesign         RoleType = "Design"
	RoleMarketing      RoleType = "Marketing"
	RoleSales          RoleType = "Sales"
	RoleGeneral        RoleType = "General"
)

// ExperienceMatchResult holds the outcome of the experience analysis.
// CandidateYears counts only experience in the detected role type;
// TotalExperience counts any experience regardless of role.
type ExperienceMatchResult struct {
	Score            int      `json:"score"`
	CandidateYears   int      `json:"candidate_years"`
	RequiredYears    int      `json:"required_years"`
	DetectedRoleType RoleType `json:"detected_role_type"`
	TotalExperience  int      `json:"total_experience"`
	Explanation      string   `json:"explanation"`

	// MissingResumeSignal is true when neither role-specific nor total
	// experience could be extracted from the resume.
	MissingResumeSignal bool `json:"missing_resume_signal,omitempty"`
	// MissingJobSignal is true when the job text contains no years requirement.
	MissingJobSignal bool `json:"missing_job_signal,omitempty"`
}
