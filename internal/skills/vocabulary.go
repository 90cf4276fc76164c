package skills

// Curated skill vocabulary, grouped by discipline. Matching is flat across
// all groups; the grouping exists so each table can be reviewed and extended
// independently.

var productManagementSkills = []string{
	"roadmapping", "roadmap", "product roadmap", "user research", "user testing",
	"a/b testing", "ab testing", "experimentation", "product strategy",
	"product vision", "user stories", "backlog management", "sprint planning",
	"agile methodology", "scrum", "kanban", "stakeholder management",
	"cross-functional leadership", "go-to-market", "gtm strategy",
	"competitive analysis", "market research", "customer feedback",
	"feature prioritization", "mvp", "minimum viable product",
}

var dataAnalyticsSkills = []string{
	"data analysis", "data analytics", "analytics", "sql", "postgresql", "mysql",
	"data visualization", "tableau", "power bi", "looker", "google analytics",
	"excel", "spreadsheets", "metrics", "kpis", "dashboards", "reporting",
	"python", "r", "statistical analysis", "data science", "machine learning",
	"predictive analytics", "business intelligence", "bi",
}

var technicalSkills = []string{
	"react", "vue", "angular", "javascript", "typescript", "python", "java",
	"c++", "c#", "golang", "rust", "kotlin", "swift", "ruby", "php", "scala",
	"node.js", "nodejs", "express", "django", "flask", "spring",
	"html5", "html", "css3", "css", "sass", "less", "tailwind", "bootstrap",
	"redux", "mobx", "graphql", "rest api", "restful", "api", "grpc",
	"microservices", "mongodb", "postgresql", "mysql", "redis", "kafka",
	"rabbitmq", "elasticsearch", "docker", "kubernetes", "terraform",
	"aws", "azure", "gcp", "linux", "bash", "git", "ci/cd", "jenkins",
	"github actions", "webpack", "vite", "observability", "site reliability",
	"jest", "mocha", "cypress", "testing", "unit testing", "integration testing",
}

var designSkills = []string{
	"ux design", "ui design", "user experience", "user interface", "wireframing",
	"prototyping", "figma", "sketch", "adobe xd", "invision", "usability testing",
	"interaction design", "visual design", "design systems", "responsive design",
}

var businessSkills = []string{
	"strategy", "strategic planning", "business development", "partnerships",
	"revenue growth", "p&l", "budget management", "forecasting", "roi",
	"okrs", "objectives and key results", "project management",
	"change management", "process improvement", "operational excellence",
	"vendor management", "contract negotiation", "pricing strategy",
	"financial modeling", "market sizing", "customer success",
	"account management", "risk management", "compliance", "procurement",
}

var softSkills = []string{
	"leadership", "communication", "collaboration", "problem-solving",
	"critical thinking", "decision making", "mentoring", "coaching",
	"team building", "conflict resolution", "presentation", "public speaking",
	"negotiation", "influence", "cross-functional", "stakeholder management",
}

// Vocabulary returns the flattened skill vocabulary across all disciplines.
// The returned slice is a fresh copy; callers may not mutate shared state.
func Vocabulary() []string {
	groups := [][]string{
		productManagementSkills,
		dataAnalyticsSkills,
		technicalSkills,
		designSkills,
		businessSkills,
		softSkills,
	}

	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
