package keywords

// Curated keyword vocabulary. This list overlaps the skills vocabulary by
// design: keywords are reported and weighted as their own dimension.

var productKeywords = []string{
	"product strategy", "product vision", "roadmap", "roadmapping", "product roadmap",
	"user research", "user testing", "user interviews", "customer research",
	"a/b testing", "ab testing", "experimentation", "split testing",
	"product analytics", "metrics", "kpis", "analytics", "data analysis", "data analytics",
	"user stories", "backlog", "sprint planning", "agile", "scrum", "kanban",
	"stakeholder management", "cross-functional leadership", "cross-functional",
	"go-to-market", "gtm", "product launch", "feature prioritization",
	"mvp", "minimum viable product", "product-market fit",
}

var dataKeywords = []string{
	"sql", "postgresql", "mysql", "database", "data analysis", "data analytics",
	"analytics", "data visualization", "tableau", "power bi", "looker",
	"google analytics", "excel", "spreadsheets", "metrics", "kpis",
	"dashboards", "reporting", "python", "r", "statistical analysis",
	"data science", "machine learning", "predictive analytics",
	"business intelligence", "bi", "data-driven", "quantitative analysis",
}

var techKeywords = []string{
	"react", "vue", "angular", "javascript", "typescript", "python", "java",
	"node.js", "nodejs", "express", "django", "flask", "spring",
	"html5", "html", "css3", "css", "sass", "tailwind", "bootstrap",
	"redux", "graphql", "rest api", "restful", "api",
	"mongodb", "postgresql", "mysql", "redis", "docker", "kubernetes",
	"aws", "azure", "gcp", "git", "ci/cd", "jenkins", "webpack", "vite",
	"jest", "testing", "unit testing", "integration testing",
}

var softKeywords = []string{
	"leadership", "communication", "collaboration", "problem-solving",
	"critical thinking", "decision making", "mentoring", "coaching",
	"team building", "presentation", "public speaking", "negotiation",
	"influence", "stakeholder management", "agile methodology",
	"project management", "process improvement",
}

// Vocabulary returns the flattened keyword vocabulary.
func Vocabulary() []string {
	groups := [][]string{productKeywords, dataKeywords, techKeywords, softKeywords}

	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
