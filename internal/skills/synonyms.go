package skills

import "github.com/jonathan/jobfit-analyzer/internal/textmatch"

// synonymTable maps skills to semantically equivalent phrasings. Expansion
// is bidirectional (see textmatch.PresentWithSynonyms), so a resume that
// says "postgresql" satisfies a job that requires "sql".
var synonymTable = textmatch.Synonyms{
	"data analysis":               {"analytics", "data analytics", "analysis"},
	"analytics":                   {"data analysis", "data analytics"},
	"sql":                         {"postgresql", "mysql", "database"},
	"a/b testing":                 {"ab testing", "experimentation", "split testing", "testing framework"},
	"javascript":                  {"js", "ecmascript"},
	"typescript":                  {"ts"},
	"node.js":                     {"nodejs", "node"},
	"user research":               {"customer research", "user interviews", "research"},
	"roadmapping":                 {"roadmap", "product roadmap", "strategic planning"},
	"cross-functional leadership": {"cross functional", "cross-functional teams", "managed teams"},
}
