package pipeline

// Fixed vocabulary tables for the extraction and analysis stages. These are
// read-only after process start; matching is case-insensitive substring
// containment and output order always follows vocabulary order, not the
// order terms appear in the input text.

// skillVocabulary is scanned against resume text. Grouped informally:
// languages, data science, frameworks/tools, cloud, databases, soft skills.
var skillVocabulary = []string{
	// languages & core technical
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "Go", "Rust",
	"Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB", "Perl",
	"HTML", "CSS", "SQL", "NoSQL", "Bash", "PowerShell",
	// data science & analytics
	"Machine Learning", "Deep Learning", "Data Science", "Data Analysis",
	"Data Visualization", "Statistics", "Natural Language Processing",
	"Computer Vision", "TensorFlow", "PyTorch", "Keras", "Scikit-learn",
	"Pandas", "NumPy", "Analytics", "Big Data", "Data Mining",
	"Predictive Modeling", "A/B Testing", "ETL",
	// frameworks & tools
	"React", "Angular", "Vue", "Node.js", "Django", "Flask", "Spring",
	"Express", "Git", "Jenkins", "JIRA", "Confluence", "Tableau", "Power BI",
	"Excel", "Linux", "Agile", "Scrum", "Kanban", "CI/CD", "REST", "GraphQL",
	"Microservices", "Unit Testing", "Selenium",
	// cloud & infrastructure
	"AWS", "Azure", "Google Cloud", "GCP", "Docker", "Kubernetes",
	"Terraform", "Ansible", "Serverless", "Lambda", "EC2", "S3",
	"Cloud Computing", "DevOps",
	// databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "Oracle", "SQL Server",
	"Cassandra", "DynamoDB", "Elasticsearch", "SQLite", "Snowflake",
	"BigQuery",
	// soft skills
	"Communication", "Leadership", "Teamwork", "Problem Solving",
	"Critical Thinking", "Time Management", "Project Management",
	"Collaboration", "Presentation", "Negotiation", "Mentoring",
	"Customer Service", "Strategic Planning", "Adaptability",
	"Attention to Detail",
}

// requirementVocabulary is scanned against job descriptions. It is a
// separately maintained list from skillVocabulary: the two overlap heavily
// but are not identical, since postings and resumes phrase the same
// capability differently. Keep them independent.
var requirementVocabulary = []string{
	"python", "java", "javascript", "typescript", "c++", "c#", "golang",
	"ruby", "php", "html", "css", "sql", "nosql",
	"machine learning", "deep learning", "data science", "data analysis",
	"data visualization", "statistics", "nlp", "tensorflow", "pytorch",
	"pandas", "numpy", "analytics", "big data", "data mining", "etl",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"git", "jenkins", "jira", "tableau", "power bi", "excel", "linux",
	"agile", "scrum", "ci/cd", "rest", "graphql", "microservices",
	"automated testing",
	"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
	"terraform", "devops", "cloud",
	"mysql", "postgresql", "mongodb", "redis", "elasticsearch", "snowflake",
	"communication", "leadership", "teamwork", "problem solving",
	"project management", "collaboration", "mentoring",
	"stakeholder management", "presentation",
}

// DefaultSkills is substituted by the generator when extraction finds no
// vocabulary match at all and default substitution is enabled in config.
var DefaultSkills = []string{"Communication", "Problem Solving", "Teamwork"}

// actionVerbs drive the sentence-based fallback for responsibility
// extraction when no trigger phrase matches.
var actionVerbs = []string{
	"develop", "manage", "design", "create", "implement", "lead", "analyze",
	"build", "maintain", "collaborate", "support", "drive", "deliver",
	"optimize", "coordinate",
}

// Section header keywords for the line-oriented resume scans. A line is a
// header when its trimmed text (minus a trailing colon) equals a keyword,
// case-insensitively.
var (
	workHistoryHeaders = []string{"experience", "employment", "work history", "professional experience"}
	summaryHeaders     = []string{"summary", "profile", "objective", "about me", "professional summary"}
	otherSectionHeads  = []string{"education", "skills", "projects", "references"}
)

// allSectionHeaders is the union used to terminate summary collection.
var allSectionHeaders = func() []string {
	all := make([]string, 0, len(workHistoryHeaders)+len(otherSectionHeads))
	all = append(all, workHistoryHeaders...)
	all = append(all, otherSectionHeads...)
	return all
}()
