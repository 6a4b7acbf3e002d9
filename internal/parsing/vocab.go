package parsing

// Curated vocabulary tables. These are configuration data, not logic: scoring
// and extraction code never references individual terms, only the tables, so
// domains can be extended without touching the extractors.

// generalSkillVocab maps a domain category to its canonical skill terms.
var generalSkillVocab = map[string][]string{
	"programming_languages": {
		"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "PHP", "Ruby",
		"Go", "Swift", "Kotlin", "R", "MATLAB", "Scala", "Rust", "Perl", "Bash",
		"PowerShell", "SQL", "NoSQL",
	},
	"web_development": {
		"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Express",
		"jQuery", "Bootstrap", "Tailwind CSS", "Django", "Flask", "Laravel",
		"Spring Boot", "ASP.NET", "REST API", "GraphQL", "JSON", "XML", "OAuth",
		"Microservices", "Redux",
	},
	"devops": {
		"Docker", "Kubernetes", "AWS", "Azure", "GCP", "Terraform", "Jenkins",
		"CI/CD", "Git", "GitHub", "GitLab", "Linux", "Nginx", "Apache",
		"Ansible", "Prometheus", "Grafana", "Shell Scripting",
	},
	"data_science": {
		"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
		"scikit-learn", "Pandas", "NumPy", "Data Analysis", "Data Visualization",
		"Tableau", "Power BI", "Big Data", "Hadoop", "Spark", "NLP",
		"Computer Vision", "Statistics", "Jupyter",
	},
	"mobile": {
		"Android", "iOS", "React Native", "Flutter", "Xamarin",
		"Mobile Development", "App Development", "Jetpack Compose",
	},
	"database": {
		"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle", "SQL Server",
		"Redis", "Cassandra", "Firebase", "DynamoDB",
	},
	"finance_analysis": {
		"Financial Analysis", "Financial Modeling", "Forecasting", "Budgeting",
		"Valuation", "DCF Analysis", "Equity Research", "Investment Analysis",
		"Portfolio Management", "Risk Assessment", "Financial Planning",
		"Variance Analysis", "Scenario Analysis",
	},
	"finance_accounting": {
		"Financial Reporting", "GAAP", "IFRS", "Balance Sheet",
		"Income Statement", "Cash Flow", "Audit", "Tax", "Bookkeeping",
		"Reconciliation", "Financial Statements", "Cost Accounting",
		"Revenue Recognition", "Accounts Payable", "Accounts Receivable",
	},
	"finance_tools": {
		"Excel", "Advanced Excel", "Macros", "VBA", "QuickBooks", "SAP",
		"Oracle Financials", "Bloomberg Terminal", "FactSet", "Capital IQ",
		"Microsoft Dynamics", "PowerPoint",
	},
	"finance_banking": {
		"Investment Banking", "Commercial Banking", "Corporate Finance", "M&A",
		"Capital Markets", "Wealth Management", "Asset Management",
		"Credit Analysis", "Underwriting", "Private Equity", "Venture Capital",
		"Due Diligence", "Trading", "Securities", "Derivatives",
		"CFA", "CPA", "FRM",
	},
	"medical_clinical": {
		"Patient Care", "Patient Assessment", "Vital Signs", "Diagnosis",
		"Treatment Planning", "Medical Documentation", "Venepuncture",
		"Injections", "Wound Care", "CPR", "BLS", "ACLS", "Emergency Medicine",
		"Triage", "Physical Examination", "Medication Administration",
		"Suturing", "Catheterization", "Intubation",
	},
	"medical_knowledge": {
		"Anatomy", "Physiology", "Pathology", "Pharmacology", "Microbiology",
		"Immunology", "Biochemistry", "Genetics", "Disease Management",
		"Medical Terminology", "Differential Diagnosis", "Clinical Research",
	},
	"medical_systems": {
		"Electronic Medical Records", "EMR", "EHR", "Health Informatics",
		"HIPAA", "Healthcare Compliance", "Medical Billing", "ICD-10",
		"Hospital Management", "Public Health", "Telemedicine",
	},
	"medical_specialties": {
		"Internal Medicine", "Surgery", "Pediatrics", "Obstetrics", "Gynecology",
		"Cardiology", "Neurology", "Oncology", "Psychiatry", "Radiology",
		"Anesthesiology", "Family Medicine", "Dermatology", "Geriatrics",
	},
}

// softSkillVocab lists generic professional skills that apply across domains.
// When a term appears in both vocabularies the soft classification wins.
var softSkillVocab = []string{
	"Communication", "Presentation Skills", "Public Speaking", "Writing",
	"Technical Writing", "Documentation", "Reporting",
	"Leadership", "Management", "Team Leadership", "People Management",
	"Supervision", "Decision Making", "Strategic Thinking", "Mentoring",
	"Coaching", "Delegation",
	"Teamwork", "Collaboration", "Team Building", "Interpersonal Skills",
	"Problem Solving", "Problem-solving", "Critical Thinking",
	"Analytical Skills", "Troubleshooting", "Root Cause Analysis",
	"Creative Problem Solving", "Debugging",
	"Time Management", "Time-management", "Organization", "Multitasking",
	"Prioritization", "Attention to Detail", "Adaptability", "Flexibility",
	"Initiative", "Customer Service", "Negotiation", "Conflict Resolution",
	"Empathy", "Creativity", "Resilience", "Emotional Intelligence",
	"Project Management", "Research", "Counseling",
}

// industryKeywords drives primary-field identification (see primary_field.go).
var industryKeywords = map[string][]string{
	"computer_science": {
		"software", "web", "development", "programming", "engineering",
		"data science", "IT", "information technology", "tech", "cyber",
		"frontend", "backend", "full stack", "devops", "cloud",
		"artificial intelligence", "AI", "ML", "machine learning", "UX", "UI",
		"database", "algorithm", "coding", "computer science", "developer",
	},
	"finance": {
		"finance", "financial", "banking", "investment", "accounting",
		"auditing", "wealth management", "trading", "asset management", "risk",
		"tax", "economic", "insurance", "fintech", "budget", "treasury",
		"regulatory", "compliance", "portfolio", "equity", "capital", "cfa",
		"cpa", "frm", "analyst", "forecasting", "ledger", "commerce",
	},
	"medical": {
		"medical", "healthcare", "clinical", "hospital", "patient care",
		"pharmacy", "doctor", "physician", "nursing", "dental", "health",
		"biomedical", "pharmaceutical", "telemedicine", "surgery", "pediatrics",
		"anatomy", "diagnosis", "suturing", "mbbs", "md", "rn", "pharmacology",
		"physiology", "pathology",
	},
}

// fieldTiePriority breaks ties between equally scored industry fields.
var fieldTiePriority = []string{"computer_science", "finance", "medical"}

// sectionHeaders maps a canonical section key to its heading variants.
// Matching is case-insensitive with all whitespace removed.
var sectionHeaders = map[string][]string{
	"personal":   {"contact", "personal information", "personal details", "contact information"},
	"summary":    {"profile", "summary", "objective", "about me", "professional summary"},
	"education":  {"education", "academic background", "academic qualifications", "qualifications"},
	"experience": {"experience", "employment history", "work history", "professional experience", "work experience"},
	"skills":     {"skills", "expertise", "competencies", "technical skills", "technologies"},
	"languages":  {"languages", "language proficiency"},
	"interests":  {"interests", "hobbies", "activities"},
	"references": {"references", "reference"},
}

// degreePrefixes mark the start of a degree phrase in education entries.
var degreePrefixes = []string{
	"Bachelor", "Master", "PhD", "Doctor", "BSc", "MSc", "BA", "MBA", "BBA",
	"BAcc", "BCom", "MBBS", "MD", "BPharm", "MPharm", "BNurs", "Associate",
	"Diploma", "Certificate", "Foundation", "Matriculation",
}

// validLanguages whitelists spoken-language names for the language extractor.
var validLanguages = []string{
	"English", "Spanish", "French", "German", "Italian", "Portuguese",
	"Russian", "Chinese", "Japanese", "Korean", "Arabic", "Hindi", "Bengali",
	"Dutch", "Swedish", "Norwegian", "Danish", "Finnish", "Polish", "Czech",
	"Hungarian", "Romanian", "Greek", "Turkish", "Hebrew", "Thai",
	"Vietnamese", "Indonesian", "Malay", "Filipino", "Urdu", "Persian", "Tamil",
}

// proficiencyLevels converts qualitative proficiency words to a 0-100 scale.
// Ordered so longer/stronger words are checked first.
var proficiencyLevels = []struct {
	Word  string
	Value int
}{
	{"Native", 100},
	{"Fluent", 90},
	{"Advanced", 80},
	{"Proficient", 70},
	{"Intermediate", 50},
	{"Beginner", 20},
	{"Basic", 30},
}

// skillCategoryLabels are the "Category: item, item" labels treated as skill
// lists by the free-text skill extractor.
var skillCategoryLabels = map[string]struct{}{
	"skills":        {},
	"technologies":  {},
	"languages":     {},
	"frameworks":    {},
	"tools":         {},
	"proficient in": {},
	"expertise in":  {},
}
