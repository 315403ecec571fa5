package content

// Portfolio is the complete, read-only content collection every page and
// query function reads from.
type Portfolio struct {
	Personal       PersonalInfo          `json:"personal" yaml:"personal"`
	Skills         Skills                `json:"skills" yaml:"skills"`
	Experience     []WorkExperience      `json:"experience" yaml:"experience"`
	Volunteer      []VolunteerExperience `json:"volunteer,omitempty" yaml:"volunteer,omitempty"`
	Education      []Education           `json:"education" yaml:"education"`
	Certifications []Certification       `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	Projects       []Project             `json:"projects" yaml:"projects"`
	Navigation     Navigation            `json:"navigation" yaml:"navigation"`
	Site           SiteConfig            `json:"site" yaml:"site"`
}

// PersonalInfo describes the portfolio owner.
type PersonalInfo struct {
	Name         string            `json:"name" yaml:"name"`
	FirstName    string            `json:"firstName" yaml:"firstName"`
	LastName     string            `json:"lastName" yaml:"lastName"`
	Title        string            `json:"title" yaml:"title"`
	Tagline      string            `json:"tagline" yaml:"tagline"`
	Email        string            `json:"email" yaml:"email"`
	Phone        string            `json:"phone,omitempty" yaml:"phone,omitempty"`
	Location     string            `json:"location" yaml:"location"`
	ShortBio     string            `json:"shortBio" yaml:"shortBio"`
	FullBio      string            `json:"fullBio" yaml:"fullBio"`
	Social       map[string]string `json:"social,omitempty" yaml:"social,omitempty"`
	ResumeURL    string            `json:"resumeUrl,omitempty" yaml:"resumeUrl,omitempty"`
	ProfileImage string            `json:"profileImage,omitempty" yaml:"profileImage,omitempty"`
	Availability Availability      `json:"availability" yaml:"availability"`
}

// Availability is the owner's hiring status line.
type Availability struct {
	IsAvailable bool   `json:"isAvailable" yaml:"isAvailable"`
	Status      string `json:"status" yaml:"status"`
}

// Skills groups technical skills by category plus free-form soft skills.
type Skills struct {
	Technical []SkillCategory  `json:"technical" yaml:"technical"`
	Soft      []string         `json:"soft,omitempty" yaml:"soft,omitempty"`
	Languages []SpokenLanguage `json:"languages,omitempty" yaml:"languages,omitempty"`
}

// SkillCategory is a named group of skills such as "Frontend".
type SkillCategory struct {
	Category string  `json:"category" yaml:"category"`
	Items    []Skill `json:"items" yaml:"items"`
}

// Skill is a self-reported proficiency, Level is 0-100.
type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

type SpokenLanguage struct {
	Name        string `json:"name" yaml:"name"`
	Proficiency string `json:"proficiency" yaml:"proficiency"`
}

// WorkExperience is a single position. StartDate and EndDate are display
// strings such as "Jan 2022".
type WorkExperience struct {
	ID               string   `json:"id" yaml:"id"`
	Company          string   `json:"company" yaml:"company"`
	Role             string   `json:"role" yaml:"role"`
	Type             string   `json:"type,omitempty" yaml:"type,omitempty"`
	StartDate        string   `json:"startDate" yaml:"startDate"`
	EndDate          string   `json:"endDate" yaml:"endDate"`
	IsCurrent        bool     `json:"isCurrent" yaml:"isCurrent"`
	Location         string   `json:"location,omitempty" yaml:"location,omitempty"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
	Technologies     []string `json:"technologies,omitempty" yaml:"technologies,omitempty"`
	Achievements     []string `json:"achievements,omitempty" yaml:"achievements,omitempty"`
}

type VolunteerExperience struct {
	ID               string   `json:"id" yaml:"id"`
	Organization     string   `json:"organization" yaml:"organization"`
	Role             string   `json:"role" yaml:"role"`
	StartDate        string   `json:"startDate" yaml:"startDate"`
	EndDate          string   `json:"endDate" yaml:"endDate"`
	IsCurrent        bool     `json:"isCurrent" yaml:"isCurrent"`
	Description      string   `json:"description,omitempty" yaml:"description,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
	Impact           string   `json:"impact,omitempty" yaml:"impact,omitempty"`
}

type Education struct {
	ID              string   `json:"id" yaml:"id"`
	Institution     string   `json:"institution" yaml:"institution"`
	Degree          string   `json:"degree" yaml:"degree"`
	Field           string   `json:"field" yaml:"field"`
	StartDate       string   `json:"startDate" yaml:"startDate"`
	EndDate         string   `json:"endDate" yaml:"endDate"`
	Location        string   `json:"location,omitempty" yaml:"location,omitempty"`
	Grade           string   `json:"grade,omitempty" yaml:"grade,omitempty"`
	RelevantCourses []string `json:"relevantCourses,omitempty" yaml:"relevantCourses,omitempty"`
	Activities      []string `json:"activities,omitempty" yaml:"activities,omitempty"`
}

type Certification struct {
	Name         string `json:"name" yaml:"name"`
	Issuer       string `json:"issuer" yaml:"issuer"`
	Date         string `json:"date" yaml:"date"`
	CredentialID string `json:"credentialId,omitempty" yaml:"credentialId,omitempty"`
	URL          string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Status is the lifecycle state of a project.
type Status string

const (
	StatusCompleted  Status = "completed"
	StatusOngoing    Status = "ongoing"
	StatusInProgress Status = "in-progress"
	StatusPlanned    Status = "planned"
)

// Project is a portfolio project. TechStack keeps author order and is not
// deduplicated.
type Project struct {
	ID               string        `json:"id" yaml:"id"`
	Slug             string        `json:"slug" yaml:"slug"`
	Title            string        `json:"title" yaml:"title"`
	Category         string        `json:"category" yaml:"category"`
	Type             string        `json:"type" yaml:"type"`
	Status           Status        `json:"status" yaml:"status"`
	Featured         bool          `json:"featured" yaml:"featured"`
	ShortDescription string        `json:"shortDescription" yaml:"shortDescription"`
	FullDescription  string        `json:"fullDescription,omitempty" yaml:"fullDescription,omitempty"`
	KeyFeatures      []string      `json:"keyFeatures,omitempty" yaml:"keyFeatures,omitempty"`
	TechStack        []string      `json:"techStack" yaml:"techStack"`
	Role             string        `json:"role,omitempty" yaml:"role,omitempty"`
	TeamSize         int           `json:"teamSize,omitempty" yaml:"teamSize,omitempty"`
	StartDate        string        `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate          string        `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	Year             int           `json:"year" yaml:"year"`
	Duration         string        `json:"duration,omitempty" yaml:"duration,omitempty"`
	Links            ProjectLinks  `json:"links" yaml:"links"`
	Images           ProjectImages `json:"images" yaml:"images"`
}

type ProjectLinks struct {
	GitHub string `json:"github,omitempty" yaml:"github,omitempty"`
	Live   string `json:"live,omitempty" yaml:"live,omitempty"`
}

type ProjectImages struct {
	Thumbnail   string   `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Screenshots []string `json:"screenshots,omitempty" yaml:"screenshots,omitempty"`
}

// Navigation holds the header and footer link lists.
type Navigation struct {
	Main   []NavigationEntry `json:"main" yaml:"main"`
	Footer []NavigationEntry `json:"footer" yaml:"footer"`
}

type NavigationEntry struct {
	Name string `json:"name" yaml:"name"`
	Href string `json:"href" yaml:"href"`
}

// SiteConfig carries page metadata.
type SiteConfig struct {
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	OGImage     string   `json:"ogImage,omitempty" yaml:"ogImage,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Author      string   `json:"author" yaml:"author"`
}
