package model

import "time"

// PageMeta overrides the global metadata for a single public page.
type PageMeta struct {
	Title       string `json:"title,omitempty" firestore:"title,omitempty"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
}

// SiteSettings is the singleton configuration document for the public site.
type SiteSettings struct {
	SiteName               string              `json:"siteName" firestore:"siteName"`
	DefaultMetaDescription string              `json:"defaultMetaDescription" firestore:"defaultMetaDescription"`
	DefaultMetaKeywords    string              `json:"defaultMetaKeywords" firestore:"defaultMetaKeywords"`
	SiteOGImageURL         string              `json:"siteOgImageUrl,omitempty" firestore:"siteOgImageUrl,omitempty"`
	MaintenanceMode        bool                `json:"maintenanceMode" firestore:"maintenanceMode"`
	PageMetas              map[string]PageMeta `json:"pageMetas,omitempty" firestore:"pageMetas,omitempty"`
}

// Experience is one entry of the about-me work history. Order is display order.
type Experience struct {
	ID          string `json:"id" firestore:"id"`
	Role        string `json:"role" firestore:"role"`
	Company     string `json:"company" firestore:"company"`
	Period      string `json:"period" firestore:"period"`
	Description string `json:"description" firestore:"description"`
}

// Complete reports whether every field a form must fill is present.
func (e Experience) Complete() bool {
	return e.Role != "" && e.Company != "" && e.Period != "" && e.Description != ""
}

// Education is one entry of the about-me education history.
type Education struct {
	ID          string `json:"id" firestore:"id"`
	Degree      string `json:"degree" firestore:"degree"`
	Institution string `json:"institution" firestore:"institution"`
	Period      string `json:"period" firestore:"period"`
}

func (e Education) Complete() bool {
	return e.Degree != "" && e.Institution != "" && e.Period != ""
}

// ContactLinks holds the outbound links rendered on the about page.
type ContactLinks struct {
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`
	LinkedIn string `json:"linkedin,omitempty" firestore:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty" firestore:"github,omitempty"`
}

// AboutMe is the singleton profile document behind the about page.
// Experience and Education keep their submitted order across writes.
type AboutMe struct {
	Name            string       `json:"name" firestore:"name"`
	Title           string       `json:"title" firestore:"title"`
	Bio             string       `json:"bio" firestore:"bio"`
	ProfileImageURL string       `json:"profileImageUrl,omitempty" firestore:"profileImageUrl,omitempty"`
	ImageHint       string       `json:"dataAiHint,omitempty" firestore:"dataAiHint,omitempty"`
	Experience      []Experience `json:"experience" firestore:"experience"`
	Education       []Education  `json:"education" firestore:"education"`
	Contact         ContactLinks `json:"contact" firestore:"contact"`
}

// SkillCategory is the closed set of skill groupings.
type SkillCategory string

const (
	CategoryLanguages SkillCategory = "Languages"
	CategoryFrontend  SkillCategory = "Frontend"
	CategoryBackend   SkillCategory = "Backend"
	CategoryDevOps    SkillCategory = "DevOps"
	CategoryTools     SkillCategory = "Tools"
	CategoryOther     SkillCategory = "Other"
)

// SkillCategories lists every valid category in display order.
var SkillCategories = []SkillCategory{
	CategoryLanguages,
	CategoryFrontend,
	CategoryBackend,
	CategoryDevOps,
	CategoryTools,
	CategoryOther,
}

// ValidCategory reports whether c is a member of the closed category set.
func ValidCategory(c SkillCategory) bool {
	for _, k := range SkillCategories {
		if c == k {
			return true
		}
	}
	return false
}

// Skill is one entry of the skills grid. IconName is derived from Name and
// never user supplied. A nil Proficiency renders as "Experienced" instead of
// a numeric bar.
type Skill struct {
	ID          string        `json:"id" firestore:"id"`
	Name        string        `json:"name" firestore:"name"`
	Category    SkillCategory `json:"category" firestore:"category"`
	IconName    string        `json:"iconName" firestore:"iconName"`
	Proficiency *int          `json:"proficiency,omitempty" firestore:"proficiency,omitempty"`
}

// PortfolioItem is one project. Slug is the public routing key.
type PortfolioItem struct {
	ID              string    `json:"id" firestore:"-"`
	Title           string    `json:"title" firestore:"title"`
	Description     string    `json:"description" firestore:"description"`
	LongDescription string    `json:"longDescription,omitempty" firestore:"longDescription,omitempty"`
	Images          []string  `json:"images" firestore:"images"`
	Tags            []string  `json:"tags" firestore:"tags"`
	LiveURL         string    `json:"liveUrl,omitempty" firestore:"liveUrl,omitempty"`
	RepoURL         string    `json:"repoUrl,omitempty" firestore:"repoUrl,omitempty"`
	Slug            string    `json:"slug" firestore:"slug"`
	ImageHint       string    `json:"dataAiHint,omitempty" firestore:"dataAiHint,omitempty"`
	ReadmeContent   string    `json:"readmeContent,omitempty" firestore:"readmeContent,omitempty"`
	CreatedAt       time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" firestore:"updatedAt"`
}

// NotFoundPage is the singleton copy document for the 404 page.
type NotFoundPage struct {
	ImageSrc   string `json:"imageSrc" firestore:"imageSrc"`
	ImageHint  string `json:"dataAiHint,omitempty" firestore:"dataAiHint,omitempty"`
	Heading    string `json:"heading" firestore:"heading"`
	Message    string `json:"message" firestore:"message"`
	ButtonText string `json:"buttonText" firestore:"buttonText"`
}

// ContactMessage is a write-once submission from the public contact form.
type ContactMessage struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Email       string    `json:"email" firestore:"email"`
	Message     string    `json:"message" firestore:"message"`
	SubmittedAt time.Time `json:"submittedAt" firestore:"submittedAt"`
}

// Announcement feeds the public banner. Only the newest active one is shown;
// older or inactive announcements are retained but never displayed.
type Announcement struct {
	ID        string    `json:"id" firestore:"-"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
	IsActive  bool      `json:"isActive" firestore:"isActive"`
}
