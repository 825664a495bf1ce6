package types

// Section identifiers used by Profile.SectionOrder. Unknown identifiers in a
// submitted order are rejected; identifiers missing from a stored order fall
// back to DefaultSectionOrder during rendering.
const (
	SectionImage        = "image"
	SectionContact      = "contact"
	SectionSocial       = "social"
	SectionKnowledge    = "knowledge"
	SectionFeatured     = "featured"
	SectionGithub       = "github"
	SectionTryHackMe    = "tryhackme"
	SectionTechnologies = "technologies"
)

var DefaultSectionOrder = []string{
	SectionImage,
	SectionContact,
	SectionSocial,
	SectionKnowledge,
	SectionFeatured,
	SectionGithub,
	SectionTryHackMe,
	SectionTechnologies,
}

func IsKnownSection(id string) bool {
	for _, s := range DefaultSectionOrder {
		if s == id {
			return true
		}
	}
	return false
}

// Social link categories split the public page into two link sections.
const (
	LinkCategorySocial    = "social"
	LinkCategoryKnowledge = "knowledge"
)

// Technology categories (closed set, enforced at the validation layer).
var TechnologyCategories = []string{
	"frontend",
	"backend",
	"database",
	"devops",
	"cloud",
	"mobile",
	"testing",
	"security",
	"tools",
}

func IsTechnologyCategory(category string) bool {
	for _, c := range TechnologyCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Issue severities and statuses.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"

	IssueStatusOpen       = "open"
	IssueStatusInProgress = "in_progress"
	IssueStatusResolved   = "resolved"
)
