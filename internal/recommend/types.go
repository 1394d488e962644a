// Package recommend scores a catalog of grants, subsidies, and
// consultants against a business profile and returns a ranked,
// explained list.
//
// Matching is an additive heuristic over immutable catalog data. Every
// adjustment appends a human-readable reason, so callers can render an
// explanation without re-deriving the arithmetic.
package recommend

import "github.com/google/uuid"

// EntityKind distinguishes the three catalog families, which score
// slightly differently.
type EntityKind string

// Catalog entity kinds.
const (
	KindGrant      EntityKind = "grant"
	KindSubsidy    EntityKind = "subsidy"
	KindConsultant EntityKind = "consultant"
)

// String returns the kind's wire value.
func (k EntityKind) String() string { return string(k) }

// CatalogEntity is one grant, subsidy, or consultant record with its
// eligibility profile. Reference data owned by the external catalog
// store; the matcher never mutates it.
type CatalogEntity struct {
	ID   uuid.UUID  `yaml:"id"   json:"id"`
	Kind EntityKind `yaml:"kind" json:"kind"`
	Name string     `yaml:"name" json:"name"`

	// Description is display copy; it plays no part in scoring.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`

	// BusinessTypes restricts eligibility. Empty means open to all.
	BusinessTypes []string `yaml:"business_types,omitempty" json:"business_types,omitempty"`

	// LocationScopes lists the regions the entity serves, e.g. "uk-wide"
	// or "scotland".
	LocationScopes []string `yaml:"location_scopes,omitempty" json:"location_scopes,omitempty"`

	// MinEmployees and MaxEmployees bound eligibility by headcount.
	// Nil means the bound is not declared; each is checked independently.
	MinEmployees *int `yaml:"min_employees,omitempty" json:"min_employees,omitempty"`
	MaxEmployees *int `yaml:"max_employees,omitempty" json:"max_employees,omitempty"`

	// Consultant-only fields.
	ExpertiseTags   []string `yaml:"expertise_tags,omitempty"   json:"expertise_tags,omitempty"`
	Verified        bool     `yaml:"verified,omitempty"         json:"verified,omitempty"`
	YearsExperience int      `yaml:"years_experience,omitempty" json:"years_experience,omitempty"`
}

// Profile is the business the catalog is matched against. A nil
// *Profile means an anonymous visitor; matching then falls back to the
// neutral base score rather than failing, because the catalog must stay
// browsable without signing in.
type Profile struct {
	BusinessType   string   `yaml:"business_type"   json:"business_type"`
	EmployeesCount int      `yaml:"employees_count" json:"employees_count"`
	Location       string   `yaml:"location"        json:"location"`
	Needs          []string `yaml:"needs,omitempty" json:"needs,omitempty"`
}

// MatchResult pairs an entity with its score and the ordered reasons
// that produced it. Always derived fresh, never cached across profiles.
type MatchResult struct {
	Entity       CatalogEntity `json:"entity"`
	MatchScore   int           `json:"match_score"`
	MatchReasons []string      `json:"match_reasons"`
}
