package recommend

import (
	"fmt"
	"sort"
	"strings"
)

// Scoring constants. The base is neutral; adjustments move entities
// apart without letting any single rule dominate.
const (
	baseScore = 50

	businessTypeMatchBonus      = 25
	openToAllBonus              = 10
	openToAllSubsidyBonus       = 15
	businessTypeMismatchPenalty = 10

	locationNationwideBonus = 15
	locationRegionBonus     = 20
	locationMismatchPenalty = 15

	employeeRangePenalty = 20

	expertiseTagBonus       = 15
	verifiedBonus           = 10
	experienceBonus         = 5
	experienceBonusMinYears = 5

	minScore = 0
	maxScore = 100
)

// nationwideScope is the location scope that matches every UK profile.
const nationwideScope = "uk-wide"

// signInReason is the single reason attached to every result when no
// profile is available.
const signInReason = "Sign in and complete your business profile for personalised matches"

// MatchAll scores every catalog entity against the profile and returns
// results sorted by descending score. The sort is stable, so ties keep
// catalog order and identical inputs always rank identically.
//
// A nil profile yields the neutral base score for every entity with a
// sign-in prompt as the only reason; anonymous browsing is a supported
// state, not an error.
func MatchAll(catalog []CatalogEntity, profile *Profile) []MatchResult {
	results := make([]MatchResult, 0, len(catalog))
	for _, entity := range catalog {
		results = append(results, matchOne(entity, profile))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results
}

// matchOne applies the additive heuristic to a single entity.
func matchOne(entity CatalogEntity, profile *Profile) MatchResult {
	if profile == nil {
		return MatchResult{
			Entity:       entity,
			MatchScore:   baseScore,
			MatchReasons: []string{signInReason},
		}
	}

	score := baseScore
	var reasons []string

	score, reasons = scoreBusinessType(entity, profile, score, reasons)
	score, reasons = scoreLocation(entity, profile, score, reasons)

	if entity.Kind == KindSubsidy {
		score, reasons = scoreEmployeeRange(entity, profile, score, reasons)
	}
	if entity.Kind == KindConsultant {
		score, reasons = scoreConsultant(entity, profile, score, reasons)
	}

	return MatchResult{
		Entity:       entity,
		MatchScore:   clampScore(score),
		MatchReasons: reasons,
	}
}

func scoreBusinessType(entity CatalogEntity, profile *Profile, score int, reasons []string) (int, []string) {
	if len(entity.BusinessTypes) == 0 {
		// Reward less-restrictive entries mildly; subsidies a touch more,
		// without flooding every open entity to the same score.
		bonus := openToAllBonus
		if entity.Kind == KindSubsidy {
			bonus = openToAllSubsidyBonus
		}
		return score + bonus, append(reasons, "Open to all business types")
	}

	for _, bt := range entity.BusinessTypes {
		if strings.EqualFold(strings.TrimSpace(bt), strings.TrimSpace(profile.BusinessType)) {
			return score + businessTypeMatchBonus,
				append(reasons, fmt.Sprintf("Matches your business type (%s)", profile.BusinessType))
		}
	}

	return score - businessTypeMismatchPenalty, append(reasons, "Aimed at other business types")
}

func scoreLocation(entity CatalogEntity, profile *Profile, score int, reasons []string) (int, []string) {
	location := strings.ToLower(strings.TrimSpace(profile.Location))

	for _, scope := range entity.LocationScopes {
		scope = strings.ToLower(strings.TrimSpace(scope))
		switch {
		case scope == nationwideScope:
			return score + locationNationwideBonus, append(reasons, "Available UK-wide")
		case location != "" && (strings.Contains(scope, location) || strings.Contains(location, scope)):
			return score + locationRegionBonus,
				append(reasons, fmt.Sprintf("Operates in your area (%s)", profile.Location))
		}
	}

	// Grants are geographically gated, so a miss is penalized. Subsidies
	// are typically tax-code mechanisms and consultants deliver remotely,
	// so neither is punished for geography. The asymmetry is a product
	// decision, not an oversight.
	if entity.Kind == KindGrant && len(entity.LocationScopes) > 0 {
		return score - locationMismatchPenalty, append(reasons, "Outside your area")
	}

	return score, reasons
}

func scoreEmployeeRange(entity CatalogEntity, profile *Profile, score int, reasons []string) (int, []string) {
	// Each bound is independent: a subsidy declaring only a minimum is
	// not penalized for having no maximum.
	if entity.MinEmployees != nil && profile.EmployeesCount < *entity.MinEmployees {
		return score - employeeRangePenalty,
			append(reasons, fmt.Sprintf("Requires at least %d employees", *entity.MinEmployees))
	}
	if entity.MaxEmployees != nil && profile.EmployeesCount > *entity.MaxEmployees {
		return score - employeeRangePenalty,
			append(reasons, fmt.Sprintf("Limited to businesses with up to %d employees", *entity.MaxEmployees))
	}
	return score, reasons
}

func scoreConsultant(entity CatalogEntity, profile *Profile, score int, reasons []string) (int, []string) {
	for _, tag := range entity.ExpertiseTags {
		for _, need := range profile.Needs {
			if tagsOverlap(tag, need) {
				score += expertiseTagBonus
				reasons = append(reasons, fmt.Sprintf("Expertise in %s", strings.TrimSpace(tag)))
				break
			}
		}
	}

	if entity.Verified {
		score += verifiedBonus
		reasons = append(reasons, "Verified consultant")
	}
	if entity.YearsExperience >= experienceBonusMinYears {
		score += experienceBonus
		reasons = append(reasons, fmt.Sprintf("%d+ years of experience", experienceBonusMinYears))
	}

	return score, reasons
}

// tagsOverlap reports whether an expertise tag and a requested need
// textually overlap in either direction, case-insensitively.
func tagsOverlap(tag, need string) bool {
	tag = strings.ToLower(strings.TrimSpace(tag))
	need = strings.ToLower(strings.TrimSpace(need))
	if tag == "" || need == "" {
		return false
	}
	return strings.Contains(tag, need) || strings.Contains(need, tag)
}

func clampScore(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
