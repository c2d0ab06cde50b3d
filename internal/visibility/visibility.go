// Package visibility computes which data categories a viewer may see for a
// given consent profile. It is pure domain logic: no I/O, no side effects.
package visibility

import "github.com/vigil-sh/vigil/internal/core"

// Visible returns the disclosable categories for the viewer, in canonical
// order. An empty result for a non-owner viewer means "all data hidden",
// which the decision engine treats as a distinct denial.
func Visible(profile core.ConsentProfile, viewer core.Role) []core.Category {
	// Owners always see their own data; consent gates outbound sharing,
	// not self-access.
	if viewer.IsOwner() {
		return core.AllCategories()
	}

	var categories []core.Category

	switch viewer {
	case core.RoleCoach, core.RoleComplianceOfficer:
		// Internal viewers get the performance and health streams per
		// consent. Commercial data is never shown to them.
		if profile.ShareTechnical {
			categories = append(categories, core.CategoryTechnical)
		}
		if profile.ShareMedical {
			categories = append(categories, core.CategoryMedical)
		}

	case core.RoleCommercialPartner:
		// Category isolation: a partner's license covers biometrics only.
		// Technical and medical streams are never disclosed to a partner,
		// regardless of consent.
		if profile.ShareCommercial && !profile.IsYouth {
			categories = append(categories, core.CategoryCommercial)
		}
	}

	return categories
}

// Has reports whether the category set contains c.
func Has(categories []core.Category, c core.Category) bool {
	for _, have := range categories {
		if have == c {
			return true
		}
	}
	return false
}
