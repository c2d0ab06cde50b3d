package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vigil-sh/vigil/internal/core"
)

func TestVisible_Coach(t *testing.T) {
	tests := []struct {
		name    string
		profile core.ConsentProfile
		want    []core.Category
	}{
		{
			name:    "both consented",
			profile: core.ConsentProfile{ShareTechnical: true, ShareMedical: true},
			want:    []core.Category{core.CategoryTechnical, core.CategoryMedical},
		},
		{
			name:    "technical only",
			profile: core.ConsentProfile{ShareTechnical: true},
			want:    []core.Category{core.CategoryTechnical},
		},
		{
			name:    "medical only",
			profile: core.ConsentProfile{ShareMedical: true},
			want:    []core.Category{core.CategoryMedical},
		},
		{
			name:    "nothing consented",
			profile: core.ConsentProfile{},
			want:    nil,
		},
		{
			name: "commercial consent never reaches a coach",
			profile: core.ConsentProfile{
				ShareTechnical: true, ShareMedical: true, ShareCommercial: true,
			},
			want: []core.Category{core.CategoryTechnical, core.CategoryMedical},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(tt.profile, core.RoleCoach)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestVisible_CommercialPartnerIsolation(t *testing.T) {
	// Category isolation: for every consent combination, a partner never
	// receives the technical or medical streams.
	for mask := 0; mask < 16; mask++ {
		profile := core.ConsentProfile{
			ShareTechnical:  mask&1 != 0,
			ShareMedical:    mask&2 != 0,
			ShareCommercial: mask&4 != 0,
			IsYouth:         mask&8 != 0,
		}

		got := Visible(profile, core.RoleCommercialPartner)

		if Has(got, core.CategoryTechnical) || Has(got, core.CategoryMedical) {
			t.Fatalf("partner received technical/medical for profile %+v: %v", profile, got)
		}

		wantCommercial := profile.ShareCommercial && !profile.IsYouth
		if Has(got, core.CategoryCommercial) != wantCommercial {
			t.Errorf("profile %+v: commercial visible = %v, want %v",
				profile, Has(got, core.CategoryCommercial), wantCommercial)
		}
	}
}

func TestVisible_OwnerSelfAccess(t *testing.T) {
	// Consent gates outbound sharing, not self-access: owners see
	// everything even with all consent revoked.
	profile := core.ConsentProfile{IsYouth: true}

	for _, role := range []core.Role{core.RoleAthlete, core.RoleYouthAthlete} {
		got := Visible(profile, role)
		if diff := cmp.Diff(core.AllCategories(), got); diff != "" {
			t.Errorf("Visible(%s) mismatch (-want +got):\n%s", role, diff)
		}
	}
}

func TestVisible_ComplianceOfficerIsInternalViewer(t *testing.T) {
	profile := core.ConsentProfile{ShareMedical: true, ShareCommercial: true}

	got := Visible(profile, core.RoleComplianceOfficer)
	want := []core.Category{core.CategoryMedical}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Visible() mismatch (-want +got):\n%s", diff)
	}
}
