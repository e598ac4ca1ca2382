package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	r, err := ParseRole("recycleur")
	require.NoError(t, err)
	assert.Equal(t, RoleRecycler, r)

	_, err = ParseRole("superuser")
	require.Error(t, err)
}

func TestRole_SelfRegistrable(t *testing.T) {
	for _, r := range Roles {
		assert.Equal(t, r != RoleAdmin, r.SelfRegistrable(), r)
	}
}

func TestRole_HomeSections(t *testing.T) {
	assert.Contains(t, RoleIndividual.HomeSections(), SectionDocumentVerification)
	assert.NotContains(t, RoleIndividual.HomeSections(), SectionProfessionalVerification)
	assert.Contains(t, RoleCollector.HomeSections(), SectionMissions)
	assert.Contains(t, RoleRecycler.HomeSections(), SectionAvailableWaste)
	assert.Contains(t, RoleBusiness.HomeSections(), SectionDeclareWaste)
	assert.Nil(t, Role("unknown").HomeSections())
}

func TestRole_Tabs(t *testing.T) {
	names := func(tabs []Tab) []string {
		var out []string
		for _, tab := range tabs {
			out = append(out, tab.Name)
		}
		return out
	}

	assert.Equal(t, []string{"home", "waste", "history", "schedule", "profile"}, names(RoleCollector.Tabs()))
	assert.Equal(t, []string{"home", "waste", "history", "profile"}, names(RoleIndividual.Tabs()))
	assert.Equal(t, []string{"home", "profile"}, names(RoleAdmin.Tabs()))
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Dimanche", DayName(0))
	assert.Equal(t, "Samedi", DayName(6))
	assert.Equal(t, "jour 9", DayName(9))
}

func TestRole_Capabilities(t *testing.T) {
	for _, r := range Roles {
		n := 0
		for _, ok := range []bool{r.DeclaresWaste(), r.CollectsWaste(), r.RecyclesWaste()} {
			if ok {
				n++
			}
		}
		if r == RoleAdmin {
			assert.Zero(t, n)
			continue
		}
		assert.Equal(t, 1, n, r)
	}
	assert.True(t, RoleBusiness.DeclaresWaste())
	assert.True(t, RoleCollector.RequiresProfessionalVerification())
	assert.False(t, RoleBusiness.RequiresDocuments())
}
