package projection

import (
	"testing"

	"garment-studio/internal/coords"
	"garment-studio/internal/garment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tshirt(t *testing.T) []garment.Region {
	t.Helper()
	regions, err := garment.RegionsFor(garment.TypeTShirt)
	require.NoError(t, err)
	return regions
}

func byID(projections []Projection) map[string]Projection {
	m := make(map[string]Projection, len(projections))
	for _, p := range projections {
		m[p.RegionID] = p
	}
	return m
}

func TestFrontViewPrimaryAndSleeves(t *testing.T) {
	p := byID(Project(coords.ViewFront, tshirt(t)))

	front := p[garment.RegionFront]
	assert.True(t, front.Visible)
	assert.True(t, front.IsPrimary)
	assert.Equal(t, PrimaryStrength, front.Strength)

	for _, arm := range []string{garment.RegionLeftArm, garment.RegionRightArm} {
		sec := p[arm]
		assert.True(t, sec.Visible, arm)
		assert.False(t, sec.IsPrimary, arm)
		assert.Equal(t, SecondaryStrength, sec.Strength, arm)
		assert.NotZero(t, sec.Transform.RotateY, arm)
	}

	assert.False(t, p[garment.RegionBack].Visible)
}

func TestLeftViewPrimary(t *testing.T) {
	p := byID(Project(coords.ViewLeft, tshirt(t)))
	assert.True(t, p[garment.RegionLeftArm].IsPrimary)
	assert.False(t, p[garment.RegionRightArm].Visible)
}

func TestAtMostOnePrimaryPerView(t *testing.T) {
	for _, v := range coords.Views() {
		primaries := 0
		for _, p := range Project(v, tshirt(t)) {
			if p.IsPrimary {
				primaries++
			}
		}
		assert.Equal(t, 1, primaries, v.String())
	}
}

func TestSleevesMirrorBetweenFrontAndBack(t *testing.T) {
	front := byID(Project(coords.ViewFront, tshirt(t)))
	back := byID(Project(coords.ViewBack, tshirt(t)))

	// The left arm sits on the viewer's left from the front and on the
	// viewer's right from the back.
	assert.Less(t, front[garment.RegionLeftArm].Transform.TranslateX, 0.0)
	assert.Greater(t, back[garment.RegionLeftArm].Transform.TranslateX, 0.0)
}

func TestHoodOnlyForHoodie(t *testing.T) {
	hoodie, err := garment.RegionsFor(garment.TypeHoodie)
	require.NoError(t, err)

	p := byID(Project(coords.ViewBack, hoodie))
	assert.True(t, p[garment.RegionHood].Visible)

	// The t-shirt table run never emits a hood entry.
	for _, proj := range Project(coords.ViewBack, tshirt(t)) {
		assert.NotEqual(t, garment.RegionHood, proj.RegionID)
	}
}

func TestUnknownViewIdentityFallback(t *testing.T) {
	regions := tshirt(t)

	// "front" as a raw id is recognized.
	p, ok := Primary(ProjectID("front", regions))
	require.True(t, ok)
	assert.Equal(t, garment.RegionFront, p.RegionID)

	// An unknown id that happens to name a region becomes its primary.
	p, ok = Primary(ProjectID("left_arm", regions))
	require.True(t, ok)
	assert.Equal(t, garment.RegionLeftArm, p.RegionID)

	// An unknown id with no matching region hides everything but does not
	// fail.
	projections := ProjectID("unknown-x", regions)
	require.Len(t, projections, len(regions))
	for _, proj := range projections {
		assert.False(t, proj.Visible)
	}
}

func TestProjectionsInRegistryOrder(t *testing.T) {
	regions := tshirt(t)
	projections := Project(coords.ViewFront, regions)
	require.Len(t, projections, len(regions))
	for i, r := range regions {
		assert.Equal(t, r.ID, projections[i].RegionID)
	}
}
