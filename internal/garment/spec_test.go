package garment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionsForKnownTypes(t *testing.T) {
	for _, typ := range Types() {
		regions, err := RegionsFor(typ)
		require.NoError(t, err, typ)
		require.NotEmpty(t, regions, typ)

		seen := map[string]bool{}
		for _, r := range regions {
			assert.False(t, seen[r.ID], "duplicate region id %q in %q", r.ID, typ)
			seen[r.ID] = true

			assert.NotEmpty(t, r.DisplayName)
			assert.Greater(t, r.DefaultScale, 0.0)
			assert.Greater(t, r.StretchU, 0.0)
			assert.Greater(t, r.StretchV, 0.0)
			assert.Greater(t, r.UVRect.Width(), 0.0)
			assert.Greater(t, r.UVRect.Height(), 0.0)
		}
	}
}

func TestRegionsForUnknownType(t *testing.T) {
	_, err := RegionsFor("tuxedo")
	assert.ErrorIs(t, err, ErrUnknownGarment)
}

func TestTShirtHasFourRegions(t *testing.T) {
	regions, err := RegionsFor(TypeTShirt)
	require.NoError(t, err)
	require.Len(t, regions, 4)

	for _, id := range []string{RegionFront, RegionBack, RegionLeftArm, RegionRightArm} {
		_, ok := Find(regions, id)
		assert.True(t, ok, id)
	}
}

func TestHoodieHasHood(t *testing.T) {
	regions, err := RegionsFor(TypeHoodie)
	require.NoError(t, err)

	hood, ok := Find(regions, RegionHood)
	require.True(t, ok)
	require.NotNil(t, hood.Correction)
	assert.Equal(t, 180.0, hood.Correction.RotationDeg)
}

func TestFindMissing(t *testing.T) {
	regions, _ := RegionsFor(TypeTShirt)
	_, ok := Find(regions, "collar")
	assert.False(t, ok)
}

func TestUVIslandsDoNotOverlap(t *testing.T) {
	for _, typ := range Types() {
		regions, _ := RegionsFor(typ)
		for i := 0; i < len(regions); i++ {
			for j := i + 1; j < len(regions); j++ {
				a := regions[i].UVRect.ToRect(1, 1)
				b := regions[j].UVRect.ToRect(1, 1)
				overlap := a.X < b.X+b.Width && a.X+a.Width > b.X &&
					a.Y < b.Y+b.Height && a.Y+a.Height > b.Y
				assert.False(t, overlap, "%s: %s overlaps %s", typ, regions[i].ID, regions[j].ID)
			}
		}
	}
}
