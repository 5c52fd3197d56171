package fontface

import (
	"context"
	"errors"
	"testing"

	"github.com/joeblew999/plat-fontface/pkg/font"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx/logtest"
)

var fixtureSources = []string{
	"test/font/open/OpenSans-Light.ttf",
	"test/font/roboto/Roboto-Thin.ttf",
	"test/font/open/OpenSans-BoldItalic.ttf",
	"test/font/roboto/Roboto-BoldItalic.ttf",
	"test/font/lato/Lato.ttf",
}

func TestIsDirectory(t *testing.T) {
	assert.True(t, IsDirectory("test/css/"))
	assert.True(t, IsDirectory("/"))
	assert.False(t, IsDirectory("test/css/font.css"))
	assert.False(t, IsDirectory("test/css"))
	assert.False(t, IsDirectory(""))
}

func TestGroupSources(t *testing.T) {
	families, errs := GroupSources(font.NewParser(font.DefaultWeights), fixtureSources)
	assert.Empty(t, errs)
	require.Len(t, families, 3)

	assert.Equal(t, font.Family{
		Name:    "OpenSans",
		Formats: []font.Format{{Weight: "Light"}, {Weight: "Bold", Style: "Italic"}},
	}, families[0])
	assert.Equal(t, font.Family{
		Name:    "Roboto",
		Formats: []font.Format{{Weight: "Thin"}, {Weight: "Bold", Style: "Italic"}},
	}, families[1])
	assert.Equal(t, font.Family{Name: "Lato", Formats: []font.Format{{}}}, families[2])
}

func TestGroupSourcesSkipsNonStandardNames(t *testing.T) {
	sources := []string{"fonts/Open Sans.ttf", "fonts/Roboto-Bold.ttf", "fonts/readme.txt"}
	families, errs := GroupSources(font.NewParser(font.DefaultWeights), sources)

	require.Len(t, families, 1)
	assert.Equal(t, "Roboto", families[0].Name)
	require.Len(t, errs, 2)
	for _, err := range errs {
		assert.True(t, errors.Is(err, font.ErrNamingConvention))
	}
}

func TestPlan(t *testing.T) {
	planner := NewPlanner(font.DefaultWeights)
	ctx := context.Background()

	t.Run("FileDestination", func(t *testing.T) {
		reqs, errs := planner.Plan(ctx, Job{Sources: fixtureSources, Dest: "test/css/font.css"})
		assert.Empty(t, errs)
		require.Len(t, reqs, 1)
		assert.Equal(t, "Open+Sans:300,700i|Roboto:100,700i|Lato", reqs[0].Query)
		assert.Equal(t, "test/css/font.css", reqs[0].Dest)
		assert.Equal(t, fixtureSources, reqs[0].Sources)
	})

	t.Run("DirectoryDestination", func(t *testing.T) {
		reqs, errs := planner.Plan(ctx, Job{Sources: fixtureSources, Dest: "test/css/"})
		assert.Empty(t, errs)
		require.Len(t, reqs, 3)

		assert.Equal(t, FamilyRequest{Query: "Open+Sans:300,700i", Dest: "test/css/OpenSans.css", Sources: fixtureSources}, reqs[0])
		assert.Equal(t, FamilyRequest{Query: "Roboto:100,700i", Dest: "test/css/Roboto.css", Sources: fixtureSources}, reqs[1])
		assert.Equal(t, FamilyRequest{Query: "Lato", Dest: "test/css/Lato.css", Sources: fixtureSources}, reqs[2])
	})

	t.Run("TwoFamilies", func(t *testing.T) {
		sources := []string{"f/Family1-Bold.ttf", "f/Family2.ttf"}

		reqs, _ := planner.Plan(ctx, Job{Sources: sources, Dest: "test/css/"})
		require.Len(t, reqs, 2)
		assert.Equal(t, "test/css/Family1.css", reqs[0].Dest)
		assert.Equal(t, "test/css/Family2.css", reqs[1].Dest)

		reqs, _ = planner.Plan(ctx, Job{Sources: sources, Dest: "test/css/font.css"})
		require.Len(t, reqs, 1)
		assert.Equal(t, "Family1:700|Family2", reqs[0].Query)
	})

	t.Run("NoValidSources", func(t *testing.T) {
		c := logtest.NewCollector(t)

		reqs, errs := planner.Plan(ctx, Job{Sources: []string{"fonts/Bad Name.ttf"}, Dest: "css/font.css"})
		assert.Empty(t, reqs)
		require.Len(t, errs, 2)
		assert.True(t, errors.Is(errs[0], font.ErrNamingConvention))
		assert.True(t, errors.Is(errs[1], ErrNoFamilies))
		assert.Contains(t, c.String(), "fonts/Bad Name.ttf")
	})
}
