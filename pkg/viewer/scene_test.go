package viewer

import (
	"testing"

	"github.com/philipparndt/goperceptron/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

func TestSceneWithLines(t *testing.T) {
	old := geometry.NewLine(geometry.FullExtension, geometry.NewPoint(0, 0), geometry.NewPoint(400, 400))
	updated := geometry.NewLine(geometry.FullExtension, geometry.NewPoint(0, 400), geometry.NewPoint(400, 0))

	scene := Scene{Lines: []SceneLine{
		{Key: "a", Role: RoleTraining, Line: old},
		{Key: "division", Role: RoleDivision, Line: old},
	}}

	merged := scene.WithLines([]SceneLine{
		{Key: "division", Role: RoleDivision, Line: updated},
		{Key: "segment", Role: RoleUserSegment, Line: updated},
	})

	assert.Len(t, merged.Lines, 3)
	assert.Equal(t, old, merged.Lines[0].Line)
	assert.Equal(t, updated, merged.Lines[1].Line)
	assert.Equal(t, "segment", merged.Lines[2].Key)

	// The original scene is untouched
	assert.Equal(t, old, scene.Lines[1].Line)
	assert.Len(t, scene.Lines, 2)
}

func TestLineRoleString(t *testing.T) {
	assert.Equal(t, "train", RoleTraining.String())
	assert.Equal(t, "division--full", RoleDivision.String())
	assert.Equal(t, "division--user-defined", RoleUserSegment.String())
}
