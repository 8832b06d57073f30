package expr

import (
	"testing"

	"github.com/antonmedv/expr"
	"github.com/stretchr/testify/assert"
)

func TestSpawn(t *testing.T) {
	for _, ns := range []string{"time", "repo"} {
		helpers := Spawn(nil)
		_, hasNamespace := helpers[ns]
		assert.True(t, hasNamespace)
	}
}

func TestSpawn_VarsTakePrecedence(t *testing.T) {
	env := Spawn(map[string]interface{}{"time": "now", "state": "success"})

	assert.Equal(t, "now", env["time"])
	assert.Equal(t, "success", env["state"])
	_, hasRepo := env["repo"]
	assert.True(t, hasRepo)
}

func TestSpawn_Evaluate(t *testing.T) {
	env := Spawn(map[string]interface{}{"url": "ssh://git@host:22/acme/widgets.git"})

	res, err := expr.Eval(`repo.FullName(url) == "acme/widgets" && time.Now().Sub(time.Parse("2020-01-01T00:00:00Z")).Hours() > 0`, env)

	assert.NoError(t, err)
	assert.Equal(t, true, res)
}

func TestTimeHelpers(t *testing.T) {
	env := Spawn(nil)

	res, err := expr.Eval(`time.Since("2020-01-01T00:00:00Z").Hours() > time.ParseDuration("1h").Hours()`, env)
	assert.NoError(t, err)
	assert.Equal(t, true, res)

	_, err = expr.Eval(`time.Parse("yesterday")`, env)
	assert.Error(t, err)
}
