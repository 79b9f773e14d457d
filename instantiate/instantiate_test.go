package instantiate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/notation"
	"github.com/reoring/notation/instantiate"
)

type module struct {
	Group   string  `notation:"group"`
	Name    string  `notation:"name"`
	Version *string `notation:"version"`
}

func TestStruct_DecodesNamedArguments(t *testing.T) {
	inst := instantiate.Struct[*module]()

	m, err := instantiate.New(inst, map[string]any{"group": "org.gradle", "name": "gradle-core"})
	require.NoError(t, err)
	assert.Equal(t, "org.gradle", m.Group)
	assert.Equal(t, "gradle-core", m.Name)
	assert.Nil(t, m.Version)

	m, err = instantiate.New(inst, map[string]any{"group": "g", "name": "n", "version": "1.0"})
	require.NoError(t, err)
	require.NotNil(t, m.Version)
	assert.Equal(t, "1.0", *m.Version)
}

func TestStruct_UnusedArgumentIsConstructionFailure(t *testing.T) {
	_, err := instantiate.New(instantiate.Struct[module](), map[string]any{"group": "g", "colour": "red"})
	require.Error(t, err)

	var ce *notation.ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "module", ce.Target)
	assert.Contains(t, err.Error(), "colour")
	assert.Equal(t, notation.CodeConstruction, notation.Code(err))
}

func TestStruct_AllowUnused(t *testing.T) {
	m, err := instantiate.New(instantiate.Struct[module](instantiate.AllowUnused()), map[string]any{"group": "g", "colour": "red"})
	require.NoError(t, err)
	assert.Equal(t, "g", m.Group)
}

func TestStruct_CustomTag(t *testing.T) {
	type tagged struct {
		Group string `json:"group"`
	}
	v, err := instantiate.New(instantiate.Struct[tagged](instantiate.WithTagName("json")), map[string]any{"group": "g"})
	require.NoError(t, err)
	assert.Equal(t, "g", v.Group)
}

func TestFunc_PreservesCause(t *testing.T) {
	cause := errors.New("constructor exploded")
	inst := instantiate.Func[string](func(map[string]any) (string, error) { return "", cause })

	_, err := instantiate.New[string](inst, nil)
	assert.ErrorIs(t, err, cause)
}
