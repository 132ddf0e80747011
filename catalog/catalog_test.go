package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTableDefine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	table := NewTable()
	_, found, err := table.Define(Variable{Name: "cpu"})
	assert.NoError(t, err)
	assert.False(t, found)
	old, found, err := table.Define(Variable{Name: "cpu", ID: "host.cpu"})
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "cpu", old.Ref().ID)
	v, ok := table.Resolve("cpu")
	assert.True(t, ok)
	assert.Equal(t, "host.cpu", v.Ref().ID)
	assert.Equal(t, 1, table.Size())
}

func TestVariableCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	for _, v := range []Variable{
		{Name: ""},
		{Name: "1x"},
		{Name: "a b"},
		{Name: "x", Parameters: map[string]interface{}{"on": true}},
	} {
		_, _, err := NewTable().Define(v)
		assert.IsError(t, err, ErrInvalidVariable)
	}
	assert.NoError(t, Variable{Name: "mem.free_mb", Parameters: map[string]interface{}{
		"window": "5m", "percentile": 95, "factor": 0.5,
	}}.Check())
}

func TestScopeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	parent := NewScope("parent", nil)
	scope := NewScope("current", parent)
	assert.NoError(t, parent.Define(Variable{Name: "x"}))
	v, sc := scope.Lookup("x")
	assert.Equal(t, parent, sc)
	assert.Equal(t, "x", v.Name)
	_, sc = parent.Lookup("y")
	assert.Zero(t, sc)
	ref, ok := scope.Resolve("x")
	assert.True(t, ok)
	assert.Equal(t, "x", ref.ID)
}

func TestCatalogShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	c, err := New(Variable{Name: "x", ID: "builtin.x"}, Variable{Name: "y"})
	assert.NoError(t, err)
	c.PushScope(SessionScope)
	assert.NoError(t, c.Define(Variable{Name: "x", ID: "session.x"}))
	ref, ok := c.Resolve("x")
	assert.True(t, ok)
	assert.Equal(t, "session.x", ref.ID)
	visible := c.Visible()
	assert.Equal(t, 2, len(visible))
	assert.Equal(t, "session.x", visible[0].ID)
	c.PopScope()
	ref, _ = c.Resolve("x")
	assert.Equal(t, "builtin.x", ref.ID)
	assert.Panics(t, func() { c.PopScope() })
}

const catalogYAML = `
variables:
  - name: cpu
    id: host.cpu.load
    description: CPU load in percent
    parameters:
      window: 5m
      samples: 10
  - name: mem
`

func TestDecode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	f, err := Decode(strings.NewReader(catalogYAML))
	assert.NoError(t, err)
	assert.Equal(t, 2, len(f.Variables))
	assert.Equal(t, "host.cpu.load", f.Variables[0].ID)
	assert.Equal(t, "5m", f.Variables[0].Parameters["window"])
	_, err = Decode(strings.NewReader("variables:\n  - name: x\n    unit: ms\n"))
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("variables:\n  - name: x\n  - name: x\n"))
	assert.IsError(t, err, ErrInvalidVariable)
	f, err = Decode(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, 0, len(f.Variables))
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "formel.catalog")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "vars.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(catalogYAML), 0o644))
	c, err := New()
	assert.NoError(t, err)
	sc, err := c.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, FileScope, sc.Name)
	assert.Equal(t, sc, c.Current())
	ref, ok := c.Resolve("cpu")
	assert.True(t, ok)
	assert.Equal(t, "host.cpu.load", ref.ID)
	assert.Equal(t, "cpu", ref.Name)
	_, err = c.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
