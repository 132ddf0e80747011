package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"sort"

	"github.com/npillmayer/formel/token"
	"golang.org/x/exp/maps"
)

// ErrInvalidVariable is returned for variables which cannot be stored into a
// catalog.
var ErrInvalidVariable = errors.New("invalid variable")

// --- Variables -------------------------------------------------------------

// Variable is the entry type of variable tables.
type Variable struct {
	Name        string                 `yaml:"name"`
	ID          string                 `yaml:"id"`
	Description string                 `yaml:"description"`
	Parameters  map[string]interface{} `yaml:"parameters"`
}

var nameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_.]*$`)

// Check checks if a variable may be stored into a table. The name has to be
// usable in formulas typed by users, and parameter values have to be either
// strings or numbers.
func (v Variable) Check() error {
	if !nameRegex.MatchString(v.Name) {
		return fmt.Errorf("%w: name %q is not an identifier", ErrInvalidVariable, v.Name)
	}
	for k, p := range v.Parameters {
		switch p.(type) {
		case string, int, int64, uint64, float64:
		default:
			return fmt.Errorf("%w: parameter %q of %s is neither string nor number",
				ErrInvalidVariable, k, v.Name)
		}
	}
	return nil
}

// Ref returns a variable reference for v. If v has no ID, its name is used.
func (v Variable) Ref() token.VarRef {
	id := v.ID
	if id == "" {
		id = v.Name
	}
	return token.VarRef{ID: id, Name: v.Name, Parameters: maps.Clone(v.Parameters)}
}

func (v Variable) String() string {
	return fmt.Sprintf("<var '%s' id=%s>", v.Name, v.Ref().ID)
}

// --- Tables ----------------------------------------------------------------

// Table is a table to store variables (map-like semantics).
type Table struct {
	vars map[string]Variable
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{vars: make(map[string]Variable)}
}

// Resolve checks for a variable in the table.
func (t *Table) Resolve(name string) (Variable, bool) {
	v, ok := t.vars[name]
	return v, ok
}

// Define stores a variable into the table, overwriting an existing variable
// of the same name. Returns the previously stored variable, if any.
func (t *Table) Define(v Variable) (Variable, bool, error) {
	if err := v.Check(); err != nil {
		return Variable{}, false, err
	}
	old, found := t.vars[v.Name]
	v.Parameters = maps.Clone(v.Parameters)
	t.vars[v.Name] = v
	return old, found, nil
}

// Size counts the variables in a table.
func (t *Table) Size() int {
	return len(t.vars)
}

// Names returns the names of all variables in the table, sorted.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.vars))
	for name := range t.vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each iterates over the variables of a table in order of their names.
func (t *Table) Each(mapper func(Variable)) {
	for _, name := range t.Names() {
		mapper(t.vars[name])
	}
}

// --- Scopes ----------------------------------------------------------------

// Scope is a named scope which holds variable definitions. Scopes link back
// to a parent scope, forming a tree.
type Scope struct {
	Name   string
	Parent *Scope
	table  *Table
}

// NewScope creates a new scope.
func NewScope(name string, parent *Scope) *Scope {
	return &Scope{
		Name:   name,
		Parent: parent,
		table:  NewTable(),
	}
}

func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Variables returns the table of a scope.
func (s *Scope) Variables() *Table {
	return s.table
}

// Define defines a variable in the scope.
func (s *Scope) Define(v Variable) error {
	old, found, err := s.table.Define(v)
	if err != nil {
		return err
	}
	if found {
		tracer().P("scope", s.Name).Infof("variable %s redefined, was %s", v, old)
	}
	return nil
}

// Lookup finds a variable, searching s and its ancestors. Returns the
// variable and the scope it was found in, or nil if not found.
func (s *Scope) Lookup(name string) (Variable, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if v, ok := sc.table.Resolve(name); ok {
			return v, sc
		}
	}
	return Variable{}, nil
}

// Resolve is part of interface scanner.Resolver.
func (s *Scope) Resolve(name string) (token.VarRef, bool) {
	if v, sc := s.Lookup(name); sc != nil {
		return v.Ref(), true
	}
	return token.VarRef{}, false
}

// --- Catalog ---------------------------------------------------------------

// Names of the standard scopes.
const (
	BuiltinScope = "builtin"
	FileScope    = "file"
	SessionScope = "session"
)

// Catalog is a stack of scopes. Lookups start at the top of the stack.
type Catalog struct {
	base *Scope
	tos  *Scope
}

// New creates a catalog with a builtin scope, holding the given variables.
func New(builtins ...Variable) (*Catalog, error) {
	c := &Catalog{}
	sc := c.PushScope(BuiltinScope)
	for _, v := range builtins {
		if err := sc.Define(v); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Current gets the innermost scope.
func (c *Catalog) Current() *Scope {
	if c.tos == nil {
		panic("attempt to access scope from empty catalog")
	}
	return c.tos
}

// Builtins gets the outermost scope.
func (c *Catalog) Builtins() *Scope {
	if c.base == nil {
		panic("attempt to access builtin scope from empty catalog")
	}
	return c.base
}

// PushScope pushes a new scope onto the stack of scopes.
func (c *Catalog) PushScope(name string) *Scope {
	sc := NewScope(name, c.tos)
	if c.tos == nil {
		c.base = sc
	}
	c.tos = sc
	tracer().P("scope", sc.Name).Debugf("pushing new scope")
	return sc
}

// PopScope pops the innermost scope. The builtin scope cannot be popped.
func (c *Catalog) PopScope() *Scope {
	if c.tos == nil || c.tos == c.base {
		panic("attempt to pop builtin scope from catalog")
	}
	sc := c.tos
	tracer().Debugf("popping scope [%s]", sc.Name)
	c.tos = sc.Parent
	return sc
}

// Define defines a variable in the innermost scope.
func (c *Catalog) Define(v Variable) error {
	return c.Current().Define(v)
}

// Lookup finds a variable, starting at the innermost scope.
func (c *Catalog) Lookup(name string) (Variable, *Scope) {
	return c.Current().Lookup(name)
}

// Resolve is part of interface scanner.Resolver.
func (c *Catalog) Resolve(name string) (token.VarRef, bool) {
	return c.Current().Resolve(name)
}

// Visible returns all variables visible from the innermost scope, sorted by
// name. Variables in inner scopes shadow variables in outer scopes.
func (c *Catalog) Visible() []Variable {
	seen := make(map[string]Variable)
	for sc := c.Current(); sc != nil; sc = sc.Parent {
		sc.table.Each(func(v Variable) {
			if _, ok := seen[v.Name]; !ok {
				seen[v.Name] = v
			}
		})
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	vars := make([]Variable, len(names))
	for i, name := range names {
		vars[i] = seen[name]
	}
	return vars
}
