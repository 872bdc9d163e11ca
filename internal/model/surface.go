package model

import (
	"fmt"
	"sort"
	"strings"
)

// Parameter is one declared parameter of a callable. Two parameters are the
// same parameter when Name and Position match; HasDefault only decides
// whether adding it breaks existing callers.
type Parameter struct {
	Name       string
	Position   int
	HasDefault bool
}

// Same reports whether p and other identify the same parameter.
func (p Parameter) Same(other Parameter) bool {
	return p.Name == other.Name && p.Position == other.Position
}

// String renders the parameter as it would appear in a declaration header.
func (p Parameter) String() string {
	if p.HasDefault {
		return p.Name + "=…"
	}

	return p.Name
}

// ParamSpec describes a parameter before its position is assigned.
type ParamSpec struct {
	Name       string
	HasDefault bool
}

// Required returns a ParamSpec without a default value.
func Required(name string) ParamSpec {
	return ParamSpec{Name: name}
}

// Optional returns a ParamSpec with a default value.
func Optional(name string) ParamSpec {
	return ParamSpec{Name: name, HasDefault: true}
}

// Signature is the ordered parameter list of one callable. Positions are
// assigned at construction, so they are always contiguous from zero.
type Signature struct {
	params []Parameter
}

// NewSignature builds a Signature from specs in declaration order.
func NewSignature(specs ...ParamSpec) Signature {
	params := make([]Parameter, len(specs))
	for i, spec := range specs {
		params[i] = Parameter{Name: spec.Name, Position: i, HasDefault: spec.HasDefault}
	}

	return Signature{params: params}
}

// Len returns the number of parameters.
func (s Signature) Len() int {
	return len(s.params)
}

// At returns the parameter at position i.
func (s Signature) At(i int) Parameter {
	return s.params[i]
}

// Params returns a copy of the parameters in declaration order.
func (s Signature) Params() []Parameter {
	out := make([]Parameter, len(s.params))
	copy(out, s.params)

	return out
}

// String renders the signature as "(a, b, c=…)".
func (s Signature) String() string {
	parts := make([]string, len(s.params))
	for i, p := range s.params {
		parts[i] = p.String()
	}

	return "(" + strings.Join(parts, ", ") + ")"
}

// Member is one function or method.
type Member struct {
	Name      string
	Signature Signature
}

// NewMember returns a Member with the given parameter specs.
func NewMember(name string, specs ...ParamSpec) Member {
	return Member{Name: name, Signature: NewSignature(specs...)}
}

// TypeDecl is one class (or the module-level pseudo-type holding free
// functions) and its members keyed by name.
type TypeDecl struct {
	Name    string
	members map[string]Member
}

// NewTypeDecl builds a TypeDecl. Member names must be unique.
func NewTypeDecl(name string, members ...Member) (TypeDecl, error) {
	if name == "" {
		return TypeDecl{}, fmt.Errorf("type name is empty")
	}

	byName := make(map[string]Member, len(members))
	for _, member := range members {
		if _, dup := byName[member.Name]; dup {
			return TypeDecl{}, fmt.Errorf("type %s: duplicate member %q", name, member.Name)
		}

		byName[member.Name] = member
	}

	return TypeDecl{Name: name, members: byName}, nil
}

// MustTypeDecl is like NewTypeDecl but panics on error. Meant for fixtures.
func MustTypeDecl(name string, members ...Member) TypeDecl {
	decl, err := NewTypeDecl(name, members...)
	if err != nil {
		panic(err)
	}

	return decl
}

// Member looks up a member by name.
func (t TypeDecl) Member(name string) (Member, bool) {
	member, ok := t.members[name]
	return member, ok
}

// MemberNames returns the member names in sorted order.
func (t TypeDecl) MemberNames() []string {
	names := make([]string, 0, len(t.members))
	for name := range t.members {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of members.
func (t TypeDecl) Len() int {
	return len(t.members)
}

// Surface is the API surface extracted from a set of files at one point in
// time. It has no mutating methods; build one with a SurfaceBuilder.
type Surface struct {
	types map[string]TypeDecl
}

// Type looks up a type by name.
func (s Surface) Type(name string) (TypeDecl, bool) {
	decl, ok := s.types[name]
	return decl, ok
}

// TypeNames returns the type names in sorted order.
func (s Surface) TypeNames() []string {
	names := make([]string, 0, len(s.types))
	for name := range s.types {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of types.
func (s Surface) Len() int {
	return len(s.types)
}

// Lines renders the surface one member per line in a stable order, e.g.
// "pkg.mod.Client.get(self, key, default=…)". Types without members render
// as their bare name.
func (s Surface) Lines() []string {
	var lines []string

	for _, typeName := range s.TypeNames() {
		decl := s.types[typeName]
		if decl.Len() == 0 {
			lines = append(lines, typeName)
			continue
		}

		for _, memberName := range decl.MemberNames() {
			member := decl.members[memberName]
			lines = append(lines, typeName+"."+memberName+member.Signature.String())
		}
	}

	return lines
}

// SurfaceBuilder accumulates TypeDecls into a Surface.
type SurfaceBuilder struct {
	types map[string]TypeDecl
}

// NewSurfaceBuilder returns an empty builder.
func NewSurfaceBuilder() *SurfaceBuilder {
	return &SurfaceBuilder{types: make(map[string]TypeDecl)}
}

// Add registers decls. Nothing is added when any name is already taken.
func (b *SurfaceBuilder) Add(decls ...TypeDecl) error {
	seen := make(map[string]struct{}, len(decls))
	for _, decl := range decls {
		if _, dup := b.types[decl.Name]; dup {
			return fmt.Errorf("duplicate type %q", decl.Name)
		}

		if _, dup := seen[decl.Name]; dup {
			return fmt.Errorf("duplicate type %q", decl.Name)
		}

		seen[decl.Name] = struct{}{}
	}

	for _, decl := range decls {
		b.types[decl.Name] = decl
	}

	return nil
}

// Build returns the Surface. The builder must not be used afterwards.
func (b *SurfaceBuilder) Build() Surface {
	types := b.types
	b.types = nil

	return Surface{types: types}
}

// NewSurface builds a Surface from decls, failing on duplicate type names.
func NewSurface(decls ...TypeDecl) (Surface, error) {
	builder := NewSurfaceBuilder()
	if err := builder.Add(decls...); err != nil {
		return Surface{}, err
	}

	return builder.Build(), nil
}

// MustSurface is like NewSurface but panics on error. Meant for fixtures.
func MustSurface(decls ...TypeDecl) Surface {
	surface, err := NewSurface(decls...)
	if err != nil {
		panic(err)
	}

	return surface
}
