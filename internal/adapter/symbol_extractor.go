package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	m "github.com/commitkind/commitkind/internal/model"
)

// DefaultMaxFileSize is the largest file the extractor parses.
const DefaultMaxFileSize = 1_000_000 // 1 MB

var (
	// ErrFileTooLarge is returned for files above the configured size limit.
	ErrFileTooLarge = errors.New("file too large")
	// ErrInvalidContent is returned for content that is not valid UTF-8.
	ErrInvalidContent = errors.New("invalid content")
	// ErrSyntax is returned when the parse tree contains syntax errors.
	ErrSyntax = errors.New("syntax error")
)

// SymbolExtractor turns one source file into the type declarations it
// contributes to the API surface. Implementations must only parse, never
// execute, the file.
type SymbolExtractor interface {
	// Supports reports whether the extractor understands the file at path.
	Supports(path m.Path) bool

	// Extract reads the file at path (relative to the repository root) and
	// returns its declarations. Errors are per-file.
	Extract(ctx context.Context, path m.Path) ([]m.TypeDecl, error)
}

// PythonExtractorOption configures a PythonExtractor.
type PythonExtractorOption func(*PythonExtractor)

// WithMaxFileSize sets the maximum file size the extractor will accept.
func WithMaxFileSize(bytes int64) PythonExtractorOption {
	return func(p *PythonExtractor) {
		if bytes > 0 {
			p.maxFileSize = bytes
		}
	}
}

// WithIncludePrivate keeps _private classes and members in the surface.
func WithIncludePrivate(include bool) PythonExtractorOption {
	return func(p *PythonExtractor) {
		p.includePrivate = include
	}
}

// PythonExtractor extracts classes, methods and module-level functions from
// Python sources with tree-sitter.
//
// Classes become TypeDecls named "<module>.<Class>", where module is the
// dotted path of the file ("pkg/sub/mod.py" -> "pkg.sub.mod"). Module-level
// functions are collected in a TypeDecl named after the module itself.
// Only top-level definitions are considered.
//
// Safe for concurrent use: each Extract call creates its own parser.
type PythonExtractor struct {
	fs             SourceFSAdapter
	root           m.Path
	maxFileSize    int64
	includePrivate bool
}

// NewPythonExtractor creates an extractor reading files below root.
func NewPythonExtractor(fs SourceFSAdapter, root m.Path, opts ...PythonExtractorOption) *PythonExtractor {
	p := &PythonExtractor{
		fs:          fs,
		root:        root,
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Supports reports whether path is a Python source or stub file.
func (p *PythonExtractor) Supports(filePath m.Path) bool {
	switch path.Ext(string(filePath)) {
	case ".py", ".pyi":
		return true
	default:
		return false
	}
}

// Extract parses the file and returns its public declarations.
func (p *PythonExtractor) Extract(ctx context.Context, filePath m.Path) ([]m.TypeDecl, error) {
	absPath := p.fs.JoinPath(ctx, string(p.root), string(filePath))

	info, err := p.fs.FileInfo(ctx, absPath)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", filePath, err)
	}

	if info.Size() > p.maxFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrFileTooLarge, filePath, info.Size(), p.maxFileSize)
	}

	content, err := p.fs.ReadFile(ctx, absPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	return p.ExtractSource(ctx, filePath, content)
}

// ExtractSource parses content as if it were the file at filePath.
func (p *PythonExtractor) ExtractSource(ctx context.Context, filePath m.Path, content []byte) ([]m.TypeDecl, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%w: %s is not valid UTF-8", ErrInvalidContent, filePath)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filePath, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parsing %s: empty parse tree", filePath)
	}

	if root.HasError() {
		return nil, fmt.Errorf("%w in %s", ErrSyntax, filePath)
	}

	module := ModuleName(filePath)

	var (
		decls     []m.TypeDecl
		functions = newMemberSet()
		classes   = make(map[string]int)
	)

	for i := 0; i < int(root.NamedChildCount()); i++ {
		def := unwrapDecorated(root.NamedChild(i))
		if def == nil {
			continue
		}

		switch def.Type() {
		case "class_definition":
			decl, ok, err := p.classDecl(def, content, module)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", filePath, err)
			}

			if !ok {
				continue
			}

			// A later class statement rebinds the name, as at runtime.
			if idx, seen := classes[decl.Name]; seen {
				decls[idx] = decl
				continue
			}

			classes[decl.Name] = len(decls)
			decls = append(decls, decl)
		case "function_definition":
			if member, ok := p.member(def, content); ok {
				functions.add(member)
			}
		}
	}

	if functions.len() > 0 {
		decl, err := m.NewTypeDecl(ModuleTypeName(module), functions.list()...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}

		decls = append(decls, decl)
	}

	slog.Debug("extracted declarations", "file", filePath, "module", module, "types", len(decls))

	return decls, nil
}

func (p *PythonExtractor) classDecl(node *sitter.Node, source []byte, module string) (m.TypeDecl, bool, error) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return m.TypeDecl{}, false, nil
	}

	name := nameNode.Content(source)
	if !p.visible(name) {
		return m.TypeDecl{}, false, nil
	}

	members := newMemberSet()

	if body := node.ChildByFieldName("body"); body != nil {
		for i := 0; i < int(body.NamedChildCount()); i++ {
			def := unwrapDecorated(body.NamedChild(i))
			if def == nil || def.Type() != "function_definition" {
				continue
			}

			if member, ok := p.member(def, source); ok {
				members.add(member)
			}
		}
	}

	decl, err := m.NewTypeDecl(module+"."+name, members.list()...)
	if err != nil {
		return m.TypeDecl{}, false, err
	}

	return decl, true, nil
}

func (p *PythonExtractor) member(node *sitter.Node, source []byte) (m.Member, bool) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return m.Member{}, false
	}

	name := nameNode.Content(source)
	if !p.visible(name) {
		return m.Member{}, false
	}

	var specs []m.ParamSpec
	if params := node.ChildByFieldName("parameters"); params != nil {
		specs = pythonParams(params, source)
	}

	return m.NewMember(name, specs...), true
}

// visible reports whether name belongs to the public surface. Dunder names
// (__init__, __call__) are public; other underscore names are private.
func (p *PythonExtractor) visible(name string) bool {
	if p.includePrivate || !strings.HasPrefix(name, "_") {
		return true
	}

	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// pythonParams converts a `parameters` node into specs in declaration
// order. Separators (`*`, `/`) are not parameters. *args and **kwargs never
// need an argument at the call site, so they count as defaulted.
func pythonParams(node *sitter.Node, source []byte) []m.ParamSpec {
	var specs []m.ParamSpec

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)

		switch child.Type() {
		case "identifier", "tuple_pattern":
			specs = append(specs, m.Required(child.Content(source)))
		case "default_parameter", "typed_default_parameter":
			if name := child.ChildByFieldName("name"); name != nil {
				specs = append(specs, m.Optional(name.Content(source)))
			}
		case "typed_parameter":
			if child.NamedChildCount() == 0 {
				continue
			}

			inner := child.NamedChild(0)
			switch inner.Type() {
			case "list_splat_pattern", "dictionary_splat_pattern":
				if name, ok := splatName(inner, source); ok {
					specs = append(specs, m.Optional(name))
				}
			default:
				specs = append(specs, m.Required(inner.Content(source)))
			}
		case "list_splat_pattern", "dictionary_splat_pattern":
			if name, ok := splatName(child, source); ok {
				specs = append(specs, m.Optional(name))
			}
		}
	}

	return specs
}

func splatName(node *sitter.Node, source []byte) (string, bool) {
	prefix := "*"
	if node.Type() == "dictionary_splat_pattern" {
		prefix = "**"
	}

	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "identifier" {
			return prefix + child.Content(source), true
		}
	}

	// A bare `*` marks keyword-only parameters.
	return "", false
}

func unwrapDecorated(node *sitter.Node) *sitter.Node {
	if node == nil || node.Type() != "decorated_definition" {
		return node
	}

	return node.ChildByFieldName("definition")
}

// ModuleName converts a repository-relative file path into a dotted Python
// module name: "pkg/sub/mod.py" -> "pkg.sub.mod", "pkg/__init__.py" -> "pkg".
func ModuleName(filePath m.Path) string {
	p := strings.ReplaceAll(string(filePath), "\\", "/")
	p = strings.TrimPrefix(path.Clean(p), "./")
	p = strings.TrimSuffix(p, path.Ext(p))

	parts := strings.Split(p, "/")
	if len(parts) > 1 && parts[len(parts)-1] == "__init__" {
		parts = parts[:len(parts)-1]
	}

	return strings.Join(parts, ".")
}

// moduleScope names the pseudo-type holding a module's free functions. It is
// not a Python identifier, so no class can produce the same qualified name.
const moduleScope = "<module>"

// ModuleTypeName returns the name of the pseudo-type holding the free
// functions of module: "pkg.mod" -> "pkg.mod.<module>".
func ModuleTypeName(module string) string {
	return module + "." + moduleScope
}

// memberSet keeps members by name in first-seen order. A redefinition
// replaces the earlier one, matching Python's last-binding-wins semantics.
type memberSet struct {
	order  []string
	byName map[string]m.Member
}

func newMemberSet() *memberSet {
	return &memberSet{byName: make(map[string]m.Member)}
}

func (s *memberSet) add(member m.Member) {
	if _, seen := s.byName[member.Name]; !seen {
		s.order = append(s.order, member.Name)
	}

	s.byName[member.Name] = member
}

func (s *memberSet) len() int {
	return len(s.order)
}

func (s *memberSet) list() []m.Member {
	out := make([]m.Member, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}

	return out
}
