package scaffold

import (
	"embed"
	"fmt"
	"regexp"
	"strings"

	"github.com/hsolberg/plume/internal/generator"
	"github.com/hsolberg/plume/internal/output"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// GuardStyle selects how generated headers guard against double inclusion.
type GuardStyle string

const (
	GuardPragma GuardStyle = "pragma" // #pragma once
	GuardIfndef GuardStyle = "ifndef" // classic #ifndef/#define/#endif
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Options describes one class-file pair to generate.
type Options struct {
	ClassName  string
	Namespaces []string
	Notice     string
	Placement  Placement
	GuardStyle GuardStyle // defaults to GuardPragma
	HeaderExt  string     // defaults to ".hpp"
	SourceExt  string     // defaults to ".cpp"
}

// Generator renders the header/source pair for a class.
type Generator struct {
	renderer *generator.Renderer
}

// NewGenerator creates a class-file generator.
func NewGenerator() *Generator {
	return &Generator{renderer: generator.NewRenderer()}
}

// Render produces the header and source text for opts. Pure: identical
// options render byte-identical output.
//
// Layout is fixed: notice, blank line, include guard, namespace opens, the
// class body (public default constructor and destructor, empty private
// section), then one closing brace per namespace in reverse order. The
// source file mirrors it with the include directive and out-of-line
// constructor and destructor definitions.
func (g *Generator) Render(opts Options) (header, source []byte, err error) {
	if err := validate(&opts); err != nil {
		return nil, nil, err
	}

	headerFile := opts.ClassName + opts.HeaderExt

	guardOpen, guardClose := guardLines(opts.GuardStyle, opts.ClassName)
	data := struct {
		Notice         string
		GuardOpen      string
		GuardClose     string
		NamespaceOpen  string
		NamespaceClose string
		ClassName      string
		Include        string
	}{
		Notice:         strings.TrimRight(opts.Notice, "\n"),
		GuardOpen:      guardOpen,
		GuardClose:     guardClose,
		NamespaceOpen:  namespaceOpen(opts.Namespaces),
		NamespaceClose: namespaceClose(opts.Namespaces),
		ClassName:      opts.ClassName,
		Include:        opts.Placement.IncludeDirective(headerFile),
	}

	header, err = g.renderer.RenderFS(templatesFS, "templates/class.hpp.tmpl", data)
	if err != nil {
		return nil, nil, err
	}

	source, err = g.renderer.RenderFS(templatesFS, "templates/class.cpp.tmpl", data)
	if err != nil {
		return nil, nil, err
	}

	return header, source, nil
}

// Generate renders the class files and returns the two write operations.
// The writes are independent: a failure on one must not suppress the other.
func (g *Generator) Generate(opts Options) ([]generator.Operation, error) {
	header, source, err := g.Render(opts)
	if err != nil {
		return nil, err
	}

	headerPath := opts.Placement.HeaderPath(opts.ClassName + opts.HeaderExt)
	sourcePath := opts.Placement.SourcePath(opts.ClassName + opts.SourceExt)
	output.Verbose(fmt.Sprintf("Header: %s", headerPath))
	output.Verbose(fmt.Sprintf("Source: %s", sourcePath))

	return []generator.Operation{
		&generator.WriteFileOp{Path: headerPath, Content: header, Mode: 0644},
		&generator.WriteFileOp{Path: sourcePath, Content: source, Mode: 0644},
	}, nil
}

func validate(opts *Options) error {
	if opts.ClassName == "" {
		return fmt.Errorf("class name: %w", ErrMissingInput)
	}
	if !identifierPattern.MatchString(opts.ClassName) {
		return fmt.Errorf("invalid class name %q", opts.ClassName)
	}
	for _, seg := range opts.Namespaces {
		if !identifierPattern.MatchString(seg) {
			return fmt.Errorf("invalid namespace segment %q", seg)
		}
	}

	if opts.GuardStyle == "" {
		opts.GuardStyle = GuardPragma
	}
	if opts.GuardStyle != GuardPragma && opts.GuardStyle != GuardIfndef {
		return fmt.Errorf("unknown guard style %q", opts.GuardStyle)
	}

	if opts.HeaderExt == "" {
		opts.HeaderExt = ".hpp"
	}
	if opts.SourceExt == "" {
		opts.SourceExt = ".cpp"
	}

	return nil
}

func guardLines(style GuardStyle, className string) (open, end string) {
	if style == GuardIfndef {
		macro := generator.GuardMacro(className)
		return "#ifndef " + macro + "\n#define " + macro, "#endif // " + macro
	}
	return "#pragma once", ""
}

func namespaceOpen(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	lines := make([]string, len(segments))
	for i, seg := range segments {
		lines[i] = "namespace " + seg + " {"
	}
	return strings.Join(lines, "\n")
}

func namespaceClose(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	lines := make([]string, len(segments))
	for i := range segments {
		// Reverse of the opening order.
		lines[i] = "} // namespace " + segments[len(segments)-1-i]
	}
	return strings.Join(lines, "\n")
}
