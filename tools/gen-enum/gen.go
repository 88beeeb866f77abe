package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/constant"
	"go/format"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"unicode"

	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"
	"golang.org/x/tools/go/packages"
)

const defaultSetImport = "github.com/rdeusser/sets/set"

var funcMap = template.FuncMap{
	"join": strings.Join,
}

type GeneratorOptions struct {
	Args      []string
	BuildTags string
	Output    string
	Type      string
	SetImport string
	NoSet     bool
}

type Generator struct {
	options GeneratorOptions
	pkgDefs map[*ast.Ident]types.Object
	pkgName string
	values  []Value
	err     error
}

type Value struct {
	Name         string
	OriginalName string
	Value        int64
}

type templateData struct {
	Args        []string
	PackageName string
	Type        string
	SetImport   string
	GenerateSet bool
	Values      []Value
}

func NewGenerator(options GeneratorOptions) *Generator {
	if options.SetImport == "" {
		options.SetImport = defaultSetImport
	}

	return &Generator{options: options}
}

// Run loads the package in the output directory, finds the constants of the
// requested type and writes <type>_enum.go next to them.
func (g *Generator) Run() ([]byte, error) {
	var tags []string

	if g.options.BuildTags != "" {
		tags = strings.Split(g.options.BuildTags, ",")
	}

	dir := g.options.Output
	if dir == "" {
		dir = "."
	}

	cfg := &packages.Config{
		Mode:       packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:        dir,
		Tests:      false,
		BuildFlags: []string{fmt.Sprintf("-tags=%s", strings.Join(tags, " "))},
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, errors.Wrap(err, "loading package")
	}

	if len(pkgs) != 1 {
		return nil, errors.Errorf("%d packages found", len(pkgs))
	}

	g.pkgName = pkgs[0].Name
	g.pkgDefs = pkgs[0].TypesInfo.Defs

	for _, file := range pkgs[0].Syntax {
		ast.Inspect(file, g.findType)
	}

	if g.err != nil {
		return nil, g.err
	}

	if len(g.values) == 0 {
		return nil, errors.Errorf("no constants of type %q found", g.options.Type)
	}

	src, err := render(templateData{
		Args:        g.options.Args,
		PackageName: g.pkgName,
		Type:        g.options.Type,
		SetImport:   g.options.SetImport,
		GenerateSet: !g.options.NoSet,
		Values:      g.values,
	})
	if err != nil {
		return src, err
	}

	output := filepath.Join(dir, fmt.Sprintf("%s_enum.go", strings.ToLower(g.options.Type)))

	if err := os.WriteFile(output, src, 0o644); err != nil {
		return src, errors.Wrapf(err, "writing %s", output)
	}

	return src, nil
}

func render(data templateData) ([]byte, error) {
	var buf bytes.Buffer

	if err := _tmpl.Execute(&buf, data); err != nil {
		return buf.Bytes(), errors.Wrap(err, "executing template")
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return buf.Bytes(), errors.Wrap(err, "formatting generated code")
	}

	return src, nil
}

func (g *Generator) findType(node ast.Node) bool {
	if g.err != nil {
		return false
	}

	decl, ok := node.(*ast.GenDecl)
	if !ok || decl.Tok != token.CONST {
		// Enum declarations need to be const.
		return true
	}

	typ := "" // name of the constant's type, carried over iota lines

	for _, spec := range decl.Specs {
		vspec := spec.(*ast.ValueSpec) // we've already determined this is a const
		if vspec.Type != nil {
			ident, ok := vspec.Type.(*ast.Ident)
			if !ok {
				continue
			}

			typ = ident.Name
		}

		if g.options.Type != typ {
			continue
		}

		for _, name := range vspec.Names {
			if name.Name == "_" {
				continue
			}

			v, err := g.value(name, vspec.Comment)
			if err != nil {
				g.err = err
				return false
			}

			g.values = append(g.values, v)
		}
	}

	return false
}

func (g *Generator) value(name *ast.Ident, comment *ast.CommentGroup) (Value, error) {
	obj, ok := g.pkgDefs[name]
	if !ok {
		return Value{}, errors.Errorf("no value for constant %q", name.Name)
	}

	info, ok := obj.Type().Underlying().(*types.Basic)
	if !ok || info.Info()&types.IsInteger == 0 {
		return Value{}, errors.Errorf("%q must be an integer type", g.options.Type)
	}

	value := obj.(*types.Const).Val()
	if value.Kind() != constant.Int {
		return Value{}, errors.Errorf("%q constant is not an integer", name.Name)
	}

	i64, _ := constant.Int64Val(value)
	if info.Info()&types.IsUnsigned != 0 {
		u64, _ := constant.Uint64Val(value)
		i64 = int64(u64)
	}

	v := Value{
		OriginalName: name.Name,
		Name:         kebab(name.Name),
		Value:        i64,
	}

	if comment == nil || len(comment.List) != 1 {
		return v, nil
	}

	// A trailing comment may rename the value: `// name="read-only"`.
	fields := strset.New(strings.Split(strings.TrimSpace(comment.Text()), ", ")...)

	var err error

	fields.Each(func(field string) bool {
		key, raw, found := strings.Cut(field, "=")
		if !found || key != "name" {
			return true
		}

		if strings.HasPrefix(raw, `"`) {
			raw, err = strconv.Unquote(raw)
			if err != nil {
				err = errors.Wrapf(err, "name of %s", name.Name)
				return false
			}
		}

		v.Name = raw

		return true
	})

	return v, err
}

// kebab turns SupportsAdd and SUPPORTS_ADD into supports-add.
func kebab(name string) string {
	if strings.Contains(name, "_") {
		return strings.ReplaceAll(strings.ToLower(name), "_", "-")
	}

	var sb strings.Builder

	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
			sb.WriteByte('-')
		}

		sb.WriteRune(unicode.ToLower(r))
	}

	return sb.String()
}

var _tmpl = template.Must(template.New("").Funcs(funcMap).Parse(`// Code generated by "gen-enum {{ join .Args " " }}"; DO NOT EDIT.

package {{ .PackageName }}

import (
	"strconv"

	"github.com/pkg/errors"
{{- if .GenerateSet }}

	"{{ .SetImport }}"
{{- end }}
)

func _() {
	// An "invalid array index" compiler error signifies that the constant
	// values have changed. Run the generator again.
	var x [1]struct{}
	{{- range .Values }}
	_ = x[{{ .OriginalName }}-{{ .Value }}]
	{{- end }}
}

var _{{ .Type }}_names = map[{{ .Type }}]string{
	{{- range .Values }}
	{{ .OriginalName }}: "{{ .Name }}",
	{{- end }}
}

var _{{ .Type }}_values = map[string]{{ .Type }}{
	{{- range .Values }}
	"{{ .Name }}": {{ .OriginalName }},
	{{- end }}
}

var ErrInvalid{{ .Type }} = errors.New("invalid {{ .Type }}")

func (i {{ .Type }}) String() string {
	if name, ok := _{{ .Type }}_names[i]; ok {
		return name
	}
	return "{{ .Type }}(" + strconv.FormatInt(int64(i), 10) + ")"
}

// Parse{{ .Type }} returns the {{ .Type }} named s.
func Parse{{ .Type }}(s string) ({{ .Type }}, error) {
	if v, ok := _{{ .Type }}_values[s]; ok {
		return v, nil
	}
	return 0, errors.Wrapf(ErrInvalid{{ .Type }}, "%q", s)
}

// {{ .Type }}List returns every {{ .Type }} in declaration order.
func {{ .Type }}List() []{{ .Type }} {
	return []{{ .Type }}{
		{{- range .Values }}
		{{ .OriginalName }},
		{{- end }}
	}
}
{{- if .GenerateSet }}

// New{{ .Type }}Set returns an enum set of items. It panics if an item is not
// a declared {{ .Type }}.
func New{{ .Type }}Set(items ...{{ .Type }}) *set.EnumSet[{{ .Type }}] {
	s, err := set.NewEnumSet({{ .Type }}List, items...)
	if err != nil {
		panic(err)
	}
	return s
}
{{- end }}
`))
