package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// RenderFile produces gofmt-ed Go source declaring every family of f.
func RenderFile(f File) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fileTmpl.Execute(&buf, f); err != nil {
		return nil, fmt.Errorf("gen: execute template: %w", err)
	}
	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: format: %w\n%s", err, buf.Bytes())
	}
	return out, nil
}

var fileTmpl = template.Must(template.New("file").Funcs(template.FuncMap{
	"quote": strconv.Quote,
	"lower": lowerFirst,
}).Parse(`// Code generated by goenum gen; DO NOT EDIT.

package {{.Package}}

import "github.com/reoring/goenum"
{{range .Families}}{{$t := .TypeName}}{{$l := lower $t}}
type {{$l}}Tag struct{}

{{if .Doc}}// {{$t}} {{.Doc}}{{else}}// {{$t}} is a member of the {{.Name}} enumeration.{{end}}
type {{$t}} = goenum.Member[{{$l}}Tag]

var {{$l}}Enum = goenum.MustFamily[{{$l}}Tag]({{quote .Name}}{{with .TagName}}, goenum.WithTag({{quote .}}){{end}})

var (
{{- $f := .}}{{range .Values}}
	{{$f.MemberIdent .}} = {{$l}}Enum.MustDeclare({{quote .}})
{{- end}}
)

func init() { {{$l}}Enum.Seal() }

// Parse{{$t}} returns the {{$t}} labeled s.
func Parse{{$t}}(s string) ({{$t}}, error) { return {{$l}}Enum.Lookup(s) }

// {{$t}}Values returns every {{$t}} in declaration order.
func {{$t}}Values() []{{$t}} { return {{$l}}Enum.Values() }
{{end}}`))

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}
