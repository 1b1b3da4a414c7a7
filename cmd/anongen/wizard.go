package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"golang.org/x/tools/imports"
)

//go:embed anon.tmpl
var coreTemplate string

// maxArity is bounded by the uint8 tag of the generated types.
const maxArity = 256

type Wizard struct {
	template *template.Template
}

func NewWizard() (*Wizard, error) {
	t, err := template.New("core").Parse(coreTemplate)
	if err != nil {
		return nil, errors.Wrap(err, "parsing template")
	}
	return &Wizard{template: t}, nil
}

func (wiz *Wizard) Render(name string, data any) ([]byte, error) {
	var out bytes.Buffer
	err := wiz.template.ExecuteTemplate(&out, name, data)
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// RenderArity renders and formats the source of IterN and its views.
func (wiz *Wizard) RenderArity(pkg string, n int) ([]byte, error) {
	if n < 2 || n > maxArity {
		return nil, errors.Errorf("arity %d out of range [2, %d]", n, maxArity)
	}
	src, err := wiz.Render("arity", newArity(pkg, n))
	if err != nil {
		return nil, errors.Wrapf(err, "rendering arity %d", n)
	}
	filename := fmt.Sprintf("anon%d.go", n)
	formatted, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "formatting %s", filename)
	}
	return formatted, nil
}

type variant struct {
	Index   int
	Tag     int
	Ordinal string
	Last    bool
}

// Case is the switch clause selecting this variant. The last variant takes
// the default clause so that every switch is a terminating statement.
func (v variant) Case() string {
	if v.Last {
		return "default"
	}
	return fmt.Sprintf("case %d", v.Tag)
}

type method struct {
	Signature string
	// Call is empty for marker methods.
	Call string
}

type view struct {
	Type       string
	Constraint string
	Doc        string
	Methods    []method
}

type arity struct {
	Package  string
	N        int
	Variants []variant
	Views    []view
}

func newArity(pkg string, n int) arity {
	a := arity{Package: pkg, N: n}
	for i := 1; i <= n; i++ {
		a.Variants = append(a.Variants, variant{
			Index:   i,
			Tag:     i - 1,
			Ordinal: ordinal(i),
			Last:    i == n,
		})
	}
	nextBack := method{"NextBack() (T, bool)", "NextBack()"}
	length := method{"Len() int", "Len()"}
	a.Views = []view{
		{fmt.Sprintf("DoubleEnded%d", n), "DoubleEndedIterator", "can all be advanced from the back", []method{nextBack}},
		{fmt.Sprintf("ExactSize%d", n), "ExactSizeIterator", "all know exactly how many elements remain", []method{length}},
		{fmt.Sprintf("DoubleEndedExactSize%d", n), "DoubleEndedExactSizeIterator", "are all both double-ended and exact-size", []method{nextBack, length}},
		{fmt.Sprintf("Fallible%d", n), "FallibleIterator", "can all fail mid-sequence", []method{{"Err() error", "Err()"}}},
		{fmt.Sprintf("Fused%d", n), "FusedIterator", "all stay exhausted once exhausted", []method{{"Fused()", ""}}},
	}
	return a
}

func (a arity) Name() string {
	return fmt.Sprintf("Iter%d", a.N)
}

func (a arity) typeParams() []string {
	params := make([]string, 0, a.N)
	for _, v := range a.Variants {
		params = append(params, fmt.Sprintf("I%d", v.Index))
	}
	return params
}

// Params is the type parameter list with every variant bound by constraint.
func (a arity) Params(constraint string) string {
	return fmt.Sprintf("T any, %s %s[T]", strings.Join(a.typeParams(), ", "), constraint)
}

// Args is the type argument list matching Params.
func (a arity) Args() string {
	return "T, " + strings.Join(a.typeParams(), ", ")
}

func ordinal(n int) string {
	switch {
	case n%100 >= 11 && n%100 <= 13:
		return fmt.Sprintf("%dth", n)
	case n%10 == 1:
		return fmt.Sprintf("%dst", n)
	case n%10 == 2:
		return fmt.Sprintf("%dnd", n)
	case n%10 == 3:
		return fmt.Sprintf("%drd", n)
	}
	return fmt.Sprintf("%dth", n)
}
