package main

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// declarations lists the top-level names of a Go source file, methods as
// Receiver.Method.
func declarations(t *testing.T, src []byte) []string {
	t.Helper()

	file, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err)

	var names []string
	for _, decl := range file.Decls {
		switch decl := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range decl.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					names = append(names, ts.Name.Name)
				}
			}
		case *ast.FuncDecl:
			name := decl.Name.Name
			if decl.Recv != nil {
				recv := decl.Recv.List[0].Type
				if star, ok := recv.(*ast.StarExpr); ok {
					recv = star.X
				}
				name = recv.(*ast.IndexListExpr).X.(*ast.Ident).Name + "." + name
			}
			names = append(names, name)
		}
	}
	return names
}

func TestRenderArity(t *testing.T) {
	wiz, err := NewWizard()
	require.NoError(t, err)

	src, err := wiz.RenderArity("anoniter", 3)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Iter3",
		"Iter3.Variant1", "Iter3.Variant2", "Iter3.Variant3",
		"Iter3.Variant", "Iter3.Next", "Iter3.SizeHint",
		"DoubleEnded3", "AsDoubleEnded3", "DoubleEnded3.NextBack",
		"ExactSize3", "AsExactSize3", "ExactSize3.Len",
		"DoubleEndedExactSize3", "AsDoubleEndedExactSize3", "DoubleEndedExactSize3.NextBack", "DoubleEndedExactSize3.Len",
		"Fallible3", "AsFallible3", "Fallible3.Err",
		"Fused3", "AsFused3", "Fused3.Fused",
	}, declarations(t, src))
	assert.Contains(t, string(src), "// Code generated by anongen. DO NOT EDIT.")
	assert.Contains(t, string(src), "type Iter3[T any, I1, I2, I3 Iterator[T]] struct {")
	assert.Contains(t, string(src), "\tdefault:\n\t\treturn it.i3.Next()\n")
	assert.Contains(t, string(src), "func (it *Iter3[T, I1, I2, I3]) Variant() int {")
	assert.Contains(t, string(src), "a pointer type panics on Next.")
	assert.Contains(t, string(src), "func (Fused3[T, I1, I2, I3]) Fused() {}")
}

func TestRenderArityAtTagLimit(t *testing.T) {
	wiz, err := NewWizard()
	require.NoError(t, err)

	src, err := wiz.RenderArity("anoniter", maxArity)
	require.NoError(t, err)
	assert.Contains(t, string(src), "\tcase 254:\n\t\treturn it.i255.Next()\n\tdefault:\n\t\treturn it.i256.Next()\n")
}

// The checked-in sources must declare what the generator would write.
func TestCheckedInSourcesAreCurrent(t *testing.T) {
	wiz, err := NewWizard()
	require.NoError(t, err)

	for n := 2; n <= 8; n++ {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			want, err := wiz.RenderArity("anoniter", n)
			require.NoError(t, err)

			got, err := os.ReadFile(filepath.Join("..", "..", fmt.Sprintf("anon%d.go", n)))
			require.NoError(t, err)

			assert.Equal(t, declarations(t, want), declarations(t, got))
		})
	}
}

func TestRenderArityOutOfRange(t *testing.T) {
	wiz, err := NewWizard()
	require.NoError(t, err)

	for _, n := range []int{-1, 0, 1, maxArity + 1} {
		_, err := wiz.RenderArity("anoniter", n)
		assert.Error(t, err, "arity %d", n)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    options
		wantErr bool
	}{
		{"default", options{Min: 2, Max: 8}, false},
		{"single", options{Min: 5, Max: 5}, false},
		{"min too small", options{Min: 1, Max: 8}, true},
		{"inverted", options{Min: 8, Max: 2}, true},
		{"max at tag limit", options{Min: 2, Max: 256}, false},
		{"max too large", options{Min: 2, Max: 257}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	err := generate(zap.NewNop(), options{Min: 2, Max: 4, Dir: dir, Package: "wrappers"})
	require.NoError(t, err)

	for n := 2; n <= 4; n++ {
		src, err := os.ReadFile(filepath.Join(dir, fmt.Sprintf("anon%d.go", n)))
		require.NoError(t, err)
		assert.Contains(t, string(src), "package wrappers\n")
	}
	assert.NoFileExists(t, filepath.Join(dir, "anon5.go"))
}

func TestGenerateRejectsBadRange(t *testing.T) {
	dir := t.TempDir()
	err := generate(zap.NewNop(), options{Min: 4, Max: 3, Dir: dir, Package: "wrappers"})
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "anon4.go"))
}

func TestOrdinal(t *testing.T) {
	for n, want := range map[int]string{1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 11: "11th", 12: "12th", 13: "13th", 21: "21st", 22: "22nd", 111: "111th"} {
		assert.Equal(t, want, ordinal(n))
	}
}

func TestApp(t *testing.T) {
	dir := t.TempDir()
	app := newApp(zap.NewNop())
	err := app.Run([]string{"anongen", "--min", "2", "--max", "2", "--dir", dir})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "anon2.go"))
}
