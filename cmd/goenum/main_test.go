package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/goenum/i18n"
)

const declYAML = `package: paint
families:
  - name: Color
    values: [red, green, blue]
  - name: Direction
    tag: nav.Direction
    values: ["N", "S", "E", "W"]
`

func writeDecl(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "enums.yaml")
	require.NoError(t, os.WriteFile(p, []byte(declYAML), 0o644))
	return p
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGen_WritesFile(t *testing.T) {
	decl := writeDecl(t)
	out := filepath.Join(t.TempDir(), "sub", "paint_gen.go")

	_, stderr, err := run(t, "gen", "-f", decl, "-o", out, "--package", "colors")
	require.NoError(t, err)
	assert.Contains(t, stderr, "wrote generated file")

	code, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(code), "package colors")
	assert.Contains(t, string(code), `ColorRed   = colorEnum.MustDeclare("red")`)
	assert.Contains(t, string(code), `goenum.WithTag("nav.Direction")`)
}

func TestGen_Stdout(t *testing.T) {
	stdout, _, err := run(t, "gen", "-f", writeDecl(t))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "// Code generated by goenum gen; DO NOT EDIT."))
}

func TestSchema_Family(t *testing.T) {
	stdout, _, err := run(t, "schema", "-f", writeDecl(t), "--family", "Color")
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"string","title":"Color","enum":["red","green","blue"]}`, stdout)

	_, _, err = run(t, "schema", "-f", writeDecl(t), "--family", "Nope")
	require.Error(t, err)
}

func TestSchema_WholeFile(t *testing.T) {
	stdout, _, err := run(t, "schema", "-f", writeDecl(t))
	require.NoError(t, err)
	assert.Contains(t, stdout, `"$defs"`)
	assert.Contains(t, stdout, `"Direction"`)
}

func TestCheck_AllValid(t *testing.T) {
	stdout, _, err := run(t, "check", "-f", writeDecl(t), "--family", "Color", "red", "blue")
	require.NoError(t, err)
	assert.Equal(t, "ok\tred\nok\tblue\n", stdout)
}

func TestCheck_ReportsIssuesAndExitCode(t *testing.T) {
	decl := writeDecl(t)
	stdout, _, err := run(t, "check", "-f", decl, "--family", "Color", "red", "purple")
	require.Error(t, err)
	assert.Equal(t, 3, exitCode(err))
	assert.Equal(t, "/1\tunknown_label\t'purple' is not a valid Color value\n", stdout)
	assert.EqualError(t, err, "1 of 2 labels are not valid Color values")

	// Running twice in one process must not collide in the catalog.
	_, _, err = run(t, "check", "-f", decl, "--family", "Direction", "N")
	require.NoError(t, err)
}

func TestCheck_Japanese(t *testing.T) {
	defer i18n.SetLanguage("en")
	stdout, _, err := run(t, "check", "-f", writeDecl(t), "--family", "Color", "--lang", "ja", "teal")
	require.Error(t, err)
	assert.Contains(t, stdout, "'teal' は Color の有効な値ではありません")
}

func TestCheck_FromEnvAndConfig(t *testing.T) {
	decl := writeDecl(t)
	t.Setenv("GOENUM_FILE", decl)
	stdout, _, err := run(t, "check", "--family", "Direction", "W")
	require.NoError(t, err)
	assert.Equal(t, "ok\tW\n", stdout)

	cfg := filepath.Join(t.TempDir(), "goenum.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("family: Color\n"), 0o644))
	stdout, _, err = run(t, "check", "--config", cfg, "green")
	require.NoError(t, err)
	assert.Equal(t, "ok\tgreen\n", stdout)
}

func TestCheck_MissingInputs(t *testing.T) {
	_, _, err := run(t, "check", "--family", "Color", "red")
	require.ErrorContains(t, err, "declaration file is required")

	_, _, err = run(t, "check", "-f", writeDecl(t), "red")
	require.ErrorContains(t, err, "a family is required")
}
