package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/sheetplot/internal/domain/errors"
	"github.com/leengari/sheetplot/internal/testutil"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	a := &app{}
	defer a.close()

	cmd := newRootCommand(a)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPlotCommand(t *testing.T) {
	dir := t.TempDir()
	book := testutil.WriteWorkbook(t, dir, "iris.xlsx", testutil.IrisSheet())
	output := filepath.Join(dir, "violin.svg")

	_, err := execute(t, "plot", "--source", book, "--output", output, "--log-level", "warn")
	assert.NilError(t, err)

	b, err := os.ReadFile(output)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(b), "Violin Plot: Sepal Width Distribution by Species"))
}

func TestPlotCommand_Stdout(t *testing.T) {
	book := testutil.WriteWorkbook(t, t.TempDir(), "iris.xlsx", testutil.IrisSheet())

	out, err := execute(t, "plot", "--source", book, "--output", "-", "--format", "svg", "--log-level", "error")
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "<svg"))
}

func TestPlotCommand_MissingTable(t *testing.T) {
	dir := t.TempDir()
	sheet := testutil.IrisSheet()
	sheet.TableName = "penguins"
	book := testutil.WriteWorkbook(t, dir, "other.xlsx", sheet)
	output := filepath.Join(dir, "violin.png")

	_, err := execute(t, "plot", "--source", book, "--output", output, "--log-level", "error")
	assert.Assert(t, stderrors.Is(err, errors.ErrTableNotFound), "got %v", err)

	_, statErr := os.Stat(output)
	assert.Assert(t, os.IsNotExist(statErr))
}

func TestPlotCommand_NoSource(t *testing.T) {
	_, err := execute(t, "plot", "--log-level", "error")
	assert.ErrorContains(t, err, "no data source")
}

func TestDescribeCommand(t *testing.T) {
	book := testutil.WriteWorkbook(t, t.TempDir(), "iris.xlsx", testutil.IrisSheet())

	out, err := execute(t, "describe", "--source", book, "--log-level", "error")
	assert.NilError(t, err)
	for _, species := range []string{"setosa", "versicolor", "virginica"} {
		assert.Assert(t, strings.Contains(out, species), out)
	}
}

func TestTablesCommand(t *testing.T) {
	dir := t.TempDir()
	testutil.WriteTableDir(t, dir, "iris",
		map[string]string{"sepal_width": "float", "species": "text"},
		[]string{"sepal_width", "species"}, nil)

	out, err := execute(t, "tables", "--source", dir, "--log-level", "error")
	assert.NilError(t, err)
	assert.Equal(t, out, "iris\n")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	book := testutil.WriteWorkbook(t, dir, "iris.xlsx", testutil.IrisSheet())
	output := filepath.Join(dir, "from-config.png")
	cfg := filepath.Join(dir, "sheetplot.yaml")
	content := "source: " + book + "\noutput: " + output + "\nlog:\n  level: error\n"
	assert.NilError(t, os.WriteFile(cfg, []byte(content), 0o644))

	_, err := execute(t, "plot", "--config", cfg)
	assert.NilError(t, err)

	_, err = os.Stat(output)
	assert.NilError(t, err)
}
