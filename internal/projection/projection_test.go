package projection_test

import (
	stderrors "errors"
	"math"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/leengari/sheetplot/internal/domain/errors"
	"github.com/leengari/sheetplot/internal/domain/schema"
	"github.com/leengari/sheetplot/internal/projection"
	"github.com/leengari/sheetplot/internal/testutil"
)

// TestProjection_ValidateProjection tests projection validation
func TestProjection_ValidateProjection(t *testing.T) {
	table := testutil.CreateIrisTable()

	validProj := projection.NewProjectionWithColumns(
		projection.ColumnRef{Column: "sepal_width"},
		projection.ColumnRef{Column: "species"},
	)
	testutil.AssertNoError(t, projection.ValidateProjection(table, validProj), "Valid projection")

	invalidProj := projection.NewProjectionWithColumns(
		projection.ColumnRef{Column: "species"},
		projection.ColumnRef{Column: "petal_area"},
	)
	err := projection.ValidateProjection(table, invalidProj)
	testutil.AssertError(t, err, "Invalid projection")

	var colErr *errors.ColumnNotFoundError
	assert.Assert(t, stderrors.As(err, &colErr))
	assert.Equal(t, colErr.ColumnName, "petal_area")
}

// TestProjection_Columns tests extraction with aliases
func TestProjection_Columns(t *testing.T) {
	table := testutil.CreateExampleTable()

	cols, err := projection.Columns(table, projection.NewProjectionWithColumns(
		projection.ColumnRef{Column: "sepal_width", Alias: "y"},
		projection.ColumnRef{Column: "species"},
	))
	assert.NilError(t, err)
	assert.Equal(t, len(cols), 2)
	assert.DeepEqual(t, cols["y"], []interface{}{3.5, 3.0, 3.2, 2.8})
	assert.DeepEqual(t, cols["species"], []interface{}{"setosa", "setosa", "versicolor", "versicolor"})
}

func TestPairs_ExampleTable(t *testing.T) {
	obs, err := projection.Pairs(testutil.CreateExampleTable(), "sepal_width", "species")
	assert.NilError(t, err)

	assert.Equal(t, obs.Len(), 4)
	assert.Equal(t, obs.Dropped, 0)

	groups := projection.GroupBy(obs)
	assert.DeepEqual(t, groups, []projection.Group{
		{Name: "setosa", Values: []float64{3.5, 3.0}},
		{Name: "versicolor", Values: []float64{3.2, 2.8}},
	})
}

func TestPairs_MissingColumn(t *testing.T) {
	table := testutil.CreateExampleTable()

	for _, cols := range [][2]string{{"sepal", "species"}, {"sepal_width", "kind"}} {
		_, err := projection.Pairs(table, cols[0], cols[1])
		assert.Assert(t, stderrors.Is(err, errors.ErrColumnNotFound))
	}
}

func TestPairs_DropsUnpairableRows(t *testing.T) {
	table := testutil.CreateTable("iris",
		[]schema.Column{
			{Name: "sepal_width", Type: schema.ColumnTypeText},
			{Name: "species", Type: schema.ColumnTypeText},
		},
		map[string]interface{}{"sepal_width": "3.1", "species": "setosa"},
		map[string]interface{}{"sepal_width": "n/a", "species": "setosa"},
		map[string]interface{}{"sepal_width": nil, "species": "setosa"},
		map[string]interface{}{"sepal_width": 2.9, "species": nil},
		map[string]interface{}{"sepal_width": 2.9, "species": "  "},
		map[string]interface{}{"sepal_width": math.NaN(), "species": "virginica"},
		map[string]interface{}{"species": "virginica"},
		map[string]interface{}{"sepal_width": int64(3), "species": "virginica"},
	)

	obs, err := projection.Pairs(table, "sepal_width", "species")
	assert.NilError(t, err)
	assert.DeepEqual(t, obs.Values, []float64{3.1, 3})
	assert.DeepEqual(t, obs.Categories, []string{"setosa", "virginica"})
	assert.Equal(t, obs.Dropped, 6)
}

func TestPairs_NumericColumnSkipsTextCells(t *testing.T) {
	table := testutil.CreateTable("iris",
		[]schema.Column{
			{Name: "sepal_width", Type: schema.ColumnTypeFloat},
			{Name: "species", Type: schema.ColumnTypeText},
		},
		map[string]interface{}{"sepal_width": 3.1, "species": "setosa"},
		map[string]interface{}{"sepal_width": "3.4", "species": "setosa"},
		map[string]interface{}{"sepal_width": int64(3), "species": "virginica"},
	)

	obs, err := projection.Pairs(table, "sepal_width", "species")
	assert.NilError(t, err)
	assert.DeepEqual(t, obs.Values, []float64{3.1, 3})
	assert.Equal(t, obs.Dropped, 1)
}

func TestPairs_SameColumnForValueAndCategory(t *testing.T) {
	table := testutil.CreateTable("t",
		[]schema.Column{{Name: "x", Type: schema.ColumnTypeFloat}},
		map[string]interface{}{"x": 1.0},
		map[string]interface{}{"x": 2.0},
	)

	obs, err := projection.Pairs(table, "x", "x")
	assert.NilError(t, err)
	assert.DeepEqual(t, obs.Values, []float64{1, 2})
	assert.DeepEqual(t, obs.Categories, []string{"1", "2"})
}

func TestGroupBy_FirstAppearanceOrder(t *testing.T) {
	obs, err := projection.Pairs(testutil.CreateIrisTable(), "sepal_width", "species")
	assert.NilError(t, err)

	groups := projection.GroupBy(obs)
	assert.DeepEqual(t, projection.GroupNames(groups), []string{"setosa", "versicolor", "virginica"})

	total := 0
	for _, g := range groups {
		total += len(g.Values)
	}
	testutil.AssertRowCount(t, total, len(testutil.IrisRecords()), "grouped observations")
	assert.Equal(t, len(groups[0].Values), 5)
}

func TestGroupBy_NumericCategories(t *testing.T) {
	table := testutil.CreateTable("t",
		[]schema.Column{{Name: "v", Type: schema.ColumnTypeFloat}, {Name: "k", Type: schema.ColumnTypeFloat}},
		map[string]interface{}{"v": 1.0, "k": 2.0},
		map[string]interface{}{"v": 2.0, "k": 1.5},
	)

	obs, err := projection.Pairs(table, "v", "k")
	assert.NilError(t, err)
	assert.DeepEqual(t, projection.GroupNames(projection.GroupBy(obs)), []string{"2", "1.5"})
}
