package dataset_test

import (
	"fmt"
	"log"

	"github.com/arloliu/linreg/dataset"
)

// ExampleLoad demonstrates loading the bundled Longley employment table.
func ExampleLoad() {
	table, err := dataset.Load("testdata/longley.csv")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("rows: %d\n", table.NumRows())
	fmt.Printf("index: %s\n", table.IndexName())
	fmt.Printf("columns: %v\n", table.ColumnNames())

	// Output:
	// rows: 16
	// index: Year
	// columns: [GNPDeflator GNP Unemployed ArmedForces Population Employed]
}

// ExampleNewDesign demonstrates building a design matrix with an intercept.
func ExampleNewDesign() {
	table, err := dataset.Load("testdata/longley.csv")
	if err != nil {
		log.Fatal(err)
	}

	design, err := dataset.NewDesign(table, "Employed", []string{"GNP"},
		dataset.WithIntercept())
	if err != nil {
		log.Fatal(err)
	}

	rows, cols := design.Matrix.Dims()
	fmt.Printf("design: %d x %d\n", rows, cols)
	fmt.Printf("columns: %v\n", design.Columns)
	fmt.Printf("first row: [%.0f %.3f]\n", design.Matrix.At(0, 0), design.Matrix.At(0, 1))

	// Output:
	// design: 16 x 2
	// columns: [const GNP]
	// first row: [1 234.289]
}
