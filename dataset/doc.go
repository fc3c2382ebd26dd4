// Package dataset loads small delimited tabular datasets into in-memory
// observation tables and builds regression design matrices from them.
//
// A table is read from CSV text with a header row. The first column is the
// row index (typically a year); every remaining column is parsed as float64.
//
//	table, err := dataset.Load("testdata/longley.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A design matrix selects one response column and one or more predictor
// columns. The intercept column is opt-in, mirroring the with/without
// constant comparison common in regression teaching material:
//
//	design, err := dataset.NewDesign(table, "Employed", []string{"GNP"},
//	    dataset.WithIntercept())
//
// Tables are immutable after loading; building a design never modifies the
// source table.
package dataset
