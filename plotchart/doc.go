// Package plotchart renders regression fits as scatter-plus-line charts.
//
// Rendering is a visualization side effect only; nothing downstream consumes
// the output. The formats supported follow gonum/plot's Save: the file
// extension selects png, svg, pdf, and friends.
package plotchart
