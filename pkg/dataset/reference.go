package dataset

import "github.com/matzehuels/frontier/pkg/dominance"

// referenceRows is the built-in 20 x 2 table used when no dataset is given.
var referenceRows = [][]float64{
	{5, 2}, // A1
	{2, 1}, // A2
	{9, 3}, // A3
	{9, 0}, // A4
	{8, 9}, // A5
	{0, 9}, // A6
	{3, 1}, // A7
	{7, 3}, // A8
	{6, 4}, // A9
	{3, 5}, // A10
	{4, 8}, // A11
	{9, 5}, // A12
	{7, 7}, // A13
	{1, 3}, // A14
	{3, 3}, // A15
	{9, 8}, // A16
	{4, 9}, // A17
	{5, 5}, // A18
	{5, 5}, // A19
	{9, 3}, // A20
}

// Reference returns the built-in reference set with criteria Q1 and Q2.
func Reference() *dominance.Set {
	return dominance.MustNewSet(referenceRows)
}
