package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/render/nodelink"
)

func ExampleEdges() {
	set := dominance.MustNewSet([][]float64{{1, 1}, {2, 2}, {3, 3}})

	for _, e := range nodelink.Edges(set, nodelink.Options{}) {
		fmt.Printf("A%d -> A%d\n", e.From, e.To)
	}
	fmt.Println("reduced:")
	for _, e := range nodelink.Edges(set, nodelink.Options{Reduced: true}) {
		fmt.Printf("A%d -> A%d\n", e.From, e.To)
	}
	// Output:
	// A1 -> A2
	// A1 -> A3
	// A2 -> A3
	// reduced:
	// A1 -> A2
	// A2 -> A3
}
