package scatter_test

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/frontier/pkg/dominance"
	"github.com/matzehuels/frontier/pkg/render/scatter"
)

func ExampleChart() {
	set := dominance.MustNewSet([][]float64{{5, 2}, {2, 1}, {9, 3}, {9, 1}})

	svg, err := scatter.Chart(scatter.KindPareto, dominance.Analyze(set))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(bytes.HasPrefix(svg, []byte("<svg")))
	fmt.Println(bytes.Contains(svg, []byte(">Pareto-optimal</text>")))
	// Output:
	// true
	// true
}

func ExampleRender() {
	set := dominance.MustNewSet([][]float64{{1, 4}, {3, 3}, {4, 1}})

	svg, _ := scatter.Render(set,
		scatter.WithTitle("Shortlist"),
		scatter.WithHighlight("Picked", scatter.ColorPareto, []int{2}),
		scatter.WithFrontier("Trade-off", []int{3, 2, 1}),
	)
	fmt.Println(bytes.Count(svg, []byte("<circle id=")))
	// Output:
	// 3
}
