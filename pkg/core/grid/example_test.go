package grid_test

import (
	"fmt"

	"github.com/matzehuels/plakat/pkg/core/grid"
)

func ExampleFindStarts() {
	p := grid.PoolOf(0, 1, 2, 4, 5)
	fmt.Println(grid.FindStarts(p, 3))
	fmt.Println(grid.FindStarts(p, 2))
	// Output:
	// [0]
	// [0 1 4]
}

func ExampleSections() {
	for _, s := range grid.Sections([]int{0, 1, 2, 3, 4, 10, 11}, 3) {
		fmt.Printf("start=%d len=%d\n", s.StartRow, s.Length)
	}
	// Output:
	// start=0 len=3
	// start=3 len=2
	// start=10 len=2
}
