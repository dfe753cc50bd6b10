package satisfy

import (
	"fmt"
	"sort"
)

func ExampleSolve() {
	// a, a -> b, and b -> c together force a unique assignment.
	result, err := Solve("a & (a -> b) & (b -> c)", DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if result.Status != Sat {
		fmt.Println(result.Status)
		return
	}
	var names []string
	for name := range result.Assignment {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%s=%v\n", name, result.Assignment[name])
	}
	// Output:
	// a=true
	// b=true
	// c=true
}

func ExampleSolveCNF() {
	// Problem: (-1 | -2) & (-2 | 3) & (1 | -3 | 2) & (2)
	problem := [][]int{
		{-1, -2},
		{-2, 3},
		{1, -3, 2},
		{2},
	}
	result, err := SolveCNF(problem, DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Status)
	// Output: SAT
}

func ExampleSolveCNF_unsatisfiable() {
	problem := [][]int{
		{1},
		{-1},
	}
	result, err := SolveCNF(problem, DefaultConfig())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(result.Status, result.Proof.Verify())
	// Output: UNSAT <nil>
}
