package oracle_test

import (
	"fmt"

	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/core"
	"github.com/SandeepChatterjee66/Efficient-Biological-Relatedness/oracle"
)

// Build an oracle over the path 1–2–3–4–5 with every vertex sampled at
// both levels, then query two pairs. With all vertices as landmarks,
// every query routes through the endpoint itself and is exact.
func ExampleOracle_Query() {
	g, err := core.Build([]core.Edge{
		{U: "1", V: "2"},
		{U: "2", V: "3"},
		{U: "3", V: "4"},
		{U: "4", V: "5"},
	})
	if err != nil {
		panic(err)
	}
	o, err := oracle.Build(g, oracle.WithSeed(1), oracle.WithP1(1), oracle.WithP2(1))
	if err != nil {
		panic(err)
	}

	d15, _ := o.Query("1", "5")
	d24, _ := o.Query("2", "4")
	fmt.Println(d15, d24)
	// Output: 4 2
}
