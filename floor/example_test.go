package floor_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rollfloor/coord"
	"github.com/katalvlaran/rollfloor/floor"
	"github.com/katalvlaran/rollfloor/gridparse"
	"github.com/katalvlaran/rollfloor/store"
)

// ExampleFloor_PeelToExhaustion peels a hollow square: the corners go in
// the first round, the edges in the second.
func ExampleFloor_PeelToExhaustion() {
	f, err := floor.FromString("@@@\n@.@\n@@@")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("accessible:", f.CountAccessible())
	fmt.Println("removed:", f.PeelToExhaustion())
	fmt.Println("left:", f.Len())
	// Output:
	// accessible: 4
	// removed: 8
	// left: 0
}

// ExampleFloor_PeelToExhaustion_fixpoint shows a dense 4×4 block that
// cannot be emptied: only the corners ever become accessible.
func ExampleFloor_PeelToExhaustion_fixpoint() {
	f, _ := floor.FromString("@@@@\n@@@@\n@@@@\n@@@@", floor.WithStore(store.KindPacked))

	fmt.Println("removed:", f.PeelToExhaustion())
	fmt.Println(f)
	fmt.Println("clusters:", len(f.Components(coord.Conn8)))
	// Output:
	// removed: 4
	// .@@.
	// @@@@
	// @@@@
	// .@@.
	// clusters: 1
}

// ExampleNew_syntaxError shows how a bad character is reported.
func ExampleNew_syntaxError() {
	_, err := floor.FromString("...\n.#.\n...")

	var se *gridparse.SyntaxError
	if errors.As(err, &se) {
		fmt.Printf("bad %q at row %d, column %d\n", se.Char, se.Row, se.Col)
	}
	// Output:
	// bad '#' at row 1, column 1
}
