package viewport_test

import (
	"fmt"

	"github.com/matzehuels/peptrack/pkg/viewport"
)

func ExampleClamp() {
	g := viewport.Geometry{Width: 1000, GutterLeft: 90, GutterRight: 12}
	fmt.Println(viewport.Clamp(g, viewport.Transform{K: 1, X: 500}))
	fmt.Println(viewport.Clamp(g, viewport.Transform{K: 2, X: 0}))
	// Output:
	// translate(0.000) scale(1.0000)
	// translate(-90.000) scale(2.0000)
}

func ExampleWindow() {
	d := viewport.Domain{Min: 1, Max: 101}
	lo, hi := viewport.Window(d, viewport.Transform{K: 2, X: -0.5})
	fmt.Printf("[%.0f, %.0f]\n", lo, hi)
	// Output: [26, 76]
}
