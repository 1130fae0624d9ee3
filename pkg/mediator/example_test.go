package mediator_test

import (
	"fmt"

	"github.com/matzehuels/peptrack/pkg/mediator"
	"github.com/matzehuels/peptrack/pkg/track"
	"github.com/matzehuels/peptrack/pkg/viewport"
)

func Example() {
	d := viewport.Domain{Min: 1, Max: 101}
	m := mediator.New(nil)

	heatmap, _ := track.New("heatmap", track.KindHeatmap, d)
	scan, _ := track.New("scan", track.KindScan, d)
	for _, tr := range []*track.Track{heatmap, scan} {
		emit, _ := m.Register(tr)
		tr.SetEmitter(emit)
	}
	_ = heatmap.Mount(600)
	_ = scan.Mount(400)

	_, _, _ = heatmap.Originate(track.ZoomTo{K: 2, PointerX: 90})

	lo, hi := scan.Window()
	fmt.Printf("scan shows [%.0f, %.0f]\n", lo, hi)
	// Output: scan shows [1, 51]
}
