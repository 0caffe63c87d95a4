package debugdraw

import (
	"fmt"
	"io"
)

// Dump writes one line of text per retained line, in draw order.
func (d *Drawer) Dump(w io.Writer) error {
	for i, l := range d.store.lines {
		_, err := fmt.Fprintf(w, "%d: (%.3f, %.3f, %.3f) -> (%.3f, %.3f, %.3f) #%02x%02x%02x%02x ttl=%.3f\n",
			i,
			l.Start.X(), l.Start.Y(), l.Start.Z(),
			l.End.X(), l.End.Y(), l.End.Z(),
			l.Color.R, l.Color.G, l.Color.B, l.Color.A,
			l.Remaining,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
