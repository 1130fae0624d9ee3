package viewport

import (
	"github.com/matzehuels/peptrack/pkg/errors"
)

// MinVisibleSpan is the smallest number of positions a fully zoomed track
// still shows. It caps the zoom factor at span/MinVisibleSpan.
const MinVisibleSpan = 10

// Domain is the inclusive [Min, Max] sequence-coordinate interval shared by
// every track of one dataset. A dataset change builds a new Domain.
type Domain struct {
	Min int `json:"min" toml:"min"`
	Max int `json:"max" toml:"max"`
}

// NewDomain returns the domain [min, max] or an INVALID_DOMAIN error when
// min > max.
func NewDomain(min, max int) (Domain, error) {
	d := Domain{Min: min, Max: max}
	if err := d.Validate(); err != nil {
		return Domain{}, err
	}
	return d, nil
}

// Validate reports whether the domain bounds are ordered.
func (d Domain) Validate() error {
	if d.Min > d.Max {
		return errors.New(errors.ErrCodeInvalidDomain, "domain min %d exceeds max %d", d.Min, d.Max)
	}
	return nil
}

// Span returns Max - Min.
func (d Domain) Span() int { return d.Max - d.Min }

// MaxZoom returns the zoom cap for the default [MinVisibleSpan].
func (d Domain) MaxZoom() float64 { return d.MaxZoomFor(MinVisibleSpan) }

// MaxZoomFor returns span/minSpan, never below 1. A non-positive minSpan
// falls back to [MinVisibleSpan].
func (d Domain) MaxZoomFor(minSpan float64) float64 {
	if minSpan <= 0 {
		minSpan = MinVisibleSpan
	}
	k := float64(d.Span()) / minSpan
	if k < 1 {
		return 1
	}
	return k
}

// Contains reports whether pos lies inside the domain.
func (d Domain) Contains(pos float64) bool { return pos >= float64(d.Min) && pos <= float64(d.Max) }
