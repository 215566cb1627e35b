// Package zone resolves world positions to named zones. Zone polygons come
// from configuration; coordinates are flat game-world units.
package zone

import (
	"fmt"
	"log/slog"
	"strings"

	geom "github.com/peterstace/simplefeatures/geom"
)

// Definition is one configured zone: a name, a danger flag and a closed
// polygon ring of [x, y] vertices.
type Definition struct {
	Name   string       `json:"name" mapstructure:"name"`
	Danger bool         `json:"danger" mapstructure:"danger"`
	Ring   [][2]float64 `json:"ring" mapstructure:"ring"`
}

type region struct {
	name   string
	danger bool
	poly   geom.Geometry
}

// Resolver answers point-in-zone queries for player:position events.
type Resolver struct {
	regions []region
	logger  *slog.Logger
}

// NewResolver builds a resolver from zone definitions. Rings are closed
// automatically if the last vertex differs from the first.
func NewResolver(defs []Definition, logger *slog.Logger) (*Resolver, error) {
	r := &Resolver{logger: logger}
	for _, def := range defs {
		if len(def.Ring) < 3 {
			return nil, fmt.Errorf("zone %q: ring needs at least 3 vertices", def.Name)
		}
		g, err := geom.UnmarshalWKT(ringToWKT(def.Ring))
		if err != nil {
			return nil, fmt.Errorf("zone %q: %w", def.Name, err)
		}
		r.regions = append(r.regions, region{name: def.Name, danger: def.Danger, poly: g})
	}
	return r, nil
}

// ringToWKT builds a POLYGON WKT string from a vertex ring.
func ringToWKT(ring [][2]float64) string {
	var b strings.Builder
	b.WriteString("POLYGON((")
	for i, v := range ring {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%g %g", v[0], v[1])
	}
	// close the ring
	if ring[0] != ring[len(ring)-1] {
		fmt.Fprintf(&b, ",%g %g", ring[0][0], ring[0][1])
	}
	b.WriteString("))")
	return b.String()
}

// Locate returns the first zone containing (x, y). The ok flag is false when
// no zone matches; the caller leaves the current zone label unchanged.
func (r *Resolver) Locate(x, y float64) (name string, danger bool, ok bool) {
	point, err := geom.NewPoint(geom.Coordinates{XY: geom.XY{X: x, Y: y}})
	if err != nil {
		r.logger.Warn("Invalid position", "x", x, "y", y, "error", err)
		return "", false, false
	}
	pt := point.AsGeometry()
	for _, region := range r.regions {
		contains, err := geom.Contains(region.poly, pt)
		if err != nil {
			r.logger.Warn("Zone containment check failed", "zone", region.name, "error", err)
			continue
		}
		if contains {
			return region.name, region.danger, true
		}
	}
	return "", false, false
}

// Count returns the number of configured zones.
func (r *Resolver) Count() int {
	return len(r.regions)
}
