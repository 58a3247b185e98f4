package weave

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/canvas"
)

// GeoJSON converts the primitive cell into a GeoJSON feature collection with
// one feature per record, carrying the label and category as properties. The
// coordinates are the abstract planar units of the generator.
func (cell PrimitiveCell) GeoJSON() *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, fragment := range cell {
		feature := geojson.NewFeature(pathGeometry(fragment.Geometry))
		feature.Properties["label"] = fragment.Label
		feature.Properties["category"] = fragment.Category.String()
		collection.Append(feature)
	}
	return collection
}

// GeoJSON converts the tessellation into a GeoJSON feature collection with
// one feature per merged ribbon, carrying the label as property.
func (tessellation Tessellation) GeoJSON() *geojson.FeatureCollection {
	collection := geojson.NewFeatureCollection()
	for _, ribbon := range tessellation {
		feature := geojson.NewFeature(pathGeometry(ribbon.Geometry))
		feature.Properties["label"] = ribbon.Label
		collection.Append(feature)
	}
	return collection
}

// pathGeometry converts a polygonal path into an orb geometry. Each
// counter-clockwise subpath opens a new polygon, clockwise subpaths are added
// to the preceding polygon as holes.
func pathGeometry(p *canvas.Path) orb.Geometry {
	polygons := orb.MultiPolygon{}
	for _, subpath := range p.Split() {
		ring := orb.Ring{}
		for _, point := range subpath.Coords() {
			ring = append(ring, orb.Point{point.X, point.Y})
		}
		if len(ring) < 3 {
			continue
		}
		if ring[0] != ring[len(ring)-1] {
			ring = append(ring, ring[0])
		}
		if subpath.CCW() || len(polygons) == 0 {
			polygons = append(polygons, orb.Polygon{ring})
		} else {
			polygons[len(polygons)-1] = append(polygons[len(polygons)-1], ring)
		}
	}
	if len(polygons) == 1 {
		return polygons[0]
	}
	return polygons
}
