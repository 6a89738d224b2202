// Package pointio loads scattered sample clouds from the formats field data
// actually arrives in:
//
// What:
//   - ReadShapefile – ESRI point shapefiles (.shp + .dbf), values taken
//     from a DBF attribute (WithField) or the point-z geometry (WithZ).
//   - ReadGeoJSON   – point feature collections, values taken from a
//     feature property (WithField; GeoJSON geometries carry no usable z).
//   - ReadXYZ       – whitespace/comma/semicolon separated text columns,
//     one "x y z" triple per line, with a tolerated single header line
//     and #-comments.
//
// Why: the interpolation pipeline wants one thing only — a cloud.Cloud —
// and every loader here normalises to it, so callers never branch on the
// input format after loading.
//
// Errors:
//   - ErrNoValueSource – loader started without WithField / WithZ.
//   - ErrFieldNotFound – the named attribute or property is absent.
//   - ErrNotPointLayer – lines, polygons, or multi-geometries in the input.
//   - ErrBadRecord     – a record whose value cannot be parsed (wrapped
//     with the record index or line number).
//
// Loaders read eagerly and return the full cloud; none of them holds file
// handles after returning.
package pointio
