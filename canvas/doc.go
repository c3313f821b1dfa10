// Package canvas provides the raster surface certificates are drawn on.
//
// A Canvas wraps a gg pixmap of fixed size together with the handful of
// operations the recipes use: polygons, ellipses, rectangles, rounded
// rectangles and lines, each composited source-over. Outlines are painted
// inside the box they belong to, so a shape never touches pixels outside its
// bounding rectangle.
//
// Coordinates are in canvas pixels with the origin at the top-left corner
// and y growing downwards:
//
//	c := canvas.NewGradient(canvas.A4, canvas.RGB(145, 224, 255), canvas.RGB(19, 151, 223))
//	c.Ellipse(canvas.R(90, 420, 240, 570), canvas.Outlined(canvas.RGBA(238, 252, 255, 180), 6))
//	img := c.Image()
package canvas
