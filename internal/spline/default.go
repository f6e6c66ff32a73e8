package spline

import "github.com/go-gl/mathgl/mgl32"

// defaultPoints is the flythrough loop. It winds around the origin with
// gentle climbs so the tube never folds back through itself.
var defaultPoints = []mgl32.Vec3{
	{10.14, -1.37, 10.38},
	{9.12, -1.37, 8.58},
	{9.07, -1.07, 5.89},
	{8.05, -0.42, 3.74},
	{6.80, 0.48, 1.52},
	{5.21, 1.10, -0.30},
	{2.97, 1.37, -1.61},
	{0.51, 1.05, -2.28},
	{-1.94, 0.35, -2.55},
	{-4.36, -0.38, -2.02},
	{-6.07, -0.85, -0.49},
	{-6.50, -0.73, 1.88},
	{-5.39, -0.12, 4.01},
	{-3.10, 0.52, 5.42},
	{-0.31, 0.81, 6.61},
	{2.43, 0.38, 8.12},
	{4.85, -0.47, 9.75},
	{7.38, -1.12, 11.06},
}

// Default returns the fixed closed curve the scene is laid out on.
func Default() *Curve {
	c, err := New(defaultPoints)
	if err != nil {
		// defaultPoints is a package constant with well over two points.
		panic(err)
	}
	return c
}
