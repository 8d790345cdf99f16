// Package imaging provides the image operations behind split-image.
//
// It decodes images behind a decompression-bomb guard, estimates a
// background color from an image's borders, pads images to a square
// canvas, cuts images into a uniform grid of tiles and merges tiles back
// into one image. All results are *image.NRGBA values; inputs are never
// modified.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Rectangles include Min and exclude Max, as in image.Rectangle
//
// # Tile Order
//
// Tiles are addressed in row-major order: index = row*cols + col. Split
// produces tiles in that order and Merge expects them in that order.
//
// # Error Handling
//
// Functions return errors wrapping one of the package's sentinel values
// so callers can test them with errors.Is:
//   - ErrInvalidGridDimensions: grid does not evenly divide the image
//   - ErrInvalidBorderPercentage: border band outside 0-100 percent
//   - ErrNoBorderPixels: border bands are empty
//   - ErrImageTooLarge: pixel guard tripped while decoding
//   - ErrTileSizeMismatch: tiles of different sizes passed to Merge
//   - ErrUnsupportedFormat: no encoder for the output extension
//
// # Thread Safety
//
// The package keeps no state. Operations may run concurrently on
// different images.
package imaging
