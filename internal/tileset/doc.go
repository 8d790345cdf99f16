// Package tileset implements the on-disk naming contract for image tiles.
//
// A tile of an image named <name><ext> is stored as <name>_<index><ext>,
// where index is the tile's row-major position, optionally zero padded.
// The squared intermediate is stored as <name>_squared<ext>.
//
// Reverse merging discovers tiles by that pattern, sorts them by their
// numeric index and requires the indices to run 0, 1, ..., n-1 without
// gaps or duplicates before anything is opened.
package tileset
