// Package splitter runs split-image operations against files on disk.
//
// It ties the imaging and tileset packages together: decoding a source
// image, optionally squaring it, cutting it into tiles and writing them
// out, or discovering tiles, validating their numbering and merging them
// back. Progress is reported through a logrus logger.
//
// Work is sequential. Writes are not transactional: a failure partway
// through leaves earlier outputs on disk.
package splitter
