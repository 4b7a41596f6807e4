package odf

import "github.com/klauspost/compress/flate"

type readConfig struct {
	limits Limits
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

type writeConfig struct {
	method        Method
	level         int
	mimetypeFirst bool
}

type WriteOption func(*writeConfig)

// WithMethod selects the compression method for every member. Ignored for
// directory entries and, with WithMimetypeFirst, for the mimetype member.
func WithMethod(m Method) WriteOption {
	return func(c *writeConfig) { c.method = m }
}

// WithLevel sets the deflate level used by MethodDeflate.
func WithLevel(level int) WriteOption {
	return func(c *writeConfig) { c.level = level }
}

// WithMimetypeFirst writes the mimetype member first and uncompressed, as
// OpenDocument packaging requires. The other members keep name order.
func WithMimetypeFirst(v bool) WriteOption {
	return func(c *writeConfig) { c.mimetypeFirst = v }
}

func defaultWriteConfig() writeConfig {
	return writeConfig{
		method: MethodDeflate,
		level:  flate.DefaultCompression,
	}
}
