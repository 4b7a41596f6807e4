package odf

import (
	"fmt"
	"io"
	"os"
)

// Load decodes an OpenDocument package held in memory.
//
// The loading process:
//  1. Opens data as a zip container
//  2. Decompresses every member in central directory order
//  3. Parses content.xml and styles.xml into Content and Styles
//  4. Stores every other member verbatim in Members
//
// Load is all or nothing. It returns ErrArchive if data is not a zip
// container or a member fails to decompress, ErrXML if a distinguished
// member is not well-formed XML, and ErrLimitExceeded if any of the
// configured [Limits] is exceeded.
func Load(data []byte, opts ...ReadOption) (*Document, error) {
	cfg := readConfig{limits: defaultLimits()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()

	zr, err := openArchive(data)
	if err != nil {
		return nil, err
	}
	if len(zr.File) > cfg.limits.MaxMembers {
		return nil, fmt.Errorf("%w: %d members", ErrLimitExceeded, len(zr.File))
	}

	doc := newDocument()
	var total uint64
	for _, zf := range zr.File {
		b, err := readMember(zf, cfg.limits.MaxMemberSize)
		if err != nil {
			return nil, err
		}
		total += uint64(len(b))
		if total > cfg.limits.MaxTotalSize {
			return nil, fmt.Errorf("%w: package expands beyond %d bytes", ErrLimitExceeded, cfg.limits.MaxTotalSize)
		}

		switch zf.Name {
		case ContentMember:
			if doc.Content, err = parseXML(zf.Name, b); err != nil {
				return nil, err
			}
		case StylesMember:
			if doc.Styles, err = parseXML(zf.Name, b); err != nil {
				return nil, err
			}
		default:
			doc.Members[zf.Name] = b
		}
	}
	return doc, nil
}

// LoadFile reads the package at path into memory and decodes it with Load.
// Errors opening or reading the file are returned wrapped.
func LoadFile(path string, opts ...ReadOption) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("odf: read %s: %w", path, err)
	}
	return Load(data, opts...)
}

// Decode reads r to the end and decodes the result with Load.
func Decode(r io.Reader, opts ...ReadOption) (*Document, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}
	return Load(data, opts...)
}
