package odf

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Save serializes d into a new zip container and returns its bytes.
//
// Content and Styles, when set, are rendered to content.xml and styles.xml,
// replacing any member of the same name. Members are written in name order,
// so identical documents produce identical bytes. d is not modified and Save
// may be called any number of times.
//
// By default every member is deflated at flate.DefaultCompression. Use
// WriteOption functions to change this:
//   - WithMethod(m): store, deflate or zstd
//   - WithLevel(n): deflate level
//   - WithMimetypeFirst(true): lead with an uncompressed mimetype member
//
// Save returns ErrValidation for a nil document, an empty member name or a
// bad option, and ErrXML if a tree cannot be serialized.
func (d *Document) Save(opts ...WriteOption) ([]byte, error) {
	cfg := defaultWriteConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateDocument(d); err != nil {
		return nil, err
	}
	if err := validateWriteConfig(cfg); err != nil {
		return nil, err
	}

	files := make(map[string][]byte, len(d.Members)+2)
	for name, b := range d.Members {
		files[name] = b
	}
	if d.Content != nil {
		b, err := serializeXML(ContentMember, d.Content)
		if err != nil {
			return nil, err
		}
		files[ContentMember] = b
	}
	if d.Styles != nil {
		b, err := serializeXML(StylesMember, d.Styles)
		if err != nil {
			return nil, err
		}
		files[StylesMember] = b
	}

	return writeArchive(orderEntries(files, cfg), cfg.level)
}

// orderEntries lays files out in name order, honoring WithMimetypeFirst.
func orderEntries(files map[string][]byte, cfg writeConfig) []entry {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]entry, 0, len(names))
	if mt, ok := files[MimetypeMember]; ok && cfg.mimetypeFirst {
		entries = append(entries, entry{name: MimetypeMember, data: mt, method: MethodStore, raw: true})
	}
	for _, name := range names {
		if name == MimetypeMember && cfg.mimetypeFirst {
			continue
		}
		entries = append(entries, entry{name: name, data: files[name], method: cfg.method})
	}
	return entries
}

// SaveFile saves d and writes the result to path, creating or truncating it.
func (d *Document) SaveFile(path string, opts ...WriteOption) error {
	data, err := d.Save(opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("odf: write %s: %w", path, err)
	}
	return nil
}

// Encode saves doc and writes the result to w.
func Encode(w io.Writer, doc *Document, opts ...WriteOption) error {
	data, err := doc.Save(opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
