package odf

import (
	"sort"

	"github.com/beevik/etree"
)

// Well-known member names of an OpenDocument package.
const (
	ContentMember  = "content.xml"
	StylesMember   = "styles.xml"
	MimetypeMember = "mimetype"
	ManifestMember = "META-INF/manifest.xml"
)

// Method is the per-member compression method used when writing a package.
type Method uint16

const (
	MethodStore   Method = 0
	MethodDeflate Method = 8
	MethodZstd    Method = 93
)

func (m Method) String() string {
	switch m {
	case MethodStore:
		return "store"
	case MethodDeflate:
		return "deflate"
	case MethodZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

// Document is the decoded state of an OpenDocument package.
//
// Members holds every archive entry except content.xml and styles.xml,
// byte for byte. Content and Styles are nil when the package had no such
// member. All fields may be mutated freely between Load and Save.
type Document struct {
	Members map[string][]byte
	Content *etree.Document
	Styles  *etree.Document
}

func newDocument() *Document {
	return &Document{Members: make(map[string][]byte)}
}

// MemberNames returns the names in Members sorted lexically. This is the
// order in which Save writes them.
func (d *Document) MemberNames() []string {
	names := make([]string, 0, len(d.Members))
	for name := range d.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mimetype returns the content of the mimetype member, or "" if absent.
func (d *Document) Mimetype() string {
	return string(d.Members[MimetypeMember])
}
