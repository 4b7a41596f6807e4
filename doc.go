// Package odf provides round-trip access to OpenDocument packages.
//
// An OpenDocument file (.odt, .ods, .odp, ...) is a ZIP archive holding an
// XML document tree plus auxiliary resources such as images, metadata and
// the manifest.
//
// # Document Model
//
// Loading a package yields a [Document] with:
//   - Members: every archive entry except the two below, as raw bytes
//   - Content: content.xml parsed into an etree.Document, or nil
//   - Styles: styles.xml parsed into an etree.Document, or nil
//
// Nothing beyond XML well-formedness is interpreted; the trees can be edited
// with the github.com/beevik/etree API before saving.
//
// # Basic Usage
//
// To load, edit and save a package:
//
//	doc, err := odf.LoadFile("letter.odt")
//	if err != nil {
//		return err
//	}
//	for _, p := range doc.Content.FindElements("//text:p") {
//		p.SetText(strings.ToUpper(p.Text()))
//	}
//	err = doc.SaveFile("letter-upper.odt", odf.WithMimetypeFirst(true))
//
// Save regenerates content.xml and styles.xml from the trees and writes all
// members in name order, so the output bytes only depend on the logical
// content of the Document.
//
// # Security Considerations
//
// Decompression is bounded by configurable [Limits] on the member count,
// the size of each member and the size of the whole package.
package odf
