package odf

import (
	"archive/zip"
	"bytes"
	"errors"
	"hash/crc32"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestOrderEntries(t *testing.T) {
	files := map[string][]byte{
		"styles.xml":     []byte("s"),
		MimetypeMember:   []byte(sampleMimetype),
		"content.xml":    []byte("c"),
		ManifestMember:   []byte("m"),
		"Pictures/a.png": []byte("p"),
	}
	names := func(entries []entry) []string {
		var out []string
		for _, e := range entries {
			out = append(out, e.name)
		}
		return out
	}

	plain := orderEntries(files, writeConfig{method: MethodDeflate})
	want := []string{ManifestMember, "Pictures/a.png", "content.xml", MimetypeMember, "styles.xml"}
	if diff := cmp.Diff(want, names(plain)); diff != "" {
		t.Fatalf("name order (-want +got):\n%s", diff)
	}
	for _, e := range plain {
		if e.raw || e.method != MethodDeflate {
			t.Fatalf("entry %q: raw=%v method=%v", e.name, e.raw, e.method)
		}
	}

	first := orderEntries(files, writeConfig{method: MethodZstd, mimetypeFirst: true})
	want = []string{MimetypeMember, ManifestMember, "Pictures/a.png", "content.xml", "styles.xml"}
	if diff := cmp.Diff(want, names(first)); diff != "" {
		t.Fatalf("mimetype-first order (-want +got):\n%s", diff)
	}
	if !first[0].raw || first[0].method != MethodStore {
		t.Fatalf("mimetype entry: raw=%v method=%v", first[0].raw, first[0].method)
	}
	if first[1].method != MethodZstd {
		t.Fatalf("manifest method = %v", first[1].method)
	}
}

func TestWriteArchive_DirectoryEntry(t *testing.T) {
	out, err := writeArchive([]entry{
		{name: "Thumbnails/", method: MethodDeflate},
		{name: "Thumbnails/thumbnail.png", data: []byte(samplePNG), method: MethodDeflate},
	}, -1)
	if err != nil {
		t.Fatal(err)
	}
	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatal(err)
	}
	if len(zr.File) != 2 {
		t.Fatalf("got %d entries", len(zr.File))
	}
	if !zr.File[0].FileInfo().IsDir() {
		t.Fatal("Thumbnails/ is not a directory entry")
	}
}

func TestReadMember_SizeMismatch(t *testing.T) {
	body := []byte("this member is longer than it claims")
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.CreateRaw(&zip.FileHeader{
		Name:               "liar.bin",
		Method:             zip.Store,
		CRC32:              crc32.ChecksumIEEE(body),
		CompressedSize64:   uint64(len(body)),
		UncompressedSize64: 4,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write(body); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(buf.Bytes(), WithReadLimits(Limits{MaxMemberSize: 8}))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrArchive) && !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("unexpected error kind: %v", err)
	}
	if doc != nil {
		t.Fatal("partial document returned")
	}
}
