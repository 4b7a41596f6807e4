package odf

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"math"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
)

// Function variables for testing injection.
var (
	zipCreate    = func(zw *zip.Writer, fh *zip.FileHeader) (io.Writer, error) { return zw.CreateHeader(fh) }
	zipCreateRaw = func(zw *zip.Writer, fh *zip.FileHeader) (io.Writer, error) { return zw.CreateRaw(fh) }
	zipClose     = func(zw *zip.Writer) error { return zw.Close() }
	zipOpen      = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll      = io.ReadAll
)

// entry is a single member queued for writing.
type entry struct {
	name   string
	data   []byte
	method Method
	raw    bool // stored without a data descriptor
}

// openArchive opens data as a random-access zip container.
// Members compressed with Zstandard (method 93) are readable.
func openArchive(data []byte) (*zip.Reader, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}
	zr.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())
	return zr, nil
}

// readMember decompresses zf fully. It rejects members whose declared or
// actual uncompressed size exceeds limit.
func readMember(zf *zip.File, limit uint64) ([]byte, error) {
	if zf.UncompressedSize64 > limit {
		return nil, fmt.Errorf("%w: member %q declares %d bytes", ErrLimitExceeded, zf.Name, zf.UncompressedSize64)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrArchive, zf.Name, err)
	}
	defer rc.Close()

	n := int64(math.MaxInt64)
	if limit < math.MaxInt64 {
		n = int64(limit) + 1
	}
	b, err := readAll(io.LimitReader(rc, n))
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrArchive, zf.Name, err)
	}
	if uint64(len(b)) > limit {
		return nil, fmt.Errorf("%w: member %q expanded beyond %d bytes", ErrLimitExceeded, zf.Name, limit)
	}
	return b, nil
}

// writeArchive writes entries, in order, into a new zip container.
func writeArchive(entries []entry, level int) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
		fw, err := flate.NewWriter(w, level)
		if err != nil {
			return nil, err
		}
		return fw, nil
	})
	zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor())

	for _, e := range entries {
		if err := writeEntry(zw, e); err != nil {
			_ = zipClose(zw)
			return nil, fmt.Errorf("%w: write %q: %w", ErrArchive, e.name, err)
		}
	}
	if err := zipClose(zw); err != nil {
		return nil, fmt.Errorf("%w: finalize: %w", ErrArchive, err)
	}
	return buf.Bytes(), nil
}

func writeEntry(zw *zip.Writer, e entry) error {
	var (
		w   io.Writer
		err error
	)
	if e.raw {
		size := uint64(len(e.data))
		w, err = zipCreateRaw(zw, &zip.FileHeader{
			Name:               e.name,
			Method:             zip.Store,
			CRC32:              crc32.ChecksumIEEE(e.data),
			CompressedSize64:   size,
			UncompressedSize64: size,
		})
	} else {
		w, err = zipCreate(zw, &zip.FileHeader{Name: e.name, Method: uint16(e.method)})
	}
	if err != nil {
		return err
	}
	// Directory entries accept no data.
	if len(e.data) == 0 {
		return nil
	}
	_, err = w.Write(e.data)
	return err
}
