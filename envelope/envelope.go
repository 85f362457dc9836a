// Package envelope frames a serialized record for storage or
// transmission with an out-of-band compression tag. The record wire
// format's 11-byte header has no room for a compression flag — that
// choice belongs one layer up, where a caller decides per write
// whether the cost of compression is worth it for this record.
//
// Envelope layout:
//
//	magic(2) version(1) codec(1) length(varint) body
//
// body is the record's bytes verbatim when codec is
// format.CompressionNone, or compress.Codec(body) otherwise. length is
// the on-wire length of body (the possibly-compressed bytes), not of
// the original record.
package envelope

import (
	"io"

	"github.com/imprintio/imprint/compress"
	"github.com/imprintio/imprint/errs"
	"github.com/imprintio/imprint/format"
	"github.com/imprintio/imprint/record"
	"github.com/imprintio/imprint/varint"
)

var magic = [2]byte{0x49, 0x45} // "IE"

const version byte = 0x01

const headerSize = 4 // magic(2) + version(1) + codec(1)

// Write serializes rec and writes it to w, compressed with codec.
func Write(w io.Writer, rec *record.Record, codec format.CompressionType) error {
	raw, err := rec.Write()
	if err != nil {
		return err
	}

	body := raw
	if codec != format.CompressionNone {
		c, err := compress.GetCodec(codec)
		if err != nil {
			return err
		}
		body, err = c.Compress(raw)
		if err != nil {
			return err
		}
	}

	header := make([]byte, 0, headerSize+varint.Len(uint32(len(body))))
	header = append(header, magic[0], magic[1], version, byte(codec))
	header = varint.Encode(uint32(len(body)), header)

	if _, err := w.Write(header); err != nil {
		return err
	}
	_, err = w.Write(body)
	return err
}

// Read parses one envelope from r and decompresses its body into a
// record.
func Read(r io.Reader) (*record.Record, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, err
	}
	if hdr[0] != magic[0] || hdr[1] != magic[1] {
		return nil, errs.ErrInvalidEnvelope
	}
	if hdr[2] != version {
		return nil, errs.ErrInvalidEnvelope
	}
	codec := format.CompressionType(hdr[3])

	length, err := readVarintFrom(r)
	if err != nil {
		return nil, err
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, err
	}

	raw := body
	if codec != format.CompressionNone {
		c, err := compress.GetCodec(codec)
		if err != nil {
			return nil, err
		}
		raw, err = c.Decompress(body)
		if err != nil {
			return nil, err
		}
	}

	rec, _, err := record.ReadRecord(raw)
	return rec, err
}

// readVarintFrom decodes a LEB128 varint one byte at a time from r,
// since varint.Decode needs the whole encoding up front and the
// stream doesn't know its own length until it's read.
func readVarintFrom(r io.Reader) (uint32, error) {
	var buf []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		buf = append(buf, b[0])
		if b[0]&0x80 == 0 {
			break
		}
	}
	v, _, err := varint.Decode(buf)
	return v, err
}
