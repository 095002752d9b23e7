package codec

import (
	"github.com/klauspost/compress/zstd"

	"github.com/ruvais-p/koaladb/field"
)

// zstdMagic is the little-endian zstd frame magic number.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Zstd wraps another codec with transparent zstd compression.
//
// Decode sniffs the frame magic: blobs written before compression was enabled
// decode through the inner codec unchanged, so turning compression on does not
// require a migration.
type Zstd struct {
	inner Codec
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

// NewZstd creates a compressing codec around inner.
func NewZstd(inner Codec, opts ...zstd.EOption) (*Zstd, error) {
	if len(opts) == 0 {
		opts = []zstd.EOption{zstd.WithEncoderLevel(zstd.SpeedDefault)}
	}
	enc, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	return &Zstd{inner: inner, enc: enc, dec: dec}, nil
}

// Encode serializes through the inner codec and compresses the result.
func (z *Zstd) Encode(docs map[string]field.Fields) ([]byte, error) {
	raw, err := z.inner.Encode(docs)
	if err != nil {
		return nil, err
	}
	return z.enc.EncodeAll(raw, nil), nil
}

// Decode decompresses when the blob carries a zstd frame, then decodes through
// the inner codec.
func (z *Zstd) Decode(data []byte) (map[string]field.Fields, error) {
	if !isZstdFrame(data) {
		return z.inner.Decode(data)
	}
	raw, err := z.dec.DecodeAll(data, nil)
	if err != nil {
		return nil, err
	}
	return z.inner.Decode(raw)
}

// Name returns "zstd+" joined with the inner codec name.
func (z *Zstd) Name() string { return "zstd+" + z.inner.Name() }

func isZstdFrame(data []byte) bool {
	if len(data) < len(zstdMagic) {
		return false
	}
	for i, b := range zstdMagic {
		if data[i] != b {
			return false
		}
	}
	return true
}
