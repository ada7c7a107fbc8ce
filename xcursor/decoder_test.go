package xcursor

import (
	"bytes"
	"encoding/binary"
	"image"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testCursorFile builds a cursor file containing a copyright comment, a
// 2x1 image at nominal size 16, and two 1x1 animation frames at nominal
// size 32.
func testCursorFile() []byte {
	var b bytes.Buffer
	u32 := func(vs ...uint32) {
		for _, v := range vs {
			binary.Write(&b, binary.LittleEndian, v)
		}
	}

	u32(fileMagic, 16, 1, 4)
	u32(commentChunk, 1, 64)
	u32(imageChunk, 16, 88)
	u32(imageChunk, 32, 132)
	u32(imageChunk, 32, 172)

	u32(commentHeaderLen, commentChunk, 1, 1, 4)
	b.WriteString("test")

	// Pixels are premultiplied ARGB words, so the bytes are b, g, r, a.
	u32(imageHeaderLen, imageChunk, 16, 1, 2, 1, 1, 0, 50)
	b.Write([]byte{
		0, 0, 255, 255,
		32, 0, 64, 128,
	})

	u32(imageHeaderLen, imageChunk, 32, 1, 1, 1, 0, 0, 100)
	b.Write([]byte{255, 255, 255, 255})
	u32(imageHeaderLen, imageChunk, 32, 1, 1, 1, 0, 0, 100)
	b.Write([]byte{0, 0, 0, 0})

	return b.Bytes()
}

// simpleCursorFile builds a cursor file with one solid red 1x1 frame per
// given nominal size.
func simpleCursorFile(sizes ...uint32) []byte {
	var b bytes.Buffer
	u32 := func(vs ...uint32) {
		for _, v := range vs {
			binary.Write(&b, binary.LittleEndian, v)
		}
	}

	ntoc := uint32(len(sizes))
	u32(fileMagic, 16, 1, ntoc)
	pos := 16 + 12*ntoc
	for _, size := range sizes {
		u32(imageChunk, size, pos)
		pos += imageHeaderLen + 4
	}
	for _, size := range sizes {
		u32(imageHeaderLen, imageChunk, size, 1, 1, 1, 0, 0, 0)
		b.Write([]byte{0, 0, 255, 255})
	}

	return b.Bytes()
}

func TestDecode(t *testing.T) {
	cur, err := Decode(bytes.NewReader(testCursorFile()))
	require.NoError(t, err)

	require.Len(t, cur.Comments, 1)
	assert.Equal(t, CommentSubtypeCopyright, cur.Comments[0].Subtype)
	assert.Equal(t, "test", cur.Comments[0].Comment)

	require.Len(t, cur.Images, 2)

	frames := cur.Images[16]
	require.Len(t, frames, 1)
	img := frames[0]
	assert.Equal(t, 16, img.NominalSize)
	assert.Equal(t, image.Pt(1, 0), img.Hot)
	assert.Equal(t, 50*time.Millisecond, img.Delay)
	require.Equal(t, image.Rect(0, 0, 2, 1), img.Image.Rect)
	assert.Equal(t, []uint8{
		255, 0, 0, 255, // Opaque pixels pass through.
		127, 0, 63, 128, // Translucent pixels are unpremultiplied.
	}, img.Image.Pix)

	frames = cur.Images[32]
	require.Len(t, frames, 2)
	assert.Equal(t, []uint8{255, 255, 255, 255}, frames[0].Image.Pix)
	assert.Equal(t, []uint8{0, 0, 0, 0}, frames[1].Image.Pix)
}

// Decoding from a plain reader takes the discard path instead of
// seeking. The result must be the same.
func TestDecodeUnseekable(t *testing.T) {
	cur, err := Decode(struct{ io.Reader }{bytes.NewReader(testCursorFile())})
	require.NoError(t, err)
	assert.Len(t, cur.Comments, 1)
	assert.Len(t, cur.Images, 2)
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("\x89PNG\r\n\x1a\n")))
	assert.ErrorIs(t, err, ErrBadMagic)
}

func TestDecodeTruncated(t *testing.T) {
	data := testCursorFile()
	for _, n := range []int{0, 3, 20, 70, 100, len(data) - 1} {
		_, err := Decode(bytes.NewReader(data[:n]))
		assert.Errorf(t, err, "no error decoding %v of %v bytes", n, len(data))
	}
}

func TestDecodeOverlappingChunks(t *testing.T) {
	var b bytes.Buffer
	u32 := func(vs ...uint32) {
		for _, v := range vs {
			binary.Write(&b, binary.LittleEndian, v)
		}
	}

	// A chunk that claims to start inside the header.
	u32(fileMagic, 16, 1, 1)
	u32(imageChunk, 16, 8)

	_, err := Decode(bytes.NewReader(b.Bytes()))
	assert.Error(t, err)
}

func TestBestSize(t *testing.T) {
	cur := &Cursor{Images: map[int][]*Image{16: nil, 24: nil, 48: nil}}

	assert.Equal(t, 16, cur.BestSize(8))
	assert.Equal(t, 16, cur.BestSize(16))
	assert.Equal(t, 24, cur.BestSize(20), "ties should prefer the larger size")
	assert.Equal(t, 48, cur.BestSize(40))
	assert.Equal(t, 48, cur.BestSize(100))

	assert.Zero(t, new(Cursor).BestSize(32))
}
