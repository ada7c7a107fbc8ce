package xcursor

import (
	"bufio"
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"slices"
	"time"
)

// ErrBadMagic indicates an unrecognized magic number when attempting
// to load a cursor.
var ErrBadMagic = errors.New("bad magic")

const (
	fileMagic = 0x72756358 // ASCII "Xcur"

	commentChunk = 0xFFFE0001
	imageChunk   = 0xFFFD0002

	imageHeaderLen   = 36
	commentHeaderLen = 20

	// Caps from the reference implementation, to avoid huge
	// allocations for corrupt files.
	maxImageSize  = 0x7FFF
	maxCommentLen = 0x100000
)

type decoder struct {
	r   io.Reader
	br  *bufio.Reader
	n   int
	err error
}

// DecodeFile decodes the Xcursor file at path.
func DecodeFile(path string) (*Cursor, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode decodes an Xcursor file from r, yielding every image and
// comment that it contains. If r is an io.Seeker, unneeded parts of the
// file are seeked past rather than read.
func Decode(r io.Reader) (*Cursor, error) {
	d := decoder{
		r:  r,
		br: bufio.NewReader(r),
	}
	return d.Decode()
}

func (d *decoder) Decode() (c *Cursor, err error) {
	if d.err != nil {
		return nil, d.err
	}

	defer d.catch(&err)

	tocs := d.header()
	// Chunks are decoded in file order, not table order, as the
	// decoder can not seek backwards.
	slices.SortFunc(tocs, func(t1, t2 fileToc) int {
		return cmp.Compare(t1.Position, t2.Position)
	})

	cur := Cursor{Images: make(map[int][]*Image)}
	for _, toc := range tocs {
		d.SeekTo(int(toc.Position))

		switch toc.Type {
		case commentChunk:
			cur.Comments = append(cur.Comments, d.comment(toc))
		case imageChunk:
			size := int(toc.Subtype)
			cur.Images[size] = append(cur.Images[size], d.image(toc))
		}
	}

	return &cur, nil
}

func (d *decoder) header() []fileToc {
	magic := d.uint32()
	if magic != fileMagic {
		d.throw(ErrBadMagic)
	}
	hsize := d.uint32()
	d.uint32() // Version.
	ntoc := int(d.uint32())
	d.SeekTo(int(hsize))

	tocs := make([]fileToc, 0, ntoc)
	for i := 0; i < ntoc; i++ {
		tocs = append(tocs, fileToc{
			Type:     d.uint32(),
			Subtype:  d.uint32(),
			Position: d.uint32(),
		})
	}

	return tocs
}

// chunkHeader reads the header common to all chunks and checks it
// against the table of contents entry that pointed to it.
func (d *decoder) chunkHeader(toc fileToc, length uint32) {
	hsize := d.uint32()
	ctype := d.uint32()
	subtype := d.uint32()
	d.uint32() // Version.

	if (hsize != length) || (ctype != toc.Type) || (subtype != toc.Subtype) {
		d.throw(fmt.Errorf("chunk at %v does not match its table of contents entry", toc.Position))
	}
}

func (d *decoder) comment(toc fileToc) *Comment {
	d.chunkHeader(toc, commentHeaderLen)

	length := d.uint32()
	if length > maxCommentLen {
		d.throw(fmt.Errorf("comment chunk at %v has unreasonable length %v", toc.Position, length))
	}

	buf := make([]byte, length)
	d.readFull(buf)

	return &Comment{
		Subtype: CommentSubtype(toc.Subtype),
		Comment: string(buf),
	}
}

func (d *decoder) image(toc fileToc) *Image {
	d.chunkHeader(toc, imageHeaderLen)

	width := d.uint32()
	height := d.uint32()
	xhot := d.uint32()
	yhot := d.uint32()
	delay := d.uint32()

	if (width == 0) || (height == 0) || (width > maxImageSize) || (height > maxImageSize) {
		d.throw(fmt.Errorf("image chunk at %v has unreasonable size %vx%v", toc.Position, width, height))
	}
	if (xhot > width) || (yhot > height) {
		d.throw(fmt.Errorf("image chunk at %v has its hot spot outside of the image", toc.Position))
	}

	// Pixels are stored as premultiplied ARGB words in little-endian
	// order.
	pix := make([]byte, width*height*4)
	d.readFull(pix)

	img := image.NewNRGBA(image.Rect(0, 0, int(width), int(height)))
	for i := 0; i < len(pix); i += 4 {
		b, g, r, a := pix[i], pix[i+1], pix[i+2], pix[i+3]
		if (a != 0) && (a != 0xFF) {
			r = uint8(uint32(r) * 0xFF / uint32(a))
			g = uint8(uint32(g) * 0xFF / uint32(a))
			b = uint8(uint32(b) * 0xFF / uint32(a))
		}
		img.Pix[i+0] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}

	return &Image{
		NominalSize: int(toc.Subtype),
		Hot:         image.Pt(int(xhot), int(yhot)),
		Delay:       time.Duration(delay) * time.Millisecond,
		Image:       img,
	}
}

func (d *decoder) uint32() (v uint32) {
	d.throw(binary.Read(d, binary.LittleEndian, &v))
	return v
}

func (d *decoder) Read(buf []byte) (int, error) {
	n, err := d.br.Read(buf)
	d.throw(err)
	d.n += n
	return n, err
}

func (d *decoder) readFull(buf []byte) {
	n, err := io.ReadFull(d.br, buf)
	d.n += n
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		d.throw(err)
	}
}

func (d *decoder) Discard(n int) (int, error) {
	disc, err := d.br.Discard(n)
	d.throw(err)
	d.n += disc
	return disc, err
}

func (d *decoder) SeekTo(n int) error {
	diff := n - d.n
	if diff < 0 {
		d.throw(fmt.Errorf("chunk at %v is out of order", n))
	}
	if diff == 0 {
		return nil
	}

	s, ok := d.r.(io.Seeker)
	if !ok || (diff <= d.br.Buffered()) {
		_, err := d.Discard(diff)
		d.throw(err)
		return nil
	}

	_, err := s.Seek(int64(n), io.SeekStart)
	d.throw(err)
	d.br.Reset(d.r)
	d.n = n
	return nil
}

type fileToc struct {
	Type     uint32
	Subtype  uint32
	Position uint32
}

type decoderError struct {
	err error
}

func (d *decoder) throw(err error) {
	if err != nil {
		panic(decoderError{err: err})
	}
}

func (d *decoder) catch(err *error) {
	switch r := recover().(type) {
	case decoderError:
		*err = r.err
		d.err = r.err
	case nil:
		*err = d.err
	default:
		panic(r)
	}
}
