package huffman

import (
	"bufio"
	"bytes"
	"testing"

	"github.com/deepteams/nya/internal/bitio"
)

// bitBuilder packs bits MSB-first into bytes, matching the wire format.
type bitBuilder struct {
	buf  bytes.Buffer
	cur  byte
	nbit int
}

func (b *bitBuilder) bit(v byte) {
	b.cur = b.cur<<1 | (v & 1)
	b.nbit++
	if b.nbit == 8 {
		b.buf.WriteByte(b.cur)
		b.cur, b.nbit = 0, 0
	}
}

func (b *bitBuilder) bits(s string) {
	for _, c := range s {
		b.bit(byte(c - '0'))
	}
}

func (b *bitBuilder) flush() {
	for b.nbit != 0 {
		b.bit(0)
	}
}

// bytesLiteral appends the bits of each byte directly to the stream, with
// no byte-realignment: literal fields are not byte-aligned on the wire
// (spec §4.A), so padding here would shift every bit read after it.
func (b *bitBuilder) bytesLiteral(lit ...byte) {
	for _, by := range lit {
		for i := 7; i >= 0; i-- {
			b.bit((by >> uint(i)) & 1)
		}
	}
}

func (b *bitBuilder) reader() *bitio.Reader {
	return bitio.NewReader(bufio.NewReader(bytes.NewReader(b.buf.Bytes())))
}

func TestBuild_SingleLeafTree(t *testing.T) {
	var b bitBuilder
	b.bits("1")
	b.bytesLiteral(0xFF, 0x00, 0x00) // RGB literal -> packed 0xFF0000FF
	b.flush()

	r := b.reader()
	tree, err := Build(r, r, 24)
	if err != nil {
		t.Fatal(err)
	}
	val, err := tree.Read(b.reader())
	if err != nil {
		t.Fatal(err)
	}
	if val != 0xFF0000FF {
		t.Errorf("leaf = %#x, want 0xFF0000FF", uint32(val))
	}
}

func TestBuild_TwoLeafTree(t *testing.T) {
	// root -(0)-> left leaf(1) -backtrack-> root -(1)-> right leaf(1)
	var b bitBuilder
	b.bits("0")             // root gets a left child
	b.bits("1")              // left child is a leaf
	b.bytesLiteral(0x11, 0x22, 0x33)
	b.bits("1") // after backtracking to root, attach right leaf
	b.bytesLiteral(0x44, 0x55, 0x66)
	b.flush()

	r := b.reader()
	tree, err := Build(r, r, 24)
	if err != nil {
		t.Fatal(err)
	}

	// Walk left: bit 0.
	left, err := tree.Read(singleBitReader(b.buf.Bytes(), 0))
	if err != nil {
		t.Fatal(err)
	}
	if left != 0x112233FF {
		t.Errorf("left leaf = %#x, want 0x112233FF", uint32(left))
	}

	// Walk right: bit 1.
	right, err := tree.Read(singleBitReader(b.buf.Bytes(), 1))
	if err != nil {
		t.Fatal(err)
	}
	if right != 0x445566FF {
		t.Errorf("right leaf = %#x, want 0x445566FF", uint32(right))
	}
}

// singleBitReader returns a Reader whose first ReadBit yields bit and
// whose stream is otherwise irrelevant (used to drive a single left/right
// decision at the tree root in tests).
type fixedBitReader struct {
	first    uint32
	consumed bool
	rest     *bitio.Reader
}

func (f *fixedBitReader) ReadBit() (uint32, error) {
	if !f.consumed {
		f.consumed = true
		return f.first, nil
	}
	return f.rest.ReadBit()
}

func singleBitReader(data []byte, first uint32) *fixedBitReader {
	return &fixedBitReader{
		first: first,
		rest:  bitio.NewReader(bufio.NewReader(bytes.NewReader(data))),
	}
}

func TestBuild_TruncatedDuringStructure(t *testing.T) {
	r := bitio.NewReader(bufio.NewReader(bytes.NewReader(nil)))
	if _, err := Build(r, r, 24); err == nil {
		t.Error("expected error on empty stream")
	}
}
