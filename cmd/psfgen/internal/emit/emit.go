// Package emit renders a glyph table as a source-code array literal. Emitters
// build the whole declaration in memory and write it in one go, so a failing
// writer never receives partial output.
package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"

	"psfont"
)

// Options name the emitted declaration.
type Options struct {
	// Name is the identifier of the emitted table. Defaults to PSF_FONTS for
	// Rust and PsfFonts for Go.
	Name string
	// Pkg is the package clause for Go output. Defaults to "font".
	Pkg string
}

func (o *Options) name(def string) string {
	if o != nil && o.Name != "" {
		return o.Name
	}
	return def
}

func (o *Options) pkg() string {
	if o != nil && o.Pkg != "" {
		return o.Pkg
	}
	return "font"
}

// rows writes one line per glyph in r, each row byte as a zero-padded 8-bit
// binary literal. The declared capacity of the surrounding array is always
// r.Len(), so the label can never drift from the number of emitted entries.
func rows(b *bytes.Buffer, f *psfont.Font, r psfont.Range, open, shut string) error {
	glyphs, err := f.Slice(r)
	if err != nil {
		return err
	}
	for _, g := range glyphs {
		b.WriteString("    ")
		b.WriteString(open)
		for i, rb := range g {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "0b%08b", rb)
		}
		b.WriteString(shut)
		b.WriteString(",\n")
	}
	return nil
}

// Rust writes the glyph table as a Rust static array declaration:
//
//	pub static PSF_FONTS: [[u8; 16]; 96] = [
//	    [0b00000000, ..., 0b00000000],
//	];
func Rust(w io.Writer, f *psfont.Font, r psfont.Range, opts *Options) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "pub static %s: [[u8; %d]; %d] = [\n", opts.name("PSF_FONTS"), f.Height(), r.Len())
	if err := rows(&b, f, r, "[", "]"); err != nil {
		return err
	}
	b.WriteString("];\n")
	_, err := w.Write(b.Bytes())
	return err
}

// Go writes the glyph table as a gofmt-formatted Go source file declaring a
// [N][H]byte variable.
func Go(w io.Writer, f *psfont.Font, r psfont.Range, opts *Options) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "package %s\n\n", opts.pkg())
	fmt.Fprintf(&b, "// %s holds the %d glyph bitmaps for code points %#02x through %#02x,\n",
		opts.name("PsfFonts"), r.Len(), r.Start, r.End-1)
	b.WriteString("// one byte per row, bit 7 leftmost.\n")
	fmt.Fprintf(&b, "var %s = [%d][%d]byte{\n", opts.name("PsfFonts"), r.Len(), f.Height())
	if err := rows(&b, f, r, "{", "}"); err != nil {
		return err
	}
	b.WriteString("}\n")

	src, err := format.Source(b.Bytes())
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}
