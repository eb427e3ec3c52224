// psfgen is a commandline tool for turning PSF1 console fonts into source-code
// glyph tables. It reads the fixed 256-glyph bitmap table of a PSF1 file and
// emits the selected code point range as an array literal, ready to paste into
// a framebuffer text console or any other renderer that wants a raw font
// table. Ex:
//
//	./psfgen -in font.psf > font.rs
//	./psfgen -in font.psf -lang go -pkg console -o font.go
//
// The default range is printable ASCII (0x20 through 0x7E); pass -first/-last
// to widen or narrow it. Use -dump for a terminal rendering of the extracted
// glyphs, or -png for a preview sheet image.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"psfont"
	"psfont/cmd/psfgen/internal/emit"
	"psfont/cmd/psfgen/internal/psf"
)

var (
	inName     = flag.String("in", "", "PSF1 font file to extract glyphs from")
	charHeight = flag.Int("h", 16, "rows per glyph")
	charWidth  = flag.Int("w", 8, "pixel columns per glyph (at most 8)")
	first      = flag.Int("first", 0x20, "first code point to emit")
	last       = flag.Int("last", 0x7F, "one past the last code point to emit")

	outName = flag.String("o", "", "output file (stdout if empty)")
	lang    = flag.String("lang", "rust", "output language: rust or go")
	varName = flag.String("name", "", "identifier for the emitted table")
	pkgName = flag.String("pkg", "font", "package name for go output")

	dumpFlag = flag.Bool("dump", false, "print a text rendering of the glyphs instead of code")
	pngName  = flag.String("png", "", "also write a preview sheet PNG to this path")
)

// applyEnv fills in flags the user did not set from PSFGEN_* variables,
// sourcing a .env file in the working directory when present. Explicit flags
// always win.
func applyEnv() error {
	_ = godotenv.Load()

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["in"] {
		if v := os.Getenv("PSFGEN_INPUT"); v != "" {
			*inName = v
		}
	}
	for _, ef := range []struct {
		flag string
		env  string
		dst  *int
	}{
		{"first", "PSFGEN_FIRST", first},
		{"last", "PSFGEN_LAST", last},
	} {
		if set[ef.flag] {
			continue
		}
		v := os.Getenv(ef.env)
		if v == "" {
			continue
		}
		n, err := strconv.ParseInt(v, 0, 32)
		if err != nil {
			return fmt.Errorf("%s: %v", ef.env, err)
		}
		*ef.dst = int(n)
	}
	return nil
}

func dumpFont(font *psfont.Font, rng psfont.Range) {
	for cp := rng.Start; cp < rng.End; cp++ {
		sd := &psfont.StringDrawable{}
		font.DrawRune(sd, 0, 0, cp, nil)
		fmt.Printf("%#02x %c\n%s", cp, rune(cp), sd.PrefixString("  "))
	}
}

func emitFont(font *psfont.Font, rng psfont.Range) error {
	out := os.Stdout
	if *outName != "" {
		f, err := os.Create(*outName)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	opts := &emit.Options{Name: *varName, Pkg: *pkgName}
	switch *lang {
	case "rust":
		return emit.Rust(out, font, rng, opts)
	case "go":
		return emit.Go(out, font, rng, opts)
	}
	return fmt.Errorf("unknown output language %q", *lang)
}

func main() {
	flag.Parse()
	if err := applyEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *inName == "" {
		fmt.Fprintln(os.Stderr, "-in (or PSFGEN_INPUT) is required")
		flag.Usage()
		os.Exit(2)
	}

	rng := psfont.Range{Start: *first, End: *last}
	if err := rng.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	font, err := psf.Load(*inName, &psf.Options{Height: *charHeight, Width: *charWidth})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *pngName != "" {
		if err := writePreview(*pngName, font, rng); err != nil {
			fmt.Fprintln(os.Stderr, "failed to write preview:", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "Created preview sheet:", *pngName)
	}

	if *dumpFlag {
		dumpFont(font, rng)
		return
	}

	if err := emitFont(font, rng); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
