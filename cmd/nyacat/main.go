// Command nyacat decodes NYA images from the command line. It exists to
// exercise the decoder interactively; it is not part of the decoder's own
// contract (spec.md §1).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/deepteams/nya"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "info":
		err = runInfo(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "nyacat: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: nyacat info [-glob pattern] <file.nya>...")
	fmt.Fprintln(os.Stderr, "       nyacat dump <file.nya> <x> <y>")
}

// runInfo prints width, height, and pixel count for one or more images. A
// -glob pattern expands to a batch of paths via doublestar instead of the
// shell's own glob, so a single invocation can walk a whole tree (e.g.
// nyacat info -glob '**/*.nya').
func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	glob := fs.String("glob", "", "doublestar pattern to expand into a batch of files")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if *glob != "" {
		matches, err := doublestar.FilepathGlob(*glob)
		if err != nil {
			return errors.Wrapf(err, "nyacat: expanding glob %q", *glob)
		}
		paths = append(paths, matches...)
	}
	if len(paths) == 0 {
		return errors.New("nyacat: no input files (pass a path or -glob pattern)")
	}

	for _, p := range paths {
		img, err := nya.DecodeFile(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", p, err)
			continue
		}
		fmt.Printf("%s: %dx%d, %d pixels\n", p, img.Width, img.Height, len(img.Pixels))
	}
	return nil
}

// runDump decodes one image and prints the packed pixel at (x, y).
func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		usage()
		return errors.New("nyacat: dump requires <file.nya> <x> <y>")
	}

	path := fs.Arg(0)
	var x, y int
	if _, err := fmt.Sscanf(fs.Arg(1), "%d", &x); err != nil {
		return errors.Wrap(err, "nyacat: parsing x")
	}
	if _, err := fmt.Sscanf(fs.Arg(2), "%d", &y); err != nil {
		return errors.Wrap(err, "nyacat: parsing y")
	}

	img, err := nya.DecodeFile(path)
	if err != nil {
		return errors.Wrapf(err, "nyacat: decoding %s", path)
	}
	fmt.Printf("%#08x\n", img.At(x, y))
	return nil
}
