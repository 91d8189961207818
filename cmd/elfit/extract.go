package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/midbel/cli"
	"github.com/midbel/elfit"
	"github.com/midbel/tape"
	"github.com/midbel/tape/ar"
	"github.com/midbel/tape/cpio"
)

func runExtract(cmd *cli.Command, args []string) error {
	var (
		dir  = cmd.Flag.String("d", "", "output directory")
		kind = cmd.Flag.String("k", "", "archive format")
	)
	if err := cmd.Flag.Parse(args); err != nil {
		return err
	}
	e, err := elfit.Open(cmd.Flag.Arg(0))
	if err != nil {
		return err
	}
	if *dir == "" {
		*dir = "."
	}
	if err := os.MkdirAll(*dir, 0755); err != nil {
		return err
	}
	base := filepath.Base(cmd.Flag.Arg(0))
	switch *kind {
	case "":
		return extractFiles(e, *dir)
	case "cpio":
		return extractCpio(e, filepath.Join(*dir, base+".cpio"))
	case "ar":
		return extractAr(e, filepath.Join(*dir, base+".ar"))
	default:
		return fmt.Errorf("%s: unsupported archive format", *kind)
	}
}

// entryName gives the output name for section i, empty when the section
// should be skipped: no data, no name, or a name that would escape the
// output directory. Names come from an untrusted file.
func entryName(e *elfit.Elf, i int) string {
	name, err := e.SectionName(i)
	if err != nil || name == "." || name == ".." || len(e.Sections[i].Data) == 0 {
		return ""
	}
	if strings.ContainsAny(name, `/\`) {
		return ""
	}
	return name
}

func extractFiles(e *elfit.Elf, dir string) error {
	for i := range e.Sections {
		name := entryName(e, i)
		if name == "" {
			continue
		}
		s := e.Sections[i]
		file := filepath.Join(dir, name)
		if err := os.WriteFile(file, s.Data, 0644); err != nil {
			return err
		}
	}
	return nil
}

func extractCpio(e *elfit.Elf, file string) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	wc := cpio.NewWriter(w)
	now := time.Now()
	for i := range e.Sections {
		name := entryName(e, i)
		if name == "" {
			continue
		}
		s := e.Sections[i]
		h := tape.Header{
			Filename: name,
			Mode:     0644,
			Uid:      0,
			Gid:      0,
			Size:     int64(len(s.Data)),
			ModTime:  now,
		}
		if err := wc.WriteHeader(&h); err != nil {
			return err
		}
		if _, err := wc.Write(s.Data); err != nil {
			return err
		}
	}
	return wc.Close()
}

func extractAr(e *elfit.Elf, file string) error {
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	defer w.Close()

	wa, err := ar.NewWriter(w)
	if err != nil {
		return err
	}
	now := time.Now()
	for i := range e.Sections {
		name := entryName(e, i)
		if name == "" {
			continue
		}
		s := e.Sections[i]
		h := tape.Header{
			Filename: name,
			Mode:     0644,
			Uid:      0,
			Gid:      0,
			Size:     int64(len(s.Data)),
			ModTime:  now,
		}
		if err := wa.WriteHeader(&h); err != nil {
			return err
		}
		if _, err := io.Copy(wa, bytes.NewReader(s.Data)); err != nil {
			return err
		}
	}
	return wa.Close()
}
