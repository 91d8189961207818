package main

import (
	"log"
	"os"
	"path/filepath"
	"text/template"

	"github.com/midbel/cli"
)

const helpText = `{{.Name}} inspects 64-bit ELF object files.

Usage:

  {{.Name}} command [arguments]

The commands are:

{{range .Commands}}{{printf "  %-9s %s" .String .Short}}
{{end}}

Use {{.Name}} [command] -h for more information about its usage.
`

var commands = []*cli.Command{
	{
		Run:     runShow,
		Usage:   "show <file>",
		Short:   "show header information of an elf file",
		Alias:   []string{"info"},
		Default: true,
	},
	{
		Run:   runSections,
		Usage: "sections <file>",
		Short: "list sections of an elf file",
	},
	{
		Run:   runSegments,
		Usage: "segments <file>",
		Short: "list program headers of an elf file",
	},
	{
		Run:   runExtract,
		Usage: "extract [-d <directory>] [-k <format>] <file>",
		Short: "extract section contents, optionally into a cpio or ar archive",
	},
}

func main() {
	log.SetFlags(0)
	if err := cli.Run(commands, usage); err != nil {
		log.Fatalln(err)
	}
}

func usage() {
	data := struct {
		Name     string
		Commands []*cli.Command
	}{
		Name:     filepath.Base(os.Args[0]),
		Commands: commands,
	}
	t := template.Must(template.New("help").Parse(helpText))
	t.Execute(os.Stderr, data)

	os.Exit(2)
}
