package main

func init() {
	parser.AddCommand("some",
		"Convert a subset of Snapmatic files",
		"The some command-line converts only the named container files.",
		&someCommand{})
}

type someCommand struct {
	Src  string `short:"s" long:"src" description:"Source directory (overrides SRC_PATH)"`
	Dst  string `short:"d" long:"dst" description:"Destination directory (overrides DST_PATH)"`
	Args struct {
		Names []string `positional-arg-name:"name" required:"1"`
	} `positional-args:"yes"`
}

func (c *someCommand) Execute(args []string) error {
	conv, _, err := newConverter(c.Src, c.Dst)
	if err != nil {
		return err
	}

	results, err := conv.ConvertFiles(c.Args.Names)
	if err != nil {
		return err
	}

	return reportResults(results)
}
