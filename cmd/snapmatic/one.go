package main

import "fmt"

func init() {
	parser.AddCommand("one",
		"Convert a single Snapmatic file",
		"The one command-line extracts the JPEG photo from one container file.",
		&oneCommand{})
}

type oneCommand struct {
	Name string `short:"f" long:"file" description:"Container file name" required:"true"`
	Src  string `short:"s" long:"src" description:"Source directory (overrides SRC_PATH)"`
	Dst  string `short:"d" long:"dst" description:"Destination directory (overrides DST_PATH)"`
}

func (c *oneCommand) Execute(args []string) error {
	conv, _, err := newConverter(c.Src, c.Dst)
	if err != nil {
		return err
	}

	if err := conv.ConvertFile(c.Name); err != nil {
		return err
	}

	fmt.Printf("OK    %s\n", c.Name)
	return nil
}
