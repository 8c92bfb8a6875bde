package main

import "github.com/xingbase/snapmatic/pipeline"

func init() {
	parser.AddCommand("all",
		"Convert every Snapmatic file",
		"The all command-line converts every container file found in the source directory.",
		&allCommand{})
}

type allCommand struct {
	Src string `short:"s" long:"src" description:"Source directory (overrides SRC_PATH)"`
	Dst string `short:"d" long:"dst" description:"Destination directory (overrides DST_PATH)"`
}

func (c *allCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.Src, c.Dst)
	if err != nil {
		return err
	}

	results, err := pipeline.Run(cfg.SrcPath, cfg.DstPath, cfg.Prefix)
	if err != nil {
		return err
	}

	return reportResults(results)
}
