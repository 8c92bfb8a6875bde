package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xingbase/snapmatic"
)

func init() {
	parser.AddCommand("thumb",
		"Write a thumbnail of the photo",
		"The thumb command-line extracts the photo and writes a scaled-down preview next to the converted output.",
		&thumbCommand{})
}

type thumbCommand struct {
	Name  string `short:"f" long:"file" description:"Container file name" required:"true"`
	Width int    `short:"w" long:"width" description:"Maximum thumbnail width" default:"320"`
	Src   string `short:"s" long:"src" description:"Source directory (overrides SRC_PATH)"`
	Dst   string `short:"d" long:"dst" description:"Destination directory (overrides DST_PATH)"`
}

func (c *thumbCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.Src, c.Dst)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(filepath.Join(cfg.SrcPath, c.Name))
	if err != nil {
		return err
	}

	jpeg, err := snapmatic.Extract(data)
	if err != nil {
		return err
	}

	thumb, err := snapmatic.Thumbnail(jpeg, c.Width)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.DstPath, 0777); err != nil {
		return err
	}

	dst := filepath.Join(cfg.DstPath, c.Name+".thumb.jpg")
	if err := os.WriteFile(dst, thumb, 0644); err != nil {
		return err
	}

	fmt.Printf("OK    %s (%d bytes)\n", dst, len(thumb))
	return nil
}
