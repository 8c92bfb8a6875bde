package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Import JPEG decoder
	"os"
	"path/filepath"

	"github.com/xingbase/snapmatic"
	"github.com/xingbase/snapmatic/file"
)

func init() {
	parser.AddCommand("info",
		"Inspect the photo inside a Snapmatic file",
		"The info command-line extracts the photo in memory and prints its dimensions without writing anything.",
		&infoCommand{})
}

type infoCommand struct {
	Name string `short:"f" long:"file" description:"Container file name" required:"true"`
	Src  string `short:"s" long:"src" description:"Source directory (overrides SRC_PATH)"`
}

func (c *infoCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.Src, "")
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

	imgCfg, format, err := image.DecodeConfig(bytes.NewReader(jpeg))
	if err != nil {
		return err
	}

	fmt.Printf("file: %s\n", c.Name)
	if num, err := file.ExtractPhotoNum(c.Name); err == nil {
		fmt.Printf("photo: %d\n", num)
	}
	fmt.Printf("format: %s\n", format)
	fmt.Printf("width: %d  height: %d\n", imgCfg.Width, imgCfg.Height)
	fmt.Printf("header: %d bytes  image: %d bytes\n", len(data)-len(jpeg), len(jpeg))
	fmt.Printf("end-of-image: %v\n", snapmatic.HasEndOfImage(jpeg))

	return nil
}
