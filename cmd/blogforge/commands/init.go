package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/blogforge/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing project file"`
	Output string `short:"o" name:"output" help:"Directory to place the generated project file in"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	cfgPath := root.Config
	if i.Output != "" {
		cfgPath = filepath.Join(i.Output, "blog.yaml")
	}
	fmt.Printf("Writing project file to %s\n", cfgPath)
	if err := config.Init(cfgPath, i.Force); err != nil {
		return err
	}
	fmt.Println("initialized successfully")
	return nil
}
