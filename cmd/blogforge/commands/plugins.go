package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/blogforge/internal/config"
	"git.home.luguber.info/inful/blogforge/internal/plugins"
)

// PluginsCmd implements the 'plugins' command: resolve and print the plugin
// sequence for the current project and environment without writing anything.
type PluginsCmd struct {
	YAML bool `name:"yaml" help:"Print the sequence as YAML instead of one identifier per line"`
}

func (p *PluginsCmd) Run(_ *Global, root *CLI) error {
	env := config.LoadEnviron()

	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load project: %w", err)
	}

	list := plugins.Assemble(cfg, env)
	if p.YAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return fmt.Errorf("encode plugin list: %w", err)
		}
		return enc.Close()
	}
	for _, id := range plugins.Identifiers(list) {
		fmt.Println(id)
	}
	return nil
}
