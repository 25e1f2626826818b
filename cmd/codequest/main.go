// Command codequest runs the CodeQuest title menu and intro.
//
// By default the embedded assets are used. Point --assets at a directory
// laid out the same way (ui/skin.json, ui/backgrounds/..., ui/avatars/...)
// to try new art without rebuilding.
package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"

	_ "github.com/ebitengine/hideconsole"
	"github.com/spf13/cobra"

	"github.com/phanxgames/codequest"
	"github.com/phanxgames/codequest/assets"
)

const windowTitle = "CodeQuest"

type options struct {
	assets      string
	width       int
	height      int
	debug       bool
	fps         bool
	script      string
	screenshots string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "codequest",
		Short:         "run the CodeQuest menu and intro",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.runConfig()
			if err != nil {
				return err
			}
			return codequest.Run(cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.assets, "assets", "", "asset directory (default: embedded assets)")
	f.IntVar(&opts.width, "width", codequest.ScreenWidth, "logical screen width")
	f.IntVar(&opts.height, "height", codequest.ScreenHeight, "logical screen height")
	f.BoolVar(&opts.debug, "debug", false, "log transitions and frame stats to stderr")
	f.BoolVar(&opts.fps, "fps", false, "show the FPS/TPS overlay")
	f.StringVar(&opts.script, "script", "", "JSON test script to drive input")
	f.StringVar(&opts.screenshots, "screenshots", "screenshots", "directory for script screenshots")
	return cmd
}

func (o *options) runConfig() (codequest.RunConfig, error) {
	var fsys fs.FS = assets.FS()
	if o.assets != "" {
		info, err := os.Stat(o.assets)
		if err != nil {
			return codequest.RunConfig{}, fmt.Errorf("assets: %w", err)
		}
		if !info.IsDir() {
			return codequest.RunConfig{}, fmt.Errorf("assets: %s is not a directory", o.assets)
		}
		fsys = os.DirFS(o.assets)
	}
	cfg := codequest.RunConfig{
		Title:         windowTitle,
		Width:         o.width,
		Height:        o.height,
		ShowFPS:       o.fps,
		Debug:         o.debug,
		Assets:        fsys,
		ScreenshotDir: o.screenshots,
	}
	if o.script != "" {
		data, err := os.ReadFile(o.script)
		if err != nil {
			return codequest.RunConfig{}, fmt.Errorf("script: %w", err)
		}
		cfg.Script = data
	}
	return cfg, nil
}
