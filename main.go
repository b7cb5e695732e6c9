package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"warrengen/pkg/engine/rng"
	"warrengen/pkg/engine/terminal"
	"warrengen/pkg/engine/world"
	"warrengen/pkg/game/deck"
	"warrengen/pkg/game/devtools"
	"warrengen/pkg/game/generator"
	"warrengen/pkg/game/renderer"
	"warrengen/pkg/game/renderer/tui"
	"warrengen/pkg/game/setup"
	"warrengen/pkg/logger"
)

// statusRows is the number of terminal lines kept free below the map
const statusRows = 5

type options struct {
	width, height             int
	renderWidth, renderHeight int
	seed                      int
	levels                    int
	dump                      bool
	html                      bool
	devMap                    bool
	noColor                   bool
	locales                   string
	locale                    string
}

func parseFlags() options {
	var o options
	flag.IntVar(&o.width, "width", 0, "grid width; width-1 must be a multiple of 5 (0 = sized by deck)")
	flag.IntVar(&o.height, "height", 0, "grid height; height-1 must be a multiple of 5 (0 = sized by deck)")
	flag.IntVar(&o.renderWidth, "render-width", 0, "viewport width (0 = terminal width)")
	flag.IntVar(&o.renderHeight, "render-height", 0, "viewport height (0 = terminal height)")
	flag.IntVar(&o.seed, "seed", -1, "PRNG start position 0-255 (-1 = from clock)")
	flag.IntVar(&o.levels, "levels", 1, "number of decks to generate, starting from the first")
	flag.BoolVar(&o.dump, "dump", false, "write map.txt for the last level")
	flag.BoolVar(&o.html, "html", false, "write an HTML screenshot of the last level")
	flag.BoolVar(&o.devMap, "devmap", false, "render the fixed developer map instead of generating")
	flag.BoolVar(&o.noColor, "no-color", false, "disable ANSI colours")
	flag.StringVar(&o.locales, "locales", "locales", "directory holding translations")
	flag.StringVar(&o.locale, "locale", "en_GB", "translation language")
	flag.Parse()
	return o
}

func initGettext(o options) {
	gotext.Configure(o.locales, o.locale, "default")
}

func main() {
	o := parseFlags()

	logger.Init()
	initGettext(o)

	r := tui.New()
	r.Init()
	r.Plain = o.noColor || !terminal.IsTerminal()
	renderer.SetRenderer(r)

	if o.renderWidth <= 0 || o.renderHeight <= 0 {
		w, h := terminal.RenderSize(statusRows)
		if o.renderWidth <= 0 {
			o.renderWidth = w
		}
		if o.renderHeight <= 0 {
			o.renderHeight = h
		}
	}

	if o.devMap {
		grid := devtools.DevGrid(o.renderWidth, o.renderHeight)
		showLevel(0, grid, generator.Summary{Leaves: 3, Doors: len(grid.Doors()), Groups: 1})
		return
	}

	if o.seed < 0 {
		o.seed = int(time.Now().UnixNano() & 0xff)
	}
	o.levels = min(max(o.levels, 1), deck.TotalDecks)

	if err := run(o); err != nil {
		logger.Log.WithError(err).Error("level generation failed")
		os.Exit(1)
	}
}

// levelGenerator gives every level its own source so a level building in the
// background cannot shift the draws of the one being shown.
func levelGenerator(o options, level int) (*generator.BSPGenerator, byte) {
	seed := byte(o.seed + level - 1)
	cfg := generator.DefaultConfig()
	cfg.Source = rng.NewSource(seed)
	return generator.NewBSP(cfg), seed
}

func startLevel(o options, level int) (*generator.Task, byte, error) {
	gen, seed := levelGenerator(o, level)
	width, height := levelSize(o, level, gen.Config.Interval)
	task, err := gen.Generate(width, height, o.renderWidth, o.renderHeight)
	if err != nil {
		return nil, 0, err
	}
	logger.Component("main").WithFields(logrus.Fields{
		"level": level,
		"seed":  seed,
	}).Debug("level generation started")
	return task, seed, nil
}

// levelSize applies -width and -height over the deck size; a dimension left
// at 0 keeps the deck's value.
func levelSize(o options, level, interval int) (width, height int) {
	width, height = deck.GridSize(level, interval)
	if o.width > 0 {
		width = o.width
	}
	if o.height > 0 {
		height = o.height
	}
	return width, height
}

// run generates the requested levels, building level N+1 while level N is shown
func run(o options) error {
	task, seed, err := startLevel(o, 1)
	if err != nil {
		return err
	}

	for level := 1; level <= o.levels; level++ {
		grid := task.Wait()
		summary := task.Summary()
		currentSeed := seed

		if next := deck.NextDeckLevel(level); next != 0 && next <= o.levels {
			if task, seed, err = startLevel(o, next); err != nil {
				return err
			}
		}

		showLevel(level, grid, summary)

		if level == o.levels {
			return writeArtifacts(o, level, currentSeed, grid, summary)
		}
	}
	return nil
}

func showLevel(level int, grid *world.Grid, summary generator.Summary) {
	origin := renderer.CenteredOrigin(grid, world.Pt(grid.Width()/2, grid.Height()/2))
	fmt.Print(renderer.RenderGrid(grid, origin))
	fmt.Println(renderer.FormatText("TITLE{%s}", gotext.Get("Level %d", level)))
	if level > 0 {
		fmt.Println(deck.FlavourText(level))
	}
	fmt.Println(gotext.Get("%dx%d cells, %d rooms, %d doors", grid.Width(), grid.Height(), summary.Leaves, summary.Doors))
	if summary.Groups > 1 {
		fmt.Println(renderer.StyleText(gotext.Get("%d room groups are cut off from each other", summary.Groups), renderer.StyleDenied))
	}
	if chokepoints := setup.Chokepoints(grid); len(chokepoints) > 0 {
		fmt.Println(renderer.StyleText(gotext.Get("%d doors cannot be blocked without splitting the level", len(chokepoints)), renderer.StyleSubtle))
	}
}

func writeArtifacts(o options, level int, seed byte, grid *world.Grid, summary generator.Summary) error {
	if o.dump {
		path, err := devtools.DumpGridToFile(grid, devtools.DumpInfo{
			Level:     level,
			Seed:      seed,
			Generator: generator.BSP.Name(),
			Summary:   summary,
		})
		if err != nil {
			return fmt.Errorf("dump map: %w", err)
		}
		fmt.Println(gotext.Get("Map written to %s", path))
	}
	if o.html {
		name, err := devtools.SaveScreenshotHTML(grid, gotext.Get("Level %d", level))
		if err != nil {
			return fmt.Errorf("save screenshot: %w", err)
		}
		fmt.Println(gotext.Get("Screenshot written to %s", name))
	}
	return nil
}
