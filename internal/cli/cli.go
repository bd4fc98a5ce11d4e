// Package cli implements the edge-detect command: pick a pipeline by name,
// run it over one image and show the result.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"dip-challenge/internal/edge"
	"dip-challenge/internal/logger"

	"gocv.io/x/gocv"
)

// ExitUsage is returned for every argument, algorithm or file error.
const ExitUsage = 128

// Displayer shows a result image and returns once the user dismisses it.
type Displayer interface {
	Show(title string, img gocv.Mat)
}

type Command struct {
	Program  string
	Registry *edge.Registry
	Display  Displayer
	Stderr   io.Writer
	Logger   logger.Logger
}

func NewCommand(program string, display Displayer, stderr io.Writer, log logger.Logger) *Command {
	return &Command{
		Program:  program,
		Registry: edge.DefaultRegistry(),
		Display:  display,
		Stderr:   stderr,
		Logger:   log,
	}
}

// Run executes the command for args (without the program name) and returns
// the process exit status.
func (c *Command) Run(args []string) int {
	fs := flag.NewFlagSet(c.Program, flag.ContinueOnError)
	fs.SetOutput(c.Stderr)
	fs.Usage = c.usage

	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}

	if fs.NArg() != 2 {
		c.usage()
		return ExitUsage
	}

	name, path := fs.Arg(0), fs.Arg(1)

	alg, err := c.Registry.Get(name)
	if err != nil {
		fmt.Fprintf(c.Stderr, "ERROR: Unknown algorithm: %s\n", name)
		c.usage()
		return ExitUsage
	}

	src := gocv.IMRead(path, gocv.IMReadColor)
	defer src.Close()

	if src.Empty() {
		fmt.Fprintf(c.Stderr, "ERROR: No such file: %s\n", path)
		c.usage()
		return ExitUsage
	}

	c.Logger.Debug("EdgeDetect", "image loaded", map[string]interface{}{
		"path":     path,
		"width":    src.Cols(),
		"height":   src.Rows(),
		"channels": src.Channels(),
	})

	result, err := alg.Apply(src)
	if err != nil {
		c.Logger.Error("EdgeDetect", err, map[string]interface{}{
			"algorithm": name,
			"path":      path,
		})
		fmt.Fprintf(c.Stderr, "ERROR: %s failed on %s: %v\n", name, path, err)
		return ExitUsage
	}
	defer result.Close()

	c.Logger.Info("EdgeDetect", "edges computed", map[string]interface{}{
		"algorithm": name,
		"width":     result.Cols(),
		"height":    result.Rows(),
	})

	c.Display.Show(fmt.Sprintf("result from %s", name), result)
	return 0
}

func (c *Command) usage() {
	fmt.Fprintf(c.Stderr, "\nUsage: %s ALGO IMG_PATH\n\nAvailable algorithms:\n- %s\n\n",
		c.Program, strings.Join(c.Registry.Names(), "\n- "))
}

// WindowDisplay shows results in an OpenCV highgui window.
type WindowDisplay struct{}

func (WindowDisplay) Show(title string, img gocv.Mat) {
	window := gocv.NewWindow(title)
	defer window.Close()

	window.IMShow(img)
	window.WaitKey(0)
}
