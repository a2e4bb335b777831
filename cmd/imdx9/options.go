package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/esimov/imdx9"
	"github.com/esimov/imdx9/gui"
	"github.com/esimov/imdx9/utils"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"
)

const HelpBanner = `
┬┌┬┐┌┬┐─┐ ┬┌─┐
││││ │││┌┴┬┘└─┤
┴┴ ┴─┴┘┴ └─└─┘

Dear ImGui on a Direct3D 9 device.
    Version: %s

`

// Version indicates the current build version.
var Version string

// options holds the parsed command line flags.
type options struct {
	width     int
	height    int
	title     string
	format    imdx9.Format
	vsync     bool
	clear     color.NRGBA
	font      string
	fontSize  float64
	demo      bool
	dumpAtlas string
	verbose   bool
}

// parseOptions parses the command line arguments. Usage is written to out.
func parseOptions(args []string, out io.Writer) (*options, error) {
	var (
		opts   = &options{}
		format string
		clear  string
	)
	fs := flag.NewFlagSet("imdx9", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, HelpBanner, Version)
		fs.PrintDefaults()
	}

	fs.IntVar(&opts.width, "width", 760, "Window width")
	fs.IntVar(&opts.height, "height", 760, "Window height")
	fs.StringVar(&opts.title, "title", "imgui-go + d3d9", "Window title")
	fs.StringVar(&format, "format", imdx9.FormatR5G6B5.String(), "Back buffer format: r5g6b5, x8r8g8b8, a8r8g8b8 or unknown")
	fs.BoolVar(&opts.vsync, "vsync", false, "Wait for the vertical retrace on present")
	fs.StringVar(&clear, "clear", "#aaaaaa", "Clear color, an SVG color name or #rrggbb")
	fs.StringVar(&opts.font, "font", "", "Font: empty for the built-in font, \"go\", a TTF file or URL")
	fs.Float64Var(&opts.fontSize, "font-size", gui.DefaultFontSize, "Font size in pixels")
	fs.BoolVar(&opts.demo, "demo", true, "Show the ImGui demo window, -demo=false hides it")
	fs.StringVar(&opts.dumpAtlas, "dump-atlas", "", "Save the font atlas to the given image file")
	fs.BoolVar(&opts.verbose, "v", false, "Verbose output")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.width <= 0 || opts.height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", opts.width, opts.height)
	}
	if opts.fontSize <= 0 {
		return nil, fmt.Errorf("invalid font size %v", opts.fontSize)
	}

	var err error
	if opts.format, err = imdx9.ParseFormat(format); err != nil {
		return nil, err
	}
	if opts.clear, err = parseColor(clear); err != nil {
		return nil, err
	}
	return opts, nil
}

// exitCode returns the process status for an option parsing error. Asking for
// the usage is not a failure.
func exitCode(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	}
	return 2
}

// parseColor accepts an SVG 1.1 color name or a #rrggbb / #rrggbbaa hex triplet.
func parseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
	}
	hex := s[1:]
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// fontData returns the font selected by src. An empty source selects the built-in
// ImGui font. The spinner, if any, runs while a remote font is downloaded.
func fontData(src string, spinner *utils.Spinner) ([]byte, error) {
	switch {
	case src == "":
		return nil, nil
	case src == "go":
		return goregular.TTF, nil
	case utils.IsValidUrl(src):
		if spinner != nil {
			spinner.Start()
			defer spinner.Stop()
		}
		data, err := utils.DownloadFont(src)
		if err != nil {
			return nil, fmt.Errorf("unable to download the font: %w", err)
		}
		return data, nil
	}
	data, err := utils.LoadFont(src)
	if err != nil {
		return nil, fmt.Errorf("unable to load the font: %w", err)
	}
	return data, nil
}

// newSpinner returns the progress indicator shown while a font is downloaded.
func newSpinner() *utils.Spinner {
	msg := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ IMDX9", utils.StatusMessage),
		utils.DecorateText("is downloading the font...", utils.DefaultMessage))
	s := utils.NewSpinner(msg, 200*time.Millisecond, true)
	s.StopMsg = fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ IMDX9", utils.StatusMessage),
		utils.DecorateText("is downloading the font... ✔\n", utils.DefaultMessage))
	return s
}

// describe formats an error for the terminal. Fatal errors name the failed call.
func describe(err error) string {
	var fe *imdx9.FatalError
	if errors.As(err, &fe) {
		return fmt.Sprintf("%s\n\t%s\n",
			utils.DecorateText(fmt.Sprintf("\n%s in %s", fe.Kind, fe.Op), utils.ErrorMessage),
			utils.DecorateText(fmt.Sprintf("Reason: %v", fe.Err), utils.DefaultMessage),
		)
	}
	return fmt.Sprintf("%s\n\t%s\n",
		utils.DecorateText("\nError", utils.ErrorMessage),
		utils.DecorateText(fmt.Sprintf("Reason: %v", err), utils.DefaultMessage),
	)
}
