// Command styletab deduplicates a sheet of style definitions.
//
// It reads a TOML style sheet, builds a format value per style, interns
// them all through a style registry and prints the resulting index
// tables: which styles collapsed onto the same xf record, and how many
// distinct font, border and fill definitions the sheet really contains.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mwing/xlsfmt/xlsfmt"
)

var version = "dev"

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		dxf     bool
	)

	root := &cobra.Command{
		Use:          "styletab <stylesheet.toml>",
		Short:        "styletab shows how a style sheet deduplicates into format tables",
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := log.NewWithOptions(os.Stderr, log.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			return run(cmd, args[0], dxf, logger)
		},
	}

	root.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().BoolVar(&dxf, "dxf", false, "intern styles as differential (dxf) formats")
	return root
}

func run(cmd *cobra.Command, path string, dxf bool, logger *log.Logger) error {
	sheet, err := loadStyleSheet(path)
	if err != nil {
		return err
	}
	if len(sheet.Styles) == 0 {
		return fmt.Errorf("%s: no styles defined", path)
	}
	logger.Debug("loaded style sheet", "path", path, "styles", len(sheet.Styles))

	styles := xlsfmt.NewStyles()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render("styles"))
	for _, def := range sheet.Styles {
		f, err := def.build()
		if err != nil {
			return err
		}
		if dxf {
			styles.AddDxfFormat(f)
			logger.Debug("interned style", "name", def.Name, "dxf", f.DxfIndex())
			fmt.Fprintf(out, "  %-20s dxf=%d\n", def.Name, f.DxfIndex())
			continue
		}
		styles.AddXfFormat(f)
		logger.Debug("interned style", "name", def.Name,
			"xf", f.XfIndex(), "font", f.FontIndex(), "border", f.BorderIndex(), "fill", f.FillIndex())
		fmt.Fprintf(out, "  %-20s xf=%-3d font=%-3d border=%-3d fill=%-3d numFmt=%d\n",
			def.Name, f.XfIndex(), f.FontIndex(), f.BorderIndex(), f.FillIndex(), f.NumberFormatIndex())
	}

	fmt.Fprintln(out)
	if dxf {
		fmt.Fprintln(out, headerStyle.Render("differential format records"))
		for _, f := range styles.DxfFormats() {
			fmt.Fprintf(out, "  dxf %-3d %s\n", f.DxfIndex(), describeFormat(f))
		}
		fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf(
			"%d styles collapsed into %d dxf records",
			len(sheet.Styles), len(styles.DxfFormats()))))
		return nil
	}

	fmt.Fprintln(out, headerStyle.Render("cell format records"))
	for _, f := range styles.XfFormats() {
		fmt.Fprintf(out, "  xf %-3d %s\n", f.XfIndex(), describeFormat(f))
	}
	fmt.Fprintln(out, dimStyle.Render(fmt.Sprintf(
		"%d styles collapsed into %d xf records (%d fonts, %d borders, %d fills, %d custom number formats)",
		len(sheet.Styles), len(styles.XfFormats()),
		styles.FontCount(), styles.BorderCount(), styles.FillCount(),
		styles.CustomNumFmtCount())))
	return nil
}

// describeFormat renders the attributes that matter for a quick visual
// diff of two records.
func describeFormat(f *xlsfmt.Format) string {
	desc := fmt.Sprintf("font=%q/%d", f.FontName(), f.FontSize())
	if f.FontBold() {
		desc += " bold"
	}
	if f.FontItalic() {
		desc += " italic"
	}
	if c := f.FontColor(); c.Valid() {
		desc += " colour=" + c.String()
	}
	if f.FillPattern() != xlsfmt.PatternNone {
		desc += fmt.Sprintf(" fill=%d", f.FillPattern())
	}
	if h := f.HorizontalAlignmentString(); h != "" {
		desc += " halign=" + h
	}
	if v := f.VerticalAlignmentString(); v != "" {
		desc += " valign=" + v
	}
	if f.IsDateTimeFormat() {
		desc += " datetime"
	}
	if f.NumberFormat() != "" {
		desc += fmt.Sprintf(" numFmt=%q", f.NumberFormat())
	}
	return desc
}
