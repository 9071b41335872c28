package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kyleking/cutecosmic/internal/preview"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

func newDumpCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the palette, fonts and flags for a theme mode",
		Long: `Print everything libcutecosmic exports after loading the selected mode:
the palette, the extended palette, both fonts, the icon theme and the flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := capture(a.builder, a.mode.String())
			out := cmd.OutOrStdout()

			switch format {
			case "yaml":
				return writeYAML(out, snap)
			case "text":
				return writeText(out, snap)
			default:
				return fmt.Errorf("unknown format %q (expected yaml or text)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: yaml or text")

	return cmd
}

func writeYAML(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, snap Snapshot) error {
	ew := &errWriter{w: w}

	ew.printf("%s %s (%s)\n", headingStyle.Render("Theme:"), snap.Theme, snap.Mode)
	ew.printf("  is_dark: %t  is_high_contrast: %t  should_apply_colors: %t\n",
		snap.IsDark, snap.IsHighContrast, snap.ShouldApplyColors)
	ew.printf("  icon_theme: %s\n\n", snap.IconTheme)

	for _, section := range []struct {
		title string
		roles roleList
	}{
		{"Palette:", snap.Palette},
		{"Extended palette:", snap.ExtendedPalette},
	} {
		ew.printf("%s\n", headingStyle.Render(section.title))
		for _, role := range section.roles {
			ew.printf("  %s %-24s %s\n", preview.Swatch(role.Color.RGBHex(), 2), role.Name, role.Color.Hex())
		}
		ew.printf("\n")
	}

	ew.printf("%s\n", headingStyle.Render("Fonts:"))
	for _, f := range []struct {
		kind string
		info FontInfo
	}{
		{"interface", snap.Fonts.Interface},
		{"monospace", snap.Fonts.Monospace},
	} {
		ew.printf("  %-10s %q style=%s weight=%d stretch=%d\n",
			f.kind, f.info.Family, f.info.Style, f.info.Weight, f.info.Stretch)
	}

	return ew.err
}

// errWriter keeps the first write error and drops later writes.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}

	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
