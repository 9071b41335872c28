package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kyleking/cutecosmic/internal/preview"
)

func newPreviewCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Browse the theme colors interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := tea.NewProgram(preview.New(a.builder, a.mode), tea.WithAltScreen())
			_, err := p.Run()

			return err
		},
	}
}
