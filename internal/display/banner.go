package display

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// PrintBanner prints the startup banner line.
func PrintBanner(version string) {
	fmt.Fprintln(os.Stdout,
		titleStyle.Render("meshbatch")+
			subtitleStyle.Render(" v"+version+" - 3D asset to USD batch converter"))
	fmt.Fprintln(os.Stdout)
}
