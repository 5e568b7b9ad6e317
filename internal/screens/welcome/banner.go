package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/flashlingo/internal/ui/theme"
)

const bannerArt = `
█▀▀ █   ▄▀▄ █▀▀ █ █ █   █ █▄ █ █▀▀▀ █▀█
█▀  █   █▀█ ▀▀█ █▀█ █   █ █ ▀█ █ ▀█ █ █
▀   ▀▀▀ ▀ ▀ ▀▀▀ ▀ ▀ ▀▀▀ ▀ ▀  ▀ ▀▀▀▀ ▀▀▀`

// BannerCompact is the one-line title for narrow terminals.
const BannerCompact = "F L A S H L I N G O"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 40

// RenderBanner returns the FLASHLINGO banner styled in the primary color.
// Uses a compact fallback for terminals narrower than the art.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+4 {
		return style.Render(BannerCompact)
	}
	return style.Render(bannerArt)
}
