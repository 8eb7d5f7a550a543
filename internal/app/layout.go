package app

import (
	"github.com/llehouerou/encore/internal/ui/headerbar"
	"github.com/llehouerou/encore/internal/ui/playerbar"
)

const (
	footerHeight      = 1
	browseChrome      = 2 // title and blank line
	albumChrome       = 3 // title, meta and separator
	defaultListHeight = 10
)

// bodyHeight is the space between the header and the player bar.
func (m Model) bodyHeight() int {
	return max(m.Height-headerbar.Height-playerbar.Height(m.displayMode)-footerHeight, 0)
}

func (m Model) browseHeight() int {
	if m.Height == 0 {
		return defaultListHeight
	}
	return max(m.bodyHeight()-browseChrome, 1)
}

func (m Model) albumHeight() int {
	if m.Height == 0 {
		return defaultListHeight
	}
	return max(m.bodyHeight()-albumChrome, 1)
}
