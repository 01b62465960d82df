// Package ui provides the ShapeBoard application UI components.
//
// This file provides tooltip-enabled toolbar buttons using the fyne-tooltip library.

package ui

import (
	"fyne.io/fyne/v2"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newToolButton creates a labelled toolbar button. When tooltip is non-empty
// it appears on hover.
func newToolButton(label string, icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	if tooltip != "" {
		btn.SetToolTip(tooltip)
	}
	return btn
}
