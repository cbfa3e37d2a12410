package components

import (
	"electrodes/internal/tui/design"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_Dimensions(t *testing.T) {
	tests := []struct {
		name       string
		width      int
		height     int
		panelType  PanelType
		wantWidth  int
		wantHeight int
	}{
		{
			name:       "zero dimensions",
			width:      0,
			height:     0,
			wantWidth:  design.MinPanelWidth,
			wantHeight: design.MinPanelHeight,
		},
		{
			name:       "negative dimensions",
			width:      -10,
			height:     -5,
			wantWidth:  design.MinPanelWidth,
			wantHeight: design.MinPanelHeight,
		},
		{
			name:       "result panel",
			width:      21,
			height:     7,
			panelType:  PanelTypeResult,
			wantWidth:  21,
			wantHeight: 7,
		},
		{
			name:       "default panel",
			width:      40,
			height:     10,
			panelType:  PanelTypeDefault,
			wantWidth:  40,
			wantHeight: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := NewPanel().
				WithType(tt.panelType).
				WithDimensions(tt.width, tt.height).
				Render()

			assert.Equal(t, tt.wantWidth, lipgloss.Width(output), "outer width should match the requested width")
			assert.Equal(t, tt.wantHeight, lipgloss.Height(output), "outer height should match the requested height")
			assert.Contains(t, output, "╭")
		})
	}
}
