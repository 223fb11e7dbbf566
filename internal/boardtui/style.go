package boardtui

import "github.com/charmbracelet/lipgloss"

var (
	borderASCII = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	columnStyle       = lipgloss.NewStyle().Border(borderASCII).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	columnActiveStyle = columnStyle.Copy().BorderForeground(lipgloss.Color("33"))

	columnTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252"))
	columnCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	cardStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	cardSelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Bold(true)
	cardGrabbedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("130")).Bold(true)
	cardMetaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusInfoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	urgentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)
