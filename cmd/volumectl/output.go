package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/GregoryDosh/volumectl/internal/mixer"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	headers     = []string{"ID", "IN", "OUT", "NAME"}
)

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func deviceRows(devices []mixer.DeviceSummary) [][]string {
	rows := make([][]string, 0, len(devices))
	for _, d := range devices {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(d.ID), 10),
			yesNo(d.SupportsInput),
			yesNo(d.SupportsOutput),
			d.Name,
		})
	}
	return rows
}

func renderTable(w io.Writer, devices []mixer.DeviceSummary) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(deviceRows(devices)...)
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderPlain(w io.Writer, devices []mixer.DeviceSummary) error {
	for _, r := range deviceRows(devices) {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r[0], r[1], r[2], r[3]); err != nil {
			return err
		}
	}
	return nil
}

func muteWord(muted bool) string {
	if muted {
		return "muted"
	}
	return "unmuted"
}
