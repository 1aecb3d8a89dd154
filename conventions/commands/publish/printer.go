package publish

import (
	"encoding/json"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// TargetsWriter renders resolved publication targets in the requested format.
type TargetsWriter struct {
	targets []ResolvedTarget
	format  string
}

func NewTargetsWriter(targets []ResolvedTarget, format string) *TargetsWriter {
	return &TargetsWriter{
		targets: targets,
		format:  format,
	}
}

func (w *TargetsWriter) Print() error {
	switch w.format {
	case "json":
		return w.printJSON()
	default:
		return w.printTable()
	}
}

func (w *TargetsWriter) printJSON() error {
	jsonBytes, err := json.MarshalIndent(w.targets, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(jsonBytes))
	return nil
}

func (w *TargetsWriter) printTable() error {
	if len(w.targets) == 0 {
		fmt.Println("No publication targets configured")
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Target", "Effective URL", "Channel", "Auth"})
	for _, target := range w.targets {
		channel := "release"
		if target.Snapshot {
			channel = "snapshot"
		}
		auth := "-"
		if target.RequiresAuth {
			if target.Authenticated {
				auth = text.FgGreen.Sprint("ok")
			} else {
				auth = text.FgRed.Sprint("missing")
			}
		}
		tw.AppendRow(table.Row{target.Name, target.EffectiveURL, channel, auth})
	}
	fmt.Println(tw.Render())
	return nil
}
