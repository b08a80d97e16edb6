package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/warp/robot-pay/api"
	"github.com/warp/robot-pay/factory"
	"github.com/warp/robot-pay/payroll"
)

func renderBreakdown(out io.Writer, b payroll.Breakdown, rates payroll.RateTable) {
	bd := factory.ToBreakdownJSON(b, rates)

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Class", "Minutes", "Rate/min", "Amount"})
	for _, c := range bd.Classes {
		t.AppendRow(table.Row{c.Class, c.Minutes, c.Rate, c.Amount})
	}
	t.AppendFooter(table.Row{"Total", bd.WorkedMinutes, "", bd.Value})
	t.AppendFooter(table.Row{"Break", bd.BreakMinutes, "", "0"})
	t.Render()

	if len(bd.Breaks) == 0 {
		return
	}
	bt := table.NewWriter()
	bt.SetOutputMirror(out)
	bt.AppendHeader(table.Row{"Break start", "Break end", "Minutes"})
	for _, br := range bd.Breaks {
		bt.AppendRow(table.Row{br.Start, br.End, br.Minutes})
	}
	bt.Render()
}

func renderSegments(out io.Writer, segs []payroll.Segment) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Start", "End", "Class", "Minutes"})
	for _, s := range factory.ToSegmentsJSON(segs) {
		t.AppendRow(table.Row{s.Start, s.End, s.Class, s.Minutes})
	}
	t.Render()
}

func renderScenarios(out io.Writer, list []api.Scenario) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"ID", "Name", "Start", "End", "Description"})
	for _, s := range list {
		t.AppendRow(table.Row{s.ID, s.Name, s.Start, s.End, s.Description})
	}
	t.Render()
}
