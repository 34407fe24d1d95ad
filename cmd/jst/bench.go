package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/vango-dev/jst/pkg/dom"
	"github.com/vango-dev/jst/pkg/dom/memdom"
	"github.com/vango-dev/jst/pkg/jst"
	"github.com/vango-dev/jst/pkg/tags"
)

// benchList is a list of row components edited at random.
type benchList struct {
	t    tags.Tags
	rows []*benchRow
	next int
}

func (l *benchList) Render(e *jst.Engine) any {
	comps := make([]*jst.Component, len(l.rows))
	for i, r := range l.rows {
		comps[i] = r.c
	}
	return l.t.Ul(comps)
}

func (l *benchList) newRow(e *jst.Engine) *benchRow {
	l.next++
	r := &benchRow{t: l.t, label: "row " + strconv.Itoa(l.next)}
	r.c = e.Component(r)
	return r
}

type benchRow struct {
	t     tags.Tags
	c     *jst.Component
	label string
	hits  int
}

func (r *benchRow) Render(e *jst.Engine) any {
	return r.t.Li(tags.Data("hits", strconv.Itoa(r.hits)), r.label)
}

// benchResult summarizes one edit kind.
type benchResult struct {
	kind  string
	count int
	ops   map[dom.Op]int
	spent time.Duration
}

func benchCmd(a *app) *cobra.Command {
	var (
		items int
		edits int
		seed  int64
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark the reconciler on random list edits",
		Long: `Mount a list of components and apply random edits to it,
counting the target operations each kind of edit costs.

Examples:
  jst bench
  jst bench --items=1000 --edits=5000 --seed=7`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runBench(a, items, edits, seed)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "edit\tcount\tinsert\tremove\tcreate\tattr\ttext\tavg\t")
			for _, r := range results {
				avg := time.Duration(0)
				if r.count > 0 {
					avg = r.spent / time.Duration(r.count)
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t\n",
					r.kind, r.count,
					r.ops[dom.OpInsert], r.ops[dom.OpRemove],
					r.ops[dom.OpCreateElement]+r.ops[dom.OpCreateText],
					r.ops[dom.OpSetAttr]+r.ops[dom.OpRemoveAttr],
					r.ops[dom.OpSetText], avg)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 200, "Initial number of rows")
	cmd.Flags().IntVarP(&edits, "edits", "e", 1000, "Number of random edits")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")

	return cmd
}

var benchKinds = []string{"insert", "remove", "move", "update"}

func runBench(a *app, items, edits int, seed int64) ([]*benchResult, error) {
	doc := memdom.NewDocument()
	e, err := jst.New(doc, jst.WithLogger(a.logger), jst.WithPrefix(a.cfg.Render.Prefix))
	if err != nil {
		return nil, err
	}

	list := &benchList{t: tags.New(e)}
	for i := 0; i < items; i++ {
		list.rows = append(list.rows, list.newRow(e))
	}
	listC := e.Component(list)
	if _, err := e.Mount(doc.NewRoot("body"), listC); err != nil {
		return nil, err
	}

	results := make([]*benchResult, len(benchKinds))
	for i, kind := range benchKinds {
		results[i] = &benchResult{kind: kind, ops: make(map[dom.Op]int)}
	}

	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < edits; i++ {
		k := rng.Intn(len(benchKinds))
		if len(list.rows) == 0 {
			k = 0
		}
		doc.ResetOps()
		start := time.Now()

		var target *jst.Component
		switch benchKinds[k] {
		case "insert":
			at := rng.Intn(len(list.rows) + 1)
			row := list.newRow(e)
			list.rows = append(list.rows[:at], append([]*benchRow{row}, list.rows[at:]...)...)
			target = listC
		case "remove":
			at := rng.Intn(len(list.rows))
			list.rows = append(list.rows[:at], list.rows[at+1:]...)
			target = listC
		case "move":
			from, to := rng.Intn(len(list.rows)), rng.Intn(len(list.rows))
			row := list.rows[from]
			list.rows = append(list.rows[:from], list.rows[from+1:]...)
			list.rows = append(list.rows[:to], append([]*benchRow{row}, list.rows[to:]...)...)
			target = listC
		case "update":
			row := list.rows[rng.Intn(len(list.rows))]
			row.hits++
			target = row.c
		}
		if err := target.Refresh(); err != nil {
			return nil, err
		}

		r := results[k]
		r.spent += time.Since(start)
		r.count++
		for _, rec := range doc.Ops() {
			r.ops[rec.Op]++
		}
	}
	a.logger.Debug("bench finished", "edits", edits, "rows", len(list.rows))
	return results, nil
}
