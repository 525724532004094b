package main

import (
	"fmt"
	"io"
	"sort"
	"time"
)

type report struct {
	total time.Duration
	avg   time.Duration

	p50  time.Duration
	p90  time.Duration
	p95  time.Duration
	p99  time.Duration
	p999 time.Duration
	max  time.Duration

	count int
}

func computeReport(durations [][]time.Duration) report {
	var history []time.Duration
	total := time.Duration(0)
	for _, bucket := range durations {
		for _, d := range bucket {
			total += d
			history = append(history, d)
		}
	}

	numHistory := len(history)
	if numHistory == 0 {
		return report{}
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i] < history[j]
	})

	return report{
		total: total,
		avg:   total / time.Duration(numHistory),

		p50:  history[numHistory*50/100],
		p90:  history[numHistory*90/100],
		p95:  history[numHistory*95/100],
		p99:  history[numHistory*99/100],
		p999: history[numHistory*999/1000],
		max:  history[numHistory-1],

		count: numHistory,
	}
}

func (r report) print(w io.Writer) {
	_, _ = fmt.Fprintln(w, "P50:", r.p50)
	_, _ = fmt.Fprintln(w, "P90:", r.p90)
	_, _ = fmt.Fprintln(w, "P95:", r.p95)
	_, _ = fmt.Fprintln(w, "P99:", r.p99)
	_, _ = fmt.Fprintln(w, "P999:", r.p999)
	_, _ = fmt.Fprintln(w, "MAX:", r.max)
	_, _ = fmt.Fprintln(w, "HISTORY LEN:", r.count)
	_, _ = fmt.Fprintln(w, "AVG:", r.avg)
}
