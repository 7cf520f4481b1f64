// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package timing

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"

	"github.com/staranto/eulergo/internal/cacheutil"
	"github.com/staranto/eulergo/internal/scaffold"
)

// store holds one record per problem beneath the cache base directory.
var store = cacheutil.NewStore("timings")

// Record is the result of one `eulerctl time` invocation.
type Record struct {
	Problem    int           `json:"problem"`
	Iters      int           `json:"iters"`
	Mean       time.Duration `json:"mean_ns"`
	RecordedAt time.Time     `json:"recorded_at"`
}

// Save stores r as the latest record for its problem. The file is stamped
// with r.RecordedAt so cache purging ages it from when it was measured.
func Save(r Record) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode timing record: %w", err)
	}
	key := scaffold.Name(r.Problem)
	if err := store.Write(key, data); err != nil {
		return err
	}
	if r.RecordedAt.IsZero() {
		return nil
	}
	return store.Stamp(key, r.RecordedAt)
}

// Last returns the most recent record for problem n, if one exists and parses.
func Last(n int) (Record, bool) {
	entry, ok := store.Read(scaffold.Name(n))
	if !ok {
		return Record{}, false
	}

	if !gjson.ValidBytes(entry.Data) {
		log.Warnf("ignoring corrupt timing record %s", entry.Path)
		return Record{}, false
	}

	doc := gjson.ParseBytes(entry.Data)
	mean := doc.Get("mean_ns")
	if !mean.Exists() {
		return Record{}, false
	}

	r := Record{
		Problem: int(doc.Get("problem").Int()),
		Iters:   int(doc.Get("iters").Int()),
		Mean:    time.Duration(mean.Int()),
	}
	if at := doc.Get("recorded_at"); at.Exists() {
		r.RecordedAt = at.Time()
	}
	if r.RecordedAt.IsZero() {
		r.RecordedAt = entry.ModTime
	}
	return r, true
}

// Compare describes cur relative to prev, e.g.
// "previous 1.5ms over 100 runs, 3 days ago (-20.0%)".
func Compare(prev, cur Record) string {
	change := ""
	if prev.Mean > 0 {
		pct := 100 * float64(cur.Mean-prev.Mean) / float64(prev.Mean)
		change = fmt.Sprintf(" (%+.1f%%)", pct)
	}
	return fmt.Sprintf("previous %v over %d runs, %s%s",
		prev.Mean, prev.Iters, humanize.RelTime(prev.RecordedAt, cur.RecordedAt, "ago", "later"), change)
}
