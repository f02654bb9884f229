// Package snapshot builds a debug/inspection JSON view of a grid's
// value_map for the `spreadterm dump` and `spreadterm query` commands.
// This is explicitly not the persistence format spec.md's Non-goals
// exclude: there is no corresponding decode-back-into-a-grid path, and
// the shell never reads this JSON back as input.
package snapshot

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/hhollis/spreadterm/internal/grid"
)

// Dump renders g's present value_map entries as a JSON object keyed by
// "row,col", built incrementally with sjson rather than marshalling a Go
// struct, since the key shape (comma-joined coordinate) isn't a natural
// struct field name.
func Dump(g *grid.Grid) (string, error) {
	doc := "{}"
	var err error

	for _, entry := range g.GetAllCellValues() {
		key := fmt.Sprintf("%d,%d", entry.Addr.Row, entry.Addr.Col)
		if entry.Err != nil {
			doc, err = sjson.Set(doc, key+".error", entry.Err.Error())
		} else {
			doc, err = sjson.Set(doc, key+".value", entry.Value.Display())
			if err == nil {
				doc, err = sjson.Set(doc, key+".kind", entry.Value.Kind().String())
			}
		}
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}

// Query extracts one field from a dump document by gjson path, e.g.
// "0,2.value" or "1,1.kind". It never round-trips back into a grid.
func Query(doc, path string) (string, bool) {
	result := gjson.Get(doc, path)
	if !result.Exists() {
		return "", false
	}
	return result.String(), true
}
