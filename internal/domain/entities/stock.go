package entities

// DeductStock applies used-part lines to the parts list and returns a new
// list; the input is not modified.
//
// Lines for the same part are summed. Stock never goes below zero. Parts not
// referenced by any line are returned unchanged, and lines naming unknown
// parts are ignored.
func DeductStock(parts []Part, used []PartUsage) []Part {
	totals := make(map[string]int, len(used))
	for _, u := range used {
		totals[u.PartID] += u.Quantity
	}

	out := make([]Part, len(parts))
	for i, p := range parts {
		if qty, ok := totals[p.ID]; ok {
			p.Stock = max(0, p.Stock-qty)
		}
		out[i] = p
	}
	return out
}

// AffectedParts returns, in parts order, the parts referenced by used.
func AffectedParts(parts []Part, used []PartUsage) []Part {
	ids := make(map[string]struct{}, len(used))
	for _, u := range used {
		ids[u.PartID] = struct{}{}
	}

	out := make([]Part, 0, len(ids))
	for _, p := range parts {
		if _, ok := ids[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}
