package ivm

import (
	"slices"
)

// =============================================================================
// Bounds
// =============================================================================

// CalculateBounds returns the componentwise min/max box over all node
// positions. An empty node set yields a degenerate box at the origin rather
// than an error or infinity sentinels, so camera-fitting code downstream
// never has to special-case "no nodes".
func CalculateBounds(nodes []Node) BoundingBox {
	if len(nodes) == 0 {
		return BoundingBox{}
	}

	b := BoundingBox{Min: nodes[0].Position, Max: nodes[0].Position}
	for _, n := range nodes[1:] {
		b.Min.X = min(b.Min.X, n.Position.X)
		b.Min.Y = min(b.Min.Y, n.Position.Y)
		b.Min.Z = min(b.Min.Z, n.Position.Z)
		b.Max.X = max(b.Max.X, n.Position.X)
		b.Max.Y = max(b.Max.Y, n.Position.Y)
		b.Max.Z = max(b.Max.Z, n.Position.Z)
	}
	return b
}

// =============================================================================
// Stats
// =============================================================================

// CalculateStats derives aggregate statistics from a node/edge set.
//
// The by-type maps contain only types that actually appear - no zero-filled
// entries for absent types. TotalLOC and AvgComplexity are set only when at
// least one node contributed the corresponding metadata field; with no
// contributors the field is omitted, not reported as zero. Both aggregates
// follow the same omit-rather-than-zero convention.
func CalculateStats(nodes []Node, edges []Edge) GraphStats {
	stats := GraphStats{
		TotalNodes:  len(nodes),
		TotalEdges:  len(edges),
		NodesByType: make(map[NodeType]int),
		EdgesByType: make(map[EdgeType]int),
	}

	var (
		totalLOC      int
		locSeen       bool
		complexitySum float64
		complexityN   int
	)

	for _, n := range nodes {
		stats.NodesByType[n.Type]++
		if v, ok := metaNumber(n.Metadata, MetaLOC); ok {
			totalLOC += int(v)
			locSeen = true
		}
		if v, ok := metaNumber(n.Metadata, MetaComplexity); ok {
			complexitySum += v
			complexityN++
		}
	}

	for _, e := range edges {
		stats.EdgesByType[e.Type]++
	}

	if locSeen {
		stats.TotalLOC = &totalLOC
	}
	if complexityN > 0 {
		avg := complexitySum / float64(complexityN)
		stats.AvgComplexity = &avg
	}

	return stats
}

// CollectLanguages returns the distinct, sorted set of language tags seen
// across node metadata, merged with any seed values. The assembler passes a
// nil seed: graph metadata carries only observed languages.
func CollectLanguages(nodes []Node, seed []string) []string {
	seen := make(map[string]struct{}, len(seed))
	for _, lang := range seed {
		if lang != "" {
			seen[lang] = struct{}{}
		}
	}
	for _, n := range nodes {
		if lang, ok := n.Metadata[MetaLanguage].(string); ok && lang != "" {
			seen[lang] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for lang := range seen {
		out = append(out, lang)
	}
	slices.Sort(out)
	return out
}

// metaNumber reads a numeric metadata value. JSON decoding produces float64,
// but callers constructing inputs in Go commonly use int, so both are
// accepted.
func metaNumber(m Metadata, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
