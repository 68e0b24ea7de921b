package pregel

import "github.com/orneryd/gdscore/pkg/graphstore"

// partitionRange splits [0, nodeCount) into up to workers contiguous,
// roughly equal-sized ranges. Each returned entry is a [start, end)
// half-open range.
func partitionRange(nodeCount int64, workers int) [][2]int64 {
	if workers < 1 {
		workers = 1
	}
	if int64(workers) > nodeCount {
		workers = int(nodeCount)
	}
	if workers < 1 {
		return nil
	}
	base := nodeCount / int64(workers)
	remainder := nodeCount % int64(workers)

	partitions := make([][2]int64, 0, workers)
	var start int64
	for i := 0; i < workers; i++ {
		size := base
		if int64(i) < remainder {
			size++
		}
		if size == 0 {
			continue
		}
		partitions = append(partitions, [2]int64{start, start + size})
		start += size
	}
	return partitions
}

// partitionDegree splits [0, nodeCount) into up to workers contiguous
// ranges balanced by cumulative out-degree rather than node count, so
// that skewed-degree graphs don't leave one worker with most of the
// edges. Ranges stay contiguous (no node reordering) to keep Graph
// lookups cache-friendly.
func partitionDegree(graph *graphstore.Graph, workers int) ([][2]int64, error) {
	nodeCount := graph.NodeCount()
	if workers < 1 {
		workers = 1
	}
	if int64(workers) > nodeCount {
		workers = int(nodeCount)
	}
	if workers < 1 {
		return nil, nil
	}

	degrees := make([]int64, nodeCount)
	var total int64
	for i := int64(0); i < nodeCount; i++ {
		d, err := graph.Degree(i)
		if err != nil {
			return nil, err
		}
		degrees[i] = d
		total += d
	}
	target := total / int64(workers)
	if target == 0 {
		target = 1
	}

	partitions := make([][2]int64, 0, workers)
	var start int64
	var accumulated int64
	for i := int64(0); i < nodeCount; i++ {
		accumulated += degrees[i]
		isLast := len(partitions) == workers-1
		if !isLast && accumulated >= target && i+1 < nodeCount {
			partitions = append(partitions, [2]int64{start, i + 1})
			start = i + 1
			accumulated = 0
		}
	}
	partitions = append(partitions, [2]int64{start, nodeCount})
	return partitions, nil
}
