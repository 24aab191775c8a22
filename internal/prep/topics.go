package prep

var sqlTopics = []string{
	"Basic Queries & Filtering",
	"Joins (Inner, Left, Right, Full)",
	"Aggregation & Group By",
	"Subqueries & CTEs",
	"Window Functions",
	"Normalization & Indexes",
}

var dsaTopics = []string{
	"Arrays & Strings",
	"Linked Lists",
	"Stacks & Queues",
	"Trees & BST",
	"Graphs (BFS/DFS)",
	"Dynamic Programming Basics",
}

// Topics returns a copy of the fixed topic list used for a category's
// batches, or nil for an unknown category.
func Topics(c Category) []string {
	switch c {
	case CategorySQL:
		return append([]string(nil), sqlTopics...)
	case CategoryDSA:
		return append([]string(nil), dsaTopics...)
	}
	return nil
}
