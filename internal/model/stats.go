// internal/model/stats.go
package model

// TopicList は分析対象のトピック一覧
var TopicList = []string{
	"Array", "Hash Table", "Linked List", "Math", "Two Pointers", "String",
	"Binary Search", "Sliding Window", "Dynamic Programming", "Backtracking",
	"Stack", "Heap", "Greedy", "Graph", "Trie", "Tree", "Binary Tree",
	"Depth-First Search", "Breadth-First Search", "Union Find", "Bit Manipulation",
	"Recursion", "Sorting", "Design",
}

// TopicStat はトピックごとの集計結果
type TopicStat struct {
	Topic      string  `json:"topic"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// SummaryResponse はダッシュボード用の集計
type SummaryResponse struct {
	TotalProblems int64                `json:"total_problems"`
	ByDifficulty  map[Difficulty]int64 `json:"by_difficulty"`
	DueToday      int64                `json:"due_today"`
	Overdue       int64                `json:"overdue"`
	DueThisWeek   int64                `json:"due_this_week"`
	LoggedMonth   int64                `json:"logged_this_month"`
	TotalReviews  int64                `json:"total_reviews"`
	AvgReviews    float64              `json:"avg_reviews"`
	Date          string               `json:"date"`
}
