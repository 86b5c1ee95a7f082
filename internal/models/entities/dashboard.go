package entities

type DashboardSummary struct {
	ActiveMembers  int64 `json:"active_members"`
	PendingMembers int64 `json:"pending_members"`
	PendingHours   int64 `json:"pending_hours"`
	Events         int64 `json:"events"`
	Blogs          int64 `json:"blogs"`
}
