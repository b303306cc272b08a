package attempt

import "time"

// Filter narrows attempt queries. Empty fields match everything; a zero
// Since or Until leaves that side of the created_at window open.
type Filter struct {
	LearnerID string
	SubjectID string
	Since     time.Time
	Until     time.Time
}
