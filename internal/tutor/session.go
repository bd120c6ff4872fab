package tutor

// Session is the state of one conversation. The zero value is a fresh
// session; callers own it and pass it to every Engine call.
type Session struct {
	// Queued is the practice question awaiting an answer, nil when none.
	Queued *PracticeQuestion
	// Rotation cycles tips, openers and questions. It only grows.
	Rotation int
}

// HasQueued reports whether a practice question is waiting for an answer.
func (s *Session) HasQueued() bool {
	return s.Queued != nil
}

// pick maps the rotation counter onto a list of length n.
func pick(rotation, n int) int {
	return ((rotation % n) + n) % n
}
