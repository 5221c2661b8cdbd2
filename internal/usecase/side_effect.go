package usecase

// SideEffect reports a best-effort step (push dispatch, inbox append) next
// to the primary outcome. Its failure never changes the primary result.
type SideEffect struct {
	Attempted  bool
	ID         string
	SkipReason string
	Err        error
}

func (s SideEffect) Succeeded() bool {
	return s.Attempted && s.Err == nil
}

func skipped(reason string) SideEffect {
	return SideEffect{SkipReason: reason}
}
