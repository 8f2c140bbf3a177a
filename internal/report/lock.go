package report

// LockState of the locked home mission.
type LockState int

const (
	Locked LockState = iota
	Unlocking
	Unlocked
)

func (s LockState) String() string {
	switch s {
	case Unlocking:
		return "unlocking"
	case Unlocked:
		return "unlocked"
	}
	return "locked"
}

// Lock only moves forward: locked, unlocking, unlocked.
type Lock struct {
	state LockState
}

func (l *Lock) State() LockState { return l.state }

// Unlock starts the unlock sequence. Only valid while locked.
func (l *Lock) Unlock() bool {
	if l.state != Locked {
		return false
	}
	l.state = Unlocking
	return true
}

// Finish completes the unlock sequence. Only valid while unlocking.
func (l *Lock) Finish() bool {
	if l.state != Unlocking {
		return false
	}
	l.state = Unlocked
	return true
}
