package rules

import "github.com/HuXin0817/pawns-and-walls/pkg/models/quoridor"

type SessionState int8

const (
	SessionIdle SessionState = iota
	SessionSelecting
	SessionCommitted
	SessionCancelled
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "Idle"
	case SessionSelecting:
		return "Selecting"
	case SessionCommitted:
		return "Committed"
	case SessionCancelled:
		return "Cancelled"
	}
	return ""
}

// Session is the two-phase wall placement interaction:
// Idle → Selecting → Committed or Cancelled → Idle. Committed and Cancelled
// are readouts of the last attempt; Begin is the edge back to the cycle.
// A cancelled or failed attempt never reaches NotifyWallCommitted, so it
// does not consume the turn.
type Session struct {
	validator *Validator
	turns     TurnController

	state        SessionState
	candidate    quoridor.Wall
	hasCandidate bool
	legal        bool
}

func NewSession(validator *Validator, turns TurnController) *Session {
	return &Session{
		validator: validator,
		turns:     turns,
		state:     SessionIdle,
	}
}

func (s *Session) State() SessionState { return s.state }

// Begin enters Selecting if the turn collaborator currently permits wall
// initiation by the acting player.
func (s *Session) Begin() bool {
	if s.state == SessionSelecting {
		return false
	}
	if !s.turns.IsWallActionAllowed() {
		return false
	}
	acting := s.turns.CurrentActingPawn()
	if s.turns.WallsRemaining(acting.ID) <= 0 {
		return false
	}
	s.state = SessionSelecting
	s.hasCandidate = false
	s.legal = false
	return true
}

// Select re-runs CanPlace for the candidate and returns the legality signal
// for presentation. Every candidate change goes through here.
func (s *Session) Select(w quoridor.Wall) bool {
	if s.state != SessionSelecting {
		return false
	}
	s.candidate = w
	s.hasCandidate = true
	s.legal = s.validator.CanPlace(w)
	return s.legal
}

func (s *Session) Candidate() (quoridor.Wall, bool) {
	return s.candidate, s.hasCandidate
}

func (s *Session) CandidateLegal() bool {
	return s.state == SessionSelecting && s.hasCandidate && s.legal
}

// Commit places the selected wall. Success hands the turn back through the
// validator's NotifyWallCommitted; any failure cancels the attempt instead.
func (s *Session) Commit() bool {
	if s.state != SessionSelecting || !s.hasCandidate {
		return false
	}
	if s.validator.PlaceWall(s.candidate) {
		s.state = SessionCommitted
		return true
	}
	s.state = SessionCancelled
	return false
}

func (s *Session) Cancel() {
	if s.state != SessionSelecting {
		return
	}
	s.state = SessionCancelled
}
