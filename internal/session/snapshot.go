package session

// Snapshot is the wire representation of a session sent to remote players.
type Snapshot struct {
	SessionID string     `json:"session_id"`
	Size      int        `json:"size"`
	MineCount int        `json:"mine_count"`
	Status    string     `json:"status"`
	Revealed  int        `json:"revealed"`
	Flags     int        `json:"flags"`
	Grid      [][]string `json:"grid"`
	Error     string     `json:"error,omitempty"`
}

func (s *Session) Snapshot(err error) Snapshot {
	snapshot := Snapshot{
		SessionID: s.ID.String(),
		Size:      s.Board.Size,
		MineCount: s.Board.MineCount,
		Status:    s.Board.Status().String(),
		Revealed:  s.Board.RevealedCount(),
		Flags:     len(s.Board.Flagged()),
		Grid:      s.Board.Rows(),
	}
	if err != nil {
		snapshot.Error = err.Error()
	}
	return snapshot
}
