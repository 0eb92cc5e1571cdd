package quoridor

type Turn int8

const (
	Player1 Turn = 1
	Player2 Turn = -1
)

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return ""
}

func (t *Turn) Change() { *t = -*t }
