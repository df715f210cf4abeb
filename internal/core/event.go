package core

// Event is something a frame produced that a frontend may react to,
// typically by playing a sound or persisting a score.
type Event int

const (
	EventNone Event = iota
	EventFlap
	EventPoint
	EventHit
	EventFall
	EventSwoosh
	EventPop
	EventNewHighScore
	EventGameOver
	EventRestart
	EventLeaderboard
	EventMusicStart
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "None"
	case EventFlap:
		return "Flap"
	case EventPoint:
		return "Point"
	case EventHit:
		return "Hit"
	case EventFall:
		return "Fall"
	case EventSwoosh:
		return "Swoosh"
	case EventPop:
		return "Pop"
	case EventNewHighScore:
		return "NewHighScore"
	case EventGameOver:
		return "GameOver"
	case EventRestart:
		return "Restart"
	case EventLeaderboard:
		return "Leaderboard"
	case EventMusicStart:
		return "MusicStart"
	default:
		return "Unknown"
	}
}
