package component

// WavePhase is the lifecycle of a single wave number.
type WavePhase int

const (
	WaveUnprepared WavePhase = iota
	WavePreparing            // spawns scheduled, some still pending
	WaveInProgress           // everything spawned, waiting for the field to clear
	WaveCleared
)

func (p WavePhase) String() string {
	switch p {
	case WaveUnprepared:
		return "UNPREPARED"
	case WavePreparing:
		return "PREPARING"
	case WaveInProgress:
		return "IN_PROGRESS"
	case WaveCleared:
		return "CLEARED"
	default:
		return "UNKNOWN"
	}
}

// WaveState - состояние планировщика волн.
type WaveState struct {
	Number       int // current wave; grows only after its enemies are cleared
	Phase        WavePhase
	LastPrepared int
	Scheduled    int // spawns scheduled for the preparing wave
	Fired        int // of those, how many timers already fired
}
