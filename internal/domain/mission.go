package domain

type MissionStatus string

const (
	MissionStatusAvailable MissionStatus = "available"
	MissionStatusCompleted MissionStatus = "completed"
)

type Mission struct {
	ID     string
	Status MissionStatus
}

func (m Mission) Available() bool {
	return m.Status == MissionStatusAvailable
}

// AvailableMissions keeps the service order.
func AvailableMissions(missions []Mission) []Mission {
	available := make([]Mission, 0, len(missions))
	for _, mission := range missions {
		if mission.Available() {
			available = append(available, mission)
		}
	}
	return available
}

type ShareResult struct {
	Message      string
	TotalBalance float64
}
