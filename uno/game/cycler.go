package game

type Direction int

const (
	Clockwise        Direction = 1
	CounterClockwise Direction = -1
)

func (d Direction) Reverse() Direction {
	if d == CounterClockwise {
		return Clockwise
	}
	return CounterClockwise
}

// NextSeat is the seat that plays after current, wrapping negative results into range.
func NextSeat(current int, direction Direction, seats int) int {
	if seats <= 0 {
		return 0
	}
	return ((current+int(direction))%seats + seats) % seats
}
