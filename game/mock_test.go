package game

// mockRandom replays fixed draws, clamped into [0, n).
type mockRandom struct {
	draws []int
	next  int
}

func (m *mockRandom) Intn(n int) int {
	if m.next >= len(m.draws) {
		panic("mockRandom ran out of draws")
	}
	d := m.draws[m.next]
	m.next++
	if d >= n {
		return n - 1
	}
	return d
}
