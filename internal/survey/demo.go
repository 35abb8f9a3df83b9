package survey

// DemoPoints is the fixed sample walk used by the demo action, covering
// a spread of quality bands around a warehouse start position.
var DemoPoints = []RawPoint{
	{X: 0, Y: 0, RSSI: -55},
	{X: 5, Y: 3, RSSI: -62},
	{X: 10, Y: -2, RSSI: -68},
	{X: 15, Y: 4, RSSI: -75},
	{X: -5, Y: 8, RSSI: -58},
	{X: 8, Y: 10, RSSI: -72},
	{X: 12, Y: -5, RSSI: -78},
	{X: -8, Y: -3, RSSI: -65},
	{X: 20, Y: 8, RSSI: -82},
	{X: -12, Y: 12, RSSI: -70},
	{X: 18, Y: -8, RSSI: -85},
	{X: -15, Y: -10, RSSI: -88},
}

// LoadDemo clears the store and adds the demo points in listed order.
func LoadDemo(s *Store) (int, error) {
	s.Clear()
	for _, p := range DemoPoints {
		if _, err := s.Add(p.X, p.Y, p.RSSI); err != nil {
			return 0, err
		}
	}
	return len(DemoPoints), nil
}
