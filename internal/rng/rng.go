package rng

// Generator provides simple random numbers
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int

	// Float64 will return a random number in [0.0, 1.0)
	Float64() float64
}
