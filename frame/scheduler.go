package frame

// System is advanced once per frame with the elapsed time in seconds.
type System interface {
	Update(dt float64)
}

// SystemFunc adapts a function to the System interface.
type SystemFunc func(dt float64)

func (f SystemFunc) Update(dt float64) {
	f(dt)
}

// Scheduler runs systems in the order they were added.
type Scheduler struct {
	systems []System
	elapsed float64
	frames  int
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(dt float64) {
	s.frames++
	s.elapsed += dt
	for _, system := range s.systems {
		system.Update(dt)
	}
}

func (s *Scheduler) Systems() []System {
	systems := make([]System, 0, len(s.systems))
	return append(systems, s.systems...)
}

// Elapsed returns the total simulated time in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}

// Frames returns the number of Update calls so far.
func (s *Scheduler) Frames() int {
	return s.frames
}
