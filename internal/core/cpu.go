package core

// ExecutionSlice is a contiguous span of simulated time during which one process held the cpu.
type ExecutionSlice struct {
	ProcessId string `json:"id"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a single discrete-time processor. Time only moves forward, either by
// idling or by executing a process.
type Cpu struct {
	time     int
	timeline []ExecutionSlice
	metric   CpuMetric
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]ExecutionSlice, 0)}
}

func (c *Cpu) Now() int {
	return c.time
}

// IdleUntil advances the clock to t without running anything. It never moves backwards.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.time {
		return
	}
	c.metric.IdleTime += t - c.time
	c.time = t
}

// Execute runs the process for the given units and returns the new time. Consecutive
// units of the same process are merged into one slice.
func (c *Cpu) Execute(processId string, units int) int {
	if units <= 0 {
		return c.time
	}
	start := c.time
	c.time += units
	c.metric.UtilizationTime += units

	if n := len(c.timeline); n > 0 && c.timeline[n-1].ProcessId == processId && c.timeline[n-1].End == start {
		c.timeline[n-1].End = c.time
	} else {
		c.timeline = append(c.timeline, ExecutionSlice{ProcessId: processId, Start: start, End: c.time})
	}
	return c.time
}

func (c *Cpu) Timeline() []ExecutionSlice {
	timeline := make([]ExecutionSlice, len(c.timeline))
	copy(timeline, c.timeline)
	return timeline
}

func (c *Cpu) Metric() CpuMetric {
	metric := c.metric
	metric.TotalTime = c.time
	return metric
}
