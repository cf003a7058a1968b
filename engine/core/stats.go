package core

import "time"

const frameWindow = 60

// FrameStats keeps a rolling average over the last 60 frame durations.
type FrameStats struct {
	durs  [frameWindow]time.Duration
	sum   time.Duration
	next  int
	count int
	total uint64
}

// Tick records one frame of duration d.
func (s *FrameStats) Tick(d time.Duration) {
	s.sum -= s.durs[s.next]
	s.durs[s.next] = d
	s.sum += d
	s.next = (s.next + 1) % frameWindow
	if s.count < frameWindow {
		s.count++
	}
	s.total++
}

// Framerate is the average frames per second, 0 before the first frame.
func (s *FrameStats) Framerate() float64 {
	if s.count == 0 || s.sum <= 0 {
		return 0
	}
	return float64(s.count) / s.sum.Seconds()
}

// FrameTime is the average frame duration.
func (s *FrameStats) FrameTime() time.Duration {
	if s.count == 0 {
		return 0
	}
	return s.sum / time.Duration(s.count)
}

// Frames is the number of frames recorded since start.
func (s *FrameStats) Frames() uint64 { return s.total }
