package session

import "time"

// Session represents one recorded terminal session, active or finished.
type Session struct {
	ID        string     `json:"id"`
	StartTime time.Time  `json:"start_time"`
	StopTime  *time.Time `json:"stop_time,omitempty"`
	Shell     string     `json:"shell"`
	WorkDir   string     `json:"work_dir"`
	// TranscriptPath is the file the recorder writes the raw terminal
	// transcript to.
	TranscriptPath string `json:"transcript_path"`
	// TranscriptBytes is the transcript size last observed by the growth
	// watcher while recording, or the final size once recording stops.
	TranscriptBytes int64 `json:"transcript_bytes,omitempty"`
}

// Active reports whether the session is still recording.
func (s *Session) Active() bool {
	return s != nil && s.StopTime == nil
}

// Duration returns the session length, using the current time while the
// session is still recording.
func (s *Session) Duration() time.Duration {
	if s.StopTime != nil {
		return s.StopTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}
