package slimetrain

import (
	"cmp"
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a control script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Count  int     `json:"count,omitempty"`
}

// scriptFile is the top-level JSON structure for a control script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a fixed sequence of Controls, one per frame, so the game can
// be driven without a keyboard. Actions:
//
//	move        hold direction (x, y) for frames frames
//	spawn       request count spawns on consecutive frames
//	aim         hold aim at world point (x, y) for frames frames, then release
//	wait        idle for frames frames
//	screenshot  one idle frame tagged with label
type Script struct {
	frames []Controls
	labels map[int]string
	cursor int
	shot   string
}

// LoadScript parses a JSON control script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	s := &Script{}
	for i, st := range file.Steps {
		if err := s.expand(st); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return s, nil
}

func (s *Script) expand(st scriptStep) error {
	frames := max(st.Frames, 1)
	switch st.Action {
	case "move":
		for range frames {
			s.frames = append(s.frames, Controls{Move: Vec2{st.X, st.Y}})
		}
	case "spawn":
		for range max(st.Count, 1) {
			s.frames = append(s.frames, Controls{Spawn: true})
		}
	case "aim":
		cursor := Vec2{st.X, st.Y}
		for range frames {
			s.frames = append(s.frames, Controls{Aim: true, Cursor: cursor})
		}
		s.frames = append(s.frames, Controls{Cursor: cursor})
	case "wait":
		for range frames {
			s.frames = append(s.frames, Controls{})
		}
	case "screenshot":
		if s.labels == nil {
			s.labels = make(map[int]string)
		}
		s.labels[len(s.frames)] = st.Label
		s.frames = append(s.frames, Controls{})
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

// Next returns the controls for the coming frame. Once the script is done it
// keeps returning idle controls.
func (s *Script) Next() Controls {
	s.shot = ""
	if s.cursor >= len(s.frames) {
		return Controls{}
	}
	c := s.frames[s.cursor]
	if label, ok := s.labels[s.cursor]; ok {
		s.shot = cmp.Or(label, "unlabeled")
	}
	s.cursor++
	return c
}

// Screenshot returns the label of a screenshot requested on the frame last
// returned by Next.
func (s *Script) Screenshot() (label string, ok bool) {
	return s.shot, s.shot != ""
}

// Len returns the total number of frames in the script.
func (s *Script) Len() int {
	return len(s.frames)
}

// Done reports whether every frame has been handed out.
func (s *Script) Done() bool {
	return s.cursor >= len(s.frames)
}
