package media

// FrameSample is the analysis of one still image or one sampled video frame.
type FrameSample struct {
	Ratio          float64 `json:"ratio"`
	SkinRatio      float64 `json:"skin_ratio"`
	PornScore      float64 `json:"porn_score"`
	SexyScore      float64 `json:"sexy_score"`
	TopLabel       string  `json:"top_label,omitempty"`
	TopProbability float64 `json:"top_probability"`
	Flagged        bool    `json:"flagged"`
	Reason         string  `json:"reason,omitempty"`
}

// Score is the strongest unsafe signal of the frame.
func (f FrameSample) Score() float64 {
	s := f.SkinRatio
	if f.PornScore > s {
		s = f.PornScore
	}
	if f.SexyScore > s {
		s = f.SexyScore
	}
	return s
}

type VideoVerdict struct {
	Flagged           bool          `json:"flagged"`
	MaxScore          float64       `json:"max_score"`
	FlaggedFrameCount int           `json:"flagged_frame_count"`
	Frames            []FrameSample `json:"frames"`
}

// Aggregate ORs the frame flags; one flagged frame flags the whole clip.
func Aggregate(frames []FrameSample) VideoVerdict {
	v := VideoVerdict{Frames: frames}
	for _, f := range frames {
		if f.Flagged {
			v.Flagged = true
			v.FlaggedFrameCount++
		}
		if s := f.Score(); s > v.MaxScore {
			v.MaxScore = s
		}
	}
	return v
}

// FirstReason returns the reason of the first flagged frame.
func (v VideoVerdict) FirstReason() string {
	for _, f := range v.Frames {
		if f.Flagged {
			return f.Reason
		}
	}
	return ""
}
