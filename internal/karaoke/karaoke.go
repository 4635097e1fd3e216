package karaoke

// single timed word; times are in milliseconds
type Word struct {
	Start int
	End   int
	Text  string
}

func (w Word) Duration() int {
	return w.End - w.Start
}

// Segment is a span of speech with word-level timing, either loaded from an
// external alignment source or synthesized by Distribute.
type Segment struct {
	Start   int
	End     int
	Words   []Word
	Speaker string
}

func (s Segment) Duration() int {
	return s.End - s.Start
}
