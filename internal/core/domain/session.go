package domain

import "time"

// ReadingSession pairs an Article with the last known reading position.
type ReadingSession struct {
	// ID uniquely identifies the session.
	ID string `json:"id"`

	// Article is the content being read.
	Article Article `json:"article"`

	// WordIndex is the position in Article.Words, in [0, WordCount].
	// It equals WordCount only once the article has been read to the end.
	WordIndex int `json:"word_index"`

	// LastReadAt is when the position was last touched.
	LastReadAt time.Time `json:"last_read_at"`
}

// NewReadingSession creates a session for article at index.
func NewReadingSession(id string, article Article, index int) ReadingSession {
	s := ReadingSession{
		ID:      id,
		Article: article,
	}
	s.UpdatePosition(index)
	return s
}

// UpdatePosition clamps index to [0, WordCount] and touches LastReadAt.
func (s *ReadingSession) UpdatePosition(index int) {
	s.WordIndex = min(max(0, index), s.Article.WordCount())
	s.LastReadAt = time.Now()
}

// Progress returns the fraction of words read in [0, 1].
func (s ReadingSession) Progress() float64 {
	if s.Article.WordCount() == 0 {
		return 0
	}
	return float64(s.WordIndex) / float64(s.Article.WordCount())
}

// ProgressPercentage returns Progress as a whole percentage.
func (s ReadingSession) ProgressPercentage() int {
	return int(s.Progress() * 100)
}

// IsComplete returns true once every word has been read.
func (s ReadingSession) IsComplete() bool {
	return s.WordIndex >= s.Article.WordCount()
}
