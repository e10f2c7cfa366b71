package tutor

// Config controls tutoring behavior.
type Config struct {
	// InitialRepeat is the repeat counter assigned to a newly
	// introduced word.
	InitialRepeat int

	// QuizProbability is the chance that an interaction quizzes an
	// existing due word instead of introducing a new one.
	QuizProbability float64

	// MaxIntroduceAttempts bounds how many times IntroduceWord asks the
	// backend for a parseable word pair. 0 means retry until the
	// context is cancelled — an explicit opt-in, never the default.
	MaxIntroduceAttempts int

	// AllowDuplicates keeps the historical behavior of inserting a
	// second entry when the backend re-introduces a known term. When
	// false, the existing entry's counter is reset instead.
	AllowDuplicates bool

	// MaxTokens is the response budget for backend calls.
	MaxTokens int

	// Temperature for generation. Word introduction benefits from some
	// variety; grading runs at 0 regardless.
	Temperature float64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		InitialRepeat:        2,
		QuizProbability:      0.5,
		MaxIntroduceAttempts: 5,
		AllowDuplicates:      true,
		MaxTokens:            1024,
		Temperature:          0.7,
	}
}
