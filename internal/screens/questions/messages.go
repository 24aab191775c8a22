package questions

import "github.com/abhisek/interviewsprint/internal/prep"

// batchDoneMsg is sent when a batch generation finishes.
type batchDoneMsg struct {
	Category prep.Category
	Level    prep.Level
	Added    int
	Err      error
}

// copiedMsg reports the result of a clipboard write.
type copiedMsg struct {
	Err error
}
