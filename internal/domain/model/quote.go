package model

// Quote is a single entry shown by the rotating quote ticker.
// Text is markdown.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
}
