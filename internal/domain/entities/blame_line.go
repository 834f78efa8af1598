package entities

import "time"

// BlameLine attributes one line of a file to the commit that last touched it.
// Number is 1-based and follows emission order.
type BlameLine struct {
	Hash    string    `yaml:"hash"`
	Author  string    `yaml:"author"`
	Date    time.Time `yaml:"date"`
	Number  int       `yaml:"number"`
	Content string    `yaml:"content"`
}
