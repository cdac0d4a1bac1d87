package jiebatag

// Tagger is the external tagging capability: given text, it returns an
// ordered sequence of tag strings, or fails.
type Tagger interface {
	ExtractTags(text string) ([]string, error)
}

// TaggerFunc adapts an ordinary function to a Tagger.
type TaggerFunc func(text string) ([]string, error)

func (f TaggerFunc) ExtractTags(text string) ([]string, error) {
	return f(text)
}
