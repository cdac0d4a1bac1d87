package jiebatag

import (
	"errors"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/exp/slices"
)

var errNilTagger = errors.New("jiebatag: nil tagger")

// TagText runs t on text and normalizes the outcome. It never panics and
// never returns an error: every failure of t, returned or raised, ends up
// in a failed Result with no tags.
func TagText(t Tagger, text string) (result Result) {
	// recover returns nil for panic(nil) before Go 1.21, so a flag decides
	// whether t completed.
	done := false
	defer func() {
		if !done {
			result = NewFailedResult(newTaggingError(recover()))
		}
	}()

	if t == nil {
		done = true
		return NewFailedResult(errNilTagger)
	}
	tags, err := t.ExtractTags(text)
	done = true
	if err != nil {
		return NewFailedResult(err)
	}
	// The collaborator keeps ownership of its slice.
	copied := slices.Clone(tags)
	if copied == nil {
		copied = []string{}
	}
	return NewResult(copied)
}

type AdapterConfig struct {
	Tagger Tagger
	// Serialize allows only one call into Tagger at a time.
	Serialize bool
	Logger    log.Logger
}

type Adapter struct {
	tagger    Tagger
	serialize bool
	logger    log.Logger

	mu sync.Mutex
}

func NewAdapter(cfg *AdapterConfig) *Adapter {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Adapter{
		tagger:    cfg.Tagger,
		serialize: cfg.Serialize,
		logger:    logger,
	}
}

// TagText is the package-level TagText bound to the adapter's Tagger.
func (a *Adapter) TagText(text string) Result {
	return a.run(a.tagger, text)
}

// Nouns tags text and merges adjacent noun tags into phrases.
func (a *Adapter) Nouns(text string) Result {
	r := a.TagText(text)
	if !r.Succeeded() {
		return r
	}
	return NewResult(MergeNouns(r.tags))
}

// With runs t under the adapter's serialization and logging. It lets callers
// use a different view of the same collaborator, such as a keyword mode.
func (a *Adapter) With(t Tagger, text string) Result {
	return a.run(t, text)
}

func (a *Adapter) run(t Tagger, text string) Result {
	if a.serialize {
		a.mu.Lock()
		defer a.mu.Unlock()
	}

	r := TagText(t, text)
	if !r.Succeeded() {
		var te *TaggingError
		if errors.As(r.Err(), &te) {
			level.Warn(a.logger).Log("msg", "TagText Fail", "err", te.Cause, "text_len", len(text))
		}
	}
	return r
}
