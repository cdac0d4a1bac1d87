package jiebatag

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TagTextErrorMessage is the diagnostic carried by every failed Result.
const TagTextErrorMessage = "TagText errors"

// TaggingError reports that the tagging collaborator failed. Cause holds
// whatever the collaborator returned or panicked with.
type TaggingError struct {
	Cause error
}

func (e *TaggingError) Error() string {
	return TagTextErrorMessage
}

func (e *TaggingError) Unwrap() error {
	return e.Cause
}

// newTaggingError converts a recovered panic value into a TaggingError.
func newTaggingError(v interface{}) *TaggingError {
	switch x := v.(type) {
	case nil:
		return &TaggingError{Cause: errors.New("panic: nil")}
	case *TaggingError:
		return x
	case error:
		return &TaggingError{Cause: x}
	default:
		return &TaggingError{Cause: fmt.Errorf("panic: %v", x)}
	}
}

// Result is the outcome of a single TagText call. It is immutable once built.
// Only NewResult and NewFailedResult produce valid Results; the zero value is
// neither a success nor a failure with a message.
type Result struct {
	tags         []string
	errorMessage string
	succeeded    bool
	err          error
}

// NewResult returns a successful Result owning tags.
func NewResult(tags []string) Result {
	if tags == nil {
		tags = []string{}
	}
	return Result{tags: tags, succeeded: true}
}

// NewFailedResult returns a failed Result. A nil err still produces a
// non-empty error message.
func NewFailedResult(err error) Result {
	var te *TaggingError
	if !errors.As(err, &te) {
		te = &TaggingError{Cause: err}
	}
	return Result{
		tags:         []string{},
		errorMessage: te.Error(),
		err:          te,
	}
}

// Tags returns a copy of the tags.
func (r Result) Tags() []string {
	tags := make([]string, len(r.tags))
	copy(tags, r.tags)
	return tags
}

func (r Result) ErrorMessage() string { return r.errorMessage }

func (r Result) Succeeded() bool { return r.succeeded }

// Err returns the contained *TaggingError of a failed Result, or nil.
func (r Result) Err() error { return r.err }

type resultJSON struct {
	Tags         []string `json:"tags"`
	ErrorMessage string   `json:"error_message"`
	Succeeded    bool     `json:"succeeded"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		Tags:         r.Tags(),
		ErrorMessage: r.errorMessage,
		Succeeded:    r.succeeded,
	})
}

// UnmarshalJSON decodes a Result, rejecting payloads that break the
// success/failure invariant.
func (r *Result) UnmarshalJSON(data []byte) error {
	var v resultJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch {
	case v.Succeeded && v.ErrorMessage != "":
		return errors.New("jiebatag: succeeded result with error message")
	case !v.Succeeded && (len(v.Tags) != 0 || v.ErrorMessage == ""):
		return errors.New("jiebatag: failed result must have no tags and a message")
	}
	if v.Succeeded {
		*r = NewResult(v.Tags)
		return nil
	}
	*r = Result{tags: []string{}, errorMessage: v.ErrorMessage, err: &TaggingError{Cause: errors.New(v.ErrorMessage)}}
	return nil
}
