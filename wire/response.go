package wire

import (
	"encoding/json"
	"fmt"

	"github.com/hllrcon/rcon-go/rconerrors"
)

// Response is one inbound RCON reply, correlated to its Request by
// RequestID. For v1 traffic Name is empty and Version is 1.
type Response struct {
	RequestID     uint32
	Name          string
	Version       int
	StatusCode    StatusCode
	StatusMessage string
	ContentBody   string
}

// RaiseForStatus promotes a non-OK status to a *rconerrors.CommandError.
// execute() never does this itself; callers opt in, matching spec.md §4.3.
func (r Response) RaiseForStatus() error {
	if r.StatusCode == StatusOK {
		return nil
	}
	return &rconerrors.CommandError{StatusCode: int(r.StatusCode), Message: r.StatusMessage}
}

// ContentDict JSON-decodes ContentBody into a map, for callers that know
// the command in question returns a JSON object. The protocol engine
// itself never interprets ContentBody; this is a convenience for the
// command surface.
func (r Response) ContentDict() (map[string]any, error) {
	var v map[string]any
	if err := json.Unmarshal([]byte(r.ContentBody), &v); err != nil {
		return nil, fmt.Errorf("decoding content body: %w: %v", rconerrors.ErrMessage, err)
	}
	return v, nil
}
