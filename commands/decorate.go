package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hllrcon/rcon-go/rconerrors"
	"github.com/hllrcon/rcon-go/wire"
)

// asBool turns a command's error into a bool: nil error means true; a
// CommandError whose status matches one of okStatuses means false (the
// command ran but reports the target wasn't there to act on); any other
// error propagates. Mirrors cast_response_to_bool in commands.py.
func asBool(err error, okStatuses ...int) (bool, error) {
	if err == nil {
		return true, nil
	}
	var cmdErr *rconerrors.CommandError
	if errors.As(err, &cmdErr) {
		for _, code := range okStatuses {
			if cmdErr.StatusCode == code {
				return false, nil
			}
		}
	}
	return false, err
}

// decodeInto raises for a non-OK status, then JSON-decodes a response's
// content body into dst. Mirrors cast_response_to_model, minus the
// Pydantic schema: this library leaves response shapes to the caller
// (see [Commands.GetAvailableMaps] doc).
func decodeInto(resp wire.Response, err error, dst any) error {
	if err != nil {
		return err
	}
	if err := resp.RaiseForStatus(); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(resp.ContentBody), dst); err != nil {
		return fmt.Errorf("decoding response: %w: %v", rconerrors.ErrMessage, err)
	}
	return nil
}

func marshalBody(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding request body: %w", err)
	}
	return string(b), nil
}
