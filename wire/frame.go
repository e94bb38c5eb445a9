package wire

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	"github.com/hllrcon/rcon-go/rconerrors"
)

// HeaderSize is the fixed 8-byte request/response correlation header:
// a little-endian request id followed by a little-endian body length.
const HeaderSize = 8

func packHeader(id, length uint32) []byte {
	buf := make([]byte, HeaderSize)
	binary.LittleEndian.PutUint32(buf[0:4], id)
	binary.LittleEndian.PutUint32(buf[4:8], length)
	return buf
}

// ParseHeader decodes an 8-byte header into its request id and body
// length. It panics if buf is shorter than HeaderSize; callers must
// check length themselves, matching the read loop's own buffering.
func ParseHeader(buf []byte) (id uint32, length uint32) {
	id = binary.LittleEndian.Uint32(buf[0:4])
	length = binary.LittleEndian.Uint32(buf[4:8])
	return id, length
}

// responseBodyV2 mirrors the wire JSON object for v2 responses.
type responseBodyV2 struct {
	Name          string `json:"name"`
	Version       int    `json:"version"`
	StatusCode    int    `json:"statusCode"`
	StatusMessage string `json:"statusMessage"`
	ContentBody   string `json:"contentBody"`
}

// UnpackV2 decodes a v2 JSON response body. id is the correlation id
// read from the frame header, not part of the JSON payload.
func UnpackV2(id uint32, body []byte) (Response, error) {
	var v responseBodyV2
	if err := json.Unmarshal(body, &v); err != nil {
		return Response{}, fmt.Errorf("unpacking v2 response %d: %w: %v", id, rconerrors.ErrMessage, err)
	}
	if v.StatusMessage == "" {
		return Response{}, fmt.Errorf("unpacking v2 response %d: %w: missing statusMessage", id, rconerrors.ErrMessage)
	}
	if v.StatusCode == 0 {
		return Response{}, fmt.Errorf("unpacking v2 response %d: %w: missing statusCode", id, rconerrors.ErrMessage)
	}
	return Response{
		RequestID:     id,
		Name:          v.Name,
		Version:       v.Version,
		StatusCode:    StatusCode(v.StatusCode),
		StatusMessage: v.StatusMessage,
		ContentBody:   v.ContentBody,
	}, nil
}
