package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnpackV1_NonEmptyBody(t *testing.T) {
	resp := UnpackV1(3, []byte("Name1\tName2\t"))
	assert.Equal(t, StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", resp.StatusMessage)
	assert.Equal(t, "Name1\tName2\t", resp.ContentBody)
	assert.Equal(t, 1, resp.Version)
	assert.Equal(t, uint32(3), resp.RequestID)
}

func TestUnpackV1_EmptyBody(t *testing.T) {
	resp := UnpackV1(4, nil)
	assert.Equal(t, StatusInternalError, resp.StatusCode)
	assert.Equal(t, "Error", resp.StatusMessage)
	assert.Equal(t, "", resp.ContentBody)
}

func TestRequestPackV1(t *testing.T) {
	req := Request{RequestID: 9, Name: "Login", ContentBody: "secret"}
	packed := req.PackV1()

	id, length := ParseHeader(packed[:HeaderSize])
	assert.Equal(t, uint32(9), id)
	body := packed[HeaderSize:]
	assert.Equal(t, int(length), len(body))
	assert.Equal(t, "Login secret", string(body))
}

func TestRequestPackV1_NoBody(t *testing.T) {
	req := Request{RequestID: 1, Name: "get players"}
	packed := req.PackV1()
	body := packed[HeaderSize:]
	assert.Equal(t, "get players", string(body))
}
