package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestPackV2(t *testing.T) {
	req := Request{
		RequestID:   1,
		Name:        "ServerConnect",
		Version:     2,
		ContentBody: " ",
	}

	packed, err := req.PackV2()
	require.NoError(t, err)

	id, length := ParseHeader(packed[:HeaderSize])
	assert.Equal(t, uint32(1), id)
	assert.Equal(t, int(length), len(packed)-HeaderSize)

	body := packed[HeaderSize:]
	assert.JSONEq(t, `{"AuthToken":" ","Version":2,"Name":"ServerConnect","ContentBody":" "}`, string(body))
}

func TestRequestPackV2_DefaultsAuthTokenToSpace(t *testing.T) {
	req := Request{RequestID: 2, Name: "Login", Version: 2, ContentBody: "pw"}

	packed, err := req.PackV2()
	require.NoError(t, err)

	body := packed[HeaderSize:]
	assert.JSONEq(t, `{"AuthToken":" ","Version":2,"Name":"Login","ContentBody":"pw"}`, string(body))
}

func TestUnpackV2(t *testing.T) {
	body := []byte(`{"name":"ServerConnect","version":2,"statusCode":200,"statusMessage":"OK","contentBody":"YWJjZA=="}`)

	resp, err := UnpackV2(1, body)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), resp.RequestID)
	assert.Equal(t, "ServerConnect", resp.Name)
	assert.Equal(t, 2, resp.Version)
	assert.Equal(t, StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", resp.StatusMessage)
	assert.Equal(t, "YWJjZA==", resp.ContentBody)
}

func TestUnpackV2_MalformedJSON(t *testing.T) {
	_, err := UnpackV2(1, []byte(`not json`))
	require.Error(t, err)
}

func TestUnpackV2_MissingStatusMessage(t *testing.T) {
	_, err := UnpackV2(1, []byte(`{"name":"x","version":2,"statusCode":200,"contentBody":""}`))
	require.Error(t, err)
}

func TestUnpackV2_MissingStatusCode(t *testing.T) {
	_, err := UnpackV2(1, []byte(`{"name":"x","version":2,"statusMessage":"OK","contentBody":""}`))
	require.Error(t, err)
}

func TestFrameRoundTrip(t *testing.T) {
	req := Request{
		RequestID:   7,
		Name:        "KickPlayer",
		Version:     2,
		AuthToken:   "TOKEN",
		ContentBody: `{"PlayerId":"76561","Reason":"bye"}`,
	}

	packed, err := req.PackV2()
	require.NoError(t, err)

	id, length := ParseHeader(packed[:HeaderSize])
	body := packed[HeaderSize : HeaderSize+int(length)]

	var echoed struct {
		AuthToken   string `json:"AuthToken"`
		Version     int    `json:"Version"`
		Name        string `json:"Name"`
		ContentBody string `json:"ContentBody"`
	}
	require.NoError(t, json.Unmarshal(body, &echoed))

	assert.Equal(t, req.RequestID, id)
	assert.Equal(t, req.AuthToken, echoed.AuthToken)
	assert.Equal(t, req.Version, echoed.Version)
	assert.Equal(t, req.Name, echoed.Name)
	assert.Equal(t, req.ContentBody, echoed.ContentBody)
}
