package wire

import "encoding/json"

// Request is one outbound RCON command. RequestID is assigned by the
// owning session and must be unique among its own in-flight requests.
type Request struct {
	RequestID   uint32
	Name        string
	Version     int
	AuthToken   string
	ContentBody string
}

// requestBodyV2 mirrors the wire JSON object for v2 requests. Field
// order here fixes the marshaled key order (encoding/json preserves
// struct declaration order), giving the deterministic encoding spec.md
// §9 asks for without a hand-rolled JSON writer.
type requestBodyV2 struct {
	AuthToken   string `json:"AuthToken"`
	Version     int    `json:"Version"`
	Name        string `json:"Name"`
	ContentBody string `json:"ContentBody"`
}

// PackV2 encodes the request as an 8-byte little-endian header followed
// by the compact JSON envelope. AuthToken defaults to a single space
// when absent, per spec.md §3.
func (r Request) PackV2() ([]byte, error) {
	auth := r.AuthToken
	if auth == "" {
		auth = " "
	}
	body, err := json.Marshal(requestBodyV2{
		AuthToken:   auth,
		Version:     r.Version,
		Name:        r.Name,
		ContentBody: r.ContentBody,
	})
	if err != nil {
		return nil, err
	}
	return append(packHeader(r.RequestID, uint32(len(body))), body...), nil
}

// PackV1 encodes the request as an 8-byte little-endian header followed
// by a bare "<name>[ <body>]" line. v1 servers do not echo this header
// back on the response; it exists only so the write side can still
// allocate a per-request id, matching original_source/hllrcon/protocol/request.py.
func (r Request) PackV1() []byte {
	line := r.Name
	if r.ContentBody != "" {
		line = r.Name + " " + r.ContentBody
	}
	b := []byte(line)
	return append(packHeader(r.RequestID, uint32(len(b))), b...)
}
