package adapter

import "encoding/json"

// ServerInfo is the welcome document returned by GET /.
type ServerInfo struct {
	CouchDB string `json:"couchdb"`
	Version string `json:"version"`
}

// FindQuery is the body of POST /{db}/_find.
type FindQuery struct {
	Selector map[string]any `json:"selector"`
	Fields   []string       `json:"fields,omitempty"`
	Limit    int            `json:"limit,omitempty"`
}

// DocumentResult is returned by POST /{db} on success.
type DocumentResult struct {
	OK  bool   `json:"ok"`
	ID  string `json:"id"`
	Rev string `json:"rev"`
}

type findResponse struct {
	Docs    []json.RawMessage `json:"docs"`
	Warning string            `json:"warning,omitempty"`
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	Expiration  int64  `json:"expiration"`
}

type errorResponse struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}
