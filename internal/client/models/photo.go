package models

// Photo is a locally captured image referenced by URI. Only the reference
// travels through the app; the bytes are read when the request is built.
type Photo struct {
	URI      string
	MimeType string
}

func (p Photo) Empty() bool {
	return p.URI == ""
}
