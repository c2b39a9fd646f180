package ipc

import "river-stream/internal/layout"

const (
	CommandGenerateLayout = "generate_layout"
	CommandUserCmd        = "user_cmd"

	StatusSuccess = "success"
	StatusError   = "error"
)

// Request is one newline-delimited JSON message from a runtime peer.
type Request struct {
	Command      string  `json:"command"`
	ViewCount    uint32  `json:"view_count,omitempty"`
	UsableWidth  uint32  `json:"usable_width,omitempty"`
	UsableHeight uint32  `json:"usable_height,omitempty"`
	Tags         *uint32 `json:"tags,omitempty"`
	Output       string  `json:"output"`
	UserCommand  string  `json:"user_command,omitempty"`
}

type Response struct {
	Status  string                  `json:"status"`
	Message string                  `json:"message,omitempty"`
	Layout  *layout.GeneratedLayout `json:"layout,omitempty"`
}

func errorResponse(msg string) Response {
	return Response{Status: StatusError, Message: msg}
}
