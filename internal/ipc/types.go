package ipc

// Request carries the payload for directives that take one (a wallpaper path
// or a directory path).
type Request struct {
	Path string `json:"path"`
}

// Response is the single reply the daemon sends for every directive.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    string `json:"data,omitempty"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	Version          string `json:"version"`
	PID              int    `json:"pid"`
	Directory        string `json:"directory"`
	CurrentWallpaper string `json:"current_wallpaper"`
	Entries          int    `json:"entries"`
	IntervalSeconds  int    `json:"interval_seconds"`
}

// DaemonInterface is what the request handlers need from the daemon. Every
// method that touches rotation state serializes on the daemon's lock, so
// directives apply in lock-acquisition order.
type DaemonInterface interface {
	SetWallpaper(path string) error
	Next() (string, error)
	Directory() string
	SetDirectory(path string) (string, error)
	Status() StatusResponse
	Kill()
}
