package fileops

// Usage holds disk usage statistics for a mounted filesystem, in
// bytes.
type Usage struct {
	Total uint64 `json:"total"`
	Used  uint64 `json:"used"`
	Free  uint64 `json:"free"`
}
