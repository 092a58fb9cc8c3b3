package model

// ProgressStatus is the status tag reported with each engine progress callback
type ProgressStatus string

const (
	ProgressStatusStarting       ProgressStatus = "starting"
	ProgressStatusDownloading    ProgressStatus = "downloading"
	ProgressStatusPostProcessing ProgressStatus = "post_processing"
	ProgressStatusFinished       ProgressStatus = "finished"
	ProgressStatusError          ProgressStatus = "error"
)

// ProgressUpdate is a single progress callback from the engine
type ProgressUpdate struct {
	Status             ProgressStatus
	DownloadedBytes    int64
	TotalBytes         int64 // exact total, 0 if unknown
	TotalBytesEstimate int64 // estimated total, 0 if unknown
	Title              string
	Filename           string // file the engine is writing, if reported
}

// Total returns the exact total if known, else the estimate, else 0
func (u ProgressUpdate) Total() int64 {
	if u.TotalBytes > 0 {
		return u.TotalBytes
	}
	if u.TotalBytesEstimate > 0 {
		return u.TotalBytesEstimate
	}
	return 0
}

// ProgressState holds byte counters for the download in flight
type ProgressState struct {
	DownloadedBytes int64
	TotalBytes      int64 // 0 means unknown
}

// Apply copies counters from a downloading update
func (p *ProgressState) Apply(u ProgressUpdate) {
	p.DownloadedBytes = u.DownloadedBytes
	p.TotalBytes = u.Total()
}

// Reset empties the counters
func (p *ProgressState) Reset() {
	p.DownloadedBytes = 0
	p.TotalBytes = 0
}

// Known reports whether the total size is known
func (p ProgressState) Known() bool {
	return p.TotalBytes > 0
}

// Percent returns downloaded/total*100, or 0 when the total is unknown
func (p ProgressState) Percent() float64 {
	if !p.Known() {
		return 0
	}
	return float64(p.DownloadedBytes) / float64(p.TotalBytes) * 100
}
