package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	InstanceID    string                `json:"instance_id"`
	Uptime        string                `json:"uptime"`
	UptimeSeconds int64                 `json:"uptime_seconds"`
	StartTime     time.Time             `json:"start_time"`
	GoRoutines    int                   `json:"goroutines"`
	MemoryAllocMB float64               `json:"memory_alloc_mb"`
	NumCPU        int                   `json:"num_cpu"`
	Process       *ProcessStatsResponse `json:"process,omitempty"`
	DNSStats      DNSStatsResponse      `json:"dns"`
}

// ProcessStatsResponse contains OS-level figures for the server process.
type ProcessStatsResponse struct {
	RSSMB      float64 `json:"rss_mb"`
	CPUPercent float64 `json:"cpu_percent"`
	NumThreads int32   `json:"num_threads"`
}

// DNSStatsResponse contains DNS query statistics, one counter per reply kind.
type DNSStatsResponse struct {
	QueriesTotal   uint64  `json:"queries_total"`
	AnswersA       uint64  `json:"answers_a"`
	AnswersOPT     uint64  `json:"answers_opt"`
	NotImplemented uint64  `json:"responses_notimp"`
	NameErrors     uint64  `json:"responses_nxdomain"`
	ServerErrors   uint64  `json:"responses_servfail"`
	Panics         uint64  `json:"panics"`
	BytesIn        uint64  `json:"bytes_in"`
	BytesOut       uint64  `json:"bytes_out"`
	AvgLatencyMs   float64 `json:"avg_latency_ms"`
}
