package dto

import "time"

// StartExportRequest 发起导出
type StartExportRequest struct {
	Kind   string `json:"kind" binding:"required"`
	Format string `json:"format" binding:"required"`
}

// StartExportResponse 导出任务已受理
type StartExportResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// ExportProgress 导出进度
type ExportProgress struct {
	JobID     string    `json:"job_id"`
	Kind      string    `json:"kind"`
	Format    string    `json:"format"`
	Status    string    `json:"status"` // running, done, error
	Progress  int       `json:"progress"`
	FilePath  string    `json:"file_path,omitempty"`
	Error     string    `json:"error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
