package dto

import "dmg-assess/internal/models"

// ComputeResultRequest 计算评估结果请求
type ComputeResultRequest struct {
	DSID uint `json:"DSID" binding:"required"`
	DPID uint `json:"DPID" binding:"required"`
}

// ComputeResult 计算结果；弹药或目标缺失时 Warnings 非空，结果按缺省参数算出
type ComputeResult struct {
	*models.AssessmentResult
	Warnings []string `json:"warnings,omitempty"`
}
