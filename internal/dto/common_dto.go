package dto

// ListResponse 列表响应
type ListResponse struct {
	Items interface{} `json:"items"`
	Total int         `json:"total"`
}

// IDResponse 新增成功后返回的主键；关联数据缺失时附带警告
type IDResponse struct {
	ID       uint     `json:"id"`
	Warnings []string `json:"warnings,omitempty"`
}
