package model

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// HealthInfoResponse - 서비스 메타데이터 응답
type HealthInfoResponse struct {
	Author      string `json:"author"`
	Date        string `json:"date"`
	Environment string `json:"environment"`
	Service     string `json:"service"`
	Version     string `json:"appVersionPackage"`
}
