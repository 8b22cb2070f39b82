// File: internal/dto/response.go
package dto

import "portfolio/internal/model"

// Response is the envelope every endpoint answers with.
// swagger:model Response
type Response struct {
	Success bool   `json:"success" example:"true"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty" example:"Project created successfully"`
	ID      int    `json:"id,omitempty" example:"7"`
}

// ErrorResponse is Response with success=false.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Authentication required"`
}

func OK(data any) Response { return Response{Success: true, Data: data} }

func Created(message string, id int) Response {
	return Response{Success: true, Message: message, ID: id}
}

func Message(message string) Response { return Response{Success: true, Message: message} }

func Error(message string) ErrorResponse { return ErrorResponse{Message: message} }

type LoginResponse struct {
	Success bool               `json:"success" example:"true"`
	Message string             `json:"message" example:"Login successful"`
	Admin   model.AdminSummary `json:"admin"`
}

// CheckAuthResponse omits admin when not authenticated.
type CheckAuthResponse struct {
	Success       bool                `json:"success" example:"true"`
	Authenticated bool                `json:"authenticated"`
	Admin         *model.AdminSummary `json:"admin,omitempty"`
}

type DashboardResponse struct {
	Success        bool                 `json:"success" example:"true"`
	Stats          model.DashboardStats `json:"stats"`
	RecentMessages []RecentMessage      `json:"recent_messages"`
}

type PingResponse struct {
	Message string `json:"message" example:"pong"`
}
