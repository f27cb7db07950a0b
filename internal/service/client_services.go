package service

import (
	"github.com/MKhiriev/go-blog/internal/adapter"
)

type ClientServices struct {
	AuthService    ClientAuthService
	CommentService ClientCommentService
}

func NewClientServices(serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(serverAdapter),
		CommentService: NewClientCommentService(serverAdapter),
	}
}
