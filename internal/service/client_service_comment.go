package service

import (
	"context"

	"github.com/MKhiriev/go-blog/internal/adapter"
	"github.com/MKhiriev/go-blog/models"
)

type clientCommentService struct {
	adapter adapter.ServerAdapter
}

func NewClientCommentService(serverAdapter adapter.ServerAdapter) ClientCommentService {
	return &clientCommentService{adapter: serverAdapter}
}

func (c *clientCommentService) Post(ctx context.Context, postID int64) (models.Post, error) {
	post, err := c.adapter.GetPost(ctx, postID)
	if err != nil {
		return models.Post{}, mapAdapterError(err)
	}
	return post, nil
}

func (c *clientCommentService) List(ctx context.Context, postID int64) ([]models.Comment, error) {
	comments, err := c.adapter.ListComments(ctx, postID)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return comments, nil
}

func (c *clientCommentService) Save(ctx context.Context, comment models.Comment) (models.Comment, error) {
	var (
		saved models.Comment
		err   error
	)

	if comment.IsNew() {
		saved, err = c.adapter.CreateComment(ctx, comment)
	} else {
		saved, err = c.adapter.UpdateComment(ctx, comment)
	}
	if err != nil {
		return models.Comment{}, mapAdapterError(err)
	}

	return saved, nil
}
